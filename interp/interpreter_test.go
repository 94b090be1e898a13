/*
File    : lox/interp/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/resolver"
	"github.com/akashmaji946/lox/scanner"
)

// run scans, parses, resolves and interprets src, returning everything
// written to stdout and the reporter used throughout.
func run(t *testing.T, src string) (string, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.NewPlain(&buf)

	sc := scanner.New(src, rep)
	p := parser.New(sc.ScanTokens(), rep)
	stmts := p.Parse()
	require.False(t, rep.HadError(), "parse error: %s", buf.String())

	in := interp.New(rep, &buf)
	res := resolver.New(in, rep)
	res.Resolve(stmts)
	require.False(t, rep.HadError(), "resolve error: %s", buf.String())

	in.Interpret(stmts)
	return buf.String(), rep
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, rep := run(t, `print 1 + 2 * 3;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, _ := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsy";
		if ("") print "empty string is truthy"; else print "empty string is falsy";
		if (nil) print "nil is truthy"; else print "nil is falsy";
	`)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"zero is truthy",
		"empty string is truthy",
		"nil is falsy",
	}, lines)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForDesugarsCorrectly(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ClosureCapturesDefiningEnvironment(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var c = makeCounter();
		print c();
		print c();
		print c();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_Recursion(t *testing.T) {
	out, _ := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(8);
	`)
	assert.Equal(t, "21\n", out)
}

func TestInterpret_ClassInstanceFieldsAndMethods(t *testing.T) {
	out, _ := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "Hello, " + this.name + "!";
			}
		}
		var g = Greeter("world");
		g.greet();
	`)
	assert.Equal(t, "Hello, world!\n", out)
}

func TestInterpret_Inheritance(t *testing.T) {
	out, _ := run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	assert.Equal(t, "...\nWoof\n", out)
}

func TestInterpret_RuntimeErrorOnBadOperands(t *testing.T) {
	out, rep := run(t, `print 1 + "two";`)
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, out, "Operands must be two numbers or two strings.")
}

func TestInterpret_RuntimeErrorCallingNonCallable(t *testing.T) {
	out, rep := run(t, `
		var x = 1;
		x();
	`)
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, out, "Can only call functions and classes.")
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	out, rep := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, out, "Expected 2 arguments but got 1.")
}

func TestInterpret_SuperclassMustBeClass(t *testing.T) {
	out, rep := run(t, `
		var NotAClass = 1;
		class Sub < NotAClass {}
	`)
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, out, "Superclass must be a class.")
}

func TestInterpret_ClockIsCallableWithZeroArity(t *testing.T) {
	out, rep := run(t, `print clock() >= 0;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "true\n", out)
}
