/*
File    : lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/resolver"
	"github.com/akashmaji946/lox/scanner"
)

func resolve(t *testing.T, src string) (*reporter.Reporter, *interp.Interpreter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.NewPlain(&buf)

	sc := scanner.New(src, rep)
	p := parser.New(sc.ScanTokens(), rep)
	stmts := p.Parse()
	require.False(t, rep.HadError(), "unexpected parse error: %s", buf.String())

	in := interp.New(rep, &buf)
	res := resolver.New(in, rep)
	res.Resolve(stmts)
	return rep, in
}

func TestResolve_ValidProgramReportsNoErrors(t *testing.T) {
	rep, _ := resolve(t, `
		var a = 1;
		{
			var b = a + 1;
			print b;
		}
		fun f(x) { return x + 1; }
		print f(2);
	`)
	assert.False(t, rep.HadError())
}

func TestResolve_SelfReferencingInitializerIsError(t *testing.T) {
	rep, _ := resolve(t, `{ var a = a; }`)
	assert.True(t, rep.HadError())
}

func TestResolve_DuplicateLocalDeclarationIsError(t *testing.T) {
	rep, _ := resolve(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, rep.HadError())
}

func TestResolve_GlobalRedeclarationIsAllowed(t *testing.T) {
	rep, _ := resolve(t, `var a = 1; var a = 2;`)
	assert.False(t, rep.HadError())
}

func TestResolve_TopLevelReturnIsError(t *testing.T) {
	rep, _ := resolve(t, `return 1;`)
	assert.True(t, rep.HadError())
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	rep, _ := resolve(t, `
		class A {
			init() { return 1; }
		}
	`)
	assert.True(t, rep.HadError())
}

func TestResolve_BareReturnFromInitializerIsAllowed(t *testing.T) {
	rep, _ := resolve(t, `
		class A {
			init() { return; }
		}
	`)
	assert.False(t, rep.HadError())
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	rep, _ := resolve(t, `print this;`)
	assert.True(t, rep.HadError())
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	rep, _ := resolve(t, `
		fun f() { print super.x; }
	`)
	assert.True(t, rep.HadError())
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	rep, _ := resolve(t, `
		class A {
			method() { super.x(); }
		}
	`)
	assert.True(t, rep.HadError())
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	rep, _ := resolve(t, `class A < A {}`)
	assert.True(t, rep.HadError())
}

func TestResolve_SuperInSubclassIsAllowed(t *testing.T) {
	rep, _ := resolve(t, `
		class Base {
			greet() { print "base"; }
		}
		class Derived < Base {
			greet() { super.greet(); }
		}
	`)
	assert.False(t, rep.HadError())
}
