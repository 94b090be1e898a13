/*
File    : lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"reflect"
	"testing"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/scanner"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *reporter.Reporter) {
	t.Helper()
	rep := reporter.New(nil)
	toks := scanner.New(src, rep).ScanTokens()
	stmts := New(toks, rep).Parse()
	return stmts, rep
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	stmts, rep := parse(t, `print 1 + 2 * 3;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	printStmt, ok := stmts[0].(*ast.Print)
	require.True(t, ok)

	binary, ok := printStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", string(binary.Op.Kind))

	_, ok = binary.Right.(*ast.Binary)
	assert.True(t, ok, "multiplication should bind tighter than addition")
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
	_, ok = body.Statements[1].(*ast.Expression)
	assert.True(t, ok)
}

func TestParse_AssignmentTargetRewrite(t *testing.T) {
	stmts, rep := parse(t, `a = 1; a.b = 2;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 2)

	_, ok := stmts[0].(*ast.Expression).Expression.(*ast.Assign)
	assert.True(t, ok)

	_, ok = stmts[1].(*ast.Expression).Expression.(*ast.Set)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, rep := parse(t, `1 = 2;`)
	assert.True(t, rep.HadError())
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, rep := parse(t, `class B < A { m() { return 1; } }`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "m", class.Methods[0].Name.Lexeme)
}

func TestParse_ErrorRecoverySynchronizes(t *testing.T) {
	// The first statement is broken; the parser should resynchronize
	// at the following ';' and still pick up the second statement.
	stmts, rep := parse(t, `var = ; print 1;`)
	assert.True(t, rep.HadError())

	found := false
	for _, s := range stmts {
		if p, ok := s.(*ast.Print); ok {
			found = true
			lit := p.Expression.(*ast.Literal)
			assert.Equal(t, 1.0, lit.Value)
		}
	}
	assert.True(t, found, "parser should recover and still parse the print statement")
}

// TestParse_Deterministic checks that parsing the same token stream
// twice yields structurally identical ASTs.
func TestParse_Deterministic(t *testing.T) {
	src := `class Greeter { greet(name) { print "hi " + name; } } var g = Greeter(); g.greet("world");`
	stmts1, rep1 := parse(t, src)
	stmts2, rep2 := parse(t, src)
	require.False(t, rep1.HadError())
	require.False(t, rep2.HadError())

	diff := cmp.Diff(stmts1, stmts2, cmp.Exporter(func(reflect.Type) bool { return true }))
	assert.Empty(t, diff)
}

func TestParse_ArgumentCountCapReportsButCollectsAll(t *testing.T) {
	src := "print f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	stmts, rep := parse(t, src)
	require.True(t, rep.HadError())
	require.Len(t, stmts, 1)
	call := stmts[0].(*ast.Print).Expression.(*ast.Call)
	assert.Len(t, call.Args, 256, "all arguments are parsed even past the 255 cap")
}
