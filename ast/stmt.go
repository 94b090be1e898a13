/*
File    : lox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Block is "{ stmts... }"; it opens a fresh lexical scope.
type Block struct {
	Statements []Stmt
}

// Class is a class declaration, with an optional superclass expression
// (always a Variable, resolved and type-checked at runtime) and its
// method table.
type Class struct {
	Name       token.Token
	Superclass *Variable // nil when the class has no "< Base" clause
	Methods    []*Function
}

// Expression is a bare expression evaluated for its side effects.
type Expression struct {
	Expression Expr
}

// Function is a function or method declaration: "fun name(params) { body }".
// The same node type represents top-level functions and class methods;
// whether a given Function is a plain function, a method, or an
// initializer is tracked by the resolver's function-kind context, not
// on the node itself.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// If is "if (cond) then else else-branch", with Else nil when absent.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// Print is "print expr;".
type Print struct {
	Expression Expr
}

// Return is "return expr?;", with Value nil for a bare "return;".
type Return struct {
	Keyword token.Token
	Value   Expr
}

// Var is "var name = initializer?;", with Initializer nil for a bare
// "var name;" (implicitly nil-initialized).
type Var struct {
	Name        token.Token
	Initializer Expr
}

// While is "while (cond) body". The parser desugars "for" into this
// node wrapped in Blocks; see parser.Parser.forStatement.
type While struct {
	Condition Expr
	Body      Stmt
}

func (*Block) stmtNode()      {}
func (*Class) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*Function) stmtNode()   {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Var) stmtNode()        {}
func (*While) stmtNode()      {}
