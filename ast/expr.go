/*
File    : lox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the expression and statement node types produced
// by the parser and walked by the resolver and interpreter.
//
// Each node is a plain struct implementing a small marker interface
// (Expr or Stmt); dispatch is by type switch in the consuming passes
// rather than by a Visitor/Accept pair. A visitor would work around
// Go's lack of single dispatch on a sum type, which Go doesn't need: a
// type switch over the node's dynamic type is the idiomatic substitute.
//
// Every node is heap-allocated and referenced by pointer, so a node's
// pointer value is its stable identity; the resolver's scope-depth
// table is keyed on that pointer (see resolver.Resolver and
// interp.Interpreter.locals).
package ast

import "github.com/akashmaji946/lox/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Assign is "name = value" — assignment to an existing variable.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Binary is "left op right" for arithmetic, comparison and equality.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Call is "callee(args...)".
type Call struct {
	Callee Expr
	Paren  token.Token // the closing ')', attributed on an arity error
	Args   []Expr
}

// Get is "object.name" — property/method access on a class instance.
type Get struct {
	Object Expr
	Name   token.Token
}

// Grouping is a parenthesized sub-expression, kept as its own node so
// that printers/debuggers can tell it apart from its inner expression.
type Grouping struct {
	Expression Expr
}

// Literal is a compile-time constant: nil, a boolean, a number, or a
// string, carried as the already-typed Go value (float64, string,
// bool, or nil).
type Literal struct {
	Value interface{}
}

// Logical is "left and right" / "left or right"; unlike Binary it
// short-circuits (§4.5).
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Set is "object.name = value" — field assignment on a class instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// Super is "super.method" inside a subclass method body.
type Super struct {
	Keyword token.Token // the 'super' token, for its line/identity
	Method  token.Token
}

// This is the 'this' keyword inside a method body.
type This struct {
	Keyword token.Token
}

// Unary is "!right" or "-right".
type Unary struct {
	Op    token.Token
	Right Expr
}

// Variable is a bare identifier used as an expression, read at
// evaluation time via the resolver's depth table or the global scope.
type Variable struct {
	Name token.Token
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}
