/*
File    : lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs a static pass over the parsed statement
// list between parsing and evaluation: it walks every scope exactly
// once, binding each variable reference to the number of enclosing
// scopes between its use and its declaration, and reports scope-related
// static errors (self-referencing initializers, "return"/"this"/"super"
// outside their valid context, duplicate local declarations).
//
// The teacher has no equivalent pass (go-mix resolves every variable
// dynamically via scope.Scope.LookUp at eval time); this package is
// grounded directly on original_source/chapter13/Resolver.h, ported
// from its recursive-descent visitor shape into a Go type switch over
// ast.Expr/ast.Stmt, following the same tagged-union-dispatch
// convention as the parser and interpreter.
package resolver

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
)

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkInitializer
	fkMethod
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Resolver walks a statement list once, recording variable scope
// depths into the Interpreter it was built with.
type Resolver struct {
	interp          *interp.Interpreter
	report          *reporter.Reporter
	scopes          []map[string]bool
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver that will feed its results into i, reporting
// static errors through rep.
func New(i *interp.Interpreter, rep *reporter.Reporter) *Resolver {
	return &Resolver{interp: i, report: rep}
}

// Resolve walks every statement in program, in order.
func (r *Resolver) Resolve(program []ast.Stmt) {
	r.resolveStmts(program)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare marks name as present but not yet usable in the innermost
// scope, and reports a duplicate-declaration error if name is already
// declared there — a purely local-scope rule; the global scope
// permits redeclaration.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ErrorAt(name.Line, name.Lexeme, false, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, resolving
// expr to the distance at which name is found; an unresolved name falls
// through untouched, meaning the interpreter will treat it as global.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fkFunction)
	case *ast.Expression:
		r.resolveExpr(s.Expression)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.Return:
		if r.currentFunction == fkNone {
			r.report.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fkInitializer {
				r.report.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Class:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement")
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = ckClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.report.ErrorAt(s.Superclass.Name.Line, s.Superclass.Name.Lexeme, false, "A class can't inherit from itself.")
		}
		r.currentClass = ckSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, m := range s.Methods {
		kind := fkMethod
		if m.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(m, kind)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.report.ErrorAt(e.Name.Line, e.Name.Lexeme, false, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// No subexpressions and no variable to bind.
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.This:
		if r.currentClass == ckNone {
			r.report.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Super:
		switch r.currentClass {
		case ckNone:
			r.report.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'super' outside of a class.")
		case ckClass:
			r.report.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic("resolver: unhandled expression")
	}
}
