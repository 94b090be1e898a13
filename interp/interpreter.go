/*
File    : lox/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking evaluator: it executes the
// statement list a parser.Parser produced, using the resolver's
// per-expression scope-depth table to resolve variable references in
// O(1) instead of a dynamic environment walk.
//
// Grounded on the teacher's eval package (eval/eval.go), which walks
// ast nodes with a big type switch over an Evaluator holding the
// current *scope.Scope; this port replaces eval's enum-tagged
// expression representation with ast's tagged-union node types, adds
// the locals side-table the teacher's interpreter has no equivalent
// for (go-mix has no variable resolution pass), and adds class/this/
// super/return-unwind handling entirely new to this domain.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/env"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
	"github.com/akashmaji946/lox/value"
)

// runtimeError is a Lox runtime error: a message plus the source line
// it was raised from, matching the teacher's pattern of carrying a
// line number alongside every reported failure (reporter.RuntimeError).
type runtimeError struct {
	line    int
	message string
}

func (e *runtimeError) Error() string { return e.message }

func newRuntimeError(line int, format string, args ...interface{}) *runtimeError {
	return &runtimeError{line: line, message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack back to the enclosing
// Function call when a Lox "return" statement executes. It is not a
// user-facing error; it is raised with panic like a runtime error, but
// callFunction recovers it specifically and never lets it escape to the
// top level, since it is expected control flow rather than a failure.
type returnSignal struct {
	value value.Value
}

// Interpreter walks a resolved statement list and produces side
// effects (print, field mutation).
type Interpreter struct {
	Globals *env.Environment
	env     *env.Environment
	locals  map[ast.Expr]int
	report  *reporter.Reporter
	stdout  io.Writer
}

// New creates an Interpreter with a fresh global environment seeded
// with the "clock" native function. Diagnostics go through rep; the
// output of "print" statements is written to stdout, kept separate so
// a caller running a script can send errors and program output to
// different destinations.
func New(rep *reporter.Reporter, stdout io.Writer) *Interpreter {
	globals := env.New(nil)
	i := &Interpreter{Globals: globals, env: globals, locals: make(map[ast.Expr]int), report: rep, stdout: stdout}
	i.defineNatives()
	return i
}

func (i *Interpreter) defineNatives() {
	i.Globals.Define("clock", &value.NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Function: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// Resolve records that expr, wherever it is evaluated, should read or
// assign its variable exactly depth enclosing scopes up from the
// environment active at evaluation time. Called by resolver.Resolver
// once per resolved Variable/Assign/This/Super node.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.locals[expr] = depth
}

// Interpret executes a resolved program's statements, reporting and
// stopping on the first runtime error.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*runtimeError); ok {
				i.report.RuntimeError(rerr.line, rerr.message)
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range statements {
		i.execute(stmt)
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		i.evaluate(s.Expression)
	case *ast.Print:
		v := i.evaluate(s.Expression)
		fmt.Fprintln(i.stdout, v.String())
	case *ast.Var:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			v = i.evaluate(s.Initializer)
		}
		i.env.Define(s.Name.Lexeme, v)
	case *ast.Block:
		i.executeBlock(s.Statements, env.New(i.env))
	case *ast.If:
		if value.Truthy(i.evaluate(s.Condition)) {
			i.execute(s.Then)
		} else if s.Else != nil {
			i.execute(s.Else)
		}
	case *ast.While:
		for value.Truthy(i.evaluate(s.Condition)) {
			i.execute(s.Body)
		}
	case *ast.Function:
		fn := &value.Function{Name: s.Name.Lexeme, Params: tokenLexemes(s.Params), Body: s.Body, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
	case *ast.Return:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			v = i.evaluate(s.Value)
		}
		panic(returnSignal{value: v})
	case *ast.Class:
		i.executeClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement %T", stmt))
	}
}

func tokenLexemes(toks []token.Token) []string {
	names := make([]string, len(toks))
	for idx, t := range toks {
		names[idx] = t.Lexeme
	}
	return names
}

func (i *Interpreter) executeClass(s *ast.Class) {
	var superclass *value.Class
	if s.Superclass != nil {
		sv := i.evaluate(s.Superclass)
		sc, ok := sv.(*value.Class)
		if !ok {
			panic(newRuntimeError(s.Superclass.Name.Line, "Superclass must be a class."))
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, value.Nil{})

	classEnv := i.env
	if superclass != nil {
		classEnv = env.New(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*value.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Name:          m.Name.Lexeme,
			Params:        tokenLexemes(m.Params),
			Body:          m.Body,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &value.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	// classEnv is only a fresh child when there's a superclass; the
	// class name binding itself always lives in the scope that
	// declared it, so Assign (not Define) on i.env is correct either way.
	i.env.Assign(s.Name.Lexeme, class)
}

// executeBlock runs statements in child, then restores the previously
// active environment — including when a return/runtime-error panic
// unwinds through it, matching the teacher's defer-based restoration
// idiom (repl.executeWithRecovery) generalized to scope restoration.
func (i *Interpreter) executeBlock(statements []ast.Stmt, child *env.Environment) {
	previous := i.env
	i.env = child
	defer func() { i.env = previous }()
	for _, stmt := range statements {
		i.execute(stmt)
	}
}

func (i *Interpreter) evaluate(expr ast.Expr) value.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value)
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression %T", expr))
	}
}

func literalValue(v interface{}) value.Value {
	switch vv := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Boolean(vv)
	case float64:
		return value.Number(vv)
	case string:
		return value.String(vv)
	default:
		panic(fmt.Sprintf("interp: unhandled literal type %T", v))
	}
}

// lookUpVariable resolves name either via the depth table (locals,
// populated by the resolver) or, on a table miss, via the global
// environment directly — the same two-tier lookup as the original
// interpreter's Interpreter::lookUpVariable, needed because top-level
// declarations are never resolved to a fixed depth.
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) value.Value {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme)
	}
	v, err := i.Globals.Get(name.Lexeme)
	if err != nil {
		panic(newRuntimeError(name.Line, "%s", err.Error()))
	}
	return v
}

func (i *Interpreter) evalUnary(e *ast.Unary) value.Value {
	right := i.evaluate(e.Right)
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			panic(newRuntimeError(e.Op.Line, "Operand must be a number."))
		}
		return -n
	case token.BANG:
		return value.Boolean(!value.Truthy(right))
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", e.Op.Kind))
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) value.Value {
	left := i.evaluate(e.Left)
	if e.Op.Kind == token.OR {
		if value.Truthy(left) {
			return left
		}
	} else {
		if !value.Truthy(left) {
			return left
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) numberOperands(op token.Token, left, right value.Value) (value.Number, value.Number) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		panic(newRuntimeError(op.Line, "Operands must be numbers."))
	}
	return l, r
}

func (i *Interpreter) evalBinary(e *ast.Binary) value.Value {
	left := i.evaluate(e.Left)
	right := i.evaluate(e.Right)

	switch e.Op.Kind {
	case token.MINUS:
		l, r := i.numberOperands(e.Op, left, right)
		return l - r
	case token.SLASH:
		l, r := i.numberOperands(e.Op, left, right)
		return l / r
	case token.STAR:
		l, r := i.numberOperands(e.Op, left, right)
		return l * r
	case token.PLUS:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return ls + rs
			}
		}
		panic(newRuntimeError(e.Op.Line, "Operands must be two numbers or two strings."))
	case token.GREATER:
		l, r := i.numberOperands(e.Op, left, right)
		return value.Boolean(l > r)
	case token.GREATER_EQUAL:
		l, r := i.numberOperands(e.Op, left, right)
		return value.Boolean(l >= r)
	case token.LESS:
		l, r := i.numberOperands(e.Op, left, right)
		return value.Boolean(l < r)
	case token.LESS_EQUAL:
		l, r := i.numberOperands(e.Op, left, right)
		return value.Boolean(l <= r)
	case token.BANG_EQUAL:
		return value.Boolean(!value.Equal(left, right))
	case token.EQUAL_EQUAL:
		return value.Boolean(value.Equal(left, right))
	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %s", e.Op.Kind))
	}
}

func (i *Interpreter) evalAssign(e *ast.Assign) value.Value {
	v := i.evaluate(e.Value)
	if distance, ok := i.locals[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, v)
		return v
	}
	if err := i.Globals.Assign(e.Name.Lexeme, v); err != nil {
		panic(newRuntimeError(e.Name.Line, "%s", err.Error()))
	}
	return v
}

func (i *Interpreter) evalCall(e *ast.Call) value.Value {
	callee := i.evaluate(e.Callee)
	args := make([]value.Value, len(e.Args))
	for idx, a := range e.Args {
		args[idx] = i.evaluate(a)
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		panic(newRuntimeError(e.Paren.Line, "Can only call functions and classes."))
	}
	if len(args) != callable.Arity() {
		panic(newRuntimeError(e.Paren.Line, "%s", value.ArityError(callable.Arity(), len(args)).Error()))
	}

	switch c := callable.(type) {
	case *value.NativeFunction:
		v, err := c.Call(args)
		if err != nil {
			panic(newRuntimeError(e.Paren.Line, "%s", err.Error()))
		}
		return v
	case *value.Function:
		return i.callFunction(c, args)
	case *value.Class:
		instance := value.NewInstance(c)
		if init, ok := c.FindMethod("init"); ok {
			i.callFunction(bindMethod(init, instance), args)
		}
		return instance
	default:
		panic(fmt.Sprintf("interp: unhandled callable %T", callable))
	}
}

// bindMethod returns a copy of method whose closure is a fresh
// environment, enclosed by the method's original closure, with "this"
// bound to instance — the same binding trick as the original
// interpreter's LoxFunction::bind.
func bindMethod(method *value.Function, instance *value.Instance) *value.Function {
	enclosing, _ := method.Closure.(*env.Environment)
	bound := env.New(enclosing)
	bound.Define("this", instance)
	return &value.Function{
		Name:          method.Name,
		Params:        method.Params,
		Body:          method.Body,
		Closure:       bound,
		IsInitializer: method.IsInitializer,
	}
}

// callFunction invokes a user-defined Function: binds parameters in a
// fresh environment enclosed by its captured closure, executes its
// body, and recovers a returnSignal panic to produce the function's
// result.
func (i *Interpreter) callFunction(fn *value.Function, args []value.Value) (result value.Value) {
	closure, _ := fn.Closure.(*env.Environment)
	callEnv := env.New(closure)
	for idx, param := range fn.Params {
		callEnv.Define(param, args[idx])
	}

	result = value.Nil{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				if ret, ok := r.(returnSignal); ok {
					result = ret.value
					return
				}
				panic(r)
			}
		}()
		i.executeBlock(fn.Body, callEnv)
	}()

	if fn.IsInitializer {
		return closure.GetAt(0, "this")
	}
	return result
}

func (i *Interpreter) evalGet(e *ast.Get) value.Value {
	obj := i.evaluate(e.Object)
	instance, ok := obj.(*value.Instance)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Only instances have properties."))
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme))
	}
	if method, ok := v.(*value.Function); ok {
		if _, isMethod := instance.Class.FindMethod(e.Name.Lexeme); isMethod {
			return bindMethod(method, instance)
		}
	}
	return v
}

func (i *Interpreter) evalSet(e *ast.Set) value.Value {
	obj := i.evaluate(e.Object)
	instance, ok := obj.(*value.Instance)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Only instances have fields."))
	}
	v := i.evaluate(e.Value)
	instance.Set(e.Name.Lexeme, v)
	return v
}

// evalSuper resolves "super.method" by looking the method up starting
// at the superclass bound at class-declaration time, then binds it to
// the "this" bound one scope nearer than "super", matching the original
// interpreter's Interpreter::visitSuperExpr.
func (i *Interpreter) evalSuper(e *ast.Super) value.Value {
	distance := i.locals[e]
	superclass := i.env.GetAt(distance, "super").(*value.Class)
	instance := i.env.GetAt(distance-1, "this").(*value.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme))
	}
	return bindMethod(method, instance)
}
