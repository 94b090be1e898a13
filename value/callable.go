/*
File    : lox/value/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "fmt"

// Callable is implemented by every value that can appear as the callee
// of a Call expression: native functions, user-defined functions,
// bound methods, and classes (whose "call" constructs an instance).
type Callable interface {
	Value
	// Arity is the exact number of positional arguments this callable
	// accepts.
	Arity() int
}

// NativeFunction wraps a Go function as a Lox callable, the variant the
// built-in `clock` needs. It is grounded on the teacher's Builtin type
// (std/common.go: {Name string, Callback func}), adapted to Lox's
// closed value model (no writer/runtime parameters, since Lox has no
// stdlib beyond clock).
type NativeFunction struct {
	Name     string
	ArityN   int
	Function func(args []Value) (Value, error)
}

func (*NativeFunction) Kind() Kind { return KindCallable }
func (n *NativeFunction) String() string {
	return "<native fn>"
}
func (n *NativeFunction) Arity() int { return n.ArityN }

// Call invokes the wrapped Go function directly; native functions never
// need the interpreter (no closures, no user code to run).
func (n *NativeFunction) Call(args []Value) (Value, error) {
	return n.Function(args)
}

// ArityError formats the standard "Expected N arguments but got M."
// runtime error message, shared by the interpreter when invoking any
// Callable.
func ArityError(expected, got int) error {
	return fmt.Errorf("Expected %d arguments but got %d.", expected, got)
}
