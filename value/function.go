/*
File    : lox/value/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
)

// Function is a user-defined function or method value: a name, its
// declaration (parameters and body), and the environment captured at
// definition time so the function can close over outer variables.
//
// Grounded on the teacher's function.Function (function/function.go),
// which carries the same four fields (Name, Params, Body, Scp); this
// port stores the closure as an untyped interface{} rather than
// *env.Environment because package env imports package value (an
// Environment stores Values) — value cannot import env back without a
// cycle. The interp package, which imports both, recovers the concrete
// *env.Environment with a type assertion when it calls the function.
type Function struct {
	Name          string
	Params        []string
	Body          []ast.Stmt
	Closure       interface{} // concrete type is *env.Environment
	IsInitializer bool
}

func (*Function) Kind() Kind      { return KindCallable }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Name) }
func (f *Function) Arity() int     { return len(f.Params) }
