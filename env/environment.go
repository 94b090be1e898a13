/*
File    : lox/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements Lox's lexical scope chain: a chain of
// name->value maps, each pointing at its enclosing parent, supporting
// both the general walk-up lookup used for globals and the
// depth-indexed access the resolver makes possible for locals.
//
// Grounded on the teacher's scope.Scope (scope/scope.go), which has the
// same {Variables, Parent} shape and the same LookUp/Assign walk-up
// pair; this port drops scope.Scope's Consts/LetVars/LetTypes
// bookkeeping (Lox has one declaration form, "var", with no const/let
// distinction) and adds Ancestor/GetAt/AssignAt for the resolver's
// depth table to use.
package env

import (
	"fmt"

	"github.com/akashmaji946/lox/value"
)

// Environment is one lexical scope: its own bindings plus a link to
// the enclosing scope, or nil for the global scope.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates an Environment enclosed by parent, or a global
// Environment when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: parent}
}

// Define binds name in this environment unconditionally, overwriting
// any existing binding — Lox permits redeclaration at global scope,
// and the resolver already rejects same-scope redeclaration locally.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name in this environment, falling back to the
// enclosing chain, and reports an undefined-variable runtime error on
// ultimate miss.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign mutates an existing binding in place, walking the enclosing
// chain the same way Get does; it never implicitly declares.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Ancestor follows enclosing exactly distance times. The resolver
// guarantees distance never exceeds the number of live enclosing
// scopes at the call site; like the original interpreter's
// Environment::ancestor, this does not defend against a resolver bug;
// a nil dereference here means that invariant broke.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance hops up the
// chain, bypassing the general walk.
func (e *Environment) GetAt(distance int, name string) value.Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt mutates name directly in the environment distance hops up
// the chain.
func (e *Environment) AssignAt(distance int, name string, v value.Value) {
	e.Ancestor(distance).values[name] = v
}
