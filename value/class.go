/*
File    : lox/value/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "fmt"

// Class is a Lox class value: its name, optional superclass (for
// single inheritance) and method table. Grounded on the teacher's
// GoMixStruct (objects/struct.go), which pairs a Name with a
// name->method map and a FindMethod-equivalent lookup; this port adds
// a Superclass pointer and chains FindMethod up it, since go-mix's
// structs have no inheritance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Kind() Kind      { return KindCallable }
func (c *Class) String() string { return c.Name }

// Arity is the initializer's arity, or 0 if the class declares no
// "init" method.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name in this class's own method table, then
// walks the superclass chain, matching the teacher's GoMixStruct.GetMethod
// generalized to single inheritance (and original_source's
// LoxClass::findMethod, which is the same linear walk).
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a live instance of a Class: its fields, plus a back
// reference to the class for method resolution. Grounded on the
// teacher's GoMixObjectInstance (objects/struct.go).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates a zero-field instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]Value)}
}

func (*Instance) Kind() Kind      { return KindCallable }
func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get looks up a property: fields take priority over methods. The
// caller is responsible for binding a method
// result to this instance before handing it back to user code — that
// requires constructing a fresh closure environment, which only the
// interp package (which owns *env.Environment) can do.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m, true
	}
	return nil, false
}

// Set assigns a field unconditionally; Lox instances are open — any
// field name may be introduced by assignment. An error is raised only
// when the assignment target isn't an instance at all, not when the
// field is new.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
