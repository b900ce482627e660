package zug

import (
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"
)

// Noop accepts any arguments, ignores them, and produces nothing.
var Noop = Named("noop", func(...any) {})

// Identity returns its argument unchanged.  When the argument is a
// pointer, map, slice, channel, or func, the result aliases the
// original.
var Identity = Named("identity", func(v any) any { return v })

// IdentityByValue returns a value equal to its argument that shares no
// mutable state with it: maps, slices, and pointed-to values are deep
// copied.
var IdentityByValue = Named("identityByValue", func(v any) any { return deepcopy.Copy(v) })

// Constant is a callable that ignores its arguments and produces a
// stored value.  What happens to the stored value depends on the access
// mode of the composition invoking it: shared and mut access return it,
// once access gives it away and leaves the Constant holding the zero
// value of its type.
//
// A Constant on its own is also a function object: it implements
// Caller, MutCaller, and OnceCaller with no inputs and one output.
// Inside a composition it additionally swallows whatever arguments
// arrive.
type Constant struct {
	thinCallerArgs
	value reflect.Value
}

var (
	_ Caller     = &Constant{}
	_ MutCaller  = &Constant{}
	_ OnceCaller = &Constant{}
)

// Constantly makes a Constant producing value.  The value's dynamic
// type becomes the constant's output type; Constantly(nil) produces an
// untyped nil.
func Constantly(value any) *Constant {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		v = reflect.Zero(anyType)
	}
	return &Constant{
		thinCallerArgs: thinCallerArgs{outputs: []reflect.Type{v.Type()}},
		value:          v,
	}
}

// Call produces the stored value.
func (c *Constant) Call(_ []reflect.Value) []reflect.Value {
	return []reflect.Value{c.value}
}

// CallMut produces the stored value.
func (c *Constant) CallMut(in []reflect.Value) []reflect.Value {
	return c.Call(in)
}

// CallOnce gives the stored value away, leaving the Constant holding
// the zero value of its type.
func (c *Constant) CallOnce(_ []reflect.Value) []reflect.Value {
	v := c.value
	c.value = reflect.Zero(c.outputs[0])
	return []reflect.Value{v}
}

// Value returns the stored value.
func (c *Constant) Value() any {
	return c.value.Interface()
}

// Set replaces the stored value.  The new value must be assignable to
// the constant's original output type.
func (c *Constant) Set(value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		v = reflect.Zero(c.outputs[0])
	}
	if !v.Type().AssignableTo(c.outputs[0]) {
		return fmt.Errorf("constantly: %s is not assignable to %s", v.Type(), c.outputs[0])
	}
	c.value = v
	return nil
}

func (c *Constant) String() string {
	return fmt.Sprintf("constantly(%v)", c.value)
}

// characterizeConstant relaxes the constant's declared signature inside
// compositions: any arguments that arrive are discarded.
func characterizeConstant(em *element) {
	c := em.fn.(*Constant)
	em.kind = constantKind
	if len(c.outputs) != 1 || !c.value.IsValid() {
		em.err = em.errorf("constant must be made by Constantly")
		return
	}
	em.out = []reflect.Type{c.outputs[0]}
	em.invokers = [numAccessModes]callFunc{
		wrapCall(c.Call),
		wrapCall(c.CallMut),
		wrapCall(c.CallOnce),
	}
	em.requires = AccessShared
}
