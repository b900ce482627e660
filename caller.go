package zug

import "reflect"

// CallerArgs is the part of a function object that defines its inputs
// and outputs.
type CallerArgs interface {
	In(i int) reflect.Type
	NumIn() int
	Out(i int) reflect.Type
	NumOut() int
}

// Caller is a function object: a value that a composition can invoke
// even though it is not a func.  Call must not modify state retained by
// the object; objects that only implement Caller are usable under every
// access mode.
type Caller interface {
	CallerArgs
	Call(in []reflect.Value) []reflect.Value
}

// MutCaller is a function object that may modify its retained state
// when invoked.  Compositions called with mut or once access use
// CallMut when it is available.  A MutCaller that does not also
// implement Caller cannot be part of a composition called with shared
// access.
type MutCaller interface {
	CallerArgs
	CallMut(in []reflect.Value) []reflect.Value
}

// OnceCaller is a function object that may give its retained state away
// when invoked.  CallOnce is used only when the composition itself is
// called with once access.  An OnceCaller that implements neither
// Caller nor MutCaller can only be invoked by CallOnce.
type OnceCaller interface {
	CallerArgs
	CallOnce(in []reflect.Value) []reflect.Value
}

// MakeCaller creates a Caller from a function that takes and returns
// reflect.Value.  The inputs and outputs slices declare its signature.
func MakeCaller(inputs, outputs []reflect.Type, function func([]reflect.Value) []reflect.Value) Caller {
	return thinCaller{
		thinCallerArgs: thinCallerArgs{
			inputs:  inputs,
			outputs: outputs,
		},
		fun: function,
	}
}

// MakeMutCaller is like MakeCaller except that the function is allowed
// to modify state it has captured.
func MakeMutCaller(inputs, outputs []reflect.Type, function func([]reflect.Value) []reflect.Value) MutCaller {
	return thinMutCaller{
		thinCallerArgs: thinCallerArgs{
			inputs:  inputs,
			outputs: outputs,
		},
		fun: function,
	}
}

// MakeOnceCaller is like MakeCaller except that the function is allowed
// to give captured state away.  The result can only be invoked by a
// composition called with once access.
func MakeOnceCaller(inputs, outputs []reflect.Type, function func([]reflect.Value) []reflect.Value) OnceCaller {
	return thinOnceCaller{
		thinCallerArgs: thinCallerArgs{
			inputs:  inputs,
			outputs: outputs,
		},
		fun: function,
	}
}

type thinCallerArgs struct {
	inputs  []reflect.Type
	outputs []reflect.Type
}

func (a thinCallerArgs) In(i int) reflect.Type  { return a.inputs[i] }
func (a thinCallerArgs) NumIn() int             { return len(a.inputs) }
func (a thinCallerArgs) Out(i int) reflect.Type { return a.outputs[i] }
func (a thinCallerArgs) NumOut() int            { return len(a.outputs) }

type thinCaller struct {
	thinCallerArgs
	fun func([]reflect.Value) []reflect.Value
}

var _ Caller = thinCaller{}

func (c thinCaller) Call(in []reflect.Value) []reflect.Value { return c.fun(in) }

type thinMutCaller struct {
	thinCallerArgs
	fun func([]reflect.Value) []reflect.Value
}

var _ MutCaller = thinMutCaller{}

func (c thinMutCaller) CallMut(in []reflect.Value) []reflect.Value { return c.fun(in) }

type thinOnceCaller struct {
	thinCallerArgs
	fun func([]reflect.Value) []reflect.Value
}

var _ OnceCaller = thinOnceCaller{}

func (c thinOnceCaller) CallOnce(in []reflect.Value) []reflect.Value { return c.fun(in) }
