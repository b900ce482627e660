package zug

import (
	"errors"
	"fmt"
	"reflect"
)

// Bind validates the composition against invokeFunc's signature and
// fills *invokeFunc with a function that runs the composition with
// shared access.  invokeFunc must be a non-nil pointer to a non-variadic
// function variable.
//
// Everything statically provable is checked here, once, so the bound
// function carries no error return and no per-call validation beyond
// argument widening.  Edges that cannot be settled at bind time
// (interface-typed outputs, Method dispatchers) are resolved per call;
// if one fails anyway, the bound function panics with an error that
// DetailedError can expand.
func (c *Composed) Bind(invokeFunc any) error {
	if c == nil {
		return errors.New("bind: nil composition")
	}
	if invokeFunc == nil {
		return errors.New("bind: nil function pointer")
	}
	ptr := reflect.ValueOf(invokeFunc)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Func {
		return fmt.Errorf("bind: must be called with a pointer to a function, got %T", invokeFunc)
	}
	funcType := ptr.Elem().Type()
	if funcType.IsVariadic() {
		return errors.New("bind: variadic bind targets are not supported")
	}
	if err := c.check(AccessShared, typesIn(funcType), true); err != nil {
		return err
	}
	leftmost := c.elements[0]
	if leftmost.out != nil {
		if len(leftmost.out) != funcType.NumOut() {
			return &compositionError{
				err:     leftmost.errorf("produces %d values, bound function returns %d", len(leftmost.out), funcType.NumOut()),
				details: c.String(),
			}
		}
		for j, have := range leftmost.out {
			want := funcType.Out(j)
			if have.AssignableTo(want) || have.Kind() == reflect.Interface {
				continue
			}
			return &compositionError{
				err:     leftmost.errorf("result %d: %s does not flow into %s", j, have, want),
				details: c.String(),
			}
		}
	}
	steps := c.steps(AccessShared)
	outTypes := typesOut(funcType)
	details := c.String()
	ptr.Elem().Set(reflect.MakeFunc(funcType, func(in []reflect.Value) []reflect.Value {
		return widenResults(runSteps(steps, in, details), outTypes, details)
	}))
	if traceEnabled() {
		trace("bound", "composition", c.name, "size", len(c.elements), "invoke", funcType.String())
	}
	return nil
}

// MustBind is Bind but panics on error.
func (c *Composed) MustBind(invokeFunc any) {
	if err := c.Bind(invokeFunc); err != nil {
		panic(err)
	}
}

// Condense turns the whole composition into a single Caller function
// object.  Unlike the composition itself, the result is opaque:
// composing it does not splice its callables into the surrounding
// composition.  The composition's entry and exit types must be
// statically known, so a Method dispatcher cannot sit at either end.
func (c *Composed) Condense() (Caller, error) {
	if c == nil {
		return nil, errors.New("condense: nil composition")
	}
	if len(c.elements) == 0 {
		return nil, &compositionError{err: errors.New("composition has no callables"), details: c.String()}
	}
	entry := c.elements[len(c.elements)-1]
	entryIn := entry.in
	if entryIn == nil && entry.kind == constantKind {
		entryIn = []reflect.Type{}
	}
	if entryIn == nil || entry.variadic {
		return nil, &compositionError{
			err:     entry.errorf("condense needs a statically known, non-variadic entry"),
			details: c.String(),
		}
	}
	exit := c.elements[0]
	if exit.out == nil {
		return nil, &compositionError{
			err:     exit.errorf("condense needs statically known results"),
			details: c.String(),
		}
	}
	if err := c.check(AccessShared, entryIn, true); err != nil {
		return nil, err
	}
	steps := c.steps(AccessShared)
	outTypes := exit.out
	details := c.String()
	return MakeCaller(entryIn, outTypes, func(in []reflect.Value) []reflect.Value {
		return widenResults(runSteps(steps, in, details), outTypes, details)
	}), nil
}

func runSteps(steps []callFunc, in []reflect.Value, details string) []reflect.Value {
	args := in
	var err error
	for _, step := range steps {
		args, err = step(args)
		if err != nil {
			panic(&compositionError{err: err, details: details})
		}
	}
	return args
}

// widenResults reshapes fold results to exactly the declared output
// types.  Mismatches can only arise past an edge that bind-time
// checking had to leave to call time.
func widenResults(results []reflect.Value, outTypes []reflect.Type, details string) []reflect.Value {
	if len(results) != len(outTypes) {
		panic(&compositionError{
			err:     fmt.Errorf("composition produced %d values, %d are expected", len(results), len(outTypes)),
			details: details,
		})
	}
	out := make([]reflect.Value, len(results))
	for j, v := range results {
		want := outTypes[j]
		switch {
		case !v.IsValid():
			out[j] = reflect.Zero(want)
		case v.Type().AssignableTo(want):
			out[j] = v.Convert(want)
		case v.Kind() == reflect.Interface && !v.IsNil() && v.Elem().Type().AssignableTo(want):
			out[j] = v.Elem().Convert(want)
		default:
			panic(&compositionError{
				err:     fmt.Errorf("result %d: %s is not assignable to %s", j, v.Type(), want),
				details: details,
			})
		}
	}
	return out
}
