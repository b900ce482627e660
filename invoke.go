package zug

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/muir/reflectutils"
)

// Call invokes the composition with shared access: no constituent may
// modify its retained state.  Compositions may be Called concurrently.
//
// The last callable receives args; every other callable receives the
// results of the one to its right; the first callable's results are
// returned.  Arguments and results travel as interface values, so a nil
// arg becomes the zero value of the parameter it lands in.
func (c *Composed) Call(args ...any) ([]any, error) {
	return c.call(AccessShared, args)
}

// CallMut invokes the composition with exclusive access: stateful
// constituents may modify their retained state.  The caller must
// serialize CallMut with all other use of the composition.
func (c *Composed) CallMut(args ...any) ([]any, error) {
	return c.call(AccessMut, args)
}

// CallOnce invokes the composition with consuming access: constituents
// may give their retained state away.  The composition is spent
// afterwards and all further calls return ErrConsumed.
func (c *Composed) CallOnce(args ...any) ([]any, error) {
	return c.call(AccessOnce, args)
}

func (c *Composed) call(access Access, args []any) ([]any, error) {
	if atomic.LoadUint32(&c.consumed) != 0 {
		return nil, ErrConsumed
	}
	if err := c.validate(access); err != nil {
		return nil, err
	}
	if access == AccessOnce && !atomic.CompareAndSwapUint32(&c.consumed, 0, 1) {
		return nil, ErrConsumed
	}
	out, err := c.fold(access, valuesOf(args))
	if err != nil {
		return nil, err
	}
	return interfacesOf(out), nil
}

// validate rejects a call before any constituent has run: carried
// characterization failures come back first, then access-mode
// violations such as invoking an OnceCaller with shared access.
func (c *Composed) validate(access Access) error {
	if len(c.elements) == 0 {
		return errors.New("composition has no callables")
	}
	for _, em := range c.elements {
		if em.err != nil {
			return em.err
		}
		if em.requires > access {
			return em.errorf("requires %s access, composition called with %s access", em.requires, access)
		}
	}
	return nil
}

func (c *Composed) fold(access Access, args []reflect.Value) ([]reflect.Value, error) {
	for i := len(c.elements) - 1; i >= 0; i-- {
		em := c.elements[i]
		in, err := em.prepareArgs(args)
		if err != nil {
			return nil, err
		}
		if traceEnabled() {
			traceCall("fold step", "element", em.String(), "access", access, "args", len(in))
		}
		args, err = em.invokers[access](in)
		if err != nil {
			return nil, err
		}
	}
	return args, nil
}

// steps precompiles the fold for one access mode: one step per element,
// rightmost first.  Used by Bind and Condense so that bound functions
// skip per-call validation.
func (c *Composed) steps(access Access) []callFunc {
	steps := make([]callFunc, 0, len(c.elements))
	for i := len(c.elements) - 1; i >= 0; i-- {
		em := c.elements[i]
		invoke := em.invokers[access]
		steps = append(steps, func(in []reflect.Value) ([]reflect.Value, error) {
			prepared, err := em.prepareArgs(in)
			if err != nil {
				return nil, err
			}
			return invoke(prepared)
		})
	}
	return steps
}

// Invoke calls a single callable with the given arguments, resolving
// how to call it the same way compositions do.  It uses mut access:
// stateful callables may update themselves but nothing is consumed.
// Compositions passed to Invoke are delegated to CallMut.
func Invoke(fn any, args ...any) ([]any, error) {
	var em *element
	switch v := fn.(type) {
	case *Composed:
		return v.CallMut(args...)
	case *element:
		em = v
	default:
		em = newElement(fn, -1, "invoke")
	}
	if em.err != nil {
		return nil, em.err
	}
	if em.requires > AccessMut {
		return nil, em.errorf("requires %s access", em.requires)
	}
	in, err := em.prepareArgs(valuesOf(args))
	if err != nil {
		return nil, err
	}
	out, err := em.invokers[AccessMut](in)
	if err != nil {
		return nil, err
	}
	return interfacesOf(out), nil
}

// prepareArgs checks args against the element's declared inputs and
// widens what it can.  Elements without a declared signature validate
// their arguments themselves.
func (em *element) prepareArgs(args []reflect.Value) ([]reflect.Value, error) {
	if em.in == nil {
		return args, nil
	}
	prepared, err := widenArgs(args, em.in, em.variadic)
	if err != nil {
		return nil, em.errorf("%s", err)
	}
	return prepared, nil
}

// widenArgs checks values against the want types and converts what it
// can: untyped nils become zero values and interface values are
// unwrapped when their dynamic type fits.
func widenArgs(args []reflect.Value, want []reflect.Type, variadic bool) ([]reflect.Value, error) {
	if variadic {
		if len(args) < len(want)-1 {
			return nil, fmt.Errorf("wants at least %d arguments, got %d", len(want)-1, len(args))
		}
	} else if len(args) != len(want) {
		return nil, fmt.Errorf("wants %d arguments, got %d", len(want), len(args))
	}
	prepared := make([]reflect.Value, len(args))
	for i, arg := range args {
		var w reflect.Type
		if variadic && i >= len(want)-1 {
			w = want[len(want)-1].Elem()
		} else {
			w = want[i]
		}
		switch {
		case !arg.IsValid():
			prepared[i] = reflect.Zero(w)
		case arg.Type().AssignableTo(w):
			prepared[i] = arg
		case arg.Kind() == reflect.Interface && !arg.IsNil() && arg.Elem().Type().AssignableTo(w):
			prepared[i] = arg.Elem()
		default:
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s",
				i, reflectutils.TypeName(arg.Type()), reflectutils.TypeName(w))
		}
	}
	return prepared, nil
}

func valuesOf(args []any) []reflect.Value {
	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		values[i] = reflect.ValueOf(arg)
	}
	return values
}

func interfacesOf(values []reflect.Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if !v.IsValid() {
			continue
		}
		out[i] = v.Interface()
	}
	return out
}
