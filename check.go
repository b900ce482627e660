package zug

import (
	"errors"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/muir/reflectutils"
)

// Check verifies a composition without calling anything: every
// constituent must support the access mode, and each constituent's
// outputs must flow into the inputs of the constituent to its left.
// When argTypes are given they are checked against the last
// constituent's inputs; with no argTypes the entry edge is skipped.
//
// Edges involving interface-typed outputs cannot be settled statically
// since the dynamic type may satisfy anything; they are left to call
// time, as is everything to the left of a constituent whose signature
// is unknown (a Method dispatcher).
//
// All problems found are reported, not just the first.
func (c *Composed) Check(access Access, argTypes ...reflect.Type) error {
	return c.check(access, argTypes, len(argTypes) > 0)
}

func (c *Composed) check(access Access, argTypes []reflect.Type, entryKnown bool) error {
	var result *multierror.Error
	if len(c.elements) == 0 {
		result = multierror.Append(result, errors.New("composition has no callables"))
		return &compositionError{err: result.ErrorOrNil(), details: c.String()}
	}
	types, known := argTypes, entryKnown
	for i := len(c.elements) - 1; i >= 0; i-- {
		em := c.elements[i]
		if em.err != nil {
			result = multierror.Append(result, em.err)
			types, known = nil, false
			continue
		}
		if em.requires > access {
			result = multierror.Append(result, em.errorf(
				"requires %s access, composition checked with %s access", em.requires, access))
		}
		if known && em.in != nil {
			result = multierror.Append(result, em.checkArgTypes(types)...)
		}
		if em.out != nil {
			types, known = em.out, true
		} else {
			types, known = nil, false
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return &compositionError{err: err, details: c.String()}
	}
	return nil
}

// checkArgTypes reports the ways types fail to satisfy the element's
// declared inputs.
func (em *element) checkArgTypes(types []reflect.Type) []error {
	if em.variadic {
		if len(types) < len(em.in)-1 {
			return []error{em.errorf("wants at least %d arguments, %d flow in", len(em.in)-1, len(types))}
		}
	} else if len(types) != len(em.in) {
		return []error{em.errorf("wants %d arguments, %d flow in", len(em.in), len(types))}
	}
	var errs []error
	for i, have := range types {
		if have == nil {
			continue
		}
		var want reflect.Type
		if em.variadic && i >= len(em.in)-1 {
			want = em.in[len(em.in)-1].Elem()
		} else {
			want = em.in[i]
		}
		if have.AssignableTo(want) {
			continue
		}
		if have.Kind() == reflect.Interface {
			// dynamic type may still satisfy want
			continue
		}
		errs = append(errs, em.errorf("argument %d: %s does not flow into %s",
			i, reflectutils.TypeName(have), reflectutils.TypeName(want)))
	}
	return errs
}
