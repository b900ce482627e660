package zug

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/muir/reflectutils"
)

var idCounter int32

// element is a characterized reference to one callable in a composition.
type element struct {
	origin string
	index  int
	fn     any
	id     int32

	// added by characterize
	kind     callableKind
	in       []reflect.Type // nil when not statically known
	out      []reflect.Type // nil when not statically known
	variadic bool
	invokers [numAccessModes]callFunc // indexed by Access; nil when unsupported
	requires Access                   // weakest access mode that can invoke this element
	err      error                    // characterization failure, reported before any call
}

func (em *element) copy() *element {
	if em == nil {
		return nil
	}
	n := *em
	return &n
}

// Composed is an ordered sequence of callables behaving as a single
// callable.  Build one with Comp.  Calling it invokes the last callable
// with the arguments given and feeds each result list leftwards, so
// Comp(f, g).Call(x) computes f(g(x)).
//
// The sequence is fixed once built: Append and Prepend make new
// compositions and leave the receiver alone.
type Composed struct {
	name     string
	elements []*element
	consumed uint32 // set by CallOnce, atomic
}

func (c *Composed) copy() *Composed {
	return &Composed{
		name:     c.name,
		elements: c.elements,
	}
}

// Comp composes callables.  The result invokes the last callable with
// the arguments it receives, then each remaining callable right to left
// with the results of the one before:
//
//	Comp(f, g, h).Call(args...) == f(g(h(args...)))
//
// Arguments that are already compositions contribute their callables in
// place: Comp(Comp(f, g), h) is the same composition as Comp(f, g, h).
// Each callable may be a func, a reflect.Value holding a func, a
// reflect.Method, a Method dispatcher, a *Constant, or a function
// object implementing Caller, MutCaller, or OnceCaller.
//
// Comp itself always succeeds.  Problems with individual callables are
// diagnosed here but reported when the composition is called, checked,
// or bound, always before any callable runs.
func Comp(fn any, fns ...any) *Composed {
	all := make([]any, 0, len(fns)+1)
	all = append(all, fn)
	all = append(all, fns...)
	return newComposed("comp", all...)
}

// Append composes fns to the right of c: c.Append(g) behaves exactly
// like Comp(c, g), so g runs first and feeds c.  c is not modified.
func (c *Composed) Append(fns ...any) *Composed {
	all := make([]any, 0, len(fns)+1)
	all = append(all, c)
	all = append(all, fns...)
	return newComposed(c.name, all...)
}

// Prepend composes fns to the left of c: c.Prepend(f) behaves exactly
// like Comp(f, c), so c runs first and feeds f.  c is not modified.
func (c *Composed) Prepend(fns ...any) *Composed {
	all := make([]any, 0, len(fns)+1)
	all = append(all, fns...)
	all = append(all, c)
	return newComposed(c.name, all...)
}

// Named annotates a callable or a composition with a name that shows up
// in String output, trace output, and error messages.  The callable is
// otherwise unchanged.
func Named(name string, fn any) any {
	switch v := fn.(type) {
	case *Composed:
		n := v.copy()
		n.name = name
		return n
	case *element:
		n := v.copy()
		n.origin = name
		return n
	case element:
		n := v.copy()
		n.origin = name
		return n
	default:
		return newElement(fn, -1, name)
	}
}

func newComposed(name string, fns ...any) *Composed {
	contents := make([]*element, 0, len(fns))
	for i, fn := range fns {
		switch v := fn.(type) {
		case *Composed:
			if v != nil {
				contents = append(contents, v.elements...)
			}
		case Composed:
			contents = append(contents, v.elements...)
		case *element:
			if v != nil {
				contents = append(contents, v.renameIfEmpty(i, name))
			}
		case element:
			contents = append(contents, v.renameIfEmpty(i, name))
		default:
			contents = append(contents, newElement(fn, i, name))
		}
	}
	c := &Composed{
		name:     name,
		elements: contents,
	}
	if traceEnabled() {
		trace("composed", "name", name, "size", len(contents))
	}
	return c
}

func newElement(fn any, index int, origin string) *element {
	em := &element{
		origin: origin,
		index:  index,
		fn:     fn,
		id:     atomic.AddInt32(&idCounter, 1),
	}
	characterize(em)
	return em
}

func (em element) renameIfEmpty(i int, name string) *element {
	if em.origin == "" {
		nem := em.copy()
		nem.origin = name
		if nem.index == -1 {
			nem.index = i
		}
		return nem
	}
	return &em
}

// Size reports how many callables are in the composition.
func (c *Composed) Size() int {
	return len(c.elements)
}

// Callables returns the callables in the composition in composition
// order, outermost first.  The slice is fresh but the callables are the
// original values.
func (c *Composed) Callables() []any {
	fns := make([]any, len(c.elements))
	for i, em := range c.elements {
		fns[i] = em.fn
	}
	return fns
}

func (c *Composed) String() string {
	return c.string("")
}

func (c *Composed) string(indent string) string {
	var buf strings.Builder
	_, _ = buf.WriteString(indent + c.name + ":\n")
	for _, em := range c.elements {
		_, _ = buf.WriteString(indent + " " + em.String() + "\n")
	}
	return buf.String()
}

func (em element) String() string {
	t := func() string {
		if em.fn == nil {
			return "nil"
		}
		if s, ok := em.fn.(fmt.Stringer); ok {
			return s.String()
		}
		return reflectutils.TypeName(reflect.TypeOf(em.fn))
	}()
	kind := ""
	if em.kind != unsetKind {
		kind = em.kind.String() + ": "
	}
	if em.index >= 0 {
		return fmt.Sprintf("%s%s(%d) [%s]", kind, em.origin, em.index, t)
	}
	return fmt.Sprintf("%s%s [%s]", kind, em.origin, t)
}

func (em *element) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", em.String(), fmt.Sprintf(format, args...))
}
