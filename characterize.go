package zug

import (
	"reflect"
	"strings"
)

type characterization struct {
	name   string
	tests  predicates
	mutate func(*element)
}

type typeRegistry []characterization

type predicateType struct {
	message string
	test    func(fn any) bool
}

type predicates []predicateType

func predicate(message string, test func(fn any) bool) predicateType {
	return predicateType{message: message, test: test}
}

func (p predicates) check(fn any) (bool, string) {
	for _, predicate := range p {
		if !predicate.test(fn) {
			return false, predicate.message
		}
	}
	return true, ""
}

func notNil(fn any) bool { return fn != nil }

// prototypes are matched in order.  The first whose predicates all pass
// decides how the element is invoked.
var prototypes = typeRegistry{
	{
		name: "constant",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must be a *Constant", func(fn any) bool {
				c, ok := fn.(*Constant)
				return ok && c != nil
			}),
		},
		mutate: characterizeConstant,
	},
	{
		name: "function object",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must implement Caller, MutCaller, or OnceCaller", func(fn any) bool {
				switch fn.(type) {
				case Caller, MutCaller, OnceCaller:
					return true
				}
				return false
			}),
		},
		mutate: characterizeCaller,
	},
	{
		name: "method dispatcher",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must be made by Method", func(fn any) bool {
				_, ok := fn.(methodCallable)
				return ok
			}),
		},
		mutate: characterizeMethod,
	},
	{
		name: "bound method",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must be a reflect.Method", func(fn any) bool {
				_, ok := fn.(reflect.Method)
				return ok
			}),
			predicate("must have an invocable Func", func(fn any) bool {
				return fn.(reflect.Method).Func.IsValid()
			}),
		},
		mutate: characterizeBoundMethod,
	},
	{
		name: "reflected function",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must be a reflect.Value", func(fn any) bool {
				_, ok := fn.(reflect.Value)
				return ok
			}),
			predicate("must hold a function", func(fn any) bool {
				return fn.(reflect.Value).Kind() == reflect.Func
			}),
			predicate("must not hold a nil function", func(fn any) bool {
				return !fn.(reflect.Value).IsNil()
			}),
		},
		mutate: characterizeReflectedFunc,
	},
	{
		name: "function",
		tests: predicates{
			predicate("must not be nil", notNil),
			predicate("must be a function", func(fn any) bool {
				return reflect.ValueOf(fn).Kind() == reflect.Func
			}),
			predicate("must not be a nil function", func(fn any) bool {
				return !reflect.ValueOf(fn).IsNil()
			}),
		},
		mutate: characterizeFunc,
	},
}

// characterize matches an element against the prototype registry and
// fills in its invokers.  An element that matches nothing keeps the
// reasons each prototype rejected it.
func characterize(em *element) {
	if em.err != nil {
		return
	}
	rejectReasons := make([]string, 0, len(prototypes))
	for _, match := range prototypes {
		ok, reason := match.tests.check(em.fn)
		if ok {
			match.mutate(em)
			if traceEnabled() {
				trace("characterized", "element", em.String(), "prototype", match.name, "id", em.id)
			}
			return
		}
		rejectReasons = append(rejectReasons, match.name+": "+reason)
	}
	em.err = em.errorf("cannot characterize as a callable: %s", strings.Join(rejectReasons, "; "))
}

func characterizeFunc(em *element) {
	setFuncInvokers(em, reflect.ValueOf(em.fn))
}

func characterizeReflectedFunc(em *element) {
	setFuncInvokers(em, em.fn.(reflect.Value))
}

func characterizeBoundMethod(em *element) {
	setFuncInvokers(em, em.fn.(reflect.Method).Func)
	em.kind = methodKind
}

// setFuncInvokers fills an element from a reflect.Value holding a func.
// Funcs retain no state of their own so one invoker serves all access
// modes.
func setFuncInvokers(em *element, v reflect.Value) {
	t := v.Type()
	em.kind = funcKind
	em.in = typesIn(t)
	em.out = typesOut(t)
	em.variadic = t.IsVariadic()
	invoke := func(in []reflect.Value) ([]reflect.Value, error) {
		return v.Call(in), nil
	}
	em.invokers = [numAccessModes]callFunc{invoke, invoke, invoke}
	em.requires = AccessShared
}

// characterizeCaller fills an element from a function object.  A missing
// capability falls back to the next weaker one, so a plain Caller also
// serves mut and once access, while an object that only implements
// OnceCaller cannot be invoked any other way.
func characterizeCaller(em *element) {
	args := em.fn.(CallerArgs)
	em.kind = callerKind
	em.in = callerTypesIn(args)
	em.out = callerTypesOut(args)
	var call, mut, once callFunc
	if c, ok := em.fn.(Caller); ok {
		call = wrapCall(c.Call)
	}
	mut = call
	if m, ok := em.fn.(MutCaller); ok {
		mut = wrapCall(m.CallMut)
	}
	once = mut
	if o, ok := em.fn.(OnceCaller); ok {
		once = wrapCall(o.CallOnce)
	}
	em.invokers = [numAccessModes]callFunc{call, mut, once}
	switch {
	case call != nil:
		em.requires = AccessShared
	case mut != nil:
		em.requires = AccessMut
	default:
		em.requires = AccessOnce
	}
}

func wrapCall(fn func([]reflect.Value) []reflect.Value) callFunc {
	return func(in []reflect.Value) ([]reflect.Value, error) {
		return fn(in), nil
	}
}

func typesIn(t reflect.Type) []reflect.Type {
	if t == nil || t.Kind() != reflect.Func {
		return nil
	}
	in := make([]reflect.Type, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		in[i] = t.In(i)
	}
	return in
}

func typesOut(t reflect.Type) []reflect.Type {
	if t == nil || t.Kind() != reflect.Func {
		return nil
	}
	out := make([]reflect.Type, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		out[i] = t.Out(i)
	}
	return out
}

func callerTypesIn(args CallerArgs) []reflect.Type {
	in := make([]reflect.Type, args.NumIn())
	for i := range in {
		in[i] = args.In(i)
	}
	return in
}

func callerTypesOut(args CallerArgs) []reflect.Type {
	out := make([]reflect.Type, args.NumOut())
	for i := range out {
		out[i] = args.Out(i)
	}
	return out
}
