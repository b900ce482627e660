package zug

import (
	"fmt"
	"reflect"

	"github.com/muir/reflectutils"
)

// methodCallable dispatches to a named method on its first argument.
type methodCallable struct {
	name string
}

// Method makes a callable that invokes the method name on the first
// argument it receives, passing the remaining arguments through to the
// method.  The method is looked up on the receiver's dynamic type at
// call time, so the method set must include name: calling a
// pointer-receiver method requires passing the pointer.
//
// Because resolution happens per call, nothing to the left of a Method
// dispatcher can be verified statically.
func Method(name string) any {
	return methodCallable{name: name}
}

func (m methodCallable) String() string {
	return fmt.Sprintf("method %s", m.name)
}

func characterizeMethod(em *element) {
	m := em.fn.(methodCallable)
	em.kind = methodKind
	invoke := func(in []reflect.Value) ([]reflect.Value, error) {
		return m.invoke(in)
	}
	em.invokers = [numAccessModes]callFunc{invoke, invoke, invoke}
	em.requires = AccessShared
}

// invoke resolves the method on in[0] and calls it with in[1:].
func (m methodCallable) invoke(in []reflect.Value) ([]reflect.Value, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("method %s: no receiver argument", m.name)
	}
	recv := in[0]
	if recv.Kind() == reflect.Interface && !recv.IsNil() {
		recv = recv.Elem()
	}
	if !recv.IsValid() {
		return nil, fmt.Errorf("method %s: nil receiver", m.name)
	}
	fn := recv.MethodByName(m.name)
	if !fn.IsValid() {
		return nil, fmt.Errorf("method %s: %s has no such method",
			m.name, reflectutils.TypeName(recv.Type()))
	}
	t := fn.Type()
	prepared, err := widenArgs(in[1:], typesIn(t), t.IsVariadic())
	if err != nil {
		return nil, fmt.Errorf("method %s: %s", m.name, err)
	}
	return fn.Call(prepared), nil
}
