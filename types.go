package zug

// Callables must be identified before they can be composed.  This file
// defines the access modes and the characteristics shared by the
// prototypes that callables are matched against.

import (
	"fmt"
	"reflect"
)

// Access says how much an invocation may do to state retained by a
// composition's constituents.  Each call form on Composed uses a fixed
// access mode: Call uses AccessShared, CallMut uses AccessMut, and
// CallOnce uses AccessOnce.
type Access int

const (
	// AccessShared invokes constituents without modifying their retained
	// state.  Compositions may be called this way from multiple
	// goroutines at once.
	AccessShared Access = iota

	// AccessMut lets constituents modify their retained state.  The
	// caller is responsible for serializing access.
	AccessMut

	// AccessOnce additionally lets constituents give their retained
	// state away.  A composition invoked this way is spent.
	AccessOnce
)

const numAccessModes = int(AccessOnce) + 1

var accessNames = map[Access]string{
	AccessShared: "shared",
	AccessMut:    "mut",
	AccessOnce:   "once",
}

func (a Access) String() string {
	if name, ok := accessNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Access(%d)", int(a))
}

// callableKind records which prototype an element was characterized as.
type callableKind int

const (
	unsetKind callableKind = iota
	funcKind
	callerKind
	methodKind
	constantKind
)

var kindNames = map[callableKind]string{
	unsetKind:    "unset",
	funcKind:     "func",
	callerKind:   "caller",
	methodKind:   "method",
	constantKind: "constant",
}

func (k callableKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("callableKind(%d)", int(k))
}

// callFunc is a single invocation step: prepared arguments in, results
// out, or an error instead of invoking.
type callFunc func([]reflect.Value) ([]reflect.Value, error)

var anyType = reflect.TypeOf((*any)(nil)).Elem()
