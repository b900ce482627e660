// Obligatory // comment

/*
Package zug composes callables into callables.

A composition is an ordered sequence of callables behaving as a single
callable.  Invoking it invokes the last callable with the arguments
given, then each remaining callable right to left with the results of
the one before, so that

	Comp(f, g).Call(x)

computes f(g(x)).  Any number of callables can be composed and a
composition of one callable behaves exactly like that callable.

# Callables

The callables in a composition do not share a base type.  A callable may
be:

  - any func, including closures, method values, and variadic funcs
  - a reflect.Value holding a func
  - a reflect.Method, invoked with the receiver as the first argument
  - a Method dispatcher, which resolves a method by name on its first
    argument at call time
  - a *Constant, which swallows its arguments and produces a stored value
  - a function object: any value implementing Caller, MutCaller, or
    OnceCaller

Anything else is rejected: composing it succeeds, but calling, checking,
or binding the composition reports why the value matched no callable
prototype, always before any callable has run.

# Building

Comp builds compositions.  Compositions given to Comp are spliced, not
nested, so

	Comp(Comp(f, g), h)

is the same three-element composition as Comp(f, g, h) and there is no
such thing as a composition inside a composition.  Append and Prepend
extend an existing composition the same way.  Condense is the escape
hatch: it freezes a whole composition into a single opaque function
object that composes as one element.

# Access modes

Compositions are invoked through one of three call forms.  Call promises
every constituent that its retained state will not be modified, and may
be used concurrently.  CallMut allows constituents to update their
retained state.  CallOnce additionally allows constituents to give their
state away; afterwards the composition is spent and further calls return
ErrConsumed.

Function objects advertise what they support by implementing Caller,
MutCaller, or OnceCaller.  A weaker call form never silently upgrades:
invoking a composition that contains, say, only an OnceCaller through
Call fails before anything runs.

# Checking and binding

Check verifies a composition statically: access modes, arities, and the
type flow between constituents, reporting every problem it finds.  Bind
goes further and fills a function pointer with the composition:

	var fn func(int) string
	if err := c.Bind(&fn); err != nil { ... }
	fn(7)

All validation happens at bind time so the bound function has no error
return.  DetailedError expands errors from Check, Bind, and Condense
with a rendering of the composition.

# Primitives

Noop ignores its arguments and produces nothing.  Identity produces its
argument unchanged, aliasing reference types; IdentityByValue produces
an equal deep copy instead.  Constantly(v) produces v regardless of
arguments; under once access it gives v away and is left empty.

The statically typed subpackage fn covers the common one-in one-out
case without reflection.
*/
package zug
