// Package functors provides a small family of wrappers that let
// heterogeneous callables — free functions, closures, method values — be
// stored, passed, and invoked behind one uniform surface.
//
// # Two strategies, one compile-time choice
//
// Every wrapper supports two dispatch strategies, and the declared type at
// the use site picks between them:
//
//   - Flat: keep the wrapper at its concrete type (Fn, Fn2[string, int], …)
//     and Invoke dispatches statically, with no interface indirection.
//   - Polymorphic: assign the wrapper to its capability interface (Invoker,
//     Invoker2[string, int], …), or to any interface of your own that its
//     method set satisfies, and Invoke dispatches dynamically, so wrappers
//     of unrelated concrete types can share one handle type.
//
// The choice is resolved entirely at compile time by the declaration. No
// reflection, no runtime trait test, no re-evaluation: a given reference
// never switches strategy.
//
// # The wrapper family
//
//   - Fn, FnN: own one callable of the declared signature; Invoke forwards
//     positionally. The workhorse wrappers.
//   - BasedFn[D], BasedFnN[D, …]: additionally own a base value of the
//     user-chosen type D, reachable through Base, for wrappers that must
//     carry state beyond the callable's own captures.
//   - Invoker, InvokerN: the capability interfaces, with exactly one
//     operation: "invoke now".
//   - InvokerFunc, InvokerFuncN: adapters turning bare funcs into handles.
//   - Retried, TimedFn: opt-in decorators for bounded retry and invocation
//     timing.
//
// # Ownership
//
// A wrapper owns exactly one callable for its whole lifetime, stored by
// value at construction; there is no rebinding and no shared ownership.
// Copies follow the stored value's own copy contract: func values copy
// freely and share their captures. Invocation failures propagate to the
// caller unchanged: the wrapper is transparent.
//
// The wrappers add no synchronization. Share one across goroutines only
// with external mutual exclusion; see functors/registry for the one
// explicitly concurrent operation built on top of them.
//
// Example:
//
//	stop := functors.NewFn(engine.Stop)
//	stop.Invoke()                    // flat: static dispatch
//
//	var h functors.Invoker = stop    // polymorphic: one handle type
//	h.Invoke()                       // for many concrete wrappers
package functors
