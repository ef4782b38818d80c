package functors

// Fn is the flat wrapper: it owns one zero-argument callable and exposes a
// single operation, Invoke. Used at its concrete type, calls dispatch
// statically; assigned to Invoker, or to any interface its method set
// satisfies, the same value dispatches dynamically. The declared type at
// the use site fixes the strategy once, at compile time; there is no
// runtime branch and the selection is never re-evaluated.
//
// The zero Fn is unusable; construct with NewFn.
type Fn struct {
	fn func()
}

var _ Invoker = Fn{}

// NewFn stores the callable by value. Copies of the wrapper follow the
// callable's own copy contract: func values copy freely and share their
// captures. Panics if fn is nil.
func NewFn(fn func()) Fn {
	if fn == nil {
		panic("functors.NewFn: nil callable")
	}
	return Fn{fn: fn}
}

// Invoke calls the stored callable with no arguments. Whatever the callable
// does on failure propagates unchanged: no wrapping, no recovery.
func (f Fn) Invoke() {
	f.fn()
}

// BasedFn is the based wrapper: it owns a zero-argument callable together
// with a base value of the user-chosen type D, carried for the wrapper's
// whole lifetime and reachable through Base. Construct the base up front
// (construction-time side effects belong to the caller's constructor call)
// and hand it over by value.
//
// Many BasedFn instances with different captured closures and different D
// satisfy Invoker alike, so they can live behind one handle type and each
// invocation still lands on its own stored callable.
type BasedFn[D any] struct {
	base D
	fn   func()
}

var _ Invoker = &BasedFn[struct{}]{}

// NewBasedFn stores the callable and the base, both by value.
// Panics if fn is nil.
func NewBasedFn[D any](fn func(), base D) *BasedFn[D] {
	if fn == nil {
		panic("functors.NewBasedFn: nil callable")
	}
	return &BasedFn[D]{base: base, fn: fn}
}

// Invoke calls the stored callable with no arguments.
func (bf *BasedFn[D]) Invoke() {
	bf.fn()
}

// Base exposes the owned base value; mutations through the pointer update
// the wrapper's copy in place.
func (bf *BasedFn[D]) Base() *D {
	return &bf.base
}
