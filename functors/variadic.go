package functors

// The FnN and BasedFnN families restate Fn and BasedFn for callables taking
// a fixed, compile-time-specified argument list: one wrapper per arity,
// 1 through 4, each forwarding its arguments positionally. FnN satisfies
// the matching InvokerN; BasedFnN additionally carries the owned base value
// D. No runtime-variadic count exists: the argument list is fixed per
// instantiation, and a signature mismatch against a capability variable is
// a compile error.

// --- arity 1 ---

type Fn1[A1 any] struct {
	fn func(A1)
}

var _ Invoker1[int] = Fn1[int]{}

func NewFn1[A1 any](fn func(A1)) Fn1[A1] {
	if fn == nil {
		panic("functors.NewFn1: nil callable")
	}
	return Fn1[A1]{fn: fn}
}

func (f Fn1[A1]) Invoke(a1 A1) {
	f.fn(a1)
}

type BasedFn1[D, A1 any] struct {
	base D
	fn   func(A1)
}

var _ Invoker1[int] = &BasedFn1[struct{}, int]{}

func NewBasedFn1[D, A1 any](fn func(A1), base D) *BasedFn1[D, A1] {
	if fn == nil {
		panic("functors.NewBasedFn1: nil callable")
	}
	return &BasedFn1[D, A1]{base: base, fn: fn}
}

func (bf *BasedFn1[D, A1]) Invoke(a1 A1) {
	bf.fn(a1)
}

func (bf *BasedFn1[D, A1]) Base() *D {
	return &bf.base
}

// --- arity 2 ---

type Fn2[A1, A2 any] struct {
	fn func(A1, A2)
}

var _ Invoker2[int, int] = Fn2[int, int]{}

func NewFn2[A1, A2 any](fn func(A1, A2)) Fn2[A1, A2] {
	if fn == nil {
		panic("functors.NewFn2: nil callable")
	}
	return Fn2[A1, A2]{fn: fn}
}

func (f Fn2[A1, A2]) Invoke(a1 A1, a2 A2) {
	f.fn(a1, a2)
}

type BasedFn2[D, A1, A2 any] struct {
	base D
	fn   func(A1, A2)
}

var _ Invoker2[int, int] = &BasedFn2[struct{}, int, int]{}

func NewBasedFn2[D, A1, A2 any](fn func(A1, A2), base D) *BasedFn2[D, A1, A2] {
	if fn == nil {
		panic("functors.NewBasedFn2: nil callable")
	}
	return &BasedFn2[D, A1, A2]{base: base, fn: fn}
}

func (bf *BasedFn2[D, A1, A2]) Invoke(a1 A1, a2 A2) {
	bf.fn(a1, a2)
}

func (bf *BasedFn2[D, A1, A2]) Base() *D {
	return &bf.base
}

// --- arity 3 ---

type Fn3[A1, A2, A3 any] struct {
	fn func(A1, A2, A3)
}

var _ Invoker3[int, int, int] = Fn3[int, int, int]{}

func NewFn3[A1, A2, A3 any](fn func(A1, A2, A3)) Fn3[A1, A2, A3] {
	if fn == nil {
		panic("functors.NewFn3: nil callable")
	}
	return Fn3[A1, A2, A3]{fn: fn}
}

func (f Fn3[A1, A2, A3]) Invoke(a1 A1, a2 A2, a3 A3) {
	f.fn(a1, a2, a3)
}

type BasedFn3[D, A1, A2, A3 any] struct {
	base D
	fn   func(A1, A2, A3)
}

var _ Invoker3[int, int, int] = &BasedFn3[struct{}, int, int, int]{}

func NewBasedFn3[D, A1, A2, A3 any](fn func(A1, A2, A3), base D) *BasedFn3[D, A1, A2, A3] {
	if fn == nil {
		panic("functors.NewBasedFn3: nil callable")
	}
	return &BasedFn3[D, A1, A2, A3]{base: base, fn: fn}
}

func (bf *BasedFn3[D, A1, A2, A3]) Invoke(a1 A1, a2 A2, a3 A3) {
	bf.fn(a1, a2, a3)
}

func (bf *BasedFn3[D, A1, A2, A3]) Base() *D {
	return &bf.base
}

// --- arity 4 ---

type Fn4[A1, A2, A3, A4 any] struct {
	fn func(A1, A2, A3, A4)
}

var _ Invoker4[int, int, int, int] = Fn4[int, int, int, int]{}

func NewFn4[A1, A2, A3, A4 any](fn func(A1, A2, A3, A4)) Fn4[A1, A2, A3, A4] {
	if fn == nil {
		panic("functors.NewFn4: nil callable")
	}
	return Fn4[A1, A2, A3, A4]{fn: fn}
}

func (f Fn4[A1, A2, A3, A4]) Invoke(a1 A1, a2 A2, a3 A3, a4 A4) {
	f.fn(a1, a2, a3, a4)
}

type BasedFn4[D, A1, A2, A3, A4 any] struct {
	base D
	fn   func(A1, A2, A3, A4)
}

var _ Invoker4[int, int, int, int] = &BasedFn4[struct{}, int, int, int, int]{}

func NewBasedFn4[D, A1, A2, A3, A4 any](fn func(A1, A2, A3, A4), base D) *BasedFn4[D, A1, A2, A3, A4] {
	if fn == nil {
		panic("functors.NewBasedFn4: nil callable")
	}
	return &BasedFn4[D, A1, A2, A3, A4]{base: base, fn: fn}
}

func (bf *BasedFn4[D, A1, A2, A3, A4]) Invoke(a1 A1, a2 A2, a3 A3, a4 A4) {
	bf.fn(a1, a2, a3, a4)
}

func (bf *BasedFn4[D, A1, A2, A3, A4]) Base() *D {
	return &bf.base
}
