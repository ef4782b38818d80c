package functors

// --- zero-argument capability ---

// Invoker is the capability interface of the functor family: exactly one
// operation, invoke the stored callable with no arguments. It carries no
// state of its own; concrete implementers decide what an invocation means.
//
// Hold wrapper values of unrelated concrete types behind it when one call
// site must own and run them uniformly:
//
//	x := 13
//	handles := []functors.Invoker{
//		functors.NewFn(func() { x++ }),
//		functors.NewBasedFn(func() { fmt.Println(3.14) }, struct{}{}),
//	}
//	for _, h := range handles {
//		h.Invoke()
//	}
type Invoker interface {
	Invoke()
}

var _ Invoker = InvokerFunc(nil)

// InvokerFunc adapts a bare func() to Invoker, the way http.HandlerFunc
// adapts handlers.
type InvokerFunc func()

// Invoke calls f.
func (f InvokerFunc) Invoke() { f() }

// --- parameterized capabilities ---

// The InvokerN interfaces state the same capability for callables taking N
// arguments with compile-time-fixed types. A wrapper satisfies the matching
// InvokerN only when the type arguments agree exactly; an arity or element
// type mismatch is a compile error, never a runtime one.

type Invoker1[A1 any] interface {
	Invoke(A1)
}

var _ Invoker1[int] = InvokerFunc1[int](nil)

// InvokerFunc1 adapts a bare func(A1) to Invoker1.
type InvokerFunc1[A1 any] func(A1)

func (f InvokerFunc1[A1]) Invoke(a1 A1) { f(a1) }

type Invoker2[A1, A2 any] interface {
	Invoke(A1, A2)
}

var _ Invoker2[int, int] = InvokerFunc2[int, int](nil)

// InvokerFunc2 adapts a bare func(A1, A2) to Invoker2.
type InvokerFunc2[A1, A2 any] func(A1, A2)

func (f InvokerFunc2[A1, A2]) Invoke(a1 A1, a2 A2) { f(a1, a2) }

type Invoker3[A1, A2, A3 any] interface {
	Invoke(A1, A2, A3)
}

var _ Invoker3[int, int, int] = InvokerFunc3[int, int, int](nil)

// InvokerFunc3 adapts a bare func(A1, A2, A3) to Invoker3.
type InvokerFunc3[A1, A2, A3 any] func(A1, A2, A3)

func (f InvokerFunc3[A1, A2, A3]) Invoke(a1 A1, a2 A2, a3 A3) { f(a1, a2, a3) }

type Invoker4[A1, A2, A3, A4 any] interface {
	Invoke(A1, A2, A3, A4)
}

var _ Invoker4[int, int, int, int] = InvokerFunc4[int, int, int, int](nil)

// InvokerFunc4 adapts a bare func(A1, A2, A3, A4) to Invoker4.
type InvokerFunc4[A1, A2, A3, A4 any] func(A1, A2, A3, A4)

func (f InvokerFunc4[A1, A2, A3, A4]) Invoke(a1 A1, a2 A2, a3 A3, a4 A4) { f(a1, a2, a3, a4) }
