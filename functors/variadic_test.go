package functors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/fn_base_go/functors"
)

func TestFn1_ForwardsArgument(t *testing.T) {
	var got []string
	fn := functors.NewFn1(func(s string) { got = append(got, s) })

	fn.Invoke("a")
	fn.Invoke("b")

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFn2_ForwardsPositionally(t *testing.T) {
	var got string
	fn := functors.NewFn2(func(n int, s string) { got = fmt.Sprintf("%d-%s", n, s) })

	fn.Invoke(7, "seven")

	assert.Equal(t, "7-seven", got)
}

func TestFn3_MatchesDirectCall(t *testing.T) {
	direct := 0
	wrapped := 0
	add := func(dst *int) func(int, int, int) {
		return func(a, b, c int) { *dst += a + b + c }
	}

	add(&direct)(2, 3, 4)
	fn := functors.NewFn3(add(&wrapped))
	fn.Invoke(2, 3, 4)

	assert.Equal(t, direct, wrapped)
}

func TestFn4_MatchesDirectCall(t *testing.T) {
	var got []int
	fn := functors.NewFn4(func(a, b, c, d int) { got = append(got, a, b, c, d) })

	fn.Invoke(1, 2, 3, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestFn2_ReferenceArgumentsMutateInPlace(t *testing.T) {
	fn := functors.NewFn2(func(dst *[]int, v int) { *dst = append(*dst, v) })

	var sink []int
	fn.Invoke(&sink, 1)
	fn.Invoke(&sink, 2)

	assert.Equal(t, []int{1, 2}, sink)
}

func TestFnN_ThroughCapabilityInterface(t *testing.T) {
	sum := 0
	var h functors.Invoker2[int, int] = functors.NewFn2(func(a, b int) { sum = a + b })

	h.Invoke(3, 4)

	assert.Equal(t, 7, sum)
}

type widget struct {
	name string
}

type refreshStats struct {
	refreshes int
}

func TestBasedFn1_CarriesBaseState(t *testing.T) {
	var bf *functors.BasedFn1[refreshStats, string]
	seen := make([]string, 0, 2)
	bf = functors.NewBasedFn1(func(name string) {
		seen = append(seen, name)
		bf.Base().refreshes++
	}, refreshStats{})

	bf.Invoke("alpha")
	bf.Invoke("beta")

	assert.Equal(t, []string{"alpha", "beta"}, seen)
	assert.Equal(t, 2, bf.Base().refreshes)
}

func TestBasedFn2_BaseSharedWithCallable(t *testing.T) {
	var bf *functors.BasedFn2[refreshStats, string, int]
	bf = functors.NewBasedFn2(func(string, int) { bf.Base().refreshes++ }, refreshStats{})

	bf.Invoke("a", 1)
	bf.Invoke("b", 2)

	assert.Equal(t, 2, bf.Base().refreshes)
}

func TestBasedFn4_CarriesBaseState(t *testing.T) {
	var bf *functors.BasedFn4[refreshStats, string, int, int, bool]
	var got []any
	bf = functors.NewBasedFn4(func(name string, from, to int, dryRun bool) {
		got = append(got, name, from, to, dryRun)
		bf.Base().refreshes++
	}, refreshStats{})

	bf.Invoke("alpha", 1, 2, true)
	bf.Invoke("beta", 3, 4, false)

	assert.Equal(t, []any{"alpha", 1, 2, true, "beta", 3, 4, false}, got)
	assert.Equal(t, 2, bf.Base().refreshes)
}

func TestBasedFn2_HeterogeneousThroughCapability(t *testing.T) {
	var left, right string

	handles := []functors.Invoker2[string, int]{
		functors.NewBasedFn2(func(s string, n int) { left = fmt.Sprintf("%s:%d", s, n) }, struct{}{}),
		functors.NewBasedFn2(func(s string, n int) { right = fmt.Sprintf("%d:%s", n, s) }, struct{}{}),
	}
	handles[0].Invoke("a", 1)
	handles[1].Invoke("b", 2)

	assert.Equal(t, "a:1", left)
	assert.Equal(t, "2:b", right)
}

func TestBasedFn3_BaseAccessorReturnsOwnedValue(t *testing.T) {
	bf := functors.NewBasedFn3(func(int, int, int) {}, widget{name: "w"})

	require.NotNil(t, bf.Base())
	assert.Equal(t, "w", bf.Base().name)

	bf.Base().name = "renamed"
	assert.Equal(t, "renamed", bf.Base().name)
}

func TestInvokerFuncN_AdaptBareFuncs(t *testing.T) {
	var got []any

	var h1 functors.Invoker1[int] = functors.InvokerFunc1[int](func(a int) { got = append(got, a) })
	var h2 functors.Invoker2[int, string] = functors.InvokerFunc2[int, string](
		func(a int, b string) { got = append(got, a, b) },
	)
	var h3 functors.Invoker3[int, string, bool] = functors.InvokerFunc3[int, string, bool](
		func(a int, b string, c bool) { got = append(got, a, b, c) },
	)
	var h4 functors.Invoker4[int, string, bool, int] = functors.InvokerFunc4[int, string, bool, int](
		func(a int, b string, c bool, d int) { got = append(got, a, b, c, d) },
	)

	h1.Invoke(1)
	h2.Invoke(2, "two")
	h3.Invoke(3, "three", true)
	h4.Invoke(4, "four", false, 44)

	assert.Equal(t, []any{1, 2, "two", 3, "three", true, 4, "four", false, 44}, got)
}

func TestVariadic_NilCallablePanics(t *testing.T) {
	assert.Panics(t, func() { functors.NewFn1[int](nil) })
	assert.Panics(t, func() { functors.NewFn2[int, int](nil) })
	assert.Panics(t, func() { functors.NewFn3[int, int, int](nil) })
	assert.Panics(t, func() { functors.NewFn4[int, int, int, int](nil) })
	assert.Panics(t, func() { functors.NewBasedFn1[struct{}, int](nil, struct{}{}) })
	assert.Panics(t, func() { functors.NewBasedFn4[struct{}, int, int, int, int](nil, struct{}{}) })
}
