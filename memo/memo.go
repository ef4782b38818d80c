package memo

import (
	"fmt"
)

// ComparableOrStringer admits inputs usable as memo keys: values of a
// comparable type, or values implementing fmt.Stringer. Anything else
// panics at first use, when the key reaches the underlying table.
type ComparableOrStringer any

// ComparableOrString is a ComparableOrStringer after keying: Stringers are
// replaced by their String() form.
type ComparableOrString any

// Memoize1 returns a callable that caches fn's results by input value in a
// bounded table. fn must be pure: same inputs, same output, no observable
// effects. Do not memoize impure callables.
func Memoize1[I1 ComparableOrStringer, O1 any](
	fn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	if fn == nil {
		panic("memo.Memoize1: nil callable")
	}
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1) O1 {
		keys := []ComparableOrString{argKey(i1)}
		v, ok := table.Load(keys)
		if !ok {
			v = fn(i1)
			table.Store(keys, v)
		}
		return v
	}
}

// Memoize2 is Memoize1 for two-argument callables.
func Memoize2[I1, I2 ComparableOrStringer, O1 any](
	fn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	if fn == nil {
		panic("memo.Memoize2: nil callable")
	}
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		keys := []ComparableOrString{argKey(i1), argKey(i2)}
		v, ok := table.Load(keys)
		if !ok {
			v = fn(i1, i2)
			table.Store(keys, v)
		}
		return v
	}
}

// Memoize3 is Memoize1 for three-argument callables.
func Memoize3[I1, I2, I3 ComparableOrStringer, O1 any](
	fn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	if fn == nil {
		panic("memo.Memoize3: nil callable")
	}
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		keys := []ComparableOrString{argKey(i1), argKey(i2), argKey(i3)}
		v, ok := table.Load(keys)
		if !ok {
			v = fn(i1, i2, i3)
			table.Store(keys, v)
		}
		return v
	}
}

// Memoize4 is Memoize1 for four-argument callables.
func Memoize4[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	fn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	if fn == nil {
		panic("memo.Memoize4: nil callable")
	}
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		keys := []ComparableOrString{argKey(i1), argKey(i2), argKey(i3), argKey(i4)}
		v, ok := table.Load(keys)
		if !ok {
			v = fn(i1, i2, i3, i4)
			table.Store(keys, v)
		}
		return v
	}
}

// argKey turns one input into its table key: Stringers key by their
// String() form, everything else keys by value.
func argKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}
