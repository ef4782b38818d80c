// Package memo provides memoization for pure callables.
//
// Memoize is not just a utility to add caching.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this callable really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// That question is not about performance—it's about trust and meaning.
// A callable that survives being memoized is one whose result depends on
// its inputs and nothing else.
//
// The Memoize1 through Memoize4 functions wrap pure callables of the
// corresponding arity so repeated invocations with equal inputs return the
// cached result instead of recomputing. Inputs key the table by value, or
// by String() for fmt.Stringer inputs.
//
// Features:
//   - Memoize1 to Memoize4: typed, generic memoizers for common arities.
//   - Trie-based bounded cache with two-generation rotation: entries
//     survive exactly one rotation, the oldest generation is dropped.
//   - Type-safe, zero-reflection design.
//
// Multi-output callables are out of scope; wrap the outputs in a struct
// and memoize that.
//
// WARNING: Do not use Memoize on impure callables (e.g., those depending
// on time, I/O, etc).
package memo
