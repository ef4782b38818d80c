package memo

import (
	"sync"
	"sync/atomic"
)

// Trie is the bounded memo table behind the Memoize family: a trie of
// nested sync.Maps keyed by argument values, kept in two generations.
// Stores land in the live generation; once it holds maxSize entries the
// generations rotate and the oldest one is dropped wholesale. Loads consult
// the live generation first, then the previous one, so entries survive
// exactly one rotation.
type Trie[O any] struct {
	tables  [2]*sync.Map
	liveIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie returns a Trie bounded to maxSize entries per generation.
func NewTrie[O any](maxSize uint32) Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return Trie[O]{
		tables:  [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	liveIdx := t.liveIdx
	m, last := t.walk(t.tables[liveIdx], keys)
	if v, ok := m.Load(last); ok {
		return v.(O), true
	}

	// miss in the live generation: the entry may survive in the previous one
	m, last = t.walk(t.tables[1-liveIdx], keys)
	v, ok := m.Load(last)
	if !ok {
		var zero O
		return zero, false
	}
	return v.(O), true
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	if rotated := t.size.CompareAndSwap(t.maxSize, 0); rotated {
		t.liveIdx = 1 - t.liveIdx
		t.tables[t.liveIdx] = &sync.Map{}
	}
	m, last := t.walk(t.tables[t.liveIdx], keys)
	m.Store(last, value)
	t.size.Add(1)
}

// walk descends the nested maps along keys, creating missing interior
// nodes, and returns the map owning the final key together with that key.
func (t *Trie[O]) walk(node *sync.Map, keys []ComparableOrString) (*sync.Map, ComparableOrString) {
	length := len(keys)
	if length == 0 {
		panic("walk: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := node.Load(k)
		if !ok {
			next := &sync.Map{}
			node.Store(k, next)
			v = next
		}
		node = v.(*sync.Map)
	}
	return node, keys[length-1]
}
