// Package dense translates between arbitrary keyed set families and the
// dense integer encoding the solver requires.
//
// The solver core only understands a universe {0..U-1} and sets of dense
// ids; this package supplies the surrounding glue: dense-rank assignment
// for arbitrary comparable elements, deterministic materialization of Go
// maps (whose iteration order is random), re-mapping of chosen indices
// back to original keys, and a narrow two-column tabular adapter.
package dense

import (
	"cmp"
	"slices"
)

// Ranker assigns dense ids to arbitrary comparable elements in first-seen
// order and remembers the reverse mapping.
type Ranker[E comparable] struct {
	ids     map[E]int
	reverse []E
}

// NewRanker returns an empty Ranker.
func NewRanker[E comparable]() *Ranker[E] {
	return &Ranker[E]{ids: make(map[E]int)}
}

// Rank returns the dense id for e, assigning the next free id on first
// sight.
func (r *Ranker[E]) Rank(e E) int {
	if id, ok := r.ids[e]; ok {
		return id
	}
	id := len(r.reverse)
	r.ids[e] = id
	r.reverse = append(r.reverse, e)
	return id
}

// Len returns the number of distinct elements ranked so far.
func (r *Ranker[E]) Len() int {
	return len(r.reverse)
}

// Reverse returns the element for a dense id.
func (r *Ranker[E]) Reverse(id int) E {
	return r.reverse[id]
}

// Compress converts a family of sets over arbitrary elements into the same
// family over dense ids, together with the reverse table: reverse[id] is
// the original element. Ids are assigned in first-seen order, so the
// universe size equals len(reverse).
func Compress[E comparable](sets [][]E) (denseSets [][]int, reverse []E) {
	r := NewRanker[E]()
	denseSets = make([][]int, len(sets))
	for i, set := range sets {
		ds := make([]int, len(set))
		for j, e := range set {
			ds[j] = r.Rank(e)
		}
		denseSets[i] = ds
	}
	return denseSets, r.reverse
}

// Materialize orders a keyed family deterministically and returns the keys
// alongside the sets in matching positions. Order is by descending set
// size, then ascending key, so identical inputs yield identical dense
// instances despite Go's randomized map iteration.
func Materialize[K cmp.Ordered, E any](sets map[K][]E) (keys []K, family [][]E) {
	keys = make([]K, 0, len(sets))
	for k := range sets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		if d := len(sets[b]) - len(sets[a]); d != 0 {
			return d
		}
		return cmp.Compare(a, b)
	})

	family = make([][]E, len(keys))
	for i, k := range keys {
		family[i] = sets[k]
	}
	return keys, family
}

// Keys maps chosen set indices back to their original keys, sorted
// ascending in the key's natural order.
func Keys[K cmp.Ordered](keys []K, indices []int) []K {
	chosen := make([]K, len(indices))
	for i, idx := range indices {
		chosen[i] = keys[idx]
	}
	slices.Sort(chosen)
	return chosen
}

// Pair is one row of a two-column tabular source: an element and the set
// it belongs to.
type Pair[K cmp.Ordered, E comparable] struct {
	Set     K
	Element E
}

// FromPairs groups two-column rows into the keyed family form accepted by
// the cover entry points. Row order within a set is preserved; duplicate
// rows are harmless because the solver deduplicates set members.
func FromPairs[K cmp.Ordered, E comparable](pairs []Pair[K, E]) map[K][]E {
	sets := make(map[K][]E)
	for _, p := range pairs {
		sets[p.Set] = append(sets[p.Set], p.Element)
	}
	return sets
}
