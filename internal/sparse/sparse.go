// Package sparse provides a sparse set over dense element ids.
//
// A Set supports O(1) insert, remove, and membership testing while keeping
// its members in a dense slice for cheap iteration. The standard solver
// variant uses it as the uncovered-element tracker: the whole universe is
// inserted up front, covered elements are removed as sets are selected, and
// marginal-gain probes iterate whichever of (candidate set, tracker) is
// smaller.
package sparse

// Set is a sparse set of ints in [0, capacity). The sparse array maps an
// element to its index in the dense array; an element e is a member iff
// dense[sparse[e]] == e within the current length.
type Set struct {
	sparse []int
	dense  []int
}

// New returns an empty set that can hold elements in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// NewFull returns a set containing every element in [0, capacity).
func NewFull(capacity int) *Set {
	s := New(capacity)
	for e := 0; e < capacity; e++ {
		s.dense = append(s.dense, e)
		s.sparse[e] = e
	}
	return s
}

// Insert adds e to the set. It returns false if e was already present.
// Panics if e is out of [0, capacity).
func (s *Set) Insert(e int) bool {
	if s.Contains(e) {
		return false
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, e)
	return true
}

// Contains reports whether e is in the set.
func (s *Set) Contains(e int) bool {
	if e < 0 || e >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e]
	return idx < len(s.dense) && s.dense[idx] == e
}

// Remove deletes e from the set by swapping the last dense entry into its
// slot. It returns false if e was not present.
func (s *Set) Remove(e int) bool {
	if !s.Contains(e) {
		return false
	}
	idx := s.sparse[e]
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
	return true
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members of the set in unspecified order. The returned
// slice aliases internal storage and is valid until the next mutation.
func (s *Set) Values() []int {
	return s.dense
}

// Clear removes all elements in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}
