package greedy

import (
	"container/heap"
	"sort"

	"github.com/matthiaskaeding/setcover/internal/sparse"
)

// gainEntry is one candidate set in the lazy gain index. Its gain may be
// stale: marginal gains only ever decrease, so a cached value is an upper
// bound on the live one.
type gainEntry struct {
	gain int
	set  int
}

// gainHeap is a max-heap of cached gains with ties broken on the lowest
// set index, so revalidated pops are deterministic.
type gainHeap []gainEntry

func (h gainHeap) Len() int { return len(h) }

func (h gainHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].set < h[j].set
}

func (h gainHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *gainHeap) Push(x any) { *h = append(*h, x.(gainEntry)) }

func (h *gainHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// solveStandard runs the hash-set variant.
//
// The uncovered mask is a sparse set; each candidate set keeps its members
// both as a slice (for small-side iteration) and as a hash set (for
// membership probes from the uncovered side). Selection goes through a
// lazy max-heap: pop the highest cached gain, recompute the live gain, and
// either select (still fresh), re-push (stale but useful), or drop (zero).
// Each element is removed from the mask exactly once and each pop costs
// one gain probe over the smaller side, keeping total work bounded by the
// set-element incidences rather than rounds times sets.
func (s *Solver) solveStandard() ([]int, error) {
	n := s.model.NumSets()

	memberships := make([]map[int]struct{}, n)
	h := make(gainHeap, 0, n)
	for i := 0; i < n; i++ {
		members := s.model.Set(i)
		m := make(map[int]struct{}, len(members))
		for _, e := range members {
			m[e] = struct{}{}
		}
		memberships[i] = m
		if len(members) > 0 {
			h = append(h, gainEntry{gain: len(members), set: i})
		}
	}
	heap.Init(&h)

	uncovered := sparse.NewFull(s.model.UniverseSize())
	selection := make([]int, 0)

	for !uncovered.IsEmpty() {
		if h.Len() == 0 {
			// Unreachable after the feasibility precheck.
			return nil, s.sparseResidueError(uncovered)
		}
		e := heap.Pop(&h).(gainEntry)

		live := s.liveGain(e.set, uncovered, memberships[e.set])
		if live == 0 {
			continue
		}
		if live < e.gain {
			heap.Push(&h, gainEntry{gain: live, set: e.set})
			continue
		}

		selection = append(selection, e.set)
		for _, el := range s.model.Set(e.set) {
			uncovered.Remove(el)
		}
		s.stats.Iterations++
	}

	return selection, nil
}

// liveGain counts the still-uncovered members of one candidate set by
// iterating the smaller of the set and the uncovered mask.
func (s *Solver) liveGain(set int, uncovered *sparse.Set, membership map[int]struct{}) int {
	s.stats.GainEvaluations++
	members := s.model.Set(set)
	gain := 0
	if len(members) <= uncovered.Len() {
		for _, e := range members {
			if uncovered.Contains(e) {
				gain++
			}
		}
		return gain
	}
	for _, e := range uncovered.Values() {
		if _, ok := membership[e]; ok {
			gain++
		}
	}
	return gain
}

func (s *Solver) sparseResidueError(uncovered *sparse.Set) error {
	residue := append([]int(nil), uncovered.Values()...)
	sort.Ints(residue)
	return &InfeasibleError{Uncoverable: residue}
}
