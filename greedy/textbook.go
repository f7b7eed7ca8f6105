package greedy

import "sort"

// solveTextbook runs the naive baseline.
//
// No per-set index is kept: every round rescans all unused candidate sets
// against the current uncovered mask, takes the strict maximum (lowest
// index on ties), marks the winner's elements covered, and repeats. This
// is the algorithm straight from the textbook and the oracle the other
// variants are checked against.
func (s *Solver) solveTextbook() ([]int, error) {
	n := s.model.NumSets()

	uncovered := make(map[int]struct{}, s.model.UniverseSize())
	for e := 0; e < s.model.UniverseSize(); e++ {
		uncovered[e] = struct{}{}
	}

	used := make([]bool, n)
	selection := make([]int, 0)

	for len(uncovered) > 0 {
		best, bestGain := -1, 0
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			gain := 0
			for _, e := range s.model.Set(i) {
				if _, ok := uncovered[e]; ok {
					gain++
				}
			}
			s.stats.GainEvaluations++
			if gain > bestGain {
				best, bestGain = i, gain
			}
		}
		if best < 0 {
			// Unreachable after the feasibility precheck.
			residue := make([]int, 0, len(uncovered))
			for e := range uncovered {
				residue = append(residue, e)
			}
			sort.Ints(residue)
			return nil, &InfeasibleError{Uncoverable: residue}
		}

		used[best] = true
		selection = append(selection, best)
		for _, e := range s.model.Set(best) {
			delete(uncovered, e)
		}
		s.stats.Iterations++
	}

	return selection, nil
}
