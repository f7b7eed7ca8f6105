package greedy

import (
	"github.com/matthiaskaeding/setcover/internal/bitset"
)

// solveBitVec runs the bit-vector variant.
//
// Every candidate set's membership and the uncovered mask are packed bit
// vectors of the universe width, so a gain probe is one AND+popcount pass.
// Cached gains from earlier rounds are exact upper bounds (gains only ever
// decrease), so a set whose cached gain cannot beat the current round's
// best is skipped without touching its words. Scanning in ascending index
// order with a strict comparison breaks ties toward the lowest index.
func (s *Solver) solveBitVec() ([]int, error) {
	universe := s.model.UniverseSize()
	n := s.model.NumSets()

	masks := make([]*bitset.Set, n)
	gains := make([]int, n)
	for i := 0; i < n; i++ {
		members := s.model.Set(i)
		masks[i] = bitset.FromElements(universe, members)
		gains[i] = len(members)
	}

	uncovered := bitset.NewFull(universe)
	remaining := universe
	used := make([]bool, n)
	selection := make([]int, 0)

	for remaining > 0 {
		best, bestGain := -1, 0
		for i := 0; i < n; i++ {
			if used[i] || gains[i] <= bestGain {
				continue
			}
			gain := masks[i].IntersectionCount(uncovered)
			s.stats.GainEvaluations++
			gains[i] = gain
			if gain > bestGain {
				best, bestGain = i, gain
			}
		}
		if best < 0 {
			// Unreachable after the feasibility precheck.
			return nil, s.residueError(uncovered)
		}

		used[best] = true
		selection = append(selection, best)
		remaining -= uncovered.RemoveAll(masks[best])
		s.stats.Iterations++
	}

	return selection, nil
}

func (s *Solver) residueError(uncovered *bitset.Set) error {
	return &InfeasibleError{Uncoverable: uncovered.Elements(nil)}
}
