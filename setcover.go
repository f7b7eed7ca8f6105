// Package setcover approximates minimum set cover with the greedy
// heuristic: iteratively pick the candidate set covering the most
// still-uncovered elements.
//
// Three interchangeable execution variants cover different data shapes:
//   - bitvec: bit-vector masks, word-parallel gain counting (many sets
//     over a small-to-moderate universe)
//   - standard: hash/sparse sets with a lazy max-heap gain index (large,
//     sparse universes)
//   - textbook: naive rescan baseline and correctness oracle
//
// The generic entry points accept a family keyed by arbitrary ordered
// keys with comparable elements and return the chosen keys sorted
// ascending:
//
//	sets := map[string][]int{
//	    "a": {1, 2, 3, 4, 5},
//	    "b": {1, 2},
//	    "c": {3, 4},
//	}
//	cover, err := setcover.Cover(sets, greedy.VariantAuto)
//	// cover = ["a"]
//
// Callers that already hold a dense encoding go through CoverDense, the
// solver's native boundary:
//
//	cover, err := setcover.CoverDense(5, [][]int{{0, 1, 2}, {2, 3, 4}}, greedy.VariantBitVec)
//	// cover = [0, 1]
//
// Set cover is NP-hard; the greedy selection is within the harmonic
// factor H(d) of optimal, d being the largest set size, and that is the
// best polynomial approximation unless P=NP.
package setcover

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/matthiaskaeding/setcover/dense"
	"github.com/matthiaskaeding/setcover/greedy"
)

// ErrUnknownVariant indicates an unrecognized algorithm name was passed
// to ParseVariant.
var ErrUnknownVariant = errors.New("unknown set cover variant")

// Cover selects an approximately minimal covering sub-family from a keyed
// family of sets and returns the chosen keys sorted ascending in the
// key's natural order.
//
// The family is materialized deterministically (by descending set size,
// then ascending key), compressed to the dense encoding, solved, and
// mapped back, so identical inputs always produce identical covers
// despite Go's randomized map iteration.
func Cover[K cmp.Ordered, E comparable](sets map[K][]E, variant greedy.Variant) ([]K, error) {
	config := greedy.DefaultConfig()
	config.Variant = variant
	return CoverWithConfig(sets, config)
}

// CoverWithConfig is Cover with full solver configuration.
func CoverWithConfig[K cmp.Ordered, E comparable](sets map[K][]E, config greedy.Config) ([]K, error) {
	if err := validateFamily(sets); err != nil {
		return nil, err
	}

	keys, family := dense.Materialize(sets)
	denseSets, reverse := dense.Compress(family)

	m, err := greedy.NewModel(len(reverse), denseSets)
	if err != nil {
		return nil, err
	}
	solver, err := greedy.NewSolver(m, config)
	if err != nil {
		return nil, err
	}
	selection, err := solver.Solve()
	if err != nil {
		return nil, err
	}

	return dense.Keys(keys, selection), nil
}

// CoverDense solves an instance already encoded as dense non-negative
// integers: a universe {0..universeSize-1} and sets of element ids. It
// returns the chosen set indices sorted ascending; on success the union
// of the chosen sets' elements equals the full universe.
//
// Failures are greedy.ErrInvalidInput for malformed input and
// greedy.ErrInfeasible when the union of all sets does not reach the
// universe; the infeasible error carries the uncoverable element ids.
func CoverDense(universeSize int, sets [][]int, variant greedy.Variant) ([]int, error) {
	return greedy.Solve(universeSize, sets, variant)
}

// ParseVariant maps an algorithm name to its variant. Both the historical
// names (greedy-bitvec, greedy-standard, greedy-textbook) and the short
// forms (auto, bitvec, standard, textbook) are accepted.
func ParseVariant(name string) (greedy.Variant, error) {
	switch name {
	case "auto", "":
		return greedy.VariantAuto, nil
	case "bitvec", "greedy-bitvec":
		return greedy.VariantBitVec, nil
	case "standard", "greedy-standard":
		return greedy.VariantStandard, nil
	case "textbook", "greedy-textbook":
		return greedy.VariantTextbook, nil
	default:
		return greedy.VariantAuto, fmt.Errorf("%w: %q (want greedy-bitvec, greedy-standard, or greedy-textbook)", ErrUnknownVariant, name)
	}
}

// validateFamily rejects families with no coverable content before the
// dense encoding round-trip.
func validateFamily[K cmp.Ordered, E comparable](sets map[K][]E) error {
	for _, set := range sets {
		if len(set) > 0 {
			return nil
		}
	}
	return &greedy.InputError{SetIndex: -1, Message: "at least one non-empty set is required"}
}
