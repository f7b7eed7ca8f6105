package greedy

import (
	"sort"

	"github.com/matthiaskaeding/setcover/internal/bitset"
)

// Solver runs the greedy heuristic over one Model. A Solver owns all
// mutable solve state exclusively; it is not safe for concurrent use, but
// distinct Solvers never share state and may run in parallel.
type Solver struct {
	model  *Model
	config Config
	stats  Stats
}

// Stats reports work done by the most recent solve, useful for comparing
// variants and tuning the auto-selection budget.
type Stats struct {
	// Variant is the resolved execution strategy (never VariantAuto).
	Variant Variant

	// Iterations is the number of selection rounds, equal to the number
	// of chosen sets. At most the universe size.
	Iterations int

	// GainEvaluations counts marginal-gain recomputations across the
	// whole run.
	GainEvaluations int
}

// NewSolver returns a Solver for the given model and configuration.
func NewSolver(m *Model, config Config) (*Solver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Solver{model: m, config: config}, nil
}

// Solve selects a covering sub-family and returns its set indices sorted
// ascending. Selection order is discarded: only the chosen index set is
// part of the contract.
//
// Infeasible instances fail before any selection work with an error
// matching ErrInfeasible that carries the uncoverable element ids; no
// partial selection is ever returned.
//
// Gain ties are broken on the lowest set index in every variant, so
// re-solving an identical instance yields an identical selection. The
// abstract greedy contract does not require this rule; callers must not
// depend on a particular choice among equal-gain sets.
func (s *Solver) Solve() ([]int, error) {
	if err := s.checkFeasible(); err != nil {
		return nil, err
	}

	variant := chooseVariant(s.model, s.config)
	s.stats = Stats{Variant: variant}

	var (
		selection []int
		err       error
	)
	switch variant {
	case VariantBitVec:
		selection, err = s.solveBitVec()
	case VariantStandard:
		selection, err = s.solveStandard()
	default:
		selection, err = s.solveTextbook()
	}
	if err != nil {
		return nil, err
	}

	sort.Ints(selection)
	return selection, nil
}

// Stats returns statistics for the most recent Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// checkFeasible verifies that the union of all candidate sets reaches the
// full universe. Detected up front so the selection loop never spins on an
// uncoverable residue.
func (s *Solver) checkFeasible() error {
	union := bitset.New(s.model.UniverseSize())
	for i := 0; i < s.model.NumSets(); i++ {
		for _, e := range s.model.Set(i) {
			union.Add(e)
		}
	}
	if union.Count() == s.model.UniverseSize() {
		return nil
	}

	uncoverable := make([]int, 0, s.model.UniverseSize()-union.Count())
	for e := 0; e < s.model.UniverseSize(); e++ {
		if !union.Contains(e) {
			uncoverable = append(uncoverable, e)
		}
	}
	return &InfeasibleError{Uncoverable: uncoverable}
}

// Solve is a convenience wrapper: validate the dense instance and run one
// solve with the given variant.
func Solve(universeSize int, sets [][]int, variant Variant) ([]int, error) {
	m, err := NewModel(universeSize, sets)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	config.Variant = variant
	solver, err := NewSolver(m, config)
	if err != nil {
		return nil, err
	}
	return solver.Solve()
}
