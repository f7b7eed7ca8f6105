package greedy

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

var allVariants = []Variant{VariantBitVec, VariantStandard, VariantTextbook}

func solveVariant(t *testing.T, universeSize int, sets [][]int, v Variant) ([]int, Stats) {
	t.Helper()
	m, err := NewModel(universeSize, sets)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	config := DefaultConfig()
	config.Variant = v
	solver, err := NewSolver(m, config)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	selection, err := solver.Solve()
	if err != nil {
		t.Fatalf("Solve(%s): %v", v, err)
	}
	return selection, solver.Stats()
}

// checkCovers fails unless the selected sets cover the whole universe.
func checkCovers(t *testing.T, universeSize int, sets [][]int, selection []int) {
	t.Helper()
	covered := make(map[int]bool)
	for _, idx := range selection {
		for _, e := range sets[idx] {
			covered[e] = true
		}
	}
	for e := 0; e < universeSize; e++ {
		if !covered[e] {
			t.Errorf("element %d not covered by selection %v", e, selection)
		}
	}
}

func TestSolve_ObviousWinner(t *testing.T) {
	// A covers everything; B and C are strict subsets.
	sets := [][]int{
		{0, 1, 2, 3, 4}, // A
		{0, 1},          // B
		{2, 3},          // C
	}
	for _, v := range allVariants {
		selection, _ := solveVariant(t, 5, sets, v)
		if !reflect.DeepEqual(selection, []int{0}) {
			t.Errorf("%s: selection = %v, want [0]", v, selection)
		}
	}
}

func TestSolve_DisjointChain(t *testing.T) {
	// Overlapping chain: no two sets cover all seven elements.
	sets := [][]int{
		{0, 1, 2},
		{2, 3, 4},
		{4, 5, 6},
	}
	for _, v := range allVariants {
		selection, _ := solveVariant(t, 7, sets, v)
		if !reflect.DeepEqual(selection, []int{0, 1, 2}) {
			t.Errorf("%s: selection = %v, want [0 1 2]", v, selection)
		}
		checkCovers(t, 7, sets, selection)
	}
}

func TestSolve_SingleSetSingleElement(t *testing.T) {
	for _, v := range allVariants {
		selection, _ := solveVariant(t, 1, [][]int{{0}}, v)
		if !reflect.DeepEqual(selection, []int{0}) {
			t.Errorf("%s: selection = %v, want [0]", v, selection)
		}
	}
}

func TestSolve_Infeasible(t *testing.T) {
	for _, v := range allVariants {
		_, err := Solve(10, [][]int{{0, 1, 2}}, v)
		if !errors.Is(err, ErrInfeasible) {
			t.Fatalf("%s: err = %v, want ErrInfeasible", v, err)
		}
		var infeasible *InfeasibleError
		if !errors.As(err, &infeasible) {
			t.Fatalf("%s: err = %v, want *InfeasibleError", v, err)
		}
		want := []int{3, 4, 5, 6, 7, 8, 9}
		if !reflect.DeepEqual(infeasible.Uncoverable, want) {
			t.Errorf("%s: Uncoverable = %v, want %v", v, infeasible.Uncoverable, want)
		}
	}
}

func TestSolve_TwoStepGreedy(t *testing.T) {
	// The big set wins round one; set 4 then covers the remainder in one
	// pick even though three smaller sets tie pairwise.
	sets := [][]int{
		{0, 1, 2, 3, 4, 5},
		{0, 1, 6},
		{2, 3, 7},
		{4, 5, 8},
		{6, 7, 8, 9},
	}
	for _, v := range allVariants {
		selection, stats := solveVariant(t, 10, sets, v)
		if !reflect.DeepEqual(selection, []int{0, 4}) {
			t.Errorf("%s: selection = %v, want [0 4]", v, selection)
		}
		if stats.Iterations != 2 {
			t.Errorf("%s: iterations = %d, want 2", v, stats.Iterations)
		}
	}
}

func TestSolve_TieBreaksLowestIndex(t *testing.T) {
	// All four sets have gain 1 throughout; each variant documents the
	// lowest-index rule, so the chosen order is fully determined.
	sets := [][]int{{3}, {2}, {1}, {0}}
	for _, v := range allVariants {
		selection, _ := solveVariant(t, 4, sets, v)
		if !reflect.DeepEqual(selection, []int{0, 1, 2, 3}) {
			t.Errorf("%s: selection = %v, want [0 1 2 3]", v, selection)
		}
	}
}

func TestSolve_DuplicateMembersDoNotInflateGain(t *testing.T) {
	// Set 0 lists one element five times; set 1 genuinely covers three.
	// Without dedup, set 0 would look like the better first pick.
	sets := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 2},
	}
	for _, v := range allVariants {
		selection, _ := solveVariant(t, 3, sets, v)
		if !reflect.DeepEqual(selection, []int{1}) {
			t.Errorf("%s: selection = %v, want [1]", v, selection)
		}
	}
}

func TestSolve_NeverPicksZeroGainSets(t *testing.T) {
	// Set 1 duplicates set 0; after set 0 is chosen its gain is zero and
	// it must not appear in the selection.
	sets := [][]int{
		{0, 1, 2},
		{0, 1, 2},
		{3},
	}
	for _, v := range allVariants {
		selection, stats := solveVariant(t, 4, sets, v)
		if !reflect.DeepEqual(selection, []int{0, 2}) {
			t.Errorf("%s: selection = %v, want [0 2]", v, selection)
		}
		if stats.Iterations != len(selection) {
			t.Errorf("%s: iterations = %d, selections = %d", v, stats.Iterations, len(selection))
		}
	}
}

func TestSolve_SelectionIsSortedAndUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	universe := 300
	sets := randomFeasibleInstance(rng, universe, 80, 12)

	for _, v := range allVariants {
		selection, _ := solveVariant(t, universe, sets, v)
		seen := make(map[int]bool)
		for i, idx := range selection {
			if i > 0 && selection[i-1] >= idx {
				t.Fatalf("%s: selection not strictly ascending: %v", v, selection)
			}
			if seen[idx] {
				t.Fatalf("%s: duplicate index %d in %v", v, idx, selection)
			}
			seen[idx] = true
		}
		checkCovers(t, universe, sets, selection)
	}
}

func TestSolve_CrossVariantAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 25; trial++ {
		universe := 20 + rng.Intn(80)
		sets := randomFeasibleInstance(rng, universe, 5+rng.Intn(30), 1+rng.Intn(10))

		// All variants share the deterministic lowest-index tie-break,
		// so they agree on the full selection, not just feasibility.
		base, _ := solveVariant(t, universe, sets, VariantTextbook)
		for _, v := range []Variant{VariantBitVec, VariantStandard} {
			selection, _ := solveVariant(t, universe, sets, v)
			if !reflect.DeepEqual(selection, base) {
				t.Errorf("trial %d: %s selection %v disagrees with textbook %v", trial, v, selection, base)
			}
		}
	}
}

func TestSolve_IdempotentResolve(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	universe := 120
	sets := randomFeasibleInstance(rng, universe, 40, 8)

	for _, v := range allVariants {
		first, _ := solveVariant(t, universe, sets, v)
		for i := 0; i < 3; i++ {
			again, _ := solveVariant(t, universe, sets, v)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("%s: re-solve differs: %v vs %v", v, first, again)
			}
		}
	}
}

func TestSolve_IterationsBoundedByUniverse(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	universe := 50
	sets := randomFeasibleInstance(rng, universe, 200, 3)
	for _, v := range allVariants {
		_, stats := solveVariant(t, universe, sets, v)
		if stats.Iterations > universe {
			t.Errorf("%s: %d iterations exceeds universe size %d", v, stats.Iterations, universe)
		}
	}
}

func TestChooseVariant_Auto(t *testing.T) {
	small, err := NewModel(1000, [][]int{{0}, {1}})
	if err != nil {
		t.Fatal(err)
	}
	if v := chooseVariant(small, DefaultConfig()); v != VariantBitVec {
		t.Errorf("small instance resolved to %s, want bitvec", v)
	}

	config := DefaultConfig()
	config.MaxBitsetBytes = 16 // force the fallback
	if v := chooseVariant(small, config); v != VariantStandard {
		t.Errorf("tiny budget resolved to %s, want standard", v)
	}

	config = DefaultConfig()
	config.Variant = VariantTextbook
	if v := chooseVariant(small, config); v != VariantTextbook {
		t.Errorf("explicit variant was overridden to %s", v)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	bad := Config{Variant: Variant(42)}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown variant: err = %v, want ErrInvalidConfig", err)
	}

	bad = Config{Variant: VariantAuto, MaxBitsetBytes: 0}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero budget: err = %v, want ErrInvalidConfig", err)
	}
}

// randomFeasibleInstance builds a random family guaranteed to cover the
// universe: random sets plus a final sweep that assigns every element to
// at least one of them.
func randomFeasibleInstance(rng *rand.Rand, universeSize, nSets, maxSetSize int) [][]int {
	sets := make([][]int, nSets)
	for i := range sets {
		size := 1 + rng.Intn(maxSetSize)
		set := make([]int, 0, size)
		for j := 0; j < size; j++ {
			set = append(set, rng.Intn(universeSize))
		}
		sets[i] = set
	}
	for e := 0; e < universeSize; e++ {
		i := rng.Intn(nSets)
		sets[i] = append(sets[i], e)
	}
	return sets
}
