package greedy

// Variant selects the execution strategy for one solve.
//
// All variants implement the same greedy transition rule and produce a
// valid cover (or fail identically on infeasible input); they differ in
// how the uncovered mask and marginal gains are represented:
//   - VariantBitVec: packed bit vectors, word-parallel AND+popcount
//   - VariantStandard: sparse/hash sets with a lazy max-heap gain index
//   - VariantTextbook: full rescan each round, no bookkeeping
//
// Variant selection never changes the contract, only the data structures.
type Variant int

const (
	// VariantAuto picks a variant from the input shape: bitvec while the
	// per-set bit masks fit the configured memory budget, standard above
	// it. This is the default.
	VariantAuto Variant = iota

	// VariantBitVec backs the uncovered mask and every candidate set's
	// membership with fixed-width bit vectors of the universe size.
	// Marginal gain is popcount(set AND uncovered): O(U/64) per probe,
	// word-parallel and cache-friendly. The intended choice for
	// small-to-moderate universes with many sets. Memory is O(N*U) bits
	// regardless of sparsity, which is why the auto budget exists.
	VariantBitVec

	// VariantStandard backs the uncovered mask with a sparse set and each
	// candidate set with a hash set. Gain probes iterate the smaller of
	// (candidate set, uncovered mask); a lazy max-heap keyed by cached
	// gain avoids full rescans, bounding total work by the number of
	// set-element incidences. Favorable when the universe is large and
	// sparse relative to set sizes.
	VariantStandard

	// VariantTextbook keeps no per-set index and recomputes every
	// eligible set's gain from scratch each round. It is the performance
	// baseline and the correctness oracle the optimized variants must
	// agree with on cover feasibility.
	VariantTextbook
)

// String returns the variant name used in logs and CLI flags.
func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantBitVec:
		return "bitvec"
	case VariantStandard:
		return "standard"
	case VariantTextbook:
		return "textbook"
	default:
		return "unknown"
	}
}

// chooseVariant resolves VariantAuto against the instance shape. Any
// explicit variant is returned unchanged.
func chooseVariant(m *Model, config Config) Variant {
	if config.Variant != VariantAuto {
		return config.Variant
	}
	wordsPerSet := (m.UniverseSize() + 63) / 64
	maskBytes := int64(m.NumSets()) * int64(wordsPerSet) * 8
	if maskBytes <= config.MaxBitsetBytes {
		return VariantBitVec
	}
	return VariantStandard
}
