// Package greedy implements the greedy set cover heuristic: repeatedly
// select the candidate set covering the most still-uncovered elements
// until the universe is covered.
//
// The package coordinates three interchangeable execution variants over a
// shared validated Model:
//   - bitvec: bit-vector masks with word-parallel gain counting
//   - standard: sparse/hash sets with a lazy max-heap gain index
//   - textbook: naive full rescan per round, the baseline and oracle
//
// Every solve is single-threaded and self-contained: the uncovered mask,
// gain index, and selection are owned by one Solver for one call, so
// independent solves may run concurrently with no shared state.
//
// On success the selection is returned as sorted ascending set indices
// whose union equals the full universe. Greedy guarantees at most U
// iterations and a cover within the harmonic bound H(d) of optimal, where
// d is the largest set size.
package greedy

// Config controls variant selection for a solve.
//
// Example:
//
//	config := greedy.DefaultConfig()
//	config.Variant = greedy.VariantStandard
//	solver, err := greedy.NewSolver(model, config)
type Config struct {
	// Variant is the execution strategy. VariantAuto (the default)
	// resolves to bitvec or standard based on MaxBitsetBytes.
	Variant Variant

	// MaxBitsetBytes caps the memory the auto selection allows for the
	// bitvec variant's N*U bit masks before falling back to the standard
	// variant. Ignored when Variant is explicit.
	// Default: 64 MiB.
	MaxBitsetBytes int64
}

// DefaultConfig returns a configuration with sensible defaults: automatic
// variant selection with a 64 MiB bit-mask budget, which keeps the
// benchmarked regime (100k sets over a universe of a few thousand
// elements) on the bitvec path.
func DefaultConfig() Config {
	return Config{
		Variant:        VariantAuto,
		MaxBitsetBytes: 64 << 20,
	}
}

// Validate checks the configuration. It returns an error matching
// ErrInvalidConfig when the variant is unknown or the bit-mask budget is
// not positive.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantAuto, VariantBitVec, VariantStandard, VariantTextbook:
	default:
		return &ConfigError{Field: "Variant", Message: "unknown variant"}
	}
	if c.Variant == VariantAuto && c.MaxBitsetBytes <= 0 {
		return &ConfigError{Field: "MaxBitsetBytes", Message: "must be positive"}
	}
	return nil
}
