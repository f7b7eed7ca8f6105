// Package dataset generates and persists synthetic set cover instances
// for the benchmark harness.
//
// An instance is a flat list of (set, element) rows, the same two-column
// shape the harness reads from and writes to CSV. Generation is seeded
// and deterministic, so timings are comparable across runs and machines.
package dataset

import (
	"fmt"
	"math/rand"
)

// Spec describes one synthetic instance.
type Spec struct {
	Name      string `yaml:"name"`
	NSets     int    `yaml:"n_sets"`
	NElements int    `yaml:"n_elements"`
	NRows     int    `yaml:"n_rows"`
	Seed      int64  `yaml:"seed"`
}

// DefaultSpec returns the reference benchmark shape: 100k candidate sets,
// a universe of 2k elements, and 10M incidence rows.
func DefaultSpec() Spec {
	return Spec{
		NSets:     100_000,
		NElements: 2_000,
		NRows:     10_000_000,
		Seed:      333,
	}
}

// Validate checks the spec dimensions.
func (s Spec) Validate() error {
	if s.NSets <= 0 {
		return fmt.Errorf("dataset: n_sets must be positive, got %d", s.NSets)
	}
	if s.NElements <= 0 {
		return fmt.Errorf("dataset: n_elements must be positive, got %d", s.NElements)
	}
	if s.NRows <= 0 {
		return fmt.Errorf("dataset: n_rows must be positive, got %d", s.NRows)
	}
	return nil
}

// Row is one (set, element) incidence.
type Row struct {
	Set     int64
	Element int64
}

// Generate draws NRows uniform (set, element) rows from the spec's seeded
// generator.
func Generate(spec Spec) ([]Row, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(spec.Seed))
	rows := make([]Row, spec.NRows)
	for i := range rows {
		rows[i] = Row{
			Set:     rng.Int63n(int64(spec.NSets)),
			Element: rng.Int63n(int64(spec.NElements)),
		}
	}
	return rows, nil
}

// Sets groups rows into the keyed family form the cover entry points
// accept.
func Sets(rows []Row) map[int64][]int64 {
	sets := make(map[int64][]int64)
	for _, r := range rows {
		sets[r.Set] = append(sets[r.Set], r.Element)
	}
	return sets
}
