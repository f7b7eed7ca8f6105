package greedy

// Model is a validated, read-only view over a dense set cover instance:
// a universe {0, ..., universeSize-1} and an indexed family of candidate
// sets whose elements are dense ids into that universe.
//
// Construction deduplicates each set's members so every variant counts
// marginal gain over mathematical sets, even when the caller passes
// duplicate ids. The caller retains ownership of the input slices; the
// Model never mutates them.
type Model struct {
	universeSize int
	sets         [][]int // deduplicated members, one slice per candidate set
	incidences   int     // total members across all sets, after dedup
}

// NewModel validates a dense instance and returns its Model.
//
// It fails with an error matching ErrInvalidInput when:
//   - sets is empty,
//   - universeSize is 0 while sets is non-empty,
//   - any element id is negative or >= universeSize.
func NewModel(universeSize int, sets [][]int) (*Model, error) {
	if universeSize < 0 {
		return nil, &InputError{SetIndex: -1, Message: "universe size must be non-negative"}
	}
	if len(sets) == 0 {
		return nil, &InputError{SetIndex: -1, Message: "at least one candidate set is required"}
	}
	if universeSize == 0 {
		return nil, &InputError{SetIndex: -1, Message: "universe size is 0 but candidate sets were provided"}
	}

	m := &Model{
		universeSize: universeSize,
		sets:         make([][]int, len(sets)),
	}
	seen := make([]int, universeSize) // seen[e] == i+1 when set i already holds e
	for i, set := range sets {
		deduped := make([]int, 0, len(set))
		for _, e := range set {
			if e < 0 || e >= universeSize {
				return nil, &InputError{
					SetIndex: i,
					Element:  e,
					Message:  "element id out of universe range",
				}
			}
			if seen[e] == i+1 {
				continue
			}
			seen[e] = i + 1
			deduped = append(deduped, e)
		}
		m.sets[i] = deduped
		m.incidences += len(deduped)
	}
	return m, nil
}

// UniverseSize returns the number of universe elements.
func (m *Model) UniverseSize() int {
	return m.universeSize
}

// NumSets returns the number of candidate sets.
func (m *Model) NumSets() int {
	return len(m.sets)
}

// Set returns the deduplicated members of candidate set i. The returned
// slice is owned by the Model and must not be modified.
func (m *Model) Set(i int) []int {
	return m.sets[i]
}

// Incidences returns the total number of set-element memberships after
// deduplication. Solver memory and the recompute strategies are bounded
// by this figure.
func (m *Model) Incidences() int {
	return m.incidences
}
