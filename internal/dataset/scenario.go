package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk shape of a benchmark scenario list.
type scenarioFile struct {
	Scenarios []Spec `yaml:"scenarios"`
}

// LoadScenarios reads a YAML file listing named instance specs:
//
//	scenarios:
//	  - name: reference
//	    n_sets: 100000
//	    n_elements: 2000
//	    n_rows: 10000000
//	    seed: 333
//
// Zero-valued dimensions inherit the defaults. Every scenario must carry
// a name.
func LoadScenarios(path string) ([]Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("dataset: parsing scenarios %s: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("dataset: %s contains no scenarios", path)
	}

	defaults := DefaultSpec()
	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		if s.Name == "" {
			return nil, fmt.Errorf("dataset: scenario %d in %s has no name", i, path)
		}
		if s.NSets == 0 {
			s.NSets = defaults.NSets
		}
		if s.NElements == 0 {
			s.NElements = defaults.NElements
		}
		if s.NRows == 0 {
			s.NRows = defaults.NRows
		}
		if s.Seed == 0 {
			s.Seed = defaults.Seed
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Scenarios, nil
}
