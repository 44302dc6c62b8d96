// cmd/randwalk/config.go
package randwalk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randwalk/shifttable"
)

// tableFile is the YAML shape of a shift-table definition:
//
//	entries:
//	  - threshold: 0.5
//	    step: -1
//	  - threshold: 1.0
//	    step: 1
type tableFile struct {
	Entries []tableEntry `yaml:"entries"`
}

type tableEntry struct {
	Threshold float64 `yaml:"threshold"`
	Step      int     `yaml:"step"`
}

// LoadTable reads a YAML shift-table file and builds a validated table.
// Validation errors from shifttable.New carry through unchanged, so a
// malformed file fails before any simulation work starts.
func LoadTable(path string) (*shifttable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse table file %s: %w", path, err)
	}

	entries := make([]shifttable.Entry, len(tf.Entries))
	for i, e := range tf.Entries {
		entries[i] = shifttable.Entry{Threshold: e.Threshold, Step: e.Step}
	}
	return shifttable.New(entries)
}
