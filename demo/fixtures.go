package demo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrFixtureTooLarge flags a fixture list that would blow past a
// container ceiling.
var ErrFixtureTooLarge = errors.New("fixture list too large")

// Fixtures holds the element lists the scenarios build their sets from.
// A YAML fixtures file overrides any subset of them:
//
//	basic: [3, 1, 4, 1, 5]
//	words: [sets, within, sets]
type Fixtures struct {
	// Basic feeds the basic scenario.
	Basic []int `yaml:"basic"`

	// Subset and Superset are the subset-relation pair. Subset doubles
	// as the larger power-set base.
	Subset   []int `yaml:"subset"`
	Superset []int `yaml:"superset"`

	// Left and Right feed the binary algebra operations.
	Left  []int `yaml:"left"`
	Right []int `yaml:"right"`

	// Power is the small power-set base.
	Power []int `yaml:"power"`

	// Mixed and Words become the two members of the heterogeneous
	// nested set.
	Mixed []int    `yaml:"mixed"`
	Words []string `yaml:"words"`
}

// DefaultFixtures returns the built-in element lists.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Basic:    []int{0, 2, 5, 9, 13, 1, 7, 42},
		Subset:   []int{1, 3, 5, 6, 9, 12, 15},
		Superset: []int{1, 2, 3, 4, 5, 6, 9, 12, 13, 15, 18, 19},
		Left:     []int{1, 2, 3, 4, 5},
		Right:    []int{8, 7, 6, 5, 4},
		Power:    []int{1, 3, 5},
		Mixed:    []int{137, 1, 42},
		Words:    []string{"hello", "goodbye", "power set"},
	}
}

// LoadFixtures reads a YAML fixtures file. Lists absent from the file
// keep their defaults.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("reading fixtures: %w", err)
	}

	fixtures := DefaultFixtures()

	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}

	return fixtures, nil
}
