package config

import (
	"fmt"
	"maps"
	"slices"
)

// Preset describes one puzzle in the .sopa file.
// Zero values mean "not set" and fall back to the defaults section, except
// for the placement limits: zero is a valid limit, so they are pointers and
// nil means "not set".
type Preset struct {
	// Words are the words to hide. They are normalized when loaded by the CLI.
	Words []string `yaml:"words,omitempty"`

	// Rows and Cols override the board dimensions.
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`

	// Seed pins the puzzle layout.
	Seed uint64 `yaml:"seed,omitempty"`

	// MaxAttempts overrides the random placement budget per word.
	MaxAttempts *int `yaml:"maxAttempts,omitempty"`

	// MaxRestarts overrides the whole-puzzle restart budget.
	MaxRestarts *int `yaml:"maxRestarts,omitempty"`
}

// File represents the structure of the .sopa configuration file.
type File struct {
	// Defaults apply to every preset unless overridden.
	Defaults Preset `yaml:"defaults,omitempty"`

	// Puzzles maps a preset name to its settings.
	Puzzles map[string]Preset `yaml:"puzzles,omitempty"`
}

// Preset returns the named preset merged over the defaults section.
// Words are not merged: a preset with words replaces the default list.
func (f *File) Preset(name string) (Preset, error) {
	p, ok := f.Puzzles[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	result := f.Defaults
	if len(p.Words) > 0 {
		result.Words = p.Words
	}
	if p.Rows != 0 {
		result.Rows = p.Rows
	}
	if p.Cols != 0 {
		result.Cols = p.Cols
	}
	if p.Seed != 0 {
		result.Seed = p.Seed
	}
	if p.MaxAttempts != nil {
		result.MaxAttempts = p.MaxAttempts
	}
	if p.MaxRestarts != nil {
		result.MaxRestarts = p.MaxRestarts
	}

	return result, nil
}

// Names returns the preset names in sorted order.
func (f *File) Names() []string {
	return slices.Sorted(maps.Keys(f.Puzzles))
}
