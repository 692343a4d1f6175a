//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package preset

import (
	"errors"
	"sort"
	"time"
)

var (
	// ErrParse means presets.json was not valid JSON.
	ErrParse = errors.New("failed to parse presets.json")
	// ErrNotFound means the referenced preset does not exist.
	ErrNotFound = errors.New("preset not found")
	// ErrDuplicateName means a preset with the same name already exists.
	ErrDuplicateName = errors.New("preset already exists")
)

// Preset is a named group of mods toggled as a unit. Mods are referenced by
// name only; a preset may reference mods that are no longer installed.
type Preset struct {
	ID      string   `json:"id"`
	Mods    []string `json:"mods"`
	Enabled bool     `json:"enabled"`
}

// Store is the full persisted preset state, keyed by preset name.
// Any number of presets may be enabled at the same time.
type Store struct {
	Presets   map[string]Preset `json:"presets"`
	UpdatedAt time.Time         `json:"updatedAt,omitempty"`
}

// Names returns all preset names, sorted.
func (s Store) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Repository interface {
	// Read loads the preset store. A missing file yields an empty store.
	Read(path string) (Store, error)
	// Write persists the preset store with an atomic replace.
	Write(path string, store Store) error
}
