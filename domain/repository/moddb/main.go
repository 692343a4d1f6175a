//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package moddb

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/rotisserie/eris"
)

var (
	// ErrParse means db.json was not valid JSON or was missing the mods table.
	ErrParse = errors.New("failed to parse db.json")
	// ErrModNotFound means the referenced mod does not exist in db.json.
	ErrModNotFound = errors.New("mod not found")
)

// Mod is a single installed mod as the game records it in db.json.
// Only the active flag is interpreted; every other field belongs to the game
// and is carried through unchanged.
type Mod struct {
	Active bool
	Extra  map[string]json.RawMessage
}

func (m *Mod) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	active, ok := fields["active"]
	if !ok {
		return eris.Wrap(ErrParse, "mod entry has no active field")
	}
	if err := json.Unmarshal(active, &m.Active); err != nil {
		return err
	}

	delete(fields, "active")
	m.Extra = fields
	return nil
}

func (m Mod) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(m.Extra)+1)
	for k, v := range m.Extra {
		fields[k] = v
	}

	active, err := json.Marshal(m.Active)
	if err != nil {
		return nil, err
	}
	fields["active"] = active

	return json.Marshal(fields)
}

// ModDb is the in-memory model of the game's db.json. The game owns the file
// schema; top-level fields other than mods are carried through unchanged.
type ModDb struct {
	Mods  map[string]*Mod
	Extra map[string]json.RawMessage
}

func (d *ModDb) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	mods, ok := fields["mods"]
	if !ok {
		return eris.Wrap(ErrParse, "db.json has no mods field")
	}
	if err := json.Unmarshal(mods, &d.Mods); err != nil {
		return err
	}

	delete(fields, "mods")
	d.Extra = fields
	return nil
}

func (d ModDb) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.Extra)+1)
	for k, v := range d.Extra {
		fields[k] = v
	}

	mods, err := json.Marshal(d.Mods)
	if err != nil {
		return nil, err
	}
	fields["mods"] = mods

	return json.Marshal(fields)
}

// SetActive sets a single mod's active flag.
func (d *ModDb) SetActive(modName string, active bool) error {
	mod, ok := d.Mods[modName]
	if !ok {
		return eris.Wrap(ErrModNotFound, modName)
	}
	mod.Active = active
	return nil
}

// SetAllActive sets every mod's active flag.
func (d *ModDb) SetAllActive(active bool) {
	for _, mod := range d.Mods {
		mod.Active = active
	}
}

// IsActive reports whether a mod is currently active.
func (d *ModDb) IsActive(modName string) (bool, error) {
	mod, ok := d.Mods[modName]
	if !ok {
		return false, eris.Wrap(ErrModNotFound, modName)
	}
	return mod.Active, nil
}

// ModNames returns the names of all installed mods, sorted.
func (d *ModDb) ModNames() []string {
	names := make([]string, 0, len(d.Mods))
	for name := range d.Mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Repository interface {
	// Load reads and parses <modsDir>/db.json.
	Load(modsDir string) (*ModDb, error)
	// Save writes the database back to <modsDir>/db.json with an atomic replace.
	Save(modsDir string, db *ModDb) error
	// Encode returns the serialized form Save would write.
	Encode(db *ModDb) ([]byte, error)
}
