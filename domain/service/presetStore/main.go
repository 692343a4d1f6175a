package presetStore

import (
	"sort"

	"github.com/beam-mm/beammm/domain/repository/preset"
	"github.com/beam-mm/beammm/domain/system/ksuid"
	"github.com/beam-mm/beammm/domain/system/timer"
	"github.com/rotisserie/eris"
)

// Summary is one row of preset listing output.
type Summary struct {
	Name     string
	Enabled  bool
	ModCount int
}

// Service owns all preset mutations. Mod membership is never validated
// against the installed mods here; stale references are resolved at
// reconcile time.
type Service struct {
	presetRepo     preset.Repository
	ksuidGenerator ksuid.IKsuid
	timer          timer.ITimer
}

func NewService(presetRepo preset.Repository, ksuidGenerator ksuid.IKsuid, timer timer.ITimer) *Service {
	return &Service{
		presetRepo:     presetRepo,
		ksuidGenerator: ksuidGenerator,
		timer:          timer,
	}
}

// Create adds a new, disabled preset. The name must be unused.
func (s *Service) Create(path string, name string, mods []string) (preset.Preset, error) {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return preset.Preset{}, err
	}

	if _, ok := store.Presets[name]; ok {
		return preset.Preset{}, eris.Wrap(preset.ErrDuplicateName, name)
	}

	p := preset.Preset{
		ID:      s.ksuidGenerator.New(),
		Mods:    dedupe(mods),
		Enabled: false,
	}
	store.Presets[name] = p

	if err := s.write(path, store); err != nil {
		return preset.Preset{}, err
	}
	return p, nil
}

// Delete removes a preset. A missing preset is an error, not a no-op.
func (s *Service) Delete(path string, name string) error {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return err
	}

	if _, ok := store.Presets[name]; !ok {
		return eris.Wrap(preset.ErrNotFound, name)
	}
	delete(store.Presets, name)

	return s.write(path, store)
}

// AddMods appends mods to a preset's membership, skipping duplicates.
func (s *Service) AddMods(path string, name string, mods []string) error {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return err
	}

	p, ok := store.Presets[name]
	if !ok {
		return eris.Wrap(preset.ErrNotFound, name)
	}

	p.Mods = dedupe(append(p.Mods, mods...))
	store.Presets[name] = p

	return s.write(path, store)
}

// RemoveMods removes mods from a preset's membership. Mods not in the preset
// are silently skipped.
func (s *Service) RemoveMods(path string, name string, mods []string) error {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return err
	}

	p, ok := store.Presets[name]
	if !ok {
		return eris.Wrap(preset.ErrNotFound, name)
	}

	remove := map[string]bool{}
	for _, m := range mods {
		remove[m] = true
	}
	kept := make([]string, 0, len(p.Mods))
	for _, m := range p.Mods {
		if !remove[m] {
			kept = append(kept, m)
		}
	}
	p.Mods = kept
	store.Presets[name] = p

	return s.write(path, store)
}

// SetEnabled toggles a preset's own flag. The mods themselves change on the
// next reconciliation pass.
func (s *Service) SetEnabled(path string, name string, enabled bool) (preset.Preset, error) {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return preset.Preset{}, err
	}

	p, ok := store.Presets[name]
	if !ok {
		return preset.Preset{}, eris.Wrap(preset.ErrNotFound, name)
	}

	p.Enabled = enabled
	store.Presets[name] = p

	if err := s.write(path, store); err != nil {
		return preset.Preset{}, err
	}
	return p, nil
}

// Get returns a single preset by name.
func (s *Service) Get(path string, name string) (preset.Preset, error) {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return preset.Preset{}, err
	}

	p, ok := store.Presets[name]
	if !ok {
		return preset.Preset{}, eris.Wrap(preset.ErrNotFound, name)
	}
	return p, nil
}

// List returns all presets ordered by name.
func (s *Service) List(path string) ([]Summary, error) {
	store, err := s.presetRepo.Read(path)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(store.Presets))
	for name, p := range store.Presets {
		summaries = append(summaries, Summary{
			Name:     name,
			Enabled:  p.Enabled,
			ModCount: len(p.Mods),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return summaries, nil
}

func (s *Service) write(path string, store preset.Store) error {
	store.UpdatedAt = s.timer.Now()
	return s.presetRepo.Write(path, store)
}

func dedupe(mods []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(mods))
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			result = append(result, m)
		}
	}
	return result
}
