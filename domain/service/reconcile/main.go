package reconcile

import (
	"sort"

	"github.com/beam-mm/beammm/domain/repository/moddb"
	"github.com/beam-mm/beammm/domain/repository/preset"
	"github.com/rotisserie/eris"
)

// Override is a one-shot enable/disable of a single mod. It applies only to
// the invocation that carries it and always beats preset state.
type Override struct {
	ModName string
	Enabled bool
}

// Change records one mod whose effective flag flipped.
type Change struct {
	ModName string
	From    bool
	To      bool
}

// StaleRef is a preset reference to a mod that is no longer installed.
// Reported as a warning, never an error: mods can be removed outside BeamMM.
type StaleRef struct {
	Preset  string
	ModName string
}

type Result struct {
	Changes []Change
	Stale   []StaleRef
}

// Changed reports whether the pass flipped at least one mod. Callers skip the
// db.json write when it is false, so no-op runs never touch the game's file.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Reconcile computes the final active flag for every installed mod and
// applies it to db in place.
//
// Layered override computation:
//  1. Baseline: each mod keeps its current flag. Mods no preset or override
//     touches are never forced to a default.
//  2. Mods of enabled presets become active.
//  3. Mods of disabled presets become inactive, unless an enabled preset also
//     references them. Enabled wins the tie: turning preset A on must not be
//     silently fought by a preset that is off.
//  4. Overrides apply last, per mod. Most specific intent wins.
//
// An override naming a missing mod is an error; a preset naming one is only
// a stale reference.
func (s *Service) Reconcile(db *moddb.ModDb, store preset.Store, overrides []Override) (Result, error) {
	result := Result{}

	wantActive := map[string]bool{}
	wantInactive := map[string]bool{}

	for _, name := range store.Names() {
		p := store.Presets[name]
		for _, modName := range p.Mods {
			if _, ok := db.Mods[modName]; !ok {
				result.Stale = append(result.Stale, StaleRef{Preset: name, ModName: modName})
				continue
			}
			if p.Enabled {
				wantActive[modName] = true
			} else {
				wantInactive[modName] = true
			}
		}
	}

	desired := map[string]bool{}
	for modName, mod := range db.Mods {
		desired[modName] = mod.Active
	}
	for modName := range wantActive {
		desired[modName] = true
	}
	for modName := range wantInactive {
		if !wantActive[modName] {
			desired[modName] = false
		}
	}
	for _, o := range overrides {
		if _, ok := db.Mods[o.ModName]; !ok {
			return Result{}, eris.Wrap(moddb.ErrModNotFound, o.ModName)
		}
		desired[o.ModName] = o.Enabled
	}

	for modName, mod := range db.Mods {
		if mod.Active != desired[modName] {
			result.Changes = append(result.Changes, Change{
				ModName: modName,
				From:    mod.Active,
				To:      desired[modName],
			})
			mod.Active = desired[modName]
		}
	}

	sort.Slice(result.Changes, func(i, j int) bool {
		return result.Changes[i].ModName < result.Changes[j].ModName
	})
	sort.Slice(result.Stale, func(i, j int) bool {
		if result.Stale[i].Preset != result.Stale[j].Preset {
			return result.Stale[i].Preset < result.Stale[j].Preset
		}
		return result.Stale[i].ModName < result.Stale[j].ModName
	})

	return result, nil
}
