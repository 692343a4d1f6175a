package applyService

import (
	"fmt"
	"io"

	"github.com/beam-mm/beammm/domain/repository/moddb"
	"github.com/beam-mm/beammm/domain/repository/preset"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/reconcile"
	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Options controls one reconciliation pass.
type Options struct {
	// GameDir is the --game-dir flag value, empty for automatic discovery.
	GameDir string
	// Overrides are one-shot per-mod toggles applied on top of preset state.
	Overrides []reconcile.Override
	// All expands to an override for every installed mod when non-nil.
	All *bool
	// DryRun prints the db.json diff instead of writing it.
	DryRun bool
}

// ApplyService runs the full read-reconcile-write cycle against the game's
// db.json. The file is re-read at every pass and written back atomically,
// and only when something actually changed.
type ApplyService struct {
	moddbRepo        moddb.Repository
	presetRepo       preset.Repository
	gamePathService  *gamePath.Service
	reconcileService *reconcile.Service
}

func NewApplyService(
	moddbRepo moddb.Repository,
	presetRepo preset.Repository,
	gamePathService *gamePath.Service,
	reconcileService *reconcile.Service,
) *ApplyService {
	return &ApplyService{
		moddbRepo:        moddbRepo,
		presetRepo:       presetRepo,
		gamePathService:  gamePathService,
		reconcileService: reconcileService,
	}
}

// Apply loads db.json and the preset store, reconciles, and saves db.json if
// anything changed. Stale preset references are reported on errOut as
// warnings. Out receives the dry-run diff.
func (s *ApplyService) Apply(out io.Writer, errOut io.Writer, opts Options) (reconcile.Result, error) {
	modsDir, err := s.ResolveModsDir(opts.GameDir)
	if err != nil {
		return reconcile.Result{}, err
	}

	beammmDir, err := s.gamePathService.BeamMMDir()
	if err != nil {
		return reconcile.Result{}, err
	}

	db, err := s.moddbRepo.Load(modsDir)
	if err != nil {
		return reconcile.Result{}, err
	}

	store, err := s.presetRepo.Read(s.gamePathService.PresetsPath(beammmDir))
	if err != nil {
		return reconcile.Result{}, err
	}

	overrides := opts.Overrides
	if opts.All != nil {
		overrides = make([]reconcile.Override, 0, len(db.Mods))
		for _, modName := range db.ModNames() {
			overrides = append(overrides, reconcile.Override{ModName: modName, Enabled: *opts.All})
		}
	}

	var before []byte
	if opts.DryRun {
		before, err = s.moddbRepo.Encode(db)
		if err != nil {
			return reconcile.Result{}, err
		}
	}

	result, err := s.reconcileService.Reconcile(db, store, overrides)
	if err != nil {
		return reconcile.Result{}, err
	}

	for _, stale := range result.Stale {
		fmt.Fprintf(errOut, "Warning: preset '%s' references missing mod '%s'\n", stale.Preset, stale.ModName)
	}

	if opts.DryRun {
		after, err := s.moddbRepo.Encode(db)
		if err != nil {
			return reconcile.Result{}, err
		}
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(before), string(after), false)
		fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
		return result, nil
	}

	if result.Changed() {
		if err := s.moddbRepo.Save(modsDir, db); err != nil {
			return reconcile.Result{}, eris.Wrap(err, "failed to save db.json")
		}
	}

	return result, nil
}

// ResolveModsDir walks game dir discovery, version detection, and the
// per-version mods directory.
func (s *ApplyService) ResolveModsDir(customGameDir string) (string, error) {
	gameDir, err := s.gamePathService.GameDir(customGameDir)
	if err != nil {
		return "", err
	}

	version, err := s.gamePathService.GameVersion(gameDir)
	if err != nil {
		return "", err
	}

	return s.gamePathService.ModsDir(gameDir, version)
}
