package gamePath

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beam-mm/beammm/domain/repository/config"
	"github.com/beam-mm/beammm/domain/repository/file"
	"github.com/rotisserie/eris"
)

var (
	// ErrDirNotFound means a directory that must exist does not.
	ErrDirNotFound = errors.New("directory not found")
	// ErrGameDirNotFound means the BeamNG.drive data directory could not be
	// discovered automatically. Launching the game once creates it.
	ErrGameDirNotFound = errors.New("could not find BeamNG.drive data directory")
	// ErrVersion means the game version could not be determined.
	ErrVersion = errors.New("could not determine game version")
)

const gameDirName = "BeamNG.drive"

// Service resolves the game's data directories and BeamMM's own.
type Service struct {
	fileRepo   file.Repository
	configRepo config.Repository
}

func NewService(fileRepo file.Repository, configRepo config.Repository) *Service {
	return &Service{
		fileRepo:   fileRepo,
		configRepo: configRepo,
	}
}

// GameDir returns the BeamNG.drive data directory. Priority: the custom
// argument, the BEAMMM_GAME_DIR environment variable, the game-dir entry in
// beammm.yml, then probing the platform data directories.
func (s *Service) GameDir(custom string) (string, error) {
	if custom != "" {
		if !s.fileRepo.Exists(custom) {
			return "", eris.Wrap(ErrDirNotFound, custom)
		}
		return custom, nil
	}

	if envDir := os.Getenv("BEAMMM_GAME_DIR"); envDir != "" {
		if !s.fileRepo.Exists(envDir) {
			return "", eris.Wrap(ErrDirNotFound, envDir)
		}
		return envDir, nil
	}

	cfg, err := s.AppConfig()
	if err != nil {
		return "", err
	}
	if cfg.GameDir != "" {
		if !s.fileRepo.Exists(cfg.GameDir) {
			return "", eris.Wrap(ErrDirNotFound, cfg.GameDir)
		}
		return cfg.GameDir, nil
	}

	for _, base := range dataDirCandidates() {
		dir := filepath.Join(base, gameDirName)
		if s.fileRepo.Exists(dir) {
			return dir, nil
		}
	}

	return "", ErrGameDirNotFound
}

// GameVersion returns the game's major.minor version, e.g. "0.32".
// Reads version.txt when present; otherwise falls back to the numerically
// greatest version-named directory under the game dir.
func (s *Service) GameVersion(gameDir string) (string, error) {
	if !s.fileRepo.Exists(gameDir) {
		return "", eris.Wrap(ErrDirNotFound, gameDir)
	}

	versionPath := filepath.Join(gameDir, "version.txt")
	if s.fileRepo.Exists(versionPath) {
		content, err := s.fileRepo.Read(versionPath)
		if err != nil {
			return "", eris.Wrap(err, "failed to read version.txt")
		}

		parts := strings.Split(strings.TrimSpace(string(content)), ".")
		if len(parts) < 2 {
			return "", eris.Wrap(ErrVersion, "unexpected version.txt format")
		}
		return parts[0] + "." + parts[1], nil
	}

	dirs, err := s.fileRepo.ListDirs(gameDir)
	if err != nil {
		return "", eris.Wrap(err, "failed to list game directory")
	}

	best := ""
	bestNum := 0.0
	for _, dir := range dirs {
		num, err := strconv.ParseFloat(dir, 64)
		if err != nil {
			continue
		}
		if best == "" || num > bestNum {
			best = dir
			bestNum = num
		}
	}
	if best == "" {
		return "", eris.Wrap(ErrVersion, "no version directories found")
	}

	return best, nil
}

// ModsDir returns the per-version mods directory holding db.json.
func (s *Service) ModsDir(gameDir string, version string) (string, error) {
	if !s.fileRepo.Exists(gameDir) {
		return "", eris.Wrap(ErrDirNotFound, gameDir)
	}

	modsDir := filepath.Join(gameDir, version, "mods")
	if !s.fileRepo.Exists(modsDir) {
		// Created by the game on first launch.
		return "", eris.Wrap(ErrDirNotFound, modsDir)
	}

	return modsDir, nil
}

// BeamMMDir returns BeamMM's own data directory, creating it if needed.
func (s *Service) BeamMMDir() (string, error) {
	candidates := dataDirCandidates()
	if len(candidates) == 0 {
		return "", eris.New("could not determine a data directory for BeamMM")
	}

	dir := filepath.Join(candidates[0], "BeamMM")
	if err := s.fileRepo.MkdirAll(dir); err != nil {
		return "", eris.Wrap(err, "failed to create BeamMM directory")
	}
	return dir, nil
}

// PresetsPath returns the preset store file path inside the BeamMM dir.
func (s *Service) PresetsPath(beammmDir string) string {
	return filepath.Join(beammmDir, "presets.json")
}

// ConfigPath returns the beammm.yml path inside the BeamMM dir.
func (s *Service) ConfigPath(beammmDir string) string {
	return filepath.Join(beammmDir, "beammm.yml")
}

// AppConfig loads beammm.yml, which may not exist yet.
func (s *Service) AppConfig() (*config.Config, error) {
	beammmDir, err := s.BeamMMDir()
	if err != nil {
		return nil, err
	}
	return s.configRepo.Read(s.ConfigPath(beammmDir))
}

// dataDirCandidates mirrors where the game stores its data per platform:
// %LOCALAPPDATA% on Windows, the user config dir elsewhere.
func dataDirCandidates() []string {
	var candidates []string

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		candidates = append(candidates, localAppData)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, configDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".local", "share"))
	}

	return candidates
}
