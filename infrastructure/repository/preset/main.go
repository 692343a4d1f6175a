package preset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/beam-mm/beammm/domain/repository/preset"
	"github.com/rotisserie/eris"
)

type repositoryImpl struct{}

func NewRepository() preset.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Read(path string) (preset.Store, error) {
	store := preset.Store{Presets: map[string]preset.Preset{}}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// First run, nothing saved yet.
			return store, nil
		}
		return preset.Store{}, eris.Wrap(err, "failed to read presets.json")
	}

	if err := json.Unmarshal(content, &store); err != nil {
		return preset.Store{}, eris.Wrap(preset.ErrParse, err.Error())
	}
	if store.Presets == nil {
		store.Presets = map[string]preset.Preset{}
	}

	return store, nil
}

func (r *repositoryImpl) Write(path string, store preset.Store) error {
	content, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to serialize presets.json")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return eris.Wrap(err, "failed to create presets directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return eris.Wrap(err, "failed to create temp file")
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to write presets.json")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to write presets.json")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to replace presets.json")
	}

	return nil
}
