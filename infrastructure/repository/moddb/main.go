package moddb

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/beam-mm/beammm/domain/repository/moddb"
	"github.com/rotisserie/eris"
)

const filename = "db.json"

type repositoryImpl struct{}

func NewRepository() moddb.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Load(modsDir string) (*moddb.ModDb, error) {
	content, err := os.ReadFile(filepath.Join(modsDir, filename))
	if err != nil {
		return nil, eris.Wrap(err, "failed to read db.json")
	}

	var db moddb.ModDb
	if err := json.Unmarshal(content, &db); err != nil {
		if eris.Is(err, moddb.ErrParse) {
			return nil, err
		}
		return nil, eris.Wrap(moddb.ErrParse, err.Error())
	}

	return &db, nil
}

// Save writes db.json via a temp file in the same directory followed by a
// rename, so the game never sees a truncated file.
func (r *repositoryImpl) Save(modsDir string, db *moddb.ModDb) error {
	content, err := r.Encode(db)
	if err != nil {
		return err
	}

	target := filepath.Join(modsDir, filename)
	tmp, err := os.CreateTemp(modsDir, filename+".tmp*")
	if err != nil {
		return eris.Wrap(err, "failed to create temp file")
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to write db.json")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to write db.json")
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "failed to replace db.json")
	}

	return nil
}

func (r *repositoryImpl) Encode(db *moddb.ModDb) ([]byte, error) {
	content, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "failed to serialize db.json")
	}
	return content, nil
}
