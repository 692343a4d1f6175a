package testUtil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

// BeginTestSpace creates a temp directory, chdirs into it, and points
// LOCALAPPDATA at it so path discovery stays inside the space.
func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	assert.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	assert.NoError(t, err)

	os.Chdir(tempDir)
	t.Setenv("LOCALAPPDATA", tempDir)

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

// WriteGameDir lays out a minimal BeamNG.drive data dir with a version.txt
// and a mods/db.json, returning the game dir path.
func (s Space) WriteGameDir(version string, dbJSON []byte) string {
	s.t.Helper()

	gameDir := filepath.Join(s.Dir, "BeamNG.drive")
	s.WriteFile(filepath.Join(gameDir, "version.txt"), []byte(version+".1.0\n"))
	s.WriteFile(filepath.Join(gameDir, version, "mods", "db.json"), dbJSON)

	return gameDir
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(path)
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.NoError(s.t, err)
}

func (s Space) AssertNotExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.True(s.t, os.IsNotExist(err))
}
