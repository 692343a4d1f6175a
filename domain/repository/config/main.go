//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package config

// Config is BeamMM's own optional configuration, stored as beammm.yml in the
// BeamMM data directory.
type Config struct {
	// GameDir overrides the automatic BeamNG.drive data directory discovery.
	GameDir string `yaml:"game-dir"`
	// ConfirmAll answers yes to every confirmation prompt by default.
	ConfirmAll bool `yaml:"confirm-all"`
}

type Repository interface {
	// Read loads beammm.yml. A missing file yields a zero Config.
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
