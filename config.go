package kotei

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("kotei: invalid config")

// Config sizes a Storage and controls its diagnostics. It can be decoded from
// TOML or YAML.
type Config struct {
	// MaxEntities bounds entity identifiers to [0, MaxEntities).
	MaxEntities int `toml:"max_entities" yaml:"max_entities"`
	// NumCids is the number of registered component types.
	NumCids int `toml:"num_cids" yaml:"num_cids"`
	// Verbosity: 0 silent, 1 logs creation, 2 logs creation and deletion.
	Verbosity int `toml:"verbosity" yaml:"verbosity"`
	// Debug turns invalid-argument assertions into panics.
	Debug bool `toml:"debug" yaml:"debug"`
	// TrustIDs routes Lookup to the unchecked accessor.
	TrustIDs bool          `toml:"trust_ids" yaml:"trust_ids"`
	Logging  LoggingConfig `toml:"logging" yaml:"logging"`
}

// LoggingConfig selects the level and encoding of the logger NewLogger
// builds.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// DefaultConfig returns the configuration used for zero-valued fields.
func DefaultConfig() Config {
	return Config{
		MaxEntities: DefaultMaxEntities,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration describes a usable table.
func (c Config) Validate() error {
	if c.MaxEntities < 2 {
		return fmt.Errorf("%w: max_entities must be at least 2, got %d", ErrInvalidConfig, c.MaxEntities)
	}
	if uint64(c.MaxEntities) > MaxEntitiesLimit {
		return fmt.Errorf("%w: max_entities must be at most %d, got %d", ErrInvalidConfig, uint64(MaxEntitiesLimit), c.MaxEntities)
	}
	if c.NumCids < 0 {
		return fmt.Errorf("%w: num_cids must not be negative, got %d", ErrInvalidConfig, c.NumCids)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("%w: verbosity must be 0, 1 or 2, got %d", ErrInvalidConfig, c.Verbosity)
	}
	return nil
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
