package kotei_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/edwinsyarief/kotei"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// go test -run ^TestLoadConfig$ . -count 1
func TestLoadConfig(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeConfig(t, "storage.toml", `
max_entities = 1024
num_cids = 4
verbosity = 2
debug = true

[logging]
level = "debug"
format = "json"
`)
		cfg, err := kotei.LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.MaxEntities != 1024 || cfg.NumCids != 4 || cfg.Verbosity != 2 || !cfg.Debug {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
			t.Errorf("unexpected logging config %+v", cfg.Logging)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeConfig(t, "storage.yaml", `
num_cids: 3
trust_ids: true
`)
		cfg, err := kotei.LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.MaxEntities != kotei.DefaultMaxEntities {
			t.Errorf("expected default max_entities, got %d", cfg.MaxEntities)
		}
		if cfg.NumCids != 3 || !cfg.TrustIDs {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.Logging.Format != "console" {
			t.Errorf("expected default logging format, got %q", cfg.Logging.Format)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		path := writeConfig(t, "storage.toml", "max_entities = 1\n")
		_, err := kotei.LoadConfig(path)
		if !errors.Is(err, kotei.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeConfig(t, "storage.yml", "num_cids: [oops\n")
		if _, err := kotei.LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		path := writeConfig(t, "storage.json", "{}")
		if _, err := kotei.LoadConfig(path); err == nil {
			t.Error("expected an error for an unsupported extension")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := kotei.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected a not-exist error, got %v", err)
		}
	})
}

// go test -run ^TestValidate$ . -count 1
func TestValidate(t *testing.T) {
	type validateCase struct {
		name string
		cfg  kotei.Config
		ok   bool
	}
	cases := []validateCase{
		{"Default", kotei.DefaultConfig(), true},
		{"SmallCapacity", kotei.Config{MaxEntities: 1}, false},
		{"NegativeCids", kotei.Config{MaxEntities: 8, NumCids: -1}, false},
		{"Verbosity", kotei.Config{MaxEntities: 8, Verbosity: 3}, false},
	}
	if strconv.IntSize == 64 {
		limit := uint64(kotei.MaxEntitiesLimit)
		cases = append(cases,
			validateCase{"LargestCapacity", kotei.Config{MaxEntities: int(limit)}, true},
			validateCase{"CapacityAboveEid", kotei.Config{MaxEntities: int(limit + 1)}, false},
		)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if (err == nil) != c.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, c.ok)
			}
		})
	}
}
