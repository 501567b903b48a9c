package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "inbox")
	cfg.Paths.DestDir = filepath.Join(base, "sorted")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Catalog.DatabasePath = filepath.Join(base, "state", "catalog.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithNoExtensionCategory routes extension-less files to the given category.
func WithNoExtensionCategory(category string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.NoExtensionCategory = category
	}
}

// WithMappings replaces the config mapping overrides.
func WithMappings(mappings map[string]string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Mappings = mappings
	}
}
