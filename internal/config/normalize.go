package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeWatch()
	c.normalizeLogging()
	c.normalizeMappings()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.SourceDir, err = expandPath(strings.TrimSpace(c.Paths.SourceDir)); err != nil {
		return fmt.Errorf("paths.source_dir: %w", err)
	}
	if c.Paths.DestDir, err = expandPath(strings.TrimSpace(c.Paths.DestDir)); err != nil {
		return fmt.Errorf("paths.dest_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	if strings.TrimSpace(c.Catalog.DatabasePath) == "" {
		c.Catalog.DatabasePath = defaultCatalogDB
	}
	var err error
	if c.Catalog.DatabasePath, err = expandPath(c.Catalog.DatabasePath); err != nil {
		return fmt.Errorf("catalog.database_path: %w", err)
	}
	c.Catalog.NoExtensionCategory = strings.TrimSpace(c.Catalog.NoExtensionCategory)
	return nil
}

func (c *Config) normalizeOrganize() {
	if c.Organize.MaxRenameAttempts <= 0 {
		c.Organize.MaxRenameAttempts = defaultMaxRenameAttempts
	}
	if c.Organize.HashBufferKiB <= 0 {
		c.Organize.HashBufferKiB = defaultHashBufferKiB
	}
}

func (c *Config) normalizeWatch() {
	if c.Watch.DebounceMillis <= 0 {
		c.Watch.DebounceMillis = defaultDebounceMillis
	}
	if c.Watch.SettleSeconds <= 0 {
		c.Watch.SettleSeconds = defaultSettleSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeMappings trims keys and values. Extension keys keep their raw
// shape here; the catalog applies its own normalization when the mappings
// are installed.
func (c *Config) normalizeMappings() {
	if len(c.Mappings) == 0 {
		return
	}
	cleaned := make(map[string]string, len(c.Mappings))
	for ext, category := range c.Mappings {
		cleaned[strings.TrimSpace(ext)] = strings.TrimSpace(category)
	}
	c.Mappings = cleaned
}
