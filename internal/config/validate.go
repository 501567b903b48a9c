package config

import (
	"fmt"
	"strings"
)

// reservedCategoryChars are rejected in category folder names.
const reservedCategoryChars = `/\:*?"<>|`

// Validate ensures the configuration is usable. Any failure here aborts
// startup; a partially applied mapping table is never accepted.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateMappings(); err != nil {
		return err
	}
	if c.Catalog.NoExtensionCategory != "" {
		if err := ValidateCategoryName(c.Catalog.NoExtensionCategory); err != nil {
			return fmt.Errorf("catalog.no_extension_category: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateMappings() error {
	for ext, category := range c.Mappings {
		if category == "" {
			return fmt.Errorf("mappings: extension %q maps to an empty category", ext)
		}
		if err := ValidateCategoryName(category); err != nil {
			return fmt.Errorf("mappings: extension %q: %w", ext, err)
		}
	}
	return nil
}

// ValidateCategoryName rejects category folder names that cannot be used as
// a single destination path element.
func ValidateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("category name is empty")
	}
	if strings.ContainsAny(trimmed, reservedCategoryChars) {
		return fmt.Errorf("category name %q contains reserved characters", trimmed)
	}
	if strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		return fmt.Errorf("category name %q may not start or end with a dot", trimmed)
	}
	return nil
}
