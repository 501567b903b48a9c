package organize

import (
	"context"

	"sortd/internal/catalog"
	"sortd/internal/config"
)

// BuildCatalog assembles the effective extension catalog for a run. Layers
// apply lowest-precedence first: built-in defaults (when enabled), persisted
// store mappings, then config file overrides, with the no-extension category
// on top.
func BuildCatalog(ctx context.Context, cfg *config.Config, store *catalog.Store) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	if cfg.Catalog.UseDefaults {
		cat = catalog.NewWithDefaults()
	} else {
		cat = catalog.New()
	}

	if store != nil {
		persisted, err := store.All(ctx)
		if err != nil {
			return nil, err
		}
		for ext, category := range persisted {
			cat.Override(ext, category)
		}
	}

	for ext, category := range cfg.Mappings {
		cat.Override(ext, category)
	}
	if cfg.Catalog.NoExtensionCategory != "" {
		cat.Override(catalog.NoExtension, cfg.Catalog.NoExtensionCategory)
	}
	return cat, nil
}
