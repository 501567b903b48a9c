package testsupport

import (
	"testing"

	"sortd/internal/catalog"
	"sortd/internal/config"
)

// MustOpenStore opens the catalog mapping store for the test configuration
// and closes it when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.OpenStore(cfg.Catalog.DatabasePath)
	if err != nil {
		t.Fatalf("open catalog store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close catalog store: %v", err)
		}
	})
	return store
}
