package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"sortd/internal/services"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current mapping store schema version.
const schemaVersion = 1

// Store persists user-assigned extension mappings in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore initializes or connects to the mapping database. A database that
// cannot be read or whose schema does not match fails closed: the error is
// tagged fatal so startup aborts instead of silently dropping mappings.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "ensure state dir", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "open mapping db", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, services.Wrap(services.ErrConfiguration, "catalog", "apply pragma", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "catalog", "inspect mapping db", s.path, err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return services.Wrap(services.ErrConfiguration, "catalog", "create schema", s.path, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return services.Wrap(services.ErrConfiguration, "catalog", "record schema version", s.path, err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return services.Wrap(services.ErrConfiguration, "catalog", "read schema version", s.path, err)
	}
	if version != schemaVersion {
		return services.Wrap(services.ErrConfiguration, "catalog", "schema version",
			fmt.Sprintf("mapping db %s has schema v%d, expected v%d", s.path, version, schemaVersion), nil)
	}
	return nil
}

// All loads every persisted mapping with normalized extension keys.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT extension, category FROM extension_mappings")
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "load mappings", s.path, err)
	}
	defer rows.Close()

	mappings := make(map[string]string)
	for rows.Next() {
		var ext, category string
		if err := rows.Scan(&ext, &category); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "catalog", "scan mapping", s.path, err)
		}
		mappings[Normalize(ext)] = category
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "iterate mappings", s.path, err)
	}
	return mappings, nil
}

// Put upserts one mapping.
func (s *Store) Put(ctx context.Context, ext, category string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO extension_mappings (extension, category, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(extension) DO UPDATE SET category = excluded.category, updated_at = excluded.updated_at`,
		Normalize(ext), category, now,
	)
	if err != nil {
		return fmt.Errorf("persist mapping %q: %w", ext, err)
	}
	return nil
}

// Delete removes a mapping. Deleting an absent extension is not an error.
func (s *Store) Delete(ctx context.Context, ext string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM extension_mappings WHERE extension = ?", Normalize(ext)); err != nil {
		return fmt.Errorf("delete mapping %q: %w", ext, err)
	}
	return nil
}
