package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sortd/internal/catalog"
	"sortd/internal/services"
)

// Record describes one source file awaiting classification.
type Record struct {
	// Path is the absolute source location.
	Path string
	// RelPath is the location relative to the walk root.
	RelPath string
	// Name is the base filename, kept as the proposed destination name.
	Name string
	// Size in bytes at walk time.
	Size int64
	// Ext is the normalized extension: lower-case, no leading dot, empty
	// when the file has none.
	Ext string
}

// Walk traverses root and returns a record per regular file in lexicographic
// path order. Entries that disappear or become unreadable mid-walk are
// skipped; only an unusable root aborts.
func Walk(root string) ([]Record, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, services.Wrap(services.ErrInvalidSource, "walk", "resolve root", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, services.Wrap(services.ErrInvalidSource, "walk", "stat root", absRoot, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrInvalidSource, "walk", "check root",
			absRoot+" is not a directory", nil)
	}

	var records []Record
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			// Unreadable subtree: skip it, the per-file policy applies.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// Symlinks (and other irregular entries) are never followed.
		if !d.Type().IsRegular() {
			return nil
		}
		fileInfo, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = d.Name()
		}
		records = append(records, Record{
			Path:    path,
			RelPath: rel,
			Name:    d.Name(),
			Size:    fileInfo.Size(),
			Ext:     extensionOf(d.Name()),
		})
		return nil
	})
	if walkErr != nil {
		return nil, services.Wrap(services.ErrInvalidSource, "walk", "traverse", absRoot, walkErr)
	}

	// WalkDir visits entries in lexical order per directory; sorting the flat
	// list pins the full-path ordering regardless of nesting.
	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, nil
}

func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return catalog.NoExtension
	}
	// A leading dot with nothing after it (or a dotfile like ".profile")
	// does not count as an extension.
	if ext == name {
		return catalog.NoExtension
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
