package catalog

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoExtension is the sentinel key routing files that have no extension.
// It only matches when a mapping for it has been set explicitly.
const NoExtension = ""

// Catalog holds the extension → category mapping consulted during planning.
type Catalog struct {
	mu       sync.Mutex
	mappings map[string]string
	unmapped map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		mappings: make(map[string]string),
		unmapped: make(map[string]int),
	}
}

// NewWithDefaults returns a catalog seeded with the built-in extension map.
func NewWithDefaults() *Catalog {
	c := New()
	for ext, category := range defaultMappings {
		c.mappings[ext] = category
	}
	return c
}

// Normalize case-folds an extension and strips the leading dot. An empty
// result is the NoExtension sentinel.
func Normalize(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}

// Lookup resolves the category for an extension. A miss is recorded so
// Unmapped can report every extension seen without a mapping this run.
func (c *Catalog) Lookup(ext string) (string, bool) {
	key := Normalize(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	category, ok := c.mappings[key]
	if !ok {
		c.unmapped[key]++
		return "", false
	}
	return category, true
}

// Override installs or replaces a mapping. Idempotent, last write wins.
// A previously recorded miss for the extension is cleared.
func (c *Catalog) Override(ext, category string) {
	key := Normalize(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mappings[key] = category
	delete(c.unmapped, key)
}

// Remove deletes a mapping so the extension becomes unmapped again.
func (c *Catalog) Remove(ext string) {
	key := Normalize(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.mappings, key)
}

// Unmapped returns the extensions seen without a mapping this run with the
// number of lookups per extension.
func (c *Catalog) Unmapped() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.unmapped))
	for ext, count := range c.unmapped {
		out[ext] = count
	}
	return out
}

// ResetSeen clears the unmapped tracking between runs.
func (c *Catalog) ResetSeen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmapped = make(map[string]int)
}

// Mapping is one extension → category pair.
type Mapping struct {
	Extension string
	Category  string
}

// Mappings returns the current table sorted by extension.
func (c *Catalog) Mappings() []Mapping {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Mapping, 0, len(c.mappings))
	for ext, category := range c.mappings {
		out = append(out, Mapping{Extension: ext, Category: category})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Extension < out[j].Extension })
	return out
}

var titleCaser = cases.Title(language.English)

// CanonicalCategory tidies a user-entered category name: whitespace trimmed,
// and all-lowercase input title-cased so prompt answers like "images" become
// "Images". Mixed-case input is preserved as typed.
func CanonicalCategory(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}
	if trimmed == strings.ToLower(trimmed) {
		return titleCaser.String(trimmed)
	}
	return trimmed
}
