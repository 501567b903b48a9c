// Package catalog maps normalized file extensions to destination category
// folders.
//
// The in-memory Catalog answers lookups during planning and records the
// extensions that were seen without a mapping, so a run can report (or
// interactively resolve) them. Overrides are idempotent and last-write-wins.
// Extensions are case-folded with the leading dot stripped before lookup;
// files without an extension stay unmapped unless the no-extension sentinel
// mapping has been set explicitly.
//
// Store persists user-assigned mappings in a SQLite database. The catalog
// itself never touches the store; the surrounding application loads the store
// into the catalog at startup and writes back confirmed assignments.
package catalog
