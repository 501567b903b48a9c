// Package planner turns walked source records into an ordered plan of
// filesystem actions without touching the filesystem.
//
// For each record, in walker order, the planner resolves a category through
// the extension catalog, fingerprints the content, and delegates collision
// handling to the conflict resolver. The resolver keeps one lazily populated
// cache per destination folder holding the names already on disk (with
// memoized fingerprints) plus the names claimed earlier in the same plan, so
// in-plan decisions stay consistent and no two actions ever target the same
// destination path.
//
// Planning is pure: the only filesystem access is reading destination
// directory listings and file content. Re-running the planner against
// unchanged trees yields an identical plan, which is what makes dry-run and
// apply agree.
package planner
