// Package walker enumerates the source tree in a deterministic order.
//
// Walk yields one record per regular file, sorted lexicographically by path,
// so repeated runs over an unchanged tree produce identical sequences and the
// planner's collision numbering stays reproducible. Symbolic links are not
// followed and directories are never yielded. A missing or non-directory root
// is fatal: no partial record list is produced.
package walker
