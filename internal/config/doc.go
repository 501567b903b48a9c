// Package config loads, normalizes, and validates the sortd configuration.
//
// Configuration lives in a TOML document (default ~/.config/sortd/config.toml,
// with a project-local sortd.toml fallback). Loading merges the document over
// repository defaults, expands ~ in every path field, and validates the result
// before anything else starts. A document that fails to parse or validate
// aborts startup; mappings are never silently dropped.
package config
