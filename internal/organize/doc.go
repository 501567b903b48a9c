// Package organize ties the pipeline together: it runs preflight checks,
// takes the run lock, walks the source tree, builds the plan, and executes
// it. One Runner serves both apply and dry-run; callers get back the plan
// and the execution report.
package organize
