// Package executor carries out (or rehearses) a plan. Apply mode creates
// category folders and moves files; dry-run mode walks the same actions and
// emits the same log lines without mutating anything. A failed action marks
// that file failed and execution continues; only context cancellation stops
// the run early.
package executor
