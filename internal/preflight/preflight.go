// Package preflight validates the environment before a run mutates anything:
// the source must be a readable directory, the destination writable (or
// creatable), and the destination filesystem must have room for the files
// about to move.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"sortd/internal/services"
)

// Result captures one check's outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

func pass(name, detail string) Result {
	return Result{Name: name, Passed: true, Detail: detail}
}

func fail(name, detail string) Result {
	return Result{Name: name, Passed: false, Detail: detail}
}

// CheckSource verifies the source path exists, is a directory, and grants
// read and execute access.
func CheckSource(path string) Result {
	const name = "source"
	info, err := os.Stat(path)
	if err != nil {
		return fail(name, fmt.Sprintf("%s: %v", path, err))
	}
	if !info.IsDir() {
		return fail(name, fmt.Sprintf("%s is not a directory", path))
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return fail(name, fmt.Sprintf("%s is not readable: %v", path, err))
	}
	return pass(name, path)
}

// CheckDestination verifies the destination is a writable directory. A
// destination that does not exist yet passes as long as its nearest existing
// ancestor is writable; the run creates it on demand.
func CheckDestination(path string) Result {
	const name = "destination"
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fail(name, fmt.Sprintf("%s is not a directory", path))
		}
		if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
			return fail(name, fmt.Sprintf("%s is not writable: %v", path, err))
		}
		return pass(name, path)
	case os.IsNotExist(err):
		ancestor := nearestExisting(path)
		if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
			return fail(name, fmt.Sprintf("cannot create %s under %s: %v", path, ancestor, err))
		}
		return pass(name, fmt.Sprintf("%s (will be created)", path))
	default:
		return fail(name, fmt.Sprintf("%s: %v", path, err))
	}
}

// CheckFreeSpace verifies the destination filesystem can hold the given
// number of bytes. Cross-device moves degrade to copy+delete, so the
// worst case needs the full payload free.
func CheckFreeSpace(path string, requiredBytes int64) Result {
	const name = "free space"
	var stat unix.Statfs_t
	target := nearestExisting(path)
	if err := unix.Statfs(target, &stat); err != nil {
		return fail(name, fmt.Sprintf("statfs %s: %v", target, err))
	}
	available := int64(stat.Bavail) * int64(stat.Bsize)
	if available < requiredBytes {
		return fail(name, fmt.Sprintf("need %d bytes, %d available on %s", requiredBytes, available, target))
	}
	return pass(name, fmt.Sprintf("%d bytes available", available))
}

// FirstFailure returns the first failed result, or nil if all passed.
func FirstFailure(results []Result) *Result {
	for i := range results {
		if !results[i].Passed {
			return &results[i]
		}
	}
	return nil
}

// Err converts a failed result into a tagged error; source failures are
// fatal invalid-source errors, everything else a validation error.
func Err(result Result) error {
	marker := services.ErrValidation
	if result.Name == "source" {
		marker = services.ErrInvalidSource
	}
	return services.Wrap(marker, "preflight", result.Name, result.Detail, nil)
}

func nearestExisting(path string) string {
	for current := path; ; current = filepath.Dir(current) {
		if _, err := os.Stat(current); err == nil {
			return current
		}
		if current == filepath.Dir(current) {
			return current
		}
	}
}
