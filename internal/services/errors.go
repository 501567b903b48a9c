package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSource marks a missing or non-directory source root. Fatal:
	// no plan is produced.
	ErrInvalidSource = errors.New("invalid source")
	// ErrConfiguration marks unusable configuration or a corrupt mapping
	// store. Fatal at startup.
	ErrConfiguration = errors.New("configuration error")
	// ErrRead marks a per-file read failure (hashing, stat). The file is
	// skipped and the run continues.
	ErrRead = errors.New("read error")
	// ErrWrite marks a per-file write failure (mkdir, move). Same recovery
	// policy as ErrRead.
	ErrWrite = errors.New("write error")
	// ErrValidation marks rejected input such as an unusable category name.
	ErrValidation = errors.New("validation error")
	// ErrTransient marks failures with no more specific classification.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes phase context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, phase, operation, message string, err error) error {
	detail := buildDetail(phase, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether the error must abort the run before any plan is
// produced. Per-file markers are always recoverable.
func Fatal(err error) bool {
	return errors.Is(err, ErrInvalidSource) || errors.Is(err, ErrConfiguration)
}

func buildDetail(phase, operation, message string) string {
	parts := make([]string, 0, 3)
	if phase = strings.TrimSpace(phase); phase != "" {
		parts = append(parts, phase)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
