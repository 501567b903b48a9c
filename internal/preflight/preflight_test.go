package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/services"
	"sortd/internal/testsupport"
)

func TestCheckSourcePasses(t *testing.T) {
	if result := CheckSource(t.TempDir()); !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestCheckSourceMissing(t *testing.T) {
	result := CheckSource(filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatal("expected failure for missing source")
	}
	if !errors.Is(Err(result), services.ErrInvalidSource) {
		t.Fatalf("expected invalid source marker, got %v", Err(result))
	}
}

func TestCheckSourceRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	testsupport.WriteFileBytes(t, path, []byte("x"))
	if result := CheckSource(path); result.Passed {
		t.Fatal("expected failure for non-directory source")
	}
}

func TestCheckDestinationCreatable(t *testing.T) {
	result := CheckDestination(filepath.Join(t.TempDir(), "not", "yet", "created"))
	if !result.Passed {
		t.Fatalf("expected pass for creatable destination, got %+v", result)
	}
}

func TestCheckDestinationRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	testsupport.WriteFileBytes(t, path, []byte("x"))
	result := CheckDestination(path)
	if result.Passed {
		t.Fatal("expected failure for non-directory destination")
	}
	if !errors.Is(Err(result), services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", Err(result))
	}
}

func TestCheckSourceUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("access checks do not bind as root")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if result := CheckSource(dir); result.Passed {
		t.Fatal("expected failure for unreadable source")
	}
}

func TestCheckFreeSpace(t *testing.T) {
	dir := t.TempDir()
	if result := CheckFreeSpace(dir, 1); !result.Passed {
		t.Fatalf("expected pass for 1 byte, got %+v", result)
	}
	huge := int64(1) << 61
	if result := CheckFreeSpace(dir, huge); result.Passed {
		t.Fatal("expected failure for absurd space requirement")
	}
}

func TestFirstFailure(t *testing.T) {
	results := []Result{
		{Name: "source", Passed: true},
		{Name: "destination", Passed: false, Detail: "nope"},
		{Name: "free space", Passed: false},
	}
	failure := FirstFailure(results)
	if failure == nil || failure.Name != "destination" {
		t.Fatalf("unexpected first failure: %+v", failure)
	}
	if FirstFailure(results[:1]) != nil {
		t.Fatal("expected nil when all pass")
	}
}
