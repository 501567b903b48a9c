package planner

import (
	"path/filepath"
	"testing"

	"sortd/internal/contentid"
	"sortd/internal/testsupport"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name string
		stem string
		ext  string
	}{
		{"report.txt", "report", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".profile", ".profile", ""},
		{"trailing.", "trailing", "."},
	}
	for _, tc := range cases {
		stem, ext := splitName(tc.name)
		if stem != tc.stem || ext != tc.ext {
			t.Fatalf("splitName(%q): got (%q, %q), want (%q, %q)", tc.name, stem, ext, tc.stem, tc.ext)
		}
	}
}

func TestResolverHashesDestinationOnce(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(folder, "notes.txt"), []byte("held"))

	counting := contentid.NewCountingHasher(contentid.NewSHA256Hasher(0))
	r := newResolver(counting, DefaultMaxRenameAttempts)

	for i := 0; i < 3; i++ {
		verdict, err := r.Resolve(folder, "notes.txt", "not-the-held-fingerprint")
		if err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
		if verdict.Kind != ActionRenameMove {
			t.Fatalf("resolve %d: expected rename-move, got %s", i, verdict.Kind)
		}
	}
	if calls := counting.Calls(); calls != 1 {
		t.Fatalf("expected destination hashed once, got %d calls", calls)
	}
}

func TestResolverTreatsMissingFolderAsEmpty(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Images")

	r := newResolver(contentid.NewSHA256Hasher(0), DefaultMaxRenameAttempts)
	verdict, err := r.Resolve(folder, "photo.jpg", "fp")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if verdict.Kind != ActionMove || verdict.Destination != filepath.Join(folder, "photo.jpg") {
		t.Fatalf("unexpected verdict: %+v", verdict)
	}
}
