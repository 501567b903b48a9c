package planner

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"sortd/internal/catalog"
	"sortd/internal/contentid"
	"sortd/internal/testsupport"
	"sortd/internal/walker"
)

func newTestCatalog(mappings map[string]string) *catalog.Catalog {
	cat := catalog.New()
	for ext, category := range mappings {
		cat.Override(ext, category)
	}
	return cat
}

func buildPlan(t *testing.T, cat *catalog.Catalog, hasher contentid.Hasher, source, dest string, opts ...Option) *Plan {
	t.Helper()
	records, err := walker.Walk(source)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	plan, err := New(cat, hasher, nil, opts...).Build(context.Background(), records, source, dest)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return plan
}

func TestBuildMovesMappedFiles(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "report.txt"), []byte("alpha"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "photo.jpg"), []byte("beta"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles", "jpg": "Images"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	if len(plan.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(plan.Actions))
	}
	want := map[string]string{
		filepath.Join(source, "photo.jpg"):  filepath.Join(dest, "Images", "photo.jpg"),
		filepath.Join(source, "report.txt"): filepath.Join(dest, "TextFiles", "report.txt"),
	}
	for _, action := range plan.Actions {
		if action.Kind != ActionMove {
			t.Fatalf("expected move for %s, got %s", action.Source, action.Kind)
		}
		if got := want[action.Source]; got != action.Destination {
			t.Fatalf("destination for %s: got %s, want %s", action.Source, action.Destination, got)
		}
	}
}

func TestBuildSameContentDifferentNamesBothMove(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "a.jpg"), []byte("same bytes"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "b.jpg"), []byte("same bytes"))

	// Duplicate detection fires only on a name collision; identical content
	// under distinct names moves normally.
	cat := newTestCatalog(map[string]string{"jpg": "Images"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	counts := plan.Counts()
	if counts[ActionMove] != 2 {
		t.Fatalf("expected both files to move, got %v", counts)
	}
}

func TestBuildSkipsDuplicateAtDestination(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "notes.txt"), []byte("same content"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes.txt"), []byte("same content"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	if len(plan.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(plan.Actions))
	}
	action := plan.Actions[0]
	if action.Kind != ActionSkipDuplicate {
		t.Fatalf("expected skip-duplicate, got %s", action.Kind)
	}
	if want := filepath.Join(dest, "TextFiles", "notes.txt"); action.Existing != want {
		t.Fatalf("existing path: got %s, want %s", action.Existing, want)
	}
}

func TestBuildRenamesOnContentMismatch(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "notes.txt"), []byte("new content"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes.txt"), []byte("old content"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	action := plan.Actions[0]
	if action.Kind != ActionRenameMove {
		t.Fatalf("expected rename-move, got %s", action.Kind)
	}
	if want := filepath.Join(dest, "TextFiles", "notes(1).txt"); action.Destination != want {
		t.Fatalf("destination: got %s, want %s", action.Destination, want)
	}
}

func TestBuildPicksSmallestFreeSuffix(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "notes.txt"), []byte("fourth"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes.txt"), []byte("first"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes(1).txt"), []byte("second"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes(2).txt"), []byte("third"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	action := plan.Actions[0]
	if action.Kind != ActionRenameMove {
		t.Fatalf("expected rename-move, got %s", action.Kind)
	}
	if want := filepath.Join(dest, "TextFiles", "notes(3).txt"); action.Destination != want {
		t.Fatalf("destination: got %s, want %s", action.Destination, want)
	}
}

func TestBuildSuffixedNameMatchesExistingContent(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "notes.txt"), []byte("second"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes.txt"), []byte("first"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes(1).txt"), []byte("second"))

	// The original name collides with different content, so the file is
	// renamed even though notes(1).txt happens to hold identical bytes.
	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	action := plan.Actions[0]
	if action.Kind != ActionRenameMove {
		t.Fatalf("expected rename-move, got %s", action.Kind)
	}
	if want := filepath.Join(dest, "TextFiles", "notes(2).txt"); action.Destination != want {
		t.Fatalf("destination: got %s, want %s", action.Destination, want)
	}
}

func TestBuildInPlanCollisions(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	// Three same-named files in different source folders, two with equal
	// content, all bound for one category folder that starts empty.
	testsupport.WriteFileBytes(t, filepath.Join(source, "a", "notes.txt"), []byte("one"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "b", "notes.txt"), []byte("two"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "c", "notes.txt"), []byte("one"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	if len(plan.Actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(plan.Actions))
	}
	first, second, third := plan.Actions[0], plan.Actions[1], plan.Actions[2]
	if first.Kind != ActionMove || first.Destination != filepath.Join(dest, "TextFiles", "notes.txt") {
		t.Fatalf("first action: %+v", first)
	}
	if second.Kind != ActionRenameMove || second.Destination != filepath.Join(dest, "TextFiles", "notes(1).txt") {
		t.Fatalf("second action: %+v", second)
	}
	if third.Kind != ActionSkipDuplicate || third.Existing != filepath.Join(dest, "TextFiles", "notes.txt") {
		t.Fatalf("third action: %+v", third)
	}
}

func TestBuildUnmappedFilesAreNeverHashed(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "data.xyz"), []byte("mystery"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "README"), []byte("no extension"))

	counting := contentid.NewCountingHasher(contentid.NewSHA256Hasher(0))
	plan := buildPlan(t, newTestCatalog(nil), counting, source, dest)

	for _, action := range plan.Actions {
		if action.Kind != ActionSkipUnmapped {
			t.Fatalf("expected skip-unmapped for %s, got %s", action.Source, action.Kind)
		}
	}
	if calls := counting.Calls(); calls != 0 {
		t.Fatalf("expected no fingerprint calls for unmapped files, got %d", calls)
	}
}

func TestBuildRecordsUnmappedExtensions(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "a.xyz"), []byte("a"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "b.xyz"), []byte("b"))

	cat := newTestCatalog(nil)
	buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	unmapped := cat.Unmapped()
	if unmapped["xyz"] != 2 {
		t.Fatalf("expected 2 misses recorded for xyz, got %d", unmapped["xyz"])
	}
}

func TestBuildConsultsClassifierOncePerExtension(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "a.xyz"), []byte("a"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "b.xyz"), []byte("b"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "c.qqq"), []byte("c"))

	var calls []string
	classifier := ClassifierFunc(func(ext string, fileCount int) (string, bool) {
		calls = append(calls, ext)
		if ext == "xyz" {
			if fileCount != 2 {
				t.Fatalf("expected 2 files reported for xyz, got %d", fileCount)
			}
			return "Mystery", true
		}
		return "", false
	})

	cat := newTestCatalog(nil)
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest, WithClassifier(classifier))

	if len(calls) != 2 {
		t.Fatalf("expected classifier consulted twice, got %v", calls)
	}
	counts := plan.Counts()
	if counts[ActionMove] != 2 || counts[ActionSkipUnmapped] != 1 {
		t.Fatalf("unexpected plan counts: %v", counts)
	}
	if category, ok := cat.Lookup("xyz"); !ok || category != "Mystery" {
		t.Fatalf("expected classifier assignment persisted in catalog, got %q %v", category, ok)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "z", "one.txt"), []byte("1"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "a", "one.txt"), []byte("2"))
	testsupport.WriteFileBytes(t, filepath.Join(source, "m.jpg"), []byte("3"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "one.txt"), []byte("4"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles", "jpg": "Images"})
	first := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)
	second := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	if !reflect.DeepEqual(first.Actions, second.Actions) {
		t.Fatalf("plans differ:\n%+v\n%+v", first.Actions, second.Actions)
	}
}

func TestBuildBoundsSuffixSearch(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "notes.txt"), []byte("new"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes.txt"), []byte("a"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes(1).txt"), []byte("b"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "notes(2).txt"), []byte("c"))

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	plan := buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest, WithMaxRenameAttempts(2))

	action := plan.Actions[0]
	if action.Kind != ActionSkipError {
		t.Fatalf("expected skip-error once attempts are exhausted, got %s", action.Kind)
	}
	if !strings.Contains(action.Reason, "no free name") {
		t.Fatalf("unexpected reason: %s", action.Reason)
	}
}

func TestBuildDoesNotTouchFilesystem(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "one.txt"), []byte("1"))
	testsupport.WriteFileBytes(t, filepath.Join(dest, "TextFiles", "one.txt"), []byte("other"))

	before := testsupport.Snapshot(t, source)
	beforeDest := testsupport.Snapshot(t, dest)

	cat := newTestCatalog(map[string]string{"txt": "TextFiles"})
	buildPlan(t, cat, contentid.NewSHA256Hasher(0), source, dest)

	if !reflect.DeepEqual(before, testsupport.Snapshot(t, source)) {
		t.Fatal("planning modified the source tree")
	}
	if !reflect.DeepEqual(beforeDest, testsupport.Snapshot(t, dest)) {
		t.Fatal("planning modified the destination tree")
	}
}

func TestBuildHonorsCancellation(t *testing.T) {
	source := t.TempDir()
	testsupport.WriteFileBytes(t, filepath.Join(source, "one.txt"), []byte("1"))
	records, err := walker.Walk(source)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(newTestCatalog(nil), contentid.NewSHA256Hasher(0), nil).Build(ctx, records, source, t.TempDir())
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
