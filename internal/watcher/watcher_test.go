package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sortd/internal/testsupport"
)

func waitForTrigger(t *testing.T, w *Watcher) Trigger {
	t.Helper()
	select {
	case trigger := <-w.Triggers():
		return trigger
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for trigger")
		return Trigger{}
	}
}

func TestWatcherEmitsDebouncedTrigger(t *testing.T) {
	root := t.TempDir()
	w, err := New(root, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	testsupport.WriteFileBytes(t, filepath.Join(root, "one.txt"), []byte("1"))
	testsupport.WriteFileBytes(t, filepath.Join(root, "two.txt"), []byte("2"))

	trigger := waitForTrigger(t, w)
	if len(trigger.Paths) == 0 {
		t.Fatal("expected changed paths in trigger")
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, err := New(root, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := filepath.Join(root, "incoming")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	testsupport.WriteFileBytes(t, filepath.Join(sub, "dropped.txt"), []byte("x"))

	trigger := waitForTrigger(t, w)
	found := false
	for _, path := range trigger.Paths {
		if path == filepath.Join(sub, "dropped.txt") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected file in new directory to be reported, got %v", trigger.Paths)
	}
}

func TestDebouncerCollapsesRepeats(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	for i := 0; i < 10; i++ {
		d.Add("/tmp/same.txt")
	}
	d.Add("/tmp/other.txt")

	select {
	case trigger := <-d.output:
		if len(trigger.Paths) != 2 {
			t.Fatalf("expected 2 distinct paths, got %v", trigger.Paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for flush")
	}
}
