package watcher

import (
	"sync"
	"time"
)

// Trigger is one debounced batch of source-tree changes. Paths lists the
// distinct files seen during the quiet window, in arrival order.
type Trigger struct {
	Paths []string
}

// debouncer collapses bursts of filesystem events into a single trigger
// once the tree has been quiet for the configured interval. Copying a large
// file produces many writes; the organize pass should start after the last
// one, not the first.
type debouncer struct {
	quiet  time.Duration
	mu     sync.Mutex
	seen   map[string]struct{}
	order  []string
	timer  *time.Timer
	output chan Trigger
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{
		quiet:  quiet,
		seen:   make(map[string]struct{}),
		output: make(chan Trigger, 4),
	}
}

// Add notes a changed path and restarts the quiet-window timer.
func (d *debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[path]; !ok {
		d.seen[path] = struct{}{}
		d.order = append(d.order, path)
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.flush)
}

func (d *debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.order) == 0 {
		return
	}
	trigger := Trigger{Paths: d.order}
	d.seen = make(map[string]struct{})
	d.order = nil

	select {
	case d.output <- trigger:
	default:
		// A pending trigger already covers these paths; the next organize
		// pass rescans the whole tree anyway.
	}
}
