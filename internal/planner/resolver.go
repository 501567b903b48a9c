package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sortd/internal/contentid"
	"sortd/internal/services"
)

// resolution is the resolver's verdict for one source file.
type resolution struct {
	Kind        ActionKind
	Destination string
	Existing    string
}

// folderState caches what the resolver knows about one destination folder:
// the names present on disk (fingerprints computed on demand and memoized)
// and the names claimed by earlier actions in the same plan together with
// the fingerprints they will carry.
type folderState struct {
	onDisk       map[string]struct{}
	fingerprints map[string]string
	planned      map[string]string
}

func (s *folderState) taken(name string) bool {
	if _, ok := s.onDisk[name]; ok {
		return true
	}
	_, ok := s.planned[name]
	return ok
}

// resolver assigns destination names within category folders. One resolver
// serves exactly one plan; its per-folder caches assume no concurrent
// mutation of the destination tree while planning runs.
type resolver struct {
	hasher            contentid.Hasher
	maxRenameAttempts int
	folders           map[string]*folderState
}

func newResolver(hasher contentid.Hasher, maxRenameAttempts int) *resolver {
	return &resolver{
		hasher:            hasher,
		maxRenameAttempts: maxRenameAttempts,
		folders:           make(map[string]*folderState),
	}
}

// Resolve decides where a file with the given name and content fingerprint
// lands inside folder. It returns a move to the original name when the name
// is free, a duplicate skip when the name is held by identical content, and
// a suffixed rename-move otherwise.
func (r *resolver) Resolve(folder, name, fingerprint string) (resolution, error) {
	state, err := r.folder(folder)
	if err != nil {
		return resolution{}, err
	}

	if !state.taken(name) {
		state.planned[name] = fingerprint
		return resolution{Kind: ActionMove, Destination: filepath.Join(folder, name)}, nil
	}

	existing, err := r.fingerprintOf(state, folder, name)
	if err != nil {
		return resolution{}, err
	}
	if existing == fingerprint {
		return resolution{Kind: ActionSkipDuplicate, Existing: filepath.Join(folder, name)}, nil
	}

	renamed, err := r.freeName(state, folder, name)
	if err != nil {
		return resolution{}, err
	}
	state.planned[renamed] = fingerprint
	return resolution{Kind: ActionRenameMove, Destination: filepath.Join(folder, renamed)}, nil
}

// folder returns the cached state for a destination folder, scanning its
// directory listing on first use. A folder that does not exist yet resolves
// to an empty listing; it is created at execution time.
func (r *resolver) folder(path string) (*folderState, error) {
	if state, ok := r.folders[path]; ok {
		return state, nil
	}

	state := &folderState{
		onDisk:       make(map[string]struct{}),
		fingerprints: make(map[string]string),
		planned:      make(map[string]string),
	}
	entries, err := os.ReadDir(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, services.Wrap(services.ErrRead, "plan", "scan destination", fmt.Sprintf("reading destination folder %s", path), err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		state.onDisk[entry.Name()] = struct{}{}
	}
	r.folders[path] = state
	return state, nil
}

// fingerprintOf returns the fingerprint occupying name in folder, hashing
// on-disk content at most once per name.
func (r *resolver) fingerprintOf(state *folderState, folder, name string) (string, error) {
	if fp, ok := state.planned[name]; ok {
		return fp, nil
	}
	if fp, ok := state.fingerprints[name]; ok {
		return fp, nil
	}
	path := filepath.Join(folder, name)
	fp, err := r.hasher.Fingerprint(path)
	if err != nil {
		return "", services.Wrap(services.ErrRead, "plan", "fingerprint destination", fmt.Sprintf("hashing destination file %s", path), err)
	}
	state.fingerprints[name] = fp
	return fp, nil
}

// freeName finds the smallest n >= 1 for which "stem(n)ext" is unclaimed in
// folder. The attempt bound guards against pathological folders; hitting it
// fails the file, not the run.
func (r *resolver) freeName(state *folderState, folder, name string) (string, error) {
	stem, ext := splitName(name)
	for n := 1; n <= r.maxRenameAttempts; n++ {
		candidate := fmt.Sprintf("%s(%d)%s", stem, n, ext)
		if !state.taken(candidate) {
			return candidate, nil
		}
	}
	return "", services.Wrap(services.ErrWrite, "plan", "allocate destination name", fmt.Sprintf("no free name for %s in %s after %d attempts", name, folder, r.maxRenameAttempts), nil)
}

// splitName splits a file name into stem and extension, keeping the dot with
// the extension. Dotfiles such as ".profile" count as all stem.
func splitName(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
