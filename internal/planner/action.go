package planner

// ActionKind identifies the disposition the planner chose for a source file.
type ActionKind int

const (
	// ActionMove relocates the file to Destination under its original name.
	ActionMove ActionKind = iota
	// ActionRenameMove relocates the file under a suffixed name because the
	// original name is taken by different content.
	ActionRenameMove
	// ActionSkipDuplicate leaves the file in place; Existing holds the path
	// of byte-identical content already at the destination.
	ActionSkipDuplicate
	// ActionSkipUnmapped leaves the file in place because no category is
	// mapped for its extension.
	ActionSkipUnmapped
	// ActionSkipError leaves the file in place after a per-file I/O failure;
	// Reason carries the cause.
	ActionSkipError
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionRenameMove:
		return "rename-move"
	case ActionSkipDuplicate:
		return "skip-duplicate"
	case ActionSkipUnmapped:
		return "skip-unmapped"
	case ActionSkipError:
		return "skip-error"
	default:
		return "unknown"
	}
}

// Mutates reports whether executing the action changes the filesystem.
func (k ActionKind) Mutates() bool {
	return k == ActionMove || k == ActionRenameMove
}

// Action is one planned disposition for one source file. Which fields are
// populated depends on Kind: Destination for move kinds, Existing for
// duplicate skips, Extension for unmapped skips, Reason for error skips.
type Action struct {
	Kind        ActionKind
	Source      string
	Destination string
	Category    string
	Existing    string
	Extension   string
	Reason      string
}

// Plan is the ordered action list for one run. Order follows the walker's
// lexicographic traversal, so equal inputs produce byte-identical plans.
type Plan struct {
	SourceRoot string
	DestRoot   string
	Actions    []Action
}

// Counts tallies the plan's actions by kind.
func (p *Plan) Counts() map[ActionKind]int {
	counts := make(map[ActionKind]int, 5)
	for _, action := range p.Actions {
		counts[action.Kind]++
	}
	return counts
}
