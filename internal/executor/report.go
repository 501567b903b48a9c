package executor

// Failure records one action that could not be carried out.
type Failure struct {
	Source string
	Reason string
}

// Report summarizes one execution. Counts reflect what actually happened in
// apply mode and what would have happened in dry-run mode; a planned move
// that fails at execution time counts as failed, not moved.
type Report struct {
	RunID      string
	DryRun     bool
	Total      int
	Moved      int
	Renamed    int
	Duplicates int
	Unmapped   int
	Failed     int
	Failures   []Failure
	Stopped    bool
}

// Relocated returns how many files left the source tree (or would have).
func (r *Report) Relocated() int {
	return r.Moved + r.Renamed
}
