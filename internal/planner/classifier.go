package planner

// Classifier supplies categories for extensions the catalog does not map.
// The planner consults it at most once per distinct extension per plan,
// passing how many walked files carry that extension. Returning ok=false
// leaves the extension unmapped and its files skipped.
type Classifier interface {
	Classify(ext string, fileCount int) (category string, ok bool)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ext string, fileCount int) (string, bool)

func (f ClassifierFunc) Classify(ext string, fileCount int) (string, bool) {
	return f(ext, fileCount)
}
