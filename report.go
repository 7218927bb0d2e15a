package drivefolder

// FailedItem records one file a bulk operation could not mutate.
type FailedItem struct {
	ID     string
	Name   string
	Reason string
}

// Report is the per-item accounting of a bulk operation. Both slices
// preserve enumeration order. A Report is appended to while the
// operation runs and never mutated after it is returned; partial
// results are always returned, never discarded on a sub-failure.
type Report struct {
	SucceededIDs []string
	Failed       []FailedItem
}

// Len returns the number of items processed so far.
func (r *Report) Len() int {
	return len(r.SucceededIDs) + len(r.Failed)
}

// AllSucceeded reports whether no item failed.
func (r *Report) AllSucceeded() bool {
	return len(r.Failed) == 0
}
