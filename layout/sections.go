package layout

// Tracker holds the active column count of the output document. The zero
// value starts in single-column mode, matching the initial section.
type Tracker struct {
	columns int
}

// NewTracker creates a tracker in single-column mode.
func NewTracker() *Tracker {
	return &Tracker{columns: 1}
}

// Current returns the active column count.
func (t *Tracker) Current() int {
	if t.columns == 0 {
		return 1
	}
	return t.columns
}

// Ensure switches to target columns. It returns true when the count changed
// and the caller must open a new section; a target of zero or the current
// count is a no-op.
func (t *Tracker) Ensure(target int) bool {
	if target <= 0 || target == t.Current() {
		return false
	}
	t.columns = target
	return true
}
