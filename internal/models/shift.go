package models

// Shift is one dated work interval. Hours is derived from Start and End on
// every write path and is never stored independently of them.
type Shift struct {
	Start string
	End   string
	Hours float64
}

// Range returns the "start-end" form used by schedules and messages.
func (s Shift) Range() string {
	return s.Start + "-" + s.End
}

// IsValid checks the stored invariants: both clock times present and a
// strictly positive duration.
func (s Shift) IsValid() bool {
	if s.Start == "" || s.End == "" {
		return false
	}
	return s.Hours > 0
}
