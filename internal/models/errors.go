package models

import (
	"errors"
	"fmt"
)

// Domain error kinds. Every core operation fails with one of these so the
// shell can render a specific message; none of them is fatal to the process.
var (
	ErrDuplicateEmployee   = errors.New("employee already exists")
	ErrUnknownEmployee     = errors.New("employee not found")
	ErrInvalidWeekday      = errors.New("unrecognized weekday")
	ErrInvalidTimeRange    = errors.New("time range must be start-end")
	ErrInvalidTimeFormat   = errors.New("invalid clock time")
	ErrFutureOrInvalidDate = errors.New("invalid or future date")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrShiftConflict       = errors.New("shift already exists on this date")
	ErrShiftNotFound       = errors.New("no shift exists on this date")
	ErrNonPositiveDuration = errors.New("end time must be after start time")
)

// ConflictError reports an attempt to record a shift on a date that already
// has one. It carries the stored shift so callers can show its interval.
type ConflictError struct {
	Date     string // canonical YYYY-MM-DD
	Existing Shift
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift already exists on %s: %s", e.Date, e.Existing.Range())
}

// Is makes errors.Is(err, ErrShiftConflict) match a ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrShiftConflict
}
