package models

import (
	"fmt"
	"strings"
	"time"
)

// Employee holds one worker's state: a recurring weekly schedule and the
// concrete shifts logged against calendar dates. Shift keys are canonical
// YYYY-MM-DD strings so date-range checks reduce to string comparison.
type Employee struct {
	ID       string
	Name     string
	Schedule map[time.Weekday]string
	Shifts   map[string]Shift
}

func NewEmployee(id, name string) *Employee {
	return &Employee{
		ID:       id,
		Name:     name,
		Schedule: make(map[time.Weekday]string),
		Shifts:   make(map[string]Shift),
	}
}

// ParseWeekday maps a canonical English weekday name to its time.Weekday,
// case-insensitively. Localized names are translated before this point.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}
