// Package locale carries the two fixed language presentations of the
// shell: command verbs, weekday names and message templates. The core
// operates on canonical values only (time.Weekday, ISO dates, error kinds);
// everything the user sees passes through one of these tables.
package locale

import (
	"fmt"
	"strings"
	"time"

	"shiftbot/internal/models"
)

type Locale struct {
	Name string

	// Command verbs, matched against the first token of each input line.
	CmdHelp     string
	CmdAdd      string
	CmdSchedule string
	CmdShift    string
	CmdHours    string
	CmdEdit     string
	CmdList     string
	CmdAuto     string
	CmdExit     string

	// weekdayNames is indexed by time.Weekday (Sunday = 0).
	weekdayNames [7]string

	Messages Messages
}

// Messages are fmt templates; the comment on each field names its verbs.
type Messages struct {
	Welcome  string
	TypeHelp string
	Help     string

	EmployeeAdded    string // name, id
	EmployeeExists   string // id
	EmployeeNotFound string // id

	ScheduleSet      string // weekday, name, range
	InvalidWeekday   string
	InvalidTimeRange string

	ShiftRecorded       string // name, date, start, end, hours
	ShiftEdited         string // name, date, start, end, hours
	ShiftConflict       string // date, start, end
	ShiftNotFound       string // date
	InvalidTime         string
	NonPositiveDuration string
	FutureOrInvalidDate string // reference date

	TotalHours       string // name, from, to, hours
	InvalidDateRange string // reference date

	ListHeader string
	ListEntry  string // name, id
	ListEmpty  string

	AutoLogged   string // name, date, start, end, hours
	AutoConflict string // name, date, start, end
	AutoSkipped  string // name, date

	ImportedEmployee string // name, id
	ImportedSchedule string // id, weekday, range
	ImportMissing    string // path

	ReportTitle   string // from, to
	ReportLine    string // name, id, hours
	ReportWritten string // path

	UnknownCommand string
}

// Get returns the presentation table for a locale name ("en" or "pt").
func Get(name string) (*Locale, error) {
	switch strings.ToLower(name) {
	case "en", "":
		return &English, nil
	case "pt":
		return &Portuguese, nil
	default:
		return nil, fmt.Errorf("unsupported locale %q (supported: en, pt)", name)
	}
}

// ParseWeekday resolves a weekday token in this locale's names, falling
// back to the canonical English names so canonical data files and import
// feeds stay readable under any locale.
func (l *Locale) ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, l.weekdayNames[d]) {
			return d, nil
		}
	}
	return models.ParseWeekday(name)
}

// WeekdayName returns the display name for a weekday.
func (l *Locale) WeekdayName(d time.Weekday) string {
	return l.weekdayNames[d]
}
