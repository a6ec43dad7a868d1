package service

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/timeutil"
)

// AutoLogOutcome classifies one employee's result in an auto-log pass.
type AutoLogOutcome int

const (
	// AutoLogged means a shift was derived from the schedule and stored.
	AutoLogged AutoLogOutcome = iota
	// AutoLogConflict means a shift already existed on the date; nothing
	// was changed and the existing interval is reported instead.
	AutoLogConflict
	// AutoLogSkipped means the stored schedule entry could not produce a
	// valid shift (bad range or non-positive duration).
	AutoLogSkipped
)

// AutoLogResult is what the auto-logger reports per affected employee.
type AutoLogResult struct {
	EmployeeID string
	Name       string
	Date       string // canonical YYYY-MM-DD
	Outcome    AutoLogOutcome
	Shift      models.Shift // set when Outcome is AutoLogged
	Existing   models.Shift // set when Outcome is AutoLogConflict
	Err        error        // set when Outcome is AutoLogSkipped
}

// AutoLogService derives today's shifts from the weekly schedules.
type AutoLogService struct {
	reg    *registry.Registry
	logger *logrus.Logger
}

func NewAutoLogService(reg *registry.Registry) *AutoLogService {
	return &AutoLogService{
		reg:    reg,
		logger: newLogger(),
	}
}

// LogToday walks the registry in order and, for every employee scheduled on
// ref's weekday, stores the scheduled shift for ref's date. A date that
// already has a shift is reported as a conflict and left untouched, which
// makes the pass idempotent: running it twice stores each shift once. The
// future-date check of the ledger does not apply because the date is ref
// itself, but the must-not-exist guard is enforced inline.
func (s *AutoLogService) LogToday(ref time.Time) []AutoLogResult {
	date := timeutil.FormatISO(timeutil.DateOnly(ref))
	weekday := ref.Weekday()

	var results []AutoLogResult
	for _, emp := range s.reg.List() {
		timeRange, ok := emp.Schedule[weekday]
		if !ok {
			continue
		}

		if existing, ok := emp.Shifts[date]; ok {
			s.logger.WithFields(logrus.Fields{
				"employee_id": emp.ID,
				"date":        date,
				"existing":    existing.Range(),
			}).Warn("Shift conflict during auto-log")
			results = append(results, AutoLogResult{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Date:       date,
				Outcome:    AutoLogConflict,
				Existing:   existing,
			})
			continue
		}

		start, end, found := strings.Cut(timeRange, "-")
		if !found {
			results = append(results, s.skip(emp, date, models.ErrInvalidTimeRange))
			continue
		}

		hours, err := timeutil.ComputeHours(start, end)
		if err != nil {
			results = append(results, s.skip(emp, date, err))
			continue
		}
		if hours <= 0 {
			results = append(results, s.skip(emp, date, models.ErrNonPositiveDuration))
			continue
		}

		shift := models.Shift{Start: start, End: end, Hours: hours}
		emp.Shifts[date] = shift

		s.logger.WithFields(logrus.Fields{
			"employee_id": emp.ID,
			"date":        date,
			"shift":       shift.Range(),
			"hours":       hours,
		}).Info("Shift auto-logged")

		results = append(results, AutoLogResult{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Date:       date,
			Outcome:    AutoLogged,
			Shift:      shift,
		})
	}

	return results
}

func (s *AutoLogService) skip(emp *models.Employee, date string, err error) AutoLogResult {
	s.logger.WithFields(logrus.Fields{
		"employee_id": emp.ID,
		"date":        date,
	}).WithError(err).Warn("Schedule entry skipped during auto-log")

	return AutoLogResult{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Date:       date,
		Outcome:    AutoLogSkipped,
		Err:        err,
	}
}
