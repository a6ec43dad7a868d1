package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/timeutil"
)

// ShiftService is the ledger for dated shifts: record, edit and aggregate.
type ShiftService struct {
	reg    *registry.Registry
	logger *logrus.Logger
}

func NewShiftService(reg *registry.Registry) *ShiftService {
	return &ShiftService{
		reg:    reg,
		logger: newLogger(),
	}
}

// Record inserts a new shift for a DD-MM-YYYY date no later than ref. A
// date that already has a shift is a conflict; the ledger never silently
// overwrites, that is what Edit is for.
func (s *ShiftService) Record(id, dateText, start, end string, ref time.Time) (models.Shift, error) {
	emp, ok := s.reg.Get(id)
	if !ok {
		s.logger.WithField("employee_id", id).Warn("Employee not found")
		return models.Shift{}, fmt.Errorf("%w: %s", models.ErrUnknownEmployee, id)
	}

	if !timeutil.IsValidPastOrPresentDate(dateText, ref) {
		s.logger.WithFields(logrus.Fields{
			"employee_id": id,
			"date":        dateText,
		}).Warn("Invalid or future shift date")
		return models.Shift{}, fmt.Errorf("%w: %s", models.ErrFutureOrInvalidDate, dateText)
	}

	date := timeutil.NormalizeDate(dateText)
	if existing, ok := emp.Shifts[date]; ok {
		s.logger.WithFields(logrus.Fields{
			"employee_id": id,
			"date":        date,
			"existing":    existing.Range(),
		}).Warn("Shift conflict")
		return models.Shift{}, &models.ConflictError{Date: date, Existing: existing}
	}

	hours, err := timeutil.ComputeHours(start, end)
	if err != nil {
		return models.Shift{}, err
	}
	if hours <= 0 {
		return models.Shift{}, models.ErrNonPositiveDuration
	}

	shift := models.Shift{Start: start, End: end, Hours: hours}
	emp.Shifts[date] = shift

	s.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"date":        date,
		"shift":       shift.Range(),
		"hours":       hours,
	}).Info("Shift recorded")

	return shift, nil
}

// Edit replaces the shift already stored at a date. The future-date check
// does not apply here: a past shift stays editable whatever the reference
// date is, but the date must already denote an existing entry.
func (s *ShiftService) Edit(id, dateText, start, end string) (models.Shift, error) {
	emp, ok := s.reg.Get(id)
	if !ok {
		s.logger.WithField("employee_id", id).Warn("Employee not found")
		return models.Shift{}, fmt.Errorf("%w: %s", models.ErrUnknownEmployee, id)
	}

	date := timeutil.NormalizeDate(dateText)
	if _, ok := emp.Shifts[date]; !ok {
		s.logger.WithFields(logrus.Fields{
			"employee_id": id,
			"date":        dateText,
		}).Warn("No shift to edit")
		return models.Shift{}, fmt.Errorf("%w: %s", models.ErrShiftNotFound, dateText)
	}

	hours, err := timeutil.ComputeHours(start, end)
	if err != nil {
		return models.Shift{}, err
	}
	if hours <= 0 {
		return models.Shift{}, models.ErrNonPositiveDuration
	}

	shift := models.Shift{Start: start, End: end, Hours: hours}
	emp.Shifts[date] = shift

	s.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"date":        date,
		"shift":       shift.Range(),
		"hours":       hours,
	}).Info("Shift edited")

	return shift, nil
}

// TotalHours sums the hours of all shifts in the inclusive [from, to] date
// range. An employee with no qualifying shifts totals 0; that is not an
// error.
func (s *ShiftService) TotalHours(id, fromText, toText string, ref time.Time) (float64, error) {
	emp, ok := s.reg.Get(id)
	if !ok {
		s.logger.WithField("employee_id", id).Warn("Employee not found")
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownEmployee, id)
	}

	if !timeutil.IsValidPastOrPresentDate(fromText, ref) || !timeutil.IsValidPastOrPresentDate(toText, ref) {
		s.logger.WithFields(logrus.Fields{
			"employee_id": id,
			"from":        fromText,
			"to":          toText,
		}).Warn("Invalid date range")
		return 0, fmt.Errorf("%w: %s to %s", models.ErrInvalidDateRange, fromText, toText)
	}

	from := timeutil.NormalizeDate(fromText)
	to := timeutil.NormalizeDate(toText)

	var total float64
	for date, shift := range emp.Shifts {
		if date >= from && date <= to {
			total += shift.Hours
		}
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"from":        from,
		"to":          to,
		"hours":       total,
	}).Debug("Hours aggregated")

	return total, nil
}
