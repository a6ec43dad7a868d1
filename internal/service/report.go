package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/registry"
	"shiftbot/internal/timeutil"
)

// ReportRow is one employee's total inside the report window.
type ReportRow struct {
	EmployeeID string
	Name       string
	Hours      float64
}

// Report covers the trailing 7-day window ending at the reference date.
// Rows follow registry order and include zero-hour employees.
type Report struct {
	From time.Time
	To   time.Time
	Rows []ReportRow
}

// ReportService aggregates worked hours. Reads only; never mutates.
type ReportService struct {
	reg    *registry.Registry
	logger *logrus.Logger
}

func NewReportService(reg *registry.Registry) *ReportService {
	return &ReportService{
		reg:    reg,
		logger: newLogger(),
	}
}

// Weekly sums each employee's hours over [ref-6d, ref], both ends
// inclusive: always exactly 7 calendar days.
func (s *ReportService) Weekly(ref time.Time) Report {
	to := timeutil.DateOnly(ref)
	from := to.AddDate(0, 0, -6)
	fromKey := timeutil.FormatISO(from)
	toKey := timeutil.FormatISO(to)

	rows := make([]ReportRow, 0, s.reg.Len())
	for _, emp := range s.reg.List() {
		var total float64
		for date, shift := range emp.Shifts {
			if date >= fromKey && date <= toKey {
				total += shift.Hours
			}
		}
		rows = append(rows, ReportRow{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Hours:      total,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"from":      fromKey,
		"to":        toKey,
		"employees": len(rows),
	}).Info("Weekly report generated")

	return Report{From: from, To: to, Rows: rows}
}
