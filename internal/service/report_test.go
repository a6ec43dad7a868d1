package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/registry"
	"shiftbot/internal/service"
)

func TestWeeklyReportWindow(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	// 18-02 is the day before the window opens; 19-02 and 25-02 are its
	// boundaries.
	for _, day := range []string{"18-02-2025", "19-02-2025", "25-02-2025"} {
		_, err := shifts.Record("e001", day, "9:00", "17:00", ref)
		require.NoError(t, err)
	}

	rep := service.NewReportService(reg).Weekly(ref)

	assert.Equal(t, time.Date(2025, 2, 19, 0, 0, 0, 0, time.UTC), rep.From,
		"window starts 6 days before the reference date")
	assert.Equal(t, time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC), rep.To)
	assert.Equal(t, 6.0, rep.To.Sub(rep.From).Hours()/24, "window spans exactly 7 calendar days")

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 16.0, rep.Rows[0].Hours, "both boundary days count, the day before does not")
}

func TestWeeklyReportIncludesZeroHourEmployees(t *testing.T) {
	reg := registry.New()
	for _, id := range []string{"e002", "e001"} {
		_, err := reg.Add(id, "name "+id)
		require.NoError(t, err)
	}

	rep := service.NewReportService(reg).Weekly(ref)

	require.Len(t, rep.Rows, 2)
	// Registry order, not id order.
	assert.Equal(t, "e002", rep.Rows[0].EmployeeID)
	assert.Equal(t, "e001", rep.Rows[1].EmployeeID)
	assert.Equal(t, 0.0, rep.Rows[0].Hours)
	assert.Equal(t, 0.0, rep.Rows[1].Hours)
}

func TestWeeklyReportIsPureRead(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)
	_, err := shifts.Record("e001", "25-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)

	reports := service.NewReportService(reg)
	first := reports.Weekly(ref)
	second := reports.Weekly(ref)

	assert.Equal(t, first, second)
	emp, _ := reg.Get("e001")
	assert.Len(t, emp.Shifts, 1)
}
