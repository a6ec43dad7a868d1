package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/service"
)

// 25-02-2025 is a Tuesday; the original tool's fixed "today".
var ref = time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)

func newRegistryWith(t *testing.T, id, name string) *registry.Registry {
	t.Helper()
	reg := registry.New()
	_, err := reg.Add(id, name)
	require.NoError(t, err)
	return reg
}

func TestRecordShift(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	shift, err := shifts.Record("e001", "25-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)
	assert.Equal(t, 8.0, shift.Hours)

	emp, _ := reg.Get("e001")
	stored, ok := emp.Shifts["2025-02-25"]
	require.True(t, ok, "shift stored under the canonical date key")
	assert.Equal(t, shift, stored)
}

func TestRecordShiftOvernight(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	shift, err := shifts.Record("e001", "24-02-2025", "22:00", "6:00", ref)
	require.NoError(t, err)
	assert.Equal(t, 8.0, shift.Hours)
}

func TestRecordShiftConflict(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.Record("e001", "25-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)

	_, err = shifts.Record("e001", "25-02-2025", "10:00", "18:00", ref)
	assert.ErrorIs(t, err, models.ErrShiftConflict)

	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2025-02-25", conflict.Date)
	assert.Equal(t, "9:00", conflict.Existing.Start)
	assert.Equal(t, "17:00", conflict.Existing.End)

	// The stored shift is untouched; conflicts are resolved via Edit only.
	emp, _ := reg.Get("e001")
	assert.Equal(t, 8.0, emp.Shifts["2025-02-25"].Hours)
}

func TestRecordShiftValidation(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.Record("e999", "25-02-2025", "9:00", "17:00", ref)
	assert.ErrorIs(t, err, models.ErrUnknownEmployee)

	_, err = shifts.Record("e001", "26-02-2025", "9:00", "17:00", ref)
	assert.ErrorIs(t, err, models.ErrFutureOrInvalidDate)

	_, err = shifts.Record("e001", "31-02-2025", "9:00", "17:00", ref)
	assert.ErrorIs(t, err, models.ErrFutureOrInvalidDate)

	_, err = shifts.Record("e001", "25-02-2025", "900", "17:00", ref)
	assert.ErrorIs(t, err, models.ErrInvalidTimeFormat)

	_, err = shifts.Record("e001", "25-02-2025", "9:00", "9:00", ref)
	assert.ErrorIs(t, err, models.ErrNonPositiveDuration)

	emp, _ := reg.Get("e001")
	assert.Empty(t, emp.Shifts, "no failure path may leave a partial write")
}

func TestEditShiftReplaces(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.Record("e001", "25-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)

	shift, err := shifts.Edit("e001", "25-02-2025", "9:30", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 7.5, shift.Hours)

	emp, _ := reg.Get("e001")
	assert.Len(t, emp.Shifts, 1, "edit replaces in place, never adds")
	assert.Equal(t, 7.5, emp.Shifts["2025-02-25"].Hours)
}

func TestEditShiftIgnoresReferenceDate(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.Record("e001", "20-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)

	// Editing a past shift stays possible whatever "today" is.
	_, err = shifts.Edit("e001", "20-02-2025", "10:00", "18:00")
	assert.NoError(t, err)
}

func TestEditShiftErrors(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.Edit("e001", "25-02-2025", "9:00", "17:00")
	assert.ErrorIs(t, err, models.ErrShiftNotFound)

	_, err = shifts.Edit("e999", "25-02-2025", "9:00", "17:00")
	assert.ErrorIs(t, err, models.ErrUnknownEmployee)

	_, err = shifts.Record("e001", "25-02-2025", "9:00", "17:00", ref)
	require.NoError(t, err)

	_, err = shifts.Edit("e001", "25-02-2025", "17:00", "17:00")
	assert.ErrorIs(t, err, models.ErrNonPositiveDuration)

	// The failed edit left the original shift alone.
	emp, _ := reg.Get("e001")
	assert.Equal(t, 8.0, emp.Shifts["2025-02-25"].Hours)
}

func TestTotalHours(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	for _, day := range []string{"20-02-2025", "22-02-2025", "25-02-2025"} {
		_, err := shifts.Record("e001", day, "9:00", "17:00", ref)
		require.NoError(t, err)
	}

	// Both boundary dates are included.
	total, err := shifts.TotalHours("e001", "20-02-2025", "25-02-2025", ref)
	require.NoError(t, err)
	assert.Equal(t, 24.0, total)

	// Narrower window drops the boundary shifts.
	total, err = shifts.TotalHours("e001", "21-02-2025", "24-02-2025", ref)
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)

	// Empty window is zero hours, not an error.
	total, err = shifts.TotalHours("e001", "01-01-2025", "05-01-2025", ref)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalHoursErrors(t *testing.T) {
	reg := newRegistryWith(t, "e001", "alice")
	shifts := service.NewShiftService(reg)

	_, err := shifts.TotalHours("e999", "20-02-2025", "25-02-2025", ref)
	assert.ErrorIs(t, err, models.ErrUnknownEmployee)

	_, err = shifts.TotalHours("e001", "31-02-2025", "25-02-2025", ref)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	_, err = shifts.TotalHours("e001", "20-02-2025", "26-02-2025", ref)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange, "future end date")
}
