package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/storage"
)

func dataPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shiftbot_data.txt")
}

func seedRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	_, err := reg.Add("e001", "alice")
	require.NoError(t, err)
	_, err = reg.SetSchedule("e001", time.Monday, "9:00-17:00")
	require.NoError(t, err)
	_, err = reg.SetSchedule("e001", time.Friday, "10:00-14:30")
	require.NoError(t, err)

	_, err = reg.Add("e002", "bob")
	require.NoError(t, err)

	emp, _ := reg.Get("e001")
	emp.Shifts["2025-02-24"] = models.Shift{Start: "9:00", End: "17:00", Hours: 8}
	emp.Shifts["2025-02-25"] = models.Shift{Start: "9:30", End: "17:00", Hours: 7.5}
	emp2, _ := reg.Get("e002")
	emp2.Shifts["2025-02-22"] = models.Shift{Start: "22:00", End: "6:00", Hours: 8}

	return reg
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := dataPath(t)
	reg := seedRegistry(t)

	require.NoError(t, storage.NewStore(path).Save(reg))

	reloaded := registry.New()
	require.NoError(t, storage.NewStore(path).Load(reloaded))

	require.Equal(t, reg.Len(), reloaded.Len())
	for i, want := range reg.List() {
		got := reloaded.List()[i]
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("employee %s mismatch after round trip (-want +got):\n%s", want.ID, diff)
		}
	}
}

func TestSaveRecordLayout(t *testing.T) {
	path := dataPath(t)
	reg := seedRegistry(t)

	require.NoError(t, storage.NewStore(path).Save(reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	assert.Equal(t, []string{
		"e001|alice|name",
		"e001|alice|schedule|Monday|9:00-17:00",
		"e001|alice|schedule|Friday|10:00-14:30",
		"e001|alice|shift|2025-02-24|9:00|17:00|8",
		"e001|alice|shift|2025-02-25|9:30|17:00|7.5",
		"e002|bob|name",
		"e002|bob|shift|2025-02-22|22:00|6:00|8",
	}, lines)
}

func TestLoadMissingFile(t *testing.T) {
	reg := registry.New()
	err := storage.NewStore(filepath.Join(t.TempDir(), "nope.txt")).Load(reg)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	path := dataPath(t)
	content := strings.Join([]string{
		"e001|alice|name",
		"garbage",
		"e001|alice|schedule|Funday|9:00-17:00",
		"e001|alice|schedule|Monday|nine to five",
		"e001|alice|shift|2025-02-24|9:00|17:00|eight",
		"e001|alice|shift|2025-02-25|9:00|17:00",
		"e001|alice|sandwich|whatever",
		"e001|alice|shift|2025-02-25|9:00|17:00|8",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg := registry.New()
	require.NoError(t, storage.NewStore(path).Load(reg))

	emp, ok := reg.Get("e001")
	require.True(t, ok)
	assert.Empty(t, emp.Schedule, "bad weekday and bad range records skipped")
	require.Len(t, emp.Shifts, 1, "only the well-formed shift record survives")
	assert.Equal(t, 8.0, emp.Shifts["2025-02-25"].Hours)
}

func TestLoadRegistersEmployeesOnce(t *testing.T) {
	path := dataPath(t)
	content := strings.Join([]string{
		"e001|alice|name",
		"e001|alice|schedule|Monday|9:00-17:00",
		"e001|alice smith|name", // later name record wins
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg := registry.New()
	require.NoError(t, storage.NewStore(path).Load(reg))

	require.Equal(t, 1, reg.Len())
	emp, _ := reg.Get("e001")
	assert.Equal(t, "alice smith", emp.Name)
	assert.Equal(t, "9:00-17:00", emp.Schedule[time.Monday])
}
