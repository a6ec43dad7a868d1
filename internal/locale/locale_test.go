package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/locale"
	"shiftbot/internal/models"
)

func TestGet(t *testing.T) {
	loc, err := locale.Get("en")
	require.NoError(t, err)
	assert.Equal(t, "en", loc.Name)

	loc, err = locale.Get("PT")
	require.NoError(t, err)
	assert.Equal(t, "pt", loc.Name)

	loc, err = locale.Get("")
	require.NoError(t, err)
	assert.Equal(t, "en", loc.Name, "empty locale falls back to English")

	_, err = locale.Get("fr")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		loc  *locale.Locale
		name string
		want time.Weekday
	}{
		{&locale.English, "monday", time.Monday},
		{&locale.English, "Sunday", time.Sunday},
		{&locale.Portuguese, "segunda-feira", time.Monday},
		{&locale.Portuguese, "sábado", time.Saturday},
		{&locale.Portuguese, "domingo", time.Sunday},
		// Canonical English names work under every locale.
		{&locale.Portuguese, "wednesday", time.Wednesday},
	}
	for _, tt := range tests {
		got, err := tt.loc.ParseWeekday(tt.name)
		require.NoErrorf(t, err, "%s: ParseWeekday(%q)", tt.loc.Name, tt.name)
		assert.Equal(t, tt.want, got)
	}

	_, err := locale.English.ParseWeekday("funday")
	assert.ErrorIs(t, err, models.ErrInvalidWeekday)
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Tuesday", locale.English.WeekdayName(time.Tuesday))
	assert.Equal(t, "Terça-feira", locale.Portuguese.WeekdayName(time.Tuesday))
}
