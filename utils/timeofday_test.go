package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"06:00": 360,
		"09:30": 570,
		"23:00": 1380,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "9am", "24:00", "12:60", "12", "12:5"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:05", FormatTimeOfDay(545))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "23:59", FormatTimeOfDay(1439))

	assert.Equal(t, "9:05 AM", FormatTimeOfDayDisplay(545))
	assert.Equal(t, "12:00 AM", FormatTimeOfDayDisplay(0))
	assert.Equal(t, "12:00 PM", FormatTimeOfDayDisplay(720))
	assert.Equal(t, "3:00 PM", FormatTimeOfDayDisplay(900))
}

func TestParseBookingDate(t *testing.T) {
	d, err := ParseBookingDate("2026-09-07", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "07-09-2026", "2026/09/07", "2026-13-01"} {
		_, err := ParseBookingDate(bad, time.UTC)
		assert.Error(t, err, bad)
	}
}

func TestWeekdayMondayZero(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayMondayZero(monday.AddDate(0, 0, i)))
	}
}
