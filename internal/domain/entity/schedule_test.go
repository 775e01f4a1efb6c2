package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeekIsValid(t *testing.T) {
	for _, day := range []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		assert.True(t, day.IsValid(), "expected %s to be valid", day)
	}

	assert.False(t, DayOfWeek("monday").IsValid(), "day names are case sensitive")
	assert.False(t, DayOfWeek("Funday").IsValid())
	assert.False(t, DayOfWeek("").IsValid())
}

func TestDayOfWeekFromDate(t *testing.T) {
	// 2026-08-24 is a Monday.
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, DayOfWeekFromDate(date))
	assert.Equal(t, Sunday, DayOfWeekFromDate(date.AddDate(0, 0, 6)))
}

func TestScheduleContains(t *testing.T) {
	window := &Schedule{StartTime: "09:00", EndTime: "17:00"}

	tests := []struct {
		name      string
		start     string
		end       string
		contained bool
	}{
		{"whole window", "09:00", "17:00", true},
		{"inside window", "10:00", "11:00", true},
		{"starts before window", "08:30", "10:00", false},
		{"ends after window", "16:00", "17:30", false},
		{"fully outside", "18:00", "19:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contained, window.Contains(tt.start, tt.end))
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	normalized, err := NormalizeClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", normalized)

	normalized, err = NormalizeClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", normalized)

	_, err = NormalizeClock("25:00")
	assert.Error(t, err)

	_, err = NormalizeClock("not a time")
	assert.Error(t, err)
}

// Interval checks compare normalized strings, so padding has to restore
// lexicographic clock order.
func TestNormalizeClockOrdering(t *testing.T) {
	early, err := NormalizeClock("9:00")
	require.NoError(t, err)
	late, err := NormalizeClock("10:00")
	require.NoError(t, err)

	assert.True(t, early < late)
}
