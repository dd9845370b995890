package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservely/reservation-service/pkg/types"
)

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		duration *Duration
		want     types.TimeString
	}{
		{"simple", "18:30", &Duration{Hours: 2}, "20:30"},
		{"minute carry", "18:45", &Duration{Hours: 1, Minutes: 30}, "20:15"},
		{"minutes above sixty", "10:00", &Duration{Minutes: 90}, "11:30"},
		{"wraps past midnight", "23:30", &Duration{Hours: 1}, "00:30"},
		{"ends at midnight", "22:00", &Duration{Hours: 2}, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEndTime(tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeEndTime_Invalid(t *testing.T) {
	_, err := ComputeEndTime("", &Duration{Hours: 1})
	assert.ErrorIs(t, err, ErrInvalidStartTime)

	_, err = ComputeEndTime("25:00", &Duration{Hours: 1})
	assert.ErrorIs(t, err, ErrInvalidStartTime)

	_, err = ComputeEndTime("10:00", nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeEndTime("10:00", &Duration{Hours: -1})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeEndTime("10:00", &Duration{})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestComputeEndTime_Deterministic(t *testing.T) {
	d := &Duration{Hours: 1, Minutes: 45}
	first, err := ComputeEndTime("19:20", d)
	require.NoError(t, err)
	second, err := ComputeEndTime("19:20", d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeEndTime_LengthMatchesDuration(t *testing.T) {
	durations := []Duration{{Hours: 1}, {Minutes: 15}, {Hours: 2, Minutes: 50}, {Hours: 5, Minutes: 75}}
	starts := []types.TimeString{"00:00", "09:10", "17:45", "23:55"}

	for _, d := range durations {
		for _, start := range starts {
			end, err := ComputeEndTime(start, &d)
			require.NoError(t, err)

			startMinutes, _ := start.Minutes()
			endMinutes, _ := end.Minutes()
			length := (endMinutes - startMinutes + types.MinutesPerDay) % types.MinutesPerDay
			assert.Equal(t, d.TotalMinutes()%types.MinutesPerDay, length, "start=%s duration=%s", start, d)
		}
	}
}

func TestEndCrossesMidnight(t *testing.T) {
	crosses, err := EndCrossesMidnight("22:00", Duration{Hours: 2})
	require.NoError(t, err)
	assert.False(t, crosses)

	crosses, err = EndCrossesMidnight("22:15", Duration{Hours: 2})
	require.NoError(t, err)
	assert.True(t, crosses)

	_, err = EndCrossesMidnight("bad", Duration{Hours: 2})
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}
