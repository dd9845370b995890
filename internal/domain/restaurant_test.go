package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func weekdaysOpen(open, close string) WeeklySchedule {
	day := DaySchedule{Open: typesTime(open), Close: typesTime(close)}
	return WeeklySchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day, Saturday: day,
	}
}

func TestRestaurantConfig_IsOpen(t *testing.T) {
	cfg := &RestaurantConfig{Schedule: weekdaysOpen("10:00", "22:00")}

	// 2025-06-04 среда
	wednesday := func(h, m int) time.Time { return time.Date(2025, 6, 4, h, m, 0, 0, time.UTC) }

	assert.True(t, cfg.IsOpen(wednesday(10, 0)), "opening minute is included")
	assert.True(t, cfg.IsOpen(wednesday(21, 59)))
	assert.False(t, cfg.IsOpen(wednesday(22, 0)), "closing minute is excluded")
	assert.False(t, cfg.IsOpen(wednesday(9, 59)))
}

func TestRestaurantConfig_ClosedDayNeverOpen(t *testing.T) {
	cfg := &RestaurantConfig{Schedule: weekdaysOpen("00:00", "23:59")}

	// 2025-06-08 воскресенье, расписание не задано
	for minute := 0; minute < 24*60; minute += 7 {
		when := time.Date(2025, 6, 8, minute/60, minute%60, 0, 0, time.UTC)
		assert.False(t, cfg.IsOpen(when), when.Format(TimeFormat))
	}
}

func TestRestaurantConfig_HalfOpenDayIsClosed(t *testing.T) {
	cfg := &RestaurantConfig{Schedule: WeeklySchedule{Monday: DaySchedule{Open: "10:00"}}}

	monday := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	assert.False(t, cfg.ScheduleFor(monday).IsOpen())
	assert.False(t, cfg.IsOpen(monday))
}

func TestRestaurantConfig_IsOpenUsesRestaurantZone(t *testing.T) {
	cfg := &RestaurantConfig{
		Schedule: weekdaysOpen("10:00", "22:00"),
		TimeZone: "Europe/Berlin",
	}

	// 08:30 UTC = 10:30 в Берлине летом
	assert.True(t, cfg.IsOpen(time.Date(2025, 6, 4, 8, 30, 0, 0, time.UTC)))
	// 20:30 UTC = 22:30 в Берлине
	assert.False(t, cfg.IsOpen(time.Date(2025, 6, 4, 20, 30, 0, 0, time.UTC)))
}

func TestRestaurantConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&RestaurantConfig{}).Location())
	assert.Equal(t, time.UTC, (&RestaurantConfig{TimeZone: "Mars/Olympus"}).Location())
}

func TestRestaurantConfig_AcceptsPartySize(t *testing.T) {
	cfg := &RestaurantConfig{}
	cfg.ApplyDefaults()

	assert.False(t, cfg.AcceptsPartySize(0))
	assert.True(t, cfg.AcceptsPartySize(1))
	assert.True(t, cfg.AcceptsPartySize(20))
	assert.False(t, cfg.AcceptsPartySize(21))
	assert.Equal(t, DefaultTimeZone, cfg.TimeZone)
}
