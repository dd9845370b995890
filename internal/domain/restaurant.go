package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/pkg/types"
)

// DaySchedule holds the opening hours of one weekday. The day is closed when either bound is absent.
type DaySchedule struct {
	Open  types.TimeString
	Close types.TimeString
}

// IsOpen returns true if both bounds are set
func (d DaySchedule) IsOpen() bool {
	return !d.Open.IsZero() && !d.Close.IsZero()
}

// Contains returns true if open <= t < close
func (d DaySchedule) Contains(t types.TimeString) bool {
	if !d.IsOpen() {
		return false
	}
	return !t.IsBefore(d.Open) && t.IsBefore(d.Close)
}

// WeeklySchedule represents opening hours for each day of the week
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the schedule of the given weekday
func (w WeeklySchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{}
	}
}

// RestaurantConfig represents the reservation settings of a restaurant
type RestaurantConfig struct {
	ID              uuid.UUID
	Name            string
	Schedule        WeeklySchedule
	DefaultDuration *Duration // nil = no default, request must carry a duration
	MinAdvanceHours int
	MaxAdvanceDays  int // 0 = unlimited
	MinPartySize    int
	MaxPartySize    int
	TimeZone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location returns the restaurant time zone, UTC if unset or unknown
func (c *RestaurantConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScheduleFor returns the opening hours for the weekday of date
func (c *RestaurantConfig) ScheduleFor(date time.Time) DaySchedule {
	return c.Schedule.ForWeekday(date.Weekday())
}

// IsOpen reports whether the restaurant accepts guests at the given instant,
// evaluated in the restaurant time zone
func (c *RestaurantConfig) IsOpen(when time.Time) bool {
	local := when.In(c.Location())
	return c.ScheduleFor(local).Contains(types.NewTimeString(local))
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *RestaurantConfig) HasAdvanceBookingLimit() bool {
	return c.MaxAdvanceDays > 0
}

// AcceptsPartySize returns true if size is within the configured bounds
func (c *RestaurantConfig) AcceptsPartySize(size int) bool {
	if size < c.MinPartySize {
		return false
	}
	return c.MaxPartySize <= 0 || size <= c.MaxPartySize
}

// ApplyDefaults fills party size bounds and time zone when they are unset
func (c *RestaurantConfig) ApplyDefaults() {
	if c.MinPartySize <= 0 {
		c.MinPartySize = DefaultMinPartySize
	}
	if c.MaxPartySize <= 0 {
		c.MaxPartySize = DefaultMaxPartySize
	}
	if c.TimeZone == "" {
		c.TimeZone = DefaultTimeZone
	}
}
