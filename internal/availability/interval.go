package availability

import (
	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

// Interval is a half-open [Start, End) range in minutes from midnight.
// End may exceed a day when a booking rolls past 24:00.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds the interval of a reservation starting at start and lasting d
func NewInterval(start types.TimeString, d domain.Duration) (Interval, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	if err := d.Validate(); err != nil {
		return Interval{}, err
	}
	return Interval{Start: startMinutes, End: startMinutes + d.TotalMinutes()}, nil
}

// Overlaps returns true if the intervals share at least one minute.
// Touching intervals ([10:00,11:00) and [11:00,12:00)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Length returns the interval length in minutes
func (i Interval) Length() int {
	return i.End - i.Start
}

// HasConflict returns true if candidate overlaps any of existing
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// BookingInterval returns the occupied interval of an existing booking.
// A stored end time wins; otherwise the restaurant default duration is applied.
// ok is false when the interval cannot be derived.
func BookingInterval(b *domain.Booking, defaultDuration *domain.Duration) (Interval, bool) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return Interval{}, false
	}

	if b.HasExplicitEnd() {
		end, err := b.EndTime.Minutes()
		if err != nil {
			return Interval{}, false
		}
		// конец на следующие сутки
		if end <= start {
			end += types.MinutesPerDay
		}
		return Interval{Start: start, End: end}, true
	}

	if defaultDuration == nil || defaultDuration.Validate() != nil {
		return Interval{}, false
	}

	return Interval{Start: start, End: start + defaultDuration.TotalMinutes()}, true
}
