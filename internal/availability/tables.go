package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
)

// BookingsByTable groups the occupying bookings of date by table.
// Bookings without a table or on another day are skipped.
func BookingsByTable(bookings []*domain.Booking, date time.Time) map[uuid.UUID][]*domain.Booking {
	result := make(map[uuid.UUID][]*domain.Booking)

	for _, b := range bookings {
		if b.TableID == nil || !b.IsActive() || !sameDay(b.BookingDate, date) {
			continue
		}
		result[*b.TableID] = append(result[*b.TableID], b)
	}

	return result
}

// FindAvailableTables returns the tables that seat partySize, are offered for
// reservations and have no booking overlapping candidate. Existing bookings
// whose interval cannot be derived block their table. Input order is kept.
func FindAvailableTables(
	tables []*domain.Table,
	bookingsByTable map[uuid.UUID][]*domain.Booking,
	candidate Interval,
	partySize int,
	defaultDuration *domain.Duration,
) []*domain.Table {
	available := make([]*domain.Table, 0)

	for _, table := range tables {
		if !table.Fits(partySize) || !table.IsOffered() {
			continue
		}
		if tableBusy(bookingsByTable[table.ID], candidate, defaultDuration) {
			continue
		}
		available = append(available, table)
	}

	return available
}

// AssignTable picks the smallest table, ties broken by the lowest id.
// Returns nil for an empty list.
func AssignTable(tables []*domain.Table) *domain.Table {
	var best *domain.Table

	for _, table := range tables {
		if best == nil ||
			table.Capacity < best.Capacity ||
			(table.Capacity == best.Capacity && table.ID.String() < best.ID.String()) {
			best = table
		}
	}

	return best
}

func tableBusy(bookings []*domain.Booking, candidate Interval, defaultDuration *domain.Duration) bool {
	for _, b := range bookings {
		iv, ok := BookingInterval(b, defaultDuration)
		if !ok || candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
