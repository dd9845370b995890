package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPlanned   BookingStatus = "planned"
	StatusArrived   BookingStatus = "arrived"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a table reservation
type Booking struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	TableID      *uuid.UUID // nil until a table is assigned
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString // empty for legacy rows, derived from the restaurant default
	PartySize    int
	Status       BookingStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its table
func (b *Booking) IsActive() bool {
	return b.Status == StatusPlanned || b.Status == StatusArrived
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HasExplicitEnd returns true if the end time was stored with the booking
func (b *Booking) HasExplicitEnd() bool {
	return !b.EndTime.IsZero()
}

// CanTransitionTo returns true if the status change is allowed.
// Only planned bookings can change, either to arrived or to cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusPlanned {
		return false
	}
	return next == StatusArrived || next == StatusCancelled
}

// ParseBookingStatus converts a raw string into a known status
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	switch status := BookingStatus(raw); status {
	case StatusPlanned, StatusArrived, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для получения бронирований ресторана
type BookingsFilter struct {
	RestaurantID     uuid.UUID  // Обязательный параметр
	Date             *time.Time // Дата (опционально, если nil - все даты)
	TableID          *uuid.UUID // Фильтр по столу (опционально)
	IncludeCancelled bool       // Включать ли отменённые бронирования
}

// IsSingleDay returns true if the filter selects one calendar day
func (f BookingsFilter) IsSingleDay() bool {
	return f.Date != nil
}
