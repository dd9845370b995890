package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListForDateRequest запрос на получение бронирований ресторана за день
type ListForDateRequest struct {
	RestaurantID     uuid.UUID
	Date             time.Time
	IncludeCancelled bool // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListForDateRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		RestaurantID:     r.RestaurantID,
		Date:             &r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	RestaurantID  string  `json:"restaurantId"`
	TableID       *string `json:"tableId,omitempty"`
	BookingDate   string  `json:"bookingDate"`       // "2025-10-15"
	StartTime     string  `json:"startTime"`         // "18:00"
	EndTime       string  `json:"endTime,omitempty"` // пусто для старых записей
	PartySize     int     `json:"partySize"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID.String(),
		RestaurantID:  b.RestaurantID.String(),
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		PartySize:     b.PartySize,
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.TableID != nil {
		tableID := b.TableID.String()
		resp.TableID = &tableID
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	return resp
}
