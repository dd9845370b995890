package events

import "time"

const (
	// TypeReservationCreated тип события о новом бронировании
	TypeReservationCreated = "reservation.created"

	// TypeReservationStatusChanged тип события об изменении статуса бронирования
	TypeReservationStatusChanged = "reservation.status_changed"
)

// Envelope общая оболочка событий
type Envelope struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// ReservationPayload данные бронирования в событии
type ReservationPayload struct {
	BookingID    string  `json:"bookingId"`
	RestaurantID string  `json:"restaurantId"`
	TableID      *string `json:"tableId,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime,omitempty"`
	PartySize    int     `json:"partySize"`
	Status       string  `json:"status"`
}
