package create_reservation

import (
	"github.com/reservely/reservation-service/internal/api/handlers/validate_reservation"
	"github.com/reservely/reservation-service/internal/service/bookings/models"
	createReservation "github.com/reservely/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	validate_reservation.ReservationRequest

	CustomerName  string  `json:"customerName" validate:"required,max=255"`
	CustomerEmail string  `json:"customerEmail,omitempty" validate:"omitempty,email,max=255"`
	CustomerPhone string  `json:"customerPhone,omitempty" validate:"omitempty,max=32"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Booking *models.BookingResponse               `json:"booking"`
	Verdict *validate_reservation.VerdictResponse `json:"verdict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	reservation, err := r.ReservationRequest.ToUseCaseRequest()
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Reservation:   *reservation,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Booking: models.FromDomainBooking(resp.Booking),
		Verdict: validate_reservation.FromUseCaseResponse(resp.Verdict),
	}
}
