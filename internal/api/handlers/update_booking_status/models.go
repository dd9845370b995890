package update_booking_status

import "github.com/reservely/reservation-service/internal/service/bookings/models"

// UpdateStatusRequest тело запроса PATCH /bookings/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned arrived cancelled"`
}

func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{Status: r.Status}
}
