package get_restaurant_bookings

import (
	"context"

	"github.com/reservely/reservation-service/internal/service/bookings/models"
)

type BookingService interface {
	ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
