package get_restaurant_hours

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/service/restaurants/models"
)

type RestaurantService interface {
	GetHours(ctx context.Context, id uuid.UUID) (*models.HoursResponse, error)
	IsOpenAt(ctx context.Context, id uuid.UUID, at time.Time) (*models.OpenAtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
