package get_restaurant_bookings

import (
	"errors"
	"net/http"

	"github.com/reservely/reservation-service/internal/api/handlers"
	"github.com/reservely/reservation-service/internal/service/bookings"
	"github.com/reservely/reservation-service/internal/service/bookings/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFlag         = "некорректное значение includeCancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/bookings?date=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := handlers.PathUUID(r, "restaurantId")
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	result, err := h.service.ListForDate(r.Context(), &models.ListForDateRequest{
		RestaurantID:     restaurantID,
		Date:             date,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /restaurants/{id}/bookings - Failed to list bookings: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
