package get_restaurant_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/reservely/reservation-service/internal/api/handlers"
	"github.com/reservely/reservation-service/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidAt           = "некорректный момент времени, ожидается RFC3339"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/hours
// С параметром at отвечает, открыт ли ресторан в этот момент.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := handlers.PathUUID(r, "restaurantId")
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var response interface{}

	if raw := r.URL.Query().Get("at"); raw != "" {
		at, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			h.logger.Warn("GET /restaurants/{id}/hours - Invalid at=%q: %v", raw, parseErr)
			handlers.RespondBadRequest(w, msgInvalidAt)
			return
		}
		response, err = h.service.IsOpenAt(r.Context(), restaurantID, at)
	} else {
		response, err = h.service.GetHours(r.Context(), restaurantID)
	}

	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/hours - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/hours - Failed to get hours: restaurant_id=%s, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
