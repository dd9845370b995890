package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/reservely/reservation-service/internal/api/handlers"
	"github.com/reservely/reservation-service/internal/domain"
	getAvailableSlots "github.com/reservely/reservation-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize    = "некорректное количество гостей"
	msgInvalidDuration     = "некорректная длительность"
	msgInvalidInput        = "некорректные параметры запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgNoDuration          = "не указана длительность и у ресторана нет длительности по умолчанию"
	msgPartySizeOutOfRange = "количество гостей вне допустимого диапазона"
	msgDateInPast          = "дата в прошлом"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-slots?date=&partySize=&hours=&minutes=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := handlers.PathUUID(r, "restaurantId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := handlers.QueryInt(r, "partySize")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	duration, err := handlers.QueryDuration(r)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		RestaurantID: restaurantID,
		Date:         date,
		PartySize:    partySize,
		Duration:     duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrRestaurantNotFound):
			h.logger.Warn("GET /available-slots - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getAvailableSlots.ErrDurationUnresolvable):
			handlers.RespondBadRequest(w, msgNoDuration)

		case errors.Is(err, getAvailableSlots.ErrPartySizeOutOfRange):
			handlers.RespondBadRequest(w, msgPartySizeOutOfRange)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: restaurant_id=%s, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - restaurant_id=%s, date=%s, slots=%d",
		restaurantID, date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
