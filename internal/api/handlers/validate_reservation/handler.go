package validate_reservation

import (
	"net/http"

	"github.com/reservely/reservation-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase ValidateReservationUseCase
	logger  Logger
}

func NewHandler(useCase ValidateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/validate
// Отказ - это ответ 200 с accepted=false, а не ошибка HTTP.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations/validate - Malformed request: %v", err)
		handlers.RespondJSON(w, http.StatusOK, MalformedVerdict())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/validate - Failed to parse request: %v", err)
		handlers.RespondJSON(w, http.StatusOK, MalformedVerdict())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("POST /reservations/validate - Failed to validate: restaurant_id=%s, error=%v",
			req.RestaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/validate - restaurant_id=%s, accepted=%t, kind=%s",
		req.RestaurantID, result.Accepted, result.Kind)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
