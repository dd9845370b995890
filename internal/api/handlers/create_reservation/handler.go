package create_reservation

import (
	"errors"
	"net/http"

	"github.com/reservely/reservation-service/internal/api/handlers"
	"github.com/reservely/reservation-service/internal/domain"
	createReservation "github.com/reservely/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidFields      = "некорректный формат даты, времени или ID ресторана"
	msgSlotTaken          = "выбранное время только что заняли, попробуйте снова"
	msgBusy               = "ресторан обрабатывает другое бронирование, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /reservations - Conflict: restaurant_id=%s", req.RestaurantID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrBusy):
			h.logger.Warn("POST /reservations - Restaurant busy: restaurant_id=%s", req.RestaurantID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: restaurant_id=%s, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Отказ проверки: занято - 409, прочие причины - 422
	if result.Booking == nil {
		status := http.StatusUnprocessableEntity
		if result.Verdict.Kind == domain.KindNoTableAvailable {
			status = http.StatusConflict
		}
		h.logger.Warn("POST /reservations - Rejected: restaurant_id=%s, kind=%s", req.RestaurantID, result.Verdict.Kind)
		handlers.RespondJSON(w, status, response)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: booking_id=%s, restaurant_id=%s",
		result.Booking.ID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
