package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.Duration != nil {
		if err := req.Duration.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	for _, slot := range req.Slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, maxAdvanceDays int) error {
	today := dateOnly(now)
	day := dateOnly(requestDate)

	// Проверяем, что дата не в прошлом
	if day.Before(today) {
		return ErrInvalidDate
	}

	// Если maxAdvanceDays = 0, нет ограничений на дату
	if maxAdvanceDays == 0 {
		return nil
	}

	if day.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// resolveDuration возвращает запрошенную длительность или длительность ресторана по умолчанию
func resolveDuration(requested, fallback *domain.Duration) (domain.Duration, bool) {
	if requested != nil {
		return *requested, true
	}
	if fallback != nil && fallback.Validate() == nil {
		return *fallback, true
	}
	return domain.Duration{}, false
}

// dateOnly обнуляет время, оставляя дату в UTC
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
