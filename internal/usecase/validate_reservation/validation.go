package validate_reservation

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

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	// Длительность необязательна, но если указана - должна быть корректной
	if req.Duration != nil {
		if err := req.Duration.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
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

// withinBookingWindow проверяет минимальное время до начала и максимальный горизонт бронирования
func withinBookingWindow(restaurant *domain.RestaurantConfig, startAt, now time.Time) bool {
	earliest := now.Add(time.Duration(restaurant.MinAdvanceHours) * time.Hour)
	if startAt.Before(earliest) {
		return false
	}

	if !restaurant.HasAdvanceBookingLimit() {
		return true
	}

	// Горизонт считается в днях от сегодняшней даты ресторана
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lastDay := today.AddDate(0, 0, restaurant.MaxAdvanceDays)
	bookingDay := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, startAt.Location())

	return !bookingDay.After(lastDay)
}
