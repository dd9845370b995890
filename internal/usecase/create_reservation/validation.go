package create_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reservely/reservation-service/internal/domain"
)

// validateCustomer проверяет данные гостя. Параметры бронирования проверяет validate_reservation.
func validateCustomer(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	for field, value := range map[string]string{
		"customerName":  req.CustomerName,
		"customerEmail": req.CustomerEmail,
		"customerPhone": req.CustomerPhone,
	} {
		if utf8.RuneCountInString(value) > domain.MaxCustomerLength {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, domain.MaxCustomerLength)
		}
	}

	// Проверяем длину заметок
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// lockKey ключ блокировки ресторана
func lockKey(req *Request) string {
	return "restaurant:" + req.Reservation.RestaurantID.String()
}
