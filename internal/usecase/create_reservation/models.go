package create_reservation

import (
	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/internal/usecase/validate_reservation"
)

// Request модель запроса на создание бронирования
type Request struct {
	Reservation validate_reservation.Request // Ресторан, дата, время, гости, длительность

	CustomerName  string  // Имя гостя
	CustomerEmail string  // Email гостя (опционально)
	CustomerPhone string  // Телефон гостя (опционально)
	Notes         *string // Дополнительные заметки (опционально)
}

// Response результат: вердикт проверки и созданное бронирование (nil при отказе)
type Response struct {
	Verdict *validate_reservation.Response
	Booking *domain.Booking
}
