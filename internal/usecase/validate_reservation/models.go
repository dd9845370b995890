package validate_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

// Request модель запроса на проверку бронирования
type Request struct {
	RestaurantID uuid.UUID        // ID ресторана
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала (например, "18:00")
	PartySize    int              // Количество гостей
	Duration     *domain.Duration // Запрошенная длительность (nil - длительность ресторана по умолчанию)
}

// Response вердикт проверки. Отказ - это значение, а не ошибка.
type Response struct {
	Accepted        bool
	Kind            domain.RejectionKind // Пусто, если бронирование принято
	Message         string
	Table           *domain.Table    // Назначенный стол
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Вычисленное время окончания
	Duration        domain.Duration  // Применённая длительность
	AvailableTables []*domain.Table  // Все свободные подходящие столы
}

func accepted(start, end types.TimeString, d domain.Duration, table *domain.Table, free []*domain.Table) *Response {
	return &Response{
		Accepted:        true,
		Message:         domain.MessageAccepted,
		Table:           table,
		StartTime:       start,
		EndTime:         end,
		Duration:        d,
		AvailableTables: free,
	}
}

func rejected(kind domain.RejectionKind) *Response {
	return &Response{
		Kind:    kind,
		Message: kind.Message(),
	}
}
