package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	RestaurantID uuid.UUID          // ID ресторана
	Date         time.Time          // Дата для получения слотов (без времени)
	PartySize    int                // Количество гостей
	Duration     *domain.Duration   // Длительность (nil - длительность ресторана по умолчанию)
	Slots        []types.TimeString // Кандидаты (пусто - сетка с шагом 15 минут по часам работы)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	RestaurantID uuid.UUID
	Date         time.Time
	Duration     domain.Duration        // Применённая длительность
	Slots        []domain.AvailableSlot // Слоты, в которые есть хотя бы один свободный стол
}
