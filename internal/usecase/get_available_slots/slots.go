package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/availability"
	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

// candidateSlots возвращает слоты-кандидаты в пределах часов работы.
// Порядок переданных слотов сохраняется.
func candidateSlots(schedule domain.DaySchedule, requested []types.TimeString) []types.TimeString {
	if len(requested) == 0 {
		return availability.GenerateSlots(schedule.Open, schedule.Close)
	}

	result := make([]types.TimeString, 0, len(requested))
	for _, slot := range requested {
		if schedule.Contains(slot) {
			result = append(result, slot)
		}
	}
	return result
}

// filterByNotice отбрасывает слоты, до начала которых осталось меньше minAdvanceHours
func filterByNotice(slots []types.TimeString, date time.Time, loc *time.Location, now time.Time, minAdvanceHours int) []types.TimeString {
	earliest := now.Add(time.Duration(minAdvanceHours) * time.Hour)

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		startAt, err := slot.OnDate(date, loc)
		if err != nil || startAt.Before(earliest) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// evaluateSlots оставляет слоты, в которые свободен хотя бы один подходящий стол.
// Слоты, конец которых переходит через полночь, пропускаются.
func evaluateSlots(
	slots []types.TimeString,
	duration domain.Duration,
	tables []*domain.Table,
	byTable map[uuid.UUID][]*domain.Booking,
	partySize int,
	defaultDuration *domain.Duration,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0)

	for _, slot := range slots {
		crosses, err := domain.EndCrossesMidnight(slot, duration)
		if err != nil || crosses {
			continue
		}

		candidate, err := availability.NewInterval(slot, duration)
		if err != nil {
			continue
		}

		free := availability.FindAvailableTables(tables, byTable, candidate, partySize, defaultDuration)
		if len(free) == 0 {
			continue
		}

		end, err := domain.ComputeEndTime(slot, &duration)
		if err != nil {
			continue
		}

		result = append(result, domain.AvailableSlot{
			StartTime:  slot,
			EndTime:    end,
			FreeTables: len(free),
		})
	}

	return result
}
