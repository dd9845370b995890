package get_available_slots

import (
	"github.com/reservely/reservation-service/internal/domain"
	getAvailableSlots "github.com/reservely/reservation-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	FreeTables int    `json:"freeTables"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RestaurantID string         `json:"restaurantId"`
	Date         string         `json:"date"`
	Hours        int            `json:"hours"`
	Minutes      int            `json:"minutes"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		RestaurantID: resp.RestaurantID.String(),
		Date:         resp.Date.Format(domain.DateFormat),
		Hours:        resp.Duration.Hours,
		Minutes:      resp.Duration.Minutes,
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
			FreeTables: slot.FreeTables,
		})
	}

	return result
}
