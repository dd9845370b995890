package validate_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	validateReservation "github.com/reservely/reservation-service/internal/usecase/validate_reservation"
	"github.com/reservely/reservation-service/pkg/types"
)

// DurationDTO длительность бронирования
type DurationDTO struct {
	Hours   int `json:"hours" validate:"gte=0"`
	Minutes int `json:"minutes" validate:"gte=0"`
}

// ReservationRequest HTTP request model (общая для проверки и создания)
type ReservationRequest struct {
	RestaurantID string       `json:"restaurantId" validate:"required,uuid"`
	Date         string       `json:"date" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	StartTime    string       `json:"startTime" validate:"required"`                // "18:00"
	PartySize    int          `json:"partySize" validate:"required,gt=0"`
	Duration     *DurationDTO `json:"duration,omitempty" validate:"omitempty"`
}

// TableDTO назначенный стол
type TableDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// VerdictResponse HTTP response model
type VerdictResponse struct {
	Accepted        bool         `json:"accepted"`
	ErrorKind       string       `json:"errorKind,omitempty"`
	Message         string       `json:"message"`
	Table           *TableDTO    `json:"table,omitempty"`
	StartTime       string       `json:"startTime,omitempty"`
	EndTime         string       `json:"endTime,omitempty"`
	Duration        *DurationDTO `json:"duration,omitempty"`
	AvailableTables []TableDTO   `json:"availableTables,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReservationRequest) ToUseCaseRequest() (*validateReservation.Request, error) {
	restaurantID, err := uuid.Parse(r.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurantId: %w", err)
	}

	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	req := &validateReservation.Request{
		RestaurantID: restaurantID,
		Date:         date,
		StartTime:    startTime,
		PartySize:    r.PartySize,
	}
	if r.Duration != nil {
		req.Duration = &domain.Duration{Hours: r.Duration.Hours, Minutes: r.Duration.Minutes}
	}

	return req, nil
}

// MalformedVerdict ответ для запроса, который не удалось разобрать
func MalformedVerdict() *VerdictResponse {
	return &VerdictResponse{
		ErrorKind: string(domain.KindMalformedRequest),
		Message:   domain.KindMalformedRequest.Message(),
	}
}

// FromUseCaseResponse конвертирует вердикт use case в HTTP response
func FromUseCaseResponse(resp *validateReservation.Response) *VerdictResponse {
	if !resp.Accepted {
		return &VerdictResponse{
			ErrorKind: string(resp.Kind),
			Message:   resp.Message,
		}
	}

	result := &VerdictResponse{
		Accepted:        true,
		Message:         resp.Message,
		Table:           fromTable(resp.Table),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Duration:        &DurationDTO{Hours: resp.Duration.Hours, Minutes: resp.Duration.Minutes},
		AvailableTables: make([]TableDTO, 0, len(resp.AvailableTables)),
	}
	for _, t := range resp.AvailableTables {
		result.AvailableTables = append(result.AvailableTables, *fromTable(t))
	}

	return result
}

func fromTable(t *domain.Table) *TableDTO {
	if t == nil {
		return nil
	}
	return &TableDTO{ID: t.ID.String(), Name: t.Name, Capacity: t.Capacity}
}
