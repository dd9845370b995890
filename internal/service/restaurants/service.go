package restaurants

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
	"github.com/reservely/reservation-service/internal/service/restaurants/models"
)

// Service сервис чтения расписания ресторанов
type Service struct {
	restaurantRepo RestaurantRepository
	timeProvider   TimeProvider
	logger         Logger
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// NewService создает новый экземпляр сервиса ресторанов
func NewService(restaurantRepo RestaurantRepository, timeProvider TimeProvider, logger Logger) *Service {
	if timeProvider == nil {
		timeProvider = realTimeProvider{}
	}
	return &Service{
		restaurantRepo: restaurantRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// GetHours возвращает недельное расписание и правила бронирования
func (s *Service) GetHours(ctx context.Context, id uuid.UUID) (*models.HoursResponse, error) {
	s.logger.Info("GetHours: fetching restaurant id=%s", id)

	restaurant, err := s.getRestaurant(ctx, "GetHours", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRestaurant(restaurant, restaurant.IsOpen(s.timeProvider.Now())), nil
}

// IsOpenAt проверяет, открыт ли ресторан в указанный момент (по его часовому поясу)
func (s *Service) IsOpenAt(ctx context.Context, id uuid.UUID, at time.Time) (*models.OpenAtResponse, error) {
	s.logger.Info("IsOpenAt: restaurant id=%s, at=%s", id, at.Format(time.RFC3339))

	restaurant, err := s.getRestaurant(ctx, "IsOpenAt", id)
	if err != nil {
		return nil, err
	}

	local := at.In(restaurant.Location())

	return &models.OpenAtResponse{
		RestaurantID: restaurant.ID.String(),
		At:           local.Format(time.RFC3339),
		IsOpen:       restaurant.IsOpen(at),
		Hours:        models.FromDaySchedule(local.Weekday(), restaurant.ScheduleFor(local)),
	}, nil
}

func (s *Service) getRestaurant(ctx context.Context, op string, id uuid.UUID) (*domain.RestaurantConfig, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("%s: restaurant id=%s not found", op, id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("%s: repository error for restaurant id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return restaurant, nil
}
