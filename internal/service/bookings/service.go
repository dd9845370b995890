package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/reservely/reservation-service/internal/domain"
	bookingRepo "github.com/reservely/reservation-service/internal/infra/storage/booking"
	"github.com/reservely/reservation-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListForDate получает бронирования ресторана за день, отсортированные по времени начала.
// Отменённые включаются только по запросу.
func (s *Service) ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.BookingListResponse, error) {
	if req == nil || req.RestaurantID == uuid.Nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: restaurantId and date are required", ErrInvalidInput)
	}

	s.logger.Info("ListForDate: fetching bookings for restaurant=%s, date=%s, includeCancelled=%t",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.IncludeCancelled)

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListForDate: repository error for restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: successfully fetched %d bookings for restaurant=%s", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Разрешены только planned -> arrived и planned -> cancelled.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	s.logger.Info("UpdateStatus: booking id=%s -> %s", id, status)

	var updated *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, status); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = status
		updated = booking
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrInvalidTransition):
		s.logger.Warn("UpdateStatus: booking id=%s: %v", id, err)
		return nil, err
	case errors.Is(err, ErrInternal):
		s.logger.Error("UpdateStatus: booking id=%s: %v", id, err)
		return nil, err
	default:
		s.logger.Error("UpdateStatus: transaction failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - transaction error: %v", ErrInternal, err)
	}

	// Событие публикуется после фиксации транзакции
	if s.publisher != nil {
		if err := s.publisher.PublishStatusChanged(ctx, updated); err != nil {
			s.logger.Warn("UpdateStatus: failed to publish event for booking id=%s: %v", id, err)
		}
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, status)
	return models.FromDomainBooking(updated), nil
}
