package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservely/reservation-service/internal/domain"
	bookingRepo "github.com/reservely/reservation-service/internal/infra/storage/booking"
	"github.com/reservely/reservation-service/pkg/ptr"
	"github.com/reservely/reservation-service/pkg/txmanager"
)

const (
	// DefaultAttempts количество попыток, если в конфигурации не задано
	DefaultAttempts = 3

	// holdReserveDivisor часть TTL (1/5), оставляемая на снятие блокировки и расхождение часов
	holdReserveDivisor = 5
)

// UseCase use case для создания бронирования.
// Проверка и вставка выполняются под блокировкой ресторана в одной сериализуемой транзакции.
type UseCase struct {
	validator   Validator
	bookingRepo BookingRepository
	txManager   TransactionManager
	locker      Locker
	publisher   EventPublisher
	observer    RetryObserver
	attempts    int
	holdTimeout time.Duration
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator Validator,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	locker Locker,
	publisher EventPublisher,
	observer RetryObserver,
	attempts int,
	logger Logger,
) *UseCase {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	// Истекающая блокировка ограничивает время всех попыток,
	// иначе транзакция может продолжиться после освобождения ключа
	var holdTimeout time.Duration
	if expiring, ok := locker.(ExpiringLocker); ok && expiring.TTL() > 0 {
		ttl := expiring.TTL()
		holdTimeout = ttl - ttl/holdReserveDivisor
	}

	return &UseCase{
		validator:   validator,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		locker:      locker,
		publisher:   publisher,
		observer:    observer,
		attempts:    attempts,
		holdTimeout: holdTimeout,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Отказ проверки возвращается в Response.Verdict без ошибки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация данных гостя
	if err := validateCustomer(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: restaurant=%s, date=%s, time=%s, party=%d",
		req.Reservation.RestaurantID, req.Reservation.Date.Format(domain.DateFormat),
		req.Reservation.StartTime, req.Reservation.PartySize)

	// 2. Блокировка ресторана
	unlock, err := uc.locker.Lock(ctx, lockKey(req))
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to lock restaurant=%s: %v", req.Reservation.RestaurantID, err)
		return nil, fmt.Errorf("%w: %v", ErrBusy, err)
	}
	defer unlock()

	// Попытки не должны пережить блокировку, публикация события идёт уже без этого ограничения
	holdCtx := ctx
	if uc.holdTimeout > 0 {
		var cancel context.CancelFunc
		holdCtx, cancel = context.WithTimeout(ctx, uc.holdTimeout)
		defer cancel()
	}

	// 3. Проверка и вставка, повтор при конфликте на уровне БД
	for attempt := 1; attempt <= uc.attempts; attempt++ {
		resp, err := uc.attempt(holdCtx, req)
		if err != nil && holdCtx.Err() != nil {
			uc.logger.Warn("CreateReservation: lock hold time exceeded for restaurant=%s on attempt %d: %v",
				req.Reservation.RestaurantID, attempt, err)
			return nil, fmt.Errorf("%w: lock hold time exceeded: %v", ErrBusy, holdCtx.Err())
		}
		if err == nil {
			if resp.Booking != nil {
				uc.afterCreate(ctx, resp.Booking)
			}
			return resp, nil
		}

		if !isRetryable(err) {
			return nil, err
		}

		uc.logger.Warn("CreateReservation: attempt %d/%d conflicted: %v", attempt, uc.attempts, err)
		if uc.observer != nil {
			uc.observer.ObserveRetry()
		}
	}

	uc.logger.Error("CreateReservation: gave up after %d attempts for restaurant=%s",
		uc.attempts, req.Reservation.RestaurantID)
	return nil, ErrConflict
}

// attempt одна попытка: проверка и вставка в сериализуемой транзакции
func (uc *UseCase) attempt(ctx context.Context, req *Request) (*Response, error) {
	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверка (бронирования на дату читаются с FOR UPDATE)
		verdict, err := uc.validator.Execute(txCtx, &req.Reservation)
		if err != nil {
			// конфликт сериализации при чтении с FOR UPDATE повторяется как и при вставке
			if isRetryable(err) {
				return err
			}
			return fmt.Errorf("%w: validation failed: %v", ErrInternal, err)
		}

		if !verdict.Accepted {
			uc.logger.Info("CreateReservation: rejected: %s", verdict.Kind)
			result = &Response{Verdict: verdict}
			return nil
		}

		// 3.2. Сохраняем бронирование с явным временем окончания
		booking := &domain.Booking{
			RestaurantID:  req.Reservation.RestaurantID,
			TableID:       ptr.Ptr(verdict.Table.ID),
			BookingDate:   req.Reservation.Date,
			StartTime:     verdict.StartTime,
			EndTime:       verdict.EndTime,
			PartySize:     req.Reservation.PartySize,
			Status:        domain.StatusPlanned,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if isRetryable(err) {
				return err
			}
			uc.logger.Error("CreateReservation: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = &Response{Verdict: verdict, Booking: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// afterCreate публикует событие после фиксации транзакции.
// Ошибка публикации не отменяет бронирование.
func (uc *UseCase) afterCreate(ctx context.Context, booking *domain.Booking) {
	uc.logger.Info("CreateReservation: successfully created booking id=%s, %s-%s",
		booking.ID, booking.StartTime, booking.EndTime)

	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishReservationCreated(ctx, booking); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for booking id=%s: %v", booking.ID, err)
	}
}

// isRetryable конфликт exclusion constraint или сбой сериализации
// isRetryable конфликты, после которых попытку можно повторить:
// пересечение на вставке, сериализация на чтении, вставке или COMMIT
func isRetryable(err error) bool {
	return errors.Is(err, bookingRepo.ErrSlotTaken) ||
		errors.Is(err, bookingRepo.ErrSerialization) ||
		errors.Is(err, txmanager.ErrSerialization)
}
