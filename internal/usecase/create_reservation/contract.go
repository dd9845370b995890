package create_reservation

import (
	"context"
	"time"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/internal/usecase/validate_reservation"
)

// Validator проверка бронирования (use case validate_reservation)
type Validator interface {
	Execute(ctx context.Context, req *validate_reservation.Request) (*validate_reservation.Response, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка на уровне ресторана (локальная или Redis)
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// EventPublisher публикует события о бронированиях
// ExpiringLocker блокировка, которая истекает сама через TTL и не продлевается
type ExpiringLocker interface {
	TTL() time.Duration
}

type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, booking *domain.Booking) error
}

// RetryObserver считает повторы создания (метрики)
type RetryObserver interface {
	ObserveRetry()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
