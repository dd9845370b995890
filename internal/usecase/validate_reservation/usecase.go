package validate_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservely/reservation-service/internal/availability"
	"github.com/reservely/reservation-service/internal/domain"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
)

// UseCase проверяет возможность бронирования и подбирает стол.
// Только читает данные, ничего не записывает.
type UseCase struct {
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	observer       DecisionObserver
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	observer DecisionObserver,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		bookingRepo:    bookingRepo,
		timeProvider:   timeProvider,
		observer:       observer,
		logger:         logger,
	}
}

// Execute выполняет проверку бронирования.
// Бизнес-отказы возвращаются в Response, ошибка - только при сбое инфраструктуры.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.decide(ctx, req)
	if err != nil {
		return nil, err
	}

	if uc.observer != nil {
		uc.observer.ObserveDecision(resp.Accepted, string(resp.Kind))
	}

	return resp, nil
}

func (uc *UseCase) decide(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateReservation: malformed request: %v", err)
		return rejected(domain.KindMalformedRequest), nil
	}

	uc.logger.Info("ValidateReservation: restaurant=%s, date=%s, time=%s, party=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 2. Загружаем настройки ресторана
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("ValidateReservation: restaurant id=%s not found", req.RestaurantID)
			return rejected(domain.KindRestaurantLookupFailed), nil
		}
		uc.logger.Error("ValidateReservation: failed to get restaurant id=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Определяем длительность: запрошенная или по умолчанию
	duration, ok := resolveDuration(req.Duration, restaurant.DefaultDuration)
	if !ok {
		uc.logger.Warn("ValidateReservation: no duration for restaurant id=%s", restaurant.ID)
		return rejected(domain.KindDurationUnresolvable), nil
	}

	// 4. Размер компании
	if !restaurant.AcceptsPartySize(req.PartySize) {
		uc.logger.Warn("ValidateReservation: party=%d outside [%d, %d]",
			req.PartySize, restaurant.MinPartySize, restaurant.MaxPartySize)
		return rejected(domain.KindPartySizeOutOfRange), nil
	}

	// 5. Часы работы
	loc := restaurant.Location()
	startAt, err := req.StartTime.OnDate(req.Date, loc)
	if err != nil {
		return rejected(domain.KindMalformedRequest), nil
	}
	if !restaurant.IsOpen(startAt) {
		uc.logger.Warn("ValidateReservation: restaurant id=%s closed at %s", restaurant.ID, startAt.Format("2006-01-02 15:04"))
		return rejected(domain.KindRestaurantClosed), nil
	}

	// 6. Бронирование не должно переходить через полночь
	crosses, err := domain.EndCrossesMidnight(req.StartTime, duration)
	if err != nil {
		return rejected(domain.KindMalformedRequest), nil
	}
	if crosses {
		uc.logger.Warn("ValidateReservation: %s + %s crosses midnight", req.StartTime, duration)
		return rejected(domain.KindCrossesMidnight), nil
	}

	// 7. Окно бронирования (минимум часов до начала, максимум дней вперёд)
	now := uc.timeProvider.Now().In(loc)
	if !withinBookingWindow(restaurant, startAt, now) {
		uc.logger.Warn("ValidateReservation: %s outside booking window (now=%s, minAdvanceHours=%d, maxAdvanceDays=%d)",
			startAt.Format("2006-01-02 15:04"), now.Format("2006-01-02 15:04"), restaurant.MinAdvanceHours, restaurant.MaxAdvanceDays)
		return rejected(domain.KindOutsideBookingWindow), nil
	}

	// 8. Получаем столы и бронирования на дату (в транзакции - с блокировкой)
	tables, err := uc.tableRepo.GetByRestaurant(ctx, restaurant.ID)
	if err != nil {
		uc.logger.Error("ValidateReservation: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %w", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: restaurant.ID,
		Date:         &req.Date,
	})
	if err != nil {
		uc.logger.Error("ValidateReservation: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	// 9. Подбираем стол с запрошенной длительностью
	candidate, err := availability.NewInterval(req.StartTime, duration)
	if err != nil {
		return rejected(domain.KindMalformedRequest), nil
	}

	byTable := availability.BookingsByTable(bookings, req.Date)
	free := availability.FindAvailableTables(tables, byTable, candidate, req.PartySize, restaurant.DefaultDuration)
	table := availability.AssignTable(free)
	if table == nil {
		uc.logger.Warn("ValidateReservation: no table for party=%d at %s, %d tables checked",
			req.PartySize, req.StartTime, len(tables))
		return rejected(domain.KindNoTableAvailable), nil
	}

	endTime, err := domain.ComputeEndTime(req.StartTime, &duration)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidateReservation: accepted, table=%s (capacity %d), %s-%s, %d free tables",
		table.ID, table.Capacity, req.StartTime, endTime, len(free))

	return accepted(req.StartTime, endTime, duration, table, free), nil
}
