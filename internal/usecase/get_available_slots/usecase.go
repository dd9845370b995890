package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservely/reservation-service/internal/availability"
	"github.com/reservely/reservation-service/internal/domain"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
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
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: restaurant=%s, date=%s, party=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.PartySize)

	// 2. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant id=%s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get restaurant id=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Длительность и размер компании
	duration, ok := resolveDuration(req.Duration, restaurant.DefaultDuration)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: no duration for restaurant id=%s", restaurant.ID)
		return nil, ErrDurationUnresolvable
	}

	if !restaurant.AcceptsPartySize(req.PartySize) {
		uc.logger.Warn("GetAvailableSlots: party=%d outside [%d, %d]",
			req.PartySize, restaurant.MinPartySize, restaurant.MaxPartySize)
		return nil, fmt.Errorf("%w: allowed from %d to %d guests",
			ErrPartySizeOutOfRange, restaurant.MinPartySize, restaurant.MaxPartySize)
	}

	// 4. Валидация даты относительно "сегодня" ресторана
	loc := restaurant.Location()
	now := uc.timeProvider.Now().In(loc)
	if err := validateDate(req.Date, now, restaurant.MaxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		RestaurantID: restaurant.ID,
		Date:         req.Date,
		Duration:     duration,
		Slots:        []domain.AvailableSlot{},
	}

	// 5. Выходной день - пустой список
	schedule := restaurant.ScheduleFor(req.Date)
	if !schedule.IsOpen() {
		uc.logger.Info("GetAvailableSlots: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 6. Кандидаты с учетом минимального времени до бронирования
	slots := candidateSlots(schedule, req.Slots)
	slots = filterByNotice(slots, req.Date, loc, now, restaurant.MinAdvanceHours)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no candidate slots left on %s", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 7. Столы и бронирования на дату получаем один раз
	tables, err := uc.tableRepo.GetByRestaurant(ctx, restaurant.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: restaurant.ID,
		Date:         &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Проверяем каждый слот
	byTable := availability.BookingsByTable(bookings, req.Date)
	response.Slots = evaluateSlots(slots, duration, tables, byTable, req.PartySize, restaurant.DefaultDuration)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for restaurant=%s, date=%s",
		len(response.Slots), len(slots), restaurant.ID, req.Date.Format(domain.DateFormat))

	return response, nil
}
