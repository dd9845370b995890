package validate_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservely/reservation-service/internal/domain"
	bookingRepo "github.com/reservely/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
	"github.com/reservely/reservation-service/pkg/ptr"
	"github.com/reservely/reservation-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRestaurants struct {
	items map[uuid.UUID]*domain.RestaurantConfig
	err   error
}

func (f *fakeRestaurants) GetByID(_ context.Context, id uuid.UUID) (*domain.RestaurantConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.items[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return cfg, nil
}

type fakeTables struct {
	tables []*domain.Table
	err    error
}

func (f *fakeTables) GetByRestaurant(context.Context, uuid.UUID) ([]*domain.Table, error) {
	return f.tables, f.err
}

type fakeBookings struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookings) GetByRestaurantWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RestaurantID != filter.RestaurantID {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type countingObserver struct {
	accepted int
	rejected map[string]int
}

func (o *countingObserver) ObserveDecision(accepted bool, kind string) {
	if accepted {
		o.accepted++
		return
	}
	if o.rejected == nil {
		o.rejected = map[string]int{}
	}
	o.rejected[kind]++
}

var (
	// 2025-06-04 среда, 2025-06-08 воскресенье
	wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	restaurant *domain.RestaurantConfig
	tables     *fakeTables
	bookings   *fakeBookings
	observer   *countingObserver
	uc         *UseCase
}

func newFixture(t *testing.T, capacities ...int) *fixture {
	t.Helper()

	day := domain.DaySchedule{Open: "09:00", Close: "22:00"}
	restaurant := &domain.RestaurantConfig{
		ID:   uuid.New(),
		Name: "Test Bistro",
		Schedule: domain.WeeklySchedule{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day, Saturday: day,
		},
		DefaultDuration: &domain.Duration{Hours: 1, Minutes: 30},
		MinAdvanceHours: domain.DefaultMinAdvanceHours,
		MaxAdvanceDays:  domain.DefaultMaxAdvanceDays,
	}
	restaurant.ApplyDefaults()

	tables := &fakeTables{}
	for _, c := range capacities {
		tables.tables = append(tables.tables, &domain.Table{
			ID:           uuid.New(),
			RestaurantID: restaurant.ID,
			Capacity:     c,
			Status:       domain.TableAvailable,
		})
	}

	f := &fixture{
		restaurant: restaurant,
		tables:     tables,
		bookings:   &fakeBookings{},
		observer:   &countingObserver{},
	}
	f.uc = NewUseCase(
		&fakeRestaurants{items: map[uuid.UUID]*domain.RestaurantConfig{restaurant.ID: restaurant}},
		f.tables,
		f.bookings,
		fixedTime{now: testNow},
		f.observer,
		nopLogger{},
	)
	return f
}

func (f *fixture) book(table *domain.Table, start, end string) *domain.Booking {
	b := &domain.Booking{
		ID:           uuid.New(),
		RestaurantID: f.restaurant.ID,
		TableID:      ptr.Ptr(table.ID),
		BookingDate:  wednesday,
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
		PartySize:    2,
		Status:       domain.StatusPlanned,
	}
	f.bookings.bookings = append(f.bookings.bookings, b)
	return b
}

func (f *fixture) request(start string, party int, d *domain.Duration) *Request {
	return &Request{
		RestaurantID: f.restaurant.ID,
		Date:         wednesday,
		StartTime:    types.TimeString(start),
		PartySize:    party,
		Duration:     d,
	}
}

func TestExecute_ScenarioA_Accepted(t *testing.T) {
	f := newFixture(t, 4)

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 4, &domain.Duration{Hours: 1, Minutes: 30}))
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Empty(t, resp.Kind)
	assert.Equal(t, domain.MessageAccepted, resp.Message)
	assert.Same(t, f.tables.tables[0], resp.Table)
	assert.Equal(t, types.TimeString("19:30"), resp.EndTime)
	assert.Equal(t, 1, f.observer.accepted)
}

func TestExecute_ScenarioB_Overlap(t *testing.T) {
	f := newFixture(t, 4)
	f.book(f.tables.tables[0], "18:00", "19:30")

	resp, err := f.uc.Execute(context.Background(), f.request("18:30", 4, &domain.Duration{Hours: 1}))
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, domain.KindNoTableAvailable, resp.Kind)
	assert.Equal(t, "No tables available for the selected time, party size, or duration.", resp.Message)
	assert.Nil(t, resp.Table)
	assert.Equal(t, 1, f.observer.rejected[string(domain.KindNoTableAvailable)])
}

func TestExecute_ScenarioC_ClosedDay(t *testing.T) {
	f := newFixture(t, 4)
	req := f.request("18:00", 2, &domain.Duration{Hours: 1})
	req.Date = sunday

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, domain.KindRestaurantClosed, resp.Kind)
}

func TestExecute_ScenarioD_SmallestTable(t *testing.T) {
	f := newFixture(t, 6, 2)

	resp, err := f.uc.Execute(context.Background(), f.request("19:00", 2, &domain.Duration{Hours: 1}))
	require.NoError(t, err)

	require.True(t, resp.Accepted)
	assert.Equal(t, 2, resp.Table.Capacity)
	assert.Len(t, resp.AvailableTables, 2)
}

func TestExecute_BoundariesAreFree(t *testing.T) {
	f := newFixture(t, 4)
	f.book(f.tables.tables[0], "18:00", "19:30")

	after, err := f.uc.Execute(context.Background(), f.request("19:30", 2, &domain.Duration{Hours: 1}))
	require.NoError(t, err)
	assert.True(t, after.Accepted, "start at existing end")

	before, err := f.uc.Execute(context.Background(), f.request("16:30", 2, &domain.Duration{Hours: 1, Minutes: 30}))
	require.NoError(t, err)
	assert.True(t, before.Accepted, "end at existing start")
	assert.Equal(t, types.TimeString("18:00"), before.EndTime)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture(t, 4)
	b := f.book(f.tables.tables[0], "18:00", "19:30")
	b.Status = domain.StatusCancelled

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 2, &domain.Duration{Hours: 1}))
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestExecute_LegacyBookingUsesDefaultDuration(t *testing.T) {
	f := newFixture(t, 4)
	// без явного конца: 12:00 + 1h30m по умолчанию
	f.book(f.tables.tables[0], "12:00", "")

	blocked, err := f.uc.Execute(context.Background(), f.request("13:15", 2, &domain.Duration{Hours: 1}))
	require.NoError(t, err)
	assert.Equal(t, domain.KindNoTableAvailable, blocked.Kind)

	free, err := f.uc.Execute(context.Background(), f.request("13:30", 2, &domain.Duration{Hours: 1}))
	require.NoError(t, err)
	assert.True(t, free.Accepted)
}

func TestExecute_DefaultDurationApplied(t *testing.T) {
	f := newFixture(t, 4)

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
	require.NoError(t, err)

	require.True(t, resp.Accepted)
	assert.Equal(t, domain.Duration{Hours: 1, Minutes: 30}, resp.Duration)
	assert.Equal(t, types.TimeString("19:30"), resp.EndTime)
}

func TestExecute_DurationUnresolvable(t *testing.T) {
	f := newFixture(t, 4)
	f.restaurant.DefaultDuration = nil

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
	require.NoError(t, err)
	assert.Equal(t, domain.KindDurationUnresolvable, resp.Kind)
}

func TestExecute_MalformedRequest(t *testing.T) {
	f := newFixture(t, 4)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing restaurant", func(r *Request) { r.RestaurantID = uuid.Nil }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.StartTime = "" }},
		{"bad time", func(r *Request) { r.StartTime = "7pm" }},
		{"zero party", func(r *Request) { r.PartySize = 0 }},
		{"negative duration", func(r *Request) { r.Duration = &domain.Duration{Hours: -1} }},
		{"empty duration", func(r *Request) { r.Duration = &domain.Duration{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("18:00", 2, &domain.Duration{Hours: 1})
			tt.mutate(req)

			resp, err := f.uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.False(t, resp.Accepted)
			assert.Equal(t, domain.KindMalformedRequest, resp.Kind)
			assert.Equal(t, domain.KindMalformedRequest.Message(), resp.Message)
		})
	}

	resp, err := f.uc.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.KindMalformedRequest, resp.Kind)
}

func TestExecute_RestaurantLookupFailed(t *testing.T) {
	f := newFixture(t, 4)
	req := f.request("18:00", 2, nil)
	req.RestaurantID = uuid.New()

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.KindRestaurantLookupFailed, resp.Kind)
	assert.Equal(t, "Could not load restaurant information. Please try again later.", resp.Message)
}

func TestExecute_StorageErrors(t *testing.T) {
	t.Run("restaurant", func(t *testing.T) {
		uc := NewUseCase(&fakeRestaurants{err: errors.New("db down")}, &fakeTables{}, &fakeBookings{},
			fixedTime{now: testNow}, nil, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			RestaurantID: uuid.New(), Date: wednesday, StartTime: "18:00", PartySize: 2,
		})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("tables", func(t *testing.T) {
		f := newFixture(t, 4)
		f.tables.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings", func(t *testing.T) {
		f := newFixture(t, 4)
		f.bookings.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("serialization failure stays in the chain", func(t *testing.T) {
		f := newFixture(t, 4)
		f.bookings.err = fmt.Errorf("%w: GetByRestaurantWithFilter - execute query: pq: could not serialize access",
			bookingRepo.ErrSerialization)

		_, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, bookingRepo.ErrSerialization)
	})
}

func TestExecute_PartySizeOutOfRange(t *testing.T) {
	f := newFixture(t, 30)

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 21, nil))
	require.NoError(t, err)
	assert.Equal(t, domain.KindPartySizeOutOfRange, resp.Kind)
}

func TestExecute_CrossesMidnight(t *testing.T) {
	f := newFixture(t, 4)
	f.restaurant.Schedule.Wednesday = domain.DaySchedule{Open: "09:00", Close: "23:59"}

	resp, err := f.uc.Execute(context.Background(), f.request("23:00", 2, &domain.Duration{Hours: 2}))
	require.NoError(t, err)
	assert.Equal(t, domain.KindCrossesMidnight, resp.Kind)

	resp, err = f.uc.Execute(context.Background(), f.request("22:00", 2, &domain.Duration{Hours: 1, Minutes: 59}))
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestExecute_OutsideBookingWindow(t *testing.T) {
	t.Run("too soon", func(t *testing.T) {
		f := newFixture(t, 4)
		f.uc.timeProvider = fixedTime{now: time.Date(2025, 6, 4, 16, 30, 0, 0, time.UTC)}

		resp, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
		require.NoError(t, err)
		assert.Equal(t, domain.KindOutsideBookingWindow, resp.Kind)

		resp, err = f.uc.Execute(context.Background(), f.request("18:30", 2, nil))
		require.NoError(t, err)
		assert.True(t, resp.Accepted, "exactly minAdvanceHours ahead is allowed")
	})

	t.Run("too far", func(t *testing.T) {
		f := newFixture(t, 4)
		req := f.request("18:00", 2, nil)
		req.Date = testNow.AddDate(0, 0, 31)
		if req.Date.Weekday() == time.Sunday {
			req.Date = req.Date.AddDate(0, 0, 1)
		}

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.KindOutsideBookingWindow, resp.Kind)
	})

	t.Run("past date", func(t *testing.T) {
		f := newFixture(t, 4)
		req := f.request("18:00", 2, nil)
		req.Date = time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC)

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.KindOutsideBookingWindow, resp.Kind)
	})
}

func TestExecute_NonAvailableTableNotOffered(t *testing.T) {
	f := newFixture(t, 4)
	f.tables.tables[0].Status = domain.TableOccupied

	resp, err := f.uc.Execute(context.Background(), f.request("18:00", 2, nil))
	require.NoError(t, err)
	assert.Equal(t, domain.KindNoTableAvailable, resp.Kind)
}
