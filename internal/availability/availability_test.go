package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/ptr"
	"github.com/reservely/reservation-service/pkg/types"
)

var testDay = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func newTable(capacity int) *domain.Table {
	return &domain.Table{ID: uuid.New(), Capacity: capacity, Status: domain.TableAvailable}
}

func newBooking(table *domain.Table, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		TableID:     ptr.Ptr(table.ID),
		BookingDate: testDay,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		PartySize:   2,
		Status:      domain.StatusPlanned,
	}
}

func mustInterval(t *testing.T, start string, d domain.Duration) Interval {
	t.Helper()
	iv, err := NewInterval(types.TimeString(start), d)
	require.NoError(t, err)
	return iv
}

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots("09:00", "10:00")
	assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30", "09:45"}, slots)

	slots = GenerateSlots("09:00", "22:00")
	assert.Len(t, slots, 52)
	assert.Equal(t, types.TimeString("21:45"), slots[len(slots)-1])
}

func TestGenerateSlots_Empty(t *testing.T) {
	assert.Empty(t, GenerateSlots("22:00", "09:00"))
	assert.Empty(t, GenerateSlots("09:00", "09:00"))
	assert.Empty(t, GenerateSlots("9am", "22:00"))
	assert.Empty(t, GenerateSlots("09:00", ""))
	assert.Empty(t, GenerateSlotsWithStep("09:00", "10:00", 0))
}

func TestInterval_BoundariesDoNotConflict(t *testing.T) {
	existing := []Interval{{Start: 18 * 60, End: 19*60 + 30}}

	// начало кандидата совпадает с концом существующего
	assert.False(t, HasConflict(mustInterval(t, "19:30", domain.Duration{Hours: 1}), existing))
	// конец кандидата совпадает с началом существующего
	assert.False(t, HasConflict(mustInterval(t, "17:00", domain.Duration{Hours: 1}), existing))

	assert.True(t, HasConflict(mustInterval(t, "17:01", domain.Duration{Hours: 1}), existing))
	assert.True(t, HasConflict(mustInterval(t, "19:29", domain.Duration{Hours: 1}), existing))
}

func TestBookingInterval(t *testing.T) {
	table := newTable(2)
	def := &domain.Duration{Hours: 1, Minutes: 30}

	iv, ok := BookingInterval(newBooking(table, "12:00", "13:00"), def)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 720, End: 780}, iv, "explicit end wins over default")

	iv, ok = BookingInterval(newBooking(table, "12:00", ""), def)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 720, End: 810}, iv)

	iv, ok = BookingInterval(newBooking(table, "23:00", "00:30"), def)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 1380, End: 1470}, iv, "end after midnight stays after start")

	_, ok = BookingInterval(newBooking(table, "12:00", ""), nil)
	assert.False(t, ok)

	_, ok = BookingInterval(newBooking(table, "noon", "13:00"), def)
	assert.False(t, ok)
}

func TestBookingsByTable(t *testing.T) {
	t1, t2 := newTable(2), newTable(4)

	kept := newBooking(t1, "12:00", "13:00")
	cancelled := newBooking(t1, "14:00", "15:00")
	cancelled.Status = domain.StatusCancelled
	otherDay := newBooking(t2, "12:00", "13:00")
	otherDay.BookingDate = testDay.AddDate(0, 0, 1)
	unassigned := newBooking(t2, "12:00", "13:00")
	unassigned.TableID = nil

	grouped := BookingsByTable([]*domain.Booking{kept, cancelled, otherDay, unassigned}, testDay)

	require.Len(t, grouped, 1)
	assert.Equal(t, []*domain.Booking{kept}, grouped[t1.ID])
}

func TestFindAvailableTables_Filters(t *testing.T) {
	small := newTable(2)
	large := newTable(6)
	busy := newTable(4)
	reserved := newTable(4)
	reserved.Status = domain.TableReserved

	tables := []*domain.Table{small, large, busy, reserved}
	byTable := BookingsByTable([]*domain.Booking{newBooking(busy, "18:00", "19:30")}, testDay)
	candidate := mustInterval(t, "18:30", domain.Duration{Hours: 1})

	got := FindAvailableTables(tables, byTable, candidate, 3, nil)

	assert.Equal(t, []*domain.Table{large}, got)
}

func TestFindAvailableTables_UnderivableBookingBlocksTable(t *testing.T) {
	table := newTable(4)
	byTable := BookingsByTable([]*domain.Booking{newBooking(table, "08:00", "")}, testDay)
	candidate := mustInterval(t, "20:00", domain.Duration{Hours: 1})

	assert.Empty(t, FindAvailableTables([]*domain.Table{table}, byTable, candidate, 2, nil))
}

func TestFindAvailableTables_Idempotent(t *testing.T) {
	tables := []*domain.Table{newTable(2), newTable(4), newTable(4), newTable(8)}
	byTable := BookingsByTable([]*domain.Booking{
		newBooking(tables[1], "18:00", "20:00"),
		newBooking(tables[3], "19:00", ""),
	}, testDay)
	candidate := mustInterval(t, "19:00", domain.Duration{Hours: 1, Minutes: 30})
	def := &domain.Duration{Hours: 2}

	first := FindAvailableTables(tables, byTable, candidate, 2, def)
	second := FindAvailableTables(tables, byTable, candidate, 2, def)

	assert.Equal(t, first, second)
	assert.Equal(t, []*domain.Table{tables[0], tables[2]}, first)
}

func TestAssignTable_SmallestCapacityWins(t *testing.T) {
	// Сценарий D: столы на 2 и 6, гостей 2
	two, six := newTable(2), newTable(6)
	candidate := mustInterval(t, "19:00", domain.Duration{Hours: 1})

	free := FindAvailableTables([]*domain.Table{six, two}, nil, candidate, 2, nil)
	assert.Same(t, two, AssignTable(free))
}

func TestAssignTable_TieBrokenByID(t *testing.T) {
	a := &domain.Table{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Capacity: 4}
	b := &domain.Table{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Capacity: 4}

	assert.Same(t, b, AssignTable([]*domain.Table{a, b}))
	assert.Same(t, b, AssignTable([]*domain.Table{b, a}))
}

func TestAssignTable_Empty(t *testing.T) {
	assert.Nil(t, AssignTable(nil))
	assert.Nil(t, AssignTable([]*domain.Table{}))
}

func TestFreeSlots_HalfOpenDay(t *testing.T) {
	// Сценарий E: один стол на 2, бронь 12:00 без явного конца, длительность по умолчанию 1h30m
	table := newTable(2)
	byTable := BookingsByTable([]*domain.Booking{newBooking(table, "12:00", "")}, testDay)
	def := &domain.Duration{Hours: 1, Minutes: 30}
	requested := domain.Duration{Hours: 1}

	free := make(map[types.TimeString]bool)
	for _, slot := range GenerateSlots("09:00", "22:00") {
		free[slot] = len(FindAvailableTables([]*domain.Table{table}, byTable, mustInterval(t, slot.String(), requested), 2, def)) > 0
	}

	assert.True(t, free["09:00"])
	assert.True(t, free["11:00"], "11:00-12:00 touches the booking")
	assert.True(t, free["13:30"], "13:30 starts at the booking end")
	for _, slot := range []types.TimeString{"11:15", "11:45", "12:00", "12:45", "13:15"} {
		assert.False(t, free[slot], slot)
	}
}
