package get_restaurant_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservely/reservation-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListForDateRequest
	err error
}

func (f *fakeService) ListForDate(_ context.Context, req *models.ListForDateRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b1", StartTime: "18:00"}}}, nil
}

func get(svc *fakeService, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/restaurants/{restaurantId}/bookings", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	id := uuid.New()

	rec := get(svc, "/restaurants/"+id.String()+"/bookings?date=2025-06-04&includeCancelled=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startTime":"18:00"`)

	require.NotNil(t, svc.got)
	assert.Equal(t, id, svc.got.RestaurantID)
	assert.True(t, svc.got.IncludeCancelled)

	rec = get(svc, "/restaurants/"+id.String()+"/bookings?date=2025-06-04")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, svc.got.IncludeCancelled)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.NewString()

	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/restaurants/"+id+"/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/restaurants/"+id+"/bookings?date=2025-06-04&includeCancelled=maybe").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: errors.New("db")}, "/restaurants/"+id+"/bookings?date=2025-06-04").Code)
}
