package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/reservely/reservation-service/internal/service/bookings"
	"github.com/reservely/reservation-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) GetByID(_ context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id.String(), Status: "planned"}, nil
}

func get(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.NewString()

	rec := get(fakeService{}, id)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id)

	assert.Equal(t, http.StatusBadRequest, get(fakeService{}, "42").Code)
	assert.Equal(t, http.StatusNotFound, get(fakeService{err: bookings.ErrBookingNotFound}, id).Code)
	assert.Equal(t, http.StatusInternalServerError, get(fakeService{err: errors.New("db")}, id).Code)
}
