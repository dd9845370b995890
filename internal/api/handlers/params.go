package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/reservely/reservation-service/internal/domain"
)

// ErrMissingParam возвращается, когда обязательный параметр не передан
var ErrMissingParam = errors.New("missing parameter")

// PathUUID извлекает UUID из переменной пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return uuid.Nil, ErrMissingParam
	}
	return uuid.Parse(raw)
}

// QueryDate парсит дату "YYYY-MM-DD" из query
func QueryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, ErrMissingParam
	}
	return time.Parse(domain.DateFormat, raw)
}

// QueryInt парсит целое из query, отсутствие параметра - ErrMissingParam
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, ErrMissingParam
	}
	return strconv.Atoi(raw)
}

// QueryDuration собирает длительность из hours/minutes. Оба отсутствуют - nil.
func QueryDuration(r *http.Request) (*domain.Duration, error) {
	hours, hErr := QueryInt(r, "hours")
	minutes, mErr := QueryInt(r, "minutes")

	if errors.Is(hErr, ErrMissingParam) && errors.Is(mErr, ErrMissingParam) {
		return nil, nil
	}
	if hErr != nil && !errors.Is(hErr, ErrMissingParam) {
		return nil, hErr
	}
	if mErr != nil && !errors.Is(mErr, ErrMissingParam) {
		return nil, mErr
	}

	d := &domain.Duration{Hours: hours, Minutes: minutes}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// QueryBool парсит флаг из query, по умолчанию false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
