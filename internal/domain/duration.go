package domain

import (
	"errors"
	"fmt"

	"github.com/reservely/reservation-service/pkg/types"
)

var (
	// ErrInvalidDuration returned for a missing, negative or empty duration
	ErrInvalidDuration = errors.New("domain: invalid duration")

	// ErrInvalidStartTime returned for a missing or malformed start time
	ErrInvalidStartTime = errors.New("domain: invalid start time")
)

// Duration is a reservation length. Minutes above 59 are allowed and carry into hours.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Validate checks that both parts are non-negative and the total is positive
func (d Duration) Validate() error {
	if d.Hours < 0 || d.Minutes < 0 {
		return fmt.Errorf("%w: negative part in %dh%dm", ErrInvalidDuration, d.Hours, d.Minutes)
	}
	if d.TotalMinutes() == 0 {
		return fmt.Errorf("%w: zero length", ErrInvalidDuration)
	}
	return nil
}

// TotalMinutes returns the length in minutes
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh%02dm", d.Hours, d.Minutes)
}

// ComputeEndTime adds d to start. The hour wraps modulo 24, so an end past
// midnight comes back as an early-morning time; use EndCrossesMidnight to detect it.
func ComputeEndTime(start types.TimeString, d *Duration) (types.TimeString, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}
	if d == nil {
		return "", fmt.Errorf("%w: duration is required", ErrInvalidDuration)
	}
	if err := d.Validate(); err != nil {
		return "", err
	}

	// минуты сначала, перенос переполнения в часы
	minutes := startMinutes%60 + d.Minutes
	hours := startMinutes/60 + d.Hours + minutes/60
	minutes %= 60
	hours %= 24

	return types.FromMinutes(hours*60 + minutes), nil
}

// EndCrossesMidnight reports whether start+d ends after 24:00 of the same day.
// An end exactly at midnight stays within the day.
func EndCrossesMidnight(start types.TimeString, d Duration) (bool, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}
	return startMinutes+d.TotalMinutes() > types.MinutesPerDay, nil
}
