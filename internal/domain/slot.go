package domain

import "github.com/reservely/reservation-service/pkg/types"

// AvailableSlot represents a start time with at least one free table
type AvailableSlot struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	FreeTables int
}
