package availability

import (
	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

// GenerateSlots returns start times from open (inclusive) to close (exclusive)
// every domain.SlotStepMinutes. Malformed bounds or close <= open give an empty list.
func GenerateSlots(open, close types.TimeString) []types.TimeString {
	return GenerateSlotsWithStep(open, close, domain.SlotStepMinutes)
}

// GenerateSlotsWithStep is GenerateSlots with a custom step in minutes
func GenerateSlotsWithStep(open, close types.TimeString, step int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	from, err := open.Minutes()
	if err != nil {
		return slots
	}
	to, err := close.Minutes()
	if err != nil {
		return slots
	}
	if step <= 0 || to <= from {
		return slots
	}

	for m := from; m < to; m += step {
		slots = append(slots, types.FromMinutes(m))
	}

	return slots
}
