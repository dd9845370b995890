package domain

// Default restaurant settings
const (
	DefaultMinAdvanceHours = 2
	DefaultMaxAdvanceDays  = 30 // 0 = unlimited
	DefaultMinPartySize    = 1
	DefaultMaxPartySize    = 20
	DefaultTimeZone        = "UTC"
)

// Business validation constants
const (
	SlotStepMinutes   = 15
	MaxNotesLength    = 500
	MaxCustomerLength = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих стол
var ActiveStatuses = []BookingStatus{
	StatusPlanned,
	StatusArrived,
}
