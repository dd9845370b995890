package domain

// RejectionKind is the machine-readable reason a reservation was refused
type RejectionKind string

const (
	KindMalformedRequest       RejectionKind = "MalformedRequest"
	KindRestaurantLookupFailed RejectionKind = "RestaurantLookupFailed"
	KindDurationUnresolvable   RejectionKind = "DurationUnresolvable"
	KindPartySizeOutOfRange    RejectionKind = "PartySizeOutOfRange"
	KindRestaurantClosed       RejectionKind = "RestaurantClosed"
	KindCrossesMidnight        RejectionKind = "CrossesMidnight"
	KindOutsideBookingWindow   RejectionKind = "OutsideBookingWindow"
	KindNoTableAvailable       RejectionKind = "NoTableAvailable"
)

// MessageAccepted is shown when a slot passes validation
const MessageAccepted = "Reservation slot is potentially available."

var rejectionMessages = map[RejectionKind]string{
	KindMalformedRequest:       "Missing critical reservation data (restaurant ID, date, time, party size, or valid duration).",
	KindRestaurantLookupFailed: "Could not load restaurant information. Please try again later.",
	KindDurationUnresolvable:   "Reservation duration could not be determined for this restaurant.",
	KindPartySizeOutOfRange:    "Party size is outside the range accepted by the restaurant.",
	KindRestaurantClosed:       "Restaurant is closed at the selected time.",
	KindCrossesMidnight:        "Reservation must end by midnight of the selected day.",
	KindOutsideBookingWindow:   "Selected time is outside the booking window of the restaurant.",
	KindNoTableAvailable:       "No tables available for the selected time, party size, or duration.",
}

// Message returns the human-readable text for the kind
func (k RejectionKind) Message() string {
	if msg, ok := rejectionMessages[k]; ok {
		return msg
	}
	return string(k)
}
