package get_available_slots

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrDurationUnresolvable возвращается, когда не указана длительность и у ресторана нет длительности по умолчанию
	ErrDurationUnresolvable = errors.New("reservation duration is not specified")

	// ErrPartySizeOutOfRange возвращается, когда размер компании вне допустимых пределов ресторана
	ErrPartySizeOutOfRange = errors.New("party size is out of range")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
