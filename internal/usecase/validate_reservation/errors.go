package validate_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (хранилище недоступно и т.п.)
	ErrInternal = errors.New("validate_reservation: internal error")
)
