package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных гостя
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrBusy возвращается, когда не удалось получить блокировку ресторана
	ErrBusy = errors.New("create_reservation: restaurant is busy, try again")

	// ErrConflict возвращается, когда все попытки вставки упёрлись в конкурентные бронирования
	ErrConflict = errors.New("create_reservation: slot was taken concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
