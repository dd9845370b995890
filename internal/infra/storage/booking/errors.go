package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда стол уже занят на пересекающийся интервал (exclusion constraint)
	ErrSlotTaken = errors.New("booking.repository: table is already booked for this interval")

	// ErrSerialization возвращается при конфликте сериализуемых транзакций, операцию можно повторить
	ErrSerialization = errors.New("booking.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrInvalidBooking возвращается, когда интервал бронирования нельзя вычислить
	ErrInvalidBooking = errors.New("booking.repository: invalid booking interval")
)
