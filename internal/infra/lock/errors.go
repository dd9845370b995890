package lock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить до отмены контекста
	ErrLockTimeout = errors.New("lock: timed out waiting for lock")

	// ErrLockUnavailable возвращается при ошибке хранилища блокировок
	ErrLockUnavailable = errors.New("lock: backend unavailable")
)
