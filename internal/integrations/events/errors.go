package events

import "errors"

var (
	// ErrEncodeEvent возвращается при ошибке сериализации события
	ErrEncodeEvent = errors.New("events: failed to encode event")

	// ErrPublish возвращается при ошибке записи события в Kafka
	ErrPublish = errors.New("events: failed to publish event")
)
