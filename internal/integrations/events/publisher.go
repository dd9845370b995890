package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/reservely/reservation-service/internal/domain"
)

// MessageWriter подмножество kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события бронирований в Kafka.
// Ключ сообщения - ID ресторана, чтобы события одного ресторана шли по порядку.
type KafkaPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaPublisher создает публикатор для указанных брокеров и топика
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})
	return NewKafkaPublisherWithWriter(writer)
}

// NewKafkaPublisherWithWriter создает публикатор поверх готового writer
func NewKafkaPublisherWithWriter(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now}
}

// PublishReservationCreated публикует событие reservation.created
func (p *KafkaPublisher) PublishReservationCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, TypeReservationCreated, booking)
}

// PublishStatusChanged публикует событие reservation.status_changed
func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, TypeReservationStatusChanged, booking)
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	eventID := uuid.NewString()

	value, err := json.Marshal(Envelope{
		EventID:    eventID,
		EventType:  eventType,
		OccurredAt: p.now().UTC(),
		Payload:    toPayload(booking),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}

	msg := kafka.Message{
		Key:   []byte(booking.RestaurantID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s booking=%s: %v", ErrPublish, eventType, booking.ID, err)
	}

	return nil
}

func toPayload(b *domain.Booking) ReservationPayload {
	payload := ReservationPayload{
		BookingID:    b.ID.String(),
		RestaurantID: b.RestaurantID.String(),
		Date:         b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		PartySize:    b.PartySize,
		Status:       string(b.Status),
	}
	if b.TableID != nil {
		id := b.TableID.String()
		payload.TableID = &id
	}
	return payload
}

// NoopPublisher используется, когда Kafka не настроена
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationCreated(context.Context, *domain.Booking) error { return nil }

func (NoopPublisher) PublishStatusChanged(context.Context, *domain.Booking) error { return nil }

func (NoopPublisher) Close() error { return nil }

// headerCarrier адаптирует заголовки Kafka к propagation.TextMapCarrier
type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

// injectTraceHeaders добавляет W3C trace context в заголовки сообщения
func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}
