package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/ptr"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		TableID:      ptr.Ptr(uuid.New()),
		BookingDate:  time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		StartTime:    "18:00",
		EndTime:      "19:30",
		PartySize:    4,
		Status:       domain.StatusPlanned,
	}
}

func TestKafkaPublisher_PublishReservationCreated(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(writer)
	publisher.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	booking := testBooking()
	require.NoError(t, publisher.PublishReservationCreated(context.Background(), booking))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, booking.RestaurantID.String(), string(msg.Key))

	var envelope struct {
		EventType  string             `json:"eventType"`
		OccurredAt time.Time          `json:"occurredAt"`
		Payload    ReservationPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, TypeReservationCreated, envelope.EventType)
	assert.Equal(t, "2025-06-04", envelope.Payload.Date)
	assert.Equal(t, "19:30", envelope.Payload.EndTime)
	assert.Equal(t, booking.TableID.String(), *envelope.Payload.TableID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, TypeReservationCreated, headers["event_type"])
	assert.NotEmpty(t, headers["event_id"])
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	publisher := NewKafkaPublisherWithWriter(&fakeWriter{err: errors.New("broker down")})

	err := publisher.PublishStatusChanged(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrPublish)
}

func TestKafkaPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	require.NoError(t, NewKafkaPublisherWithWriter(writer).Close())
	assert.True(t, writer.closed)
}
