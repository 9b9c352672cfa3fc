package eventlog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkax "github.com/ariefcatur/go-rental-bookings/internal/kafka"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

func message(t *testing.T, eventType string, payload any) kafkago.Message {
	t.Helper()
	env := rental.Envelope{
		EventID:      "evt-1",
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "rental-api-test",
		Payload:      kafkax.MustMarshal(payload),
	}
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return kafkago.Message{Value: b}
}

func TestHandleEvent(t *testing.T) {
	svc := &Service{ServiceName: "eventlog-test"}
	ctx := context.Background()

	err := svc.HandleEvent(ctx, message(t, rental.EventOrderCreated, rental.OrderCreatedPayload{
		OrderID:     "ord-1",
		ProductSlug: "sony-a7-iii",
		RentalDays:  7,
		TotalPrice:  2250000,
	}))
	assert.NoError(t, err)

	err = svc.HandleEvent(ctx, message(t, rental.EventOrderStatusChanged, rental.OrderStatusChangedPayload{
		OrderID:   "ord-1",
		OldStatus: rental.StatusNotPickedUp,
		NewStatus: rental.StatusCancelled,
	}))
	assert.NoError(t, err)

	err = svc.HandleEvent(ctx, message(t, rental.EventOrderRemoved, rental.OrderRemovedPayload{OrderID: "ord-1"}))
	assert.NoError(t, err)

	// event type dari versi lebih baru: commit saja, jangan retry loop
	err = svc.HandleEvent(ctx, message(t, "OrderArchived", map[string]string{"order_id": "ord-1"}))
	assert.NoError(t, err)
}

func TestHandleEventBadValue(t *testing.T) {
	svc := &Service{ServiceName: "eventlog-test"}
	err := svc.HandleEvent(context.Background(), kafkago.Message{Value: []byte("not-json")})
	assert.Error(t, err)
}

func TestHandleEventBadPayload(t *testing.T) {
	svc := &Service{ServiceName: "eventlog-test"}
	env := rental.Envelope{
		EventID:   "evt-2",
		EventType: rental.EventOrderCreated,
		Payload:   json.RawMessage(`"not-an-object"`),
	}
	b, err := json.Marshal(env)
	require.NoError(t, err)
	err = svc.HandleEvent(context.Background(), kafkago.Message{Value: b})
	assert.Error(t, err)
}
