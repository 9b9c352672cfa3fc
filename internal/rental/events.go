package rental

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventOrderRemoved       = "OrderRemoved"
)

type Envelope struct {
	EventID       string          `json:"event_id"`   // uuid
	EventType     string          `json:"event_type"` // salah satu const di atas
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"` // RFC3339
	Producer      string          `json:"producer"`    // e.g., "rental-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // biasanya order_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload tipe per event ----

type OrderCreatedPayload struct {
	OrderID        string        `json:"order_id"`
	BookingRef     string        `json:"booking_ref,omitempty"`
	ProductID      string        `json:"product_id"`
	ProductSlug    string        `json:"product_slug"`
	RentalDays     int           `json:"rental_days"`
	TotalPrice     int           `json:"total_price"`
	PickupLocation Location      `json:"pickup_location"`
	ReturnLocation Location      `json:"return_location"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
}

type OrderStatusChangedPayload struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
}

type OrderRemovedPayload struct {
	OrderID string `json:"order_id"`
}
