package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
	kafkax "github.com/ariefcatur/go-rental-bookings/internal/kafka"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

// Publisher is what the handlers need from a kafka producer. Nil disables
// publishing (tests, or running without a broker).
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type RentalHandler struct {
	Catalog         *catalog.Catalog
	Store           *rental.Store
	ProducerCreated Publisher // topic rental.order.created
	ProducerStatus  Publisher // topic rental.order.status
	// Redis backs the idempotency and status-cache fast paths; nil skips them.
	Redis   *redis.Client
	Service string
}

func (h *RentalHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{slug}", h.getProduct)
	r.Get("/products/{slug}/quote", h.quote)
	r.Get("/products/{slug}/price-chart", h.priceChart)
	r.Get("/payment-methods", h.paymentMethods)

	r.Get("/cart", h.getCart)
	r.Post("/cart", h.addToCart)
	r.Delete("/cart/{productID}", h.removeFromCart)

	r.Post("/orders", h.createOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/active-count", h.activeOrderCount)
	r.Get("/orders/status-counts", h.statusCounts)
	r.Get("/orders/{id}", h.getOrder)
	r.Get("/orders/{id}/status", h.getOrderStatus)
	r.Patch("/orders/{id}/status", h.updateOrderStatus)
	r.Post("/orders/{id}/cancel", h.cancelOrder)
	r.Delete("/orders/{id}", h.removeOrder)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// publish wraps payload dalam envelope v1 lalu kirim ke producer topic terkait.
func (h *RentalHandler) publish(p Publisher, eventType, orderID, traceID string, payload any) {
	if p == nil {
		return
	}
	ev := rental.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       traceID,
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(payload),
	}
	p.Publish(rental.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
