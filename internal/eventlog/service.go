package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
	kafkax "github.com/ariefcatur/go-rental-bookings/internal/kafka"
	"github.com/ariefcatur/go-rental-bookings/internal/redisx"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

// Service tails the order topics and writes a human-readable audit line per
// event. It decides nothing: what advances an order stays with the API.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleEvent dipasang sebagai handler consumer untuk kedua topic.
func (s *Service) HandleEvent(ctx context.Context, m kafkago.Message) error {
	var env rental.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	// dedup via Redis (pakai event_id); tanpa Redis ya log saja
	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, "eventlog", env.EventID)
		exists, _ := redisx.Exists(ctx, s.Redis, dkey)
		if exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	switch env.EventType {
	case rental.EventOrderCreated:
		p, err := kafkax.UnwrapPayload[rental.OrderCreatedPayload](env.Payload)
		if err != nil {
			return err
		}
		log.Printf("[%s] order %s created: %s x%d hari, %s, %s -> %s",
			env.Producer, p.OrderID, p.ProductSlug, p.RentalDays,
			catalog.FormatIDR(p.TotalPrice), p.PickupLocation, p.ReturnLocation)

	case rental.EventOrderStatusChanged:
		p, err := kafkax.UnwrapPayload[rental.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		log.Printf("[%s] order %s status: %s -> %s", env.Producer, p.OrderID, p.OldStatus, p.NewStatus)

	case rental.EventOrderRemoved:
		p, err := kafkax.UnwrapPayload[rental.OrderRemovedPayload](env.Payload)
		if err != nil {
			return err
		}
		log.Printf("[%s] order %s removed", env.Producer, p.OrderID)

	default:
		// event baru dari producer versi lebih baru: jangan gagalkan commit
		log.Printf("[%s] %s (unhandled event type)", env.Producer, env.EventType)
	}
	return nil
}
