package rental

import (
	"fmt"
	"math"
	"time"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
)

// CartItem stages a product the user intends to book. At most one item per
// product id lives in the cart at a time.
type CartItem struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// Order is a confirmed booking. Everything except Status is frozen at
// creation: the product snapshot, the schedule, and the computed price.
type Order struct {
	ID             string          `json:"id"`
	Product        catalog.Product `json:"product"`
	PickupDate     string          `json:"pickup_date"`
	PickupTime     string          `json:"pickup_time"`
	PickupLocation Location        `json:"pickup_location"`
	ReturnDate     string          `json:"return_date"`
	ReturnTime     string          `json:"return_time"`
	ReturnLocation Location        `json:"return_location"`
	RentalDays     int             `json:"rental_days"`
	TotalPrice     int             `json:"total_price"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	BookingRef     string          `json:"booking_ref,omitempty"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BookingRequest is the confirmed booking form. BookingRef is an optional
// client-chosen reference; repeats with the same ref replay the original
// order instead of creating a duplicate.
type BookingRequest struct {
	ProductID      string        `json:"product_id"`
	BookingRef     string        `json:"booking_ref,omitempty"`
	PickupDate     string        `json:"pickup_date"`
	PickupTime     string        `json:"pickup_time"`
	PickupLocation Location      `json:"pickup_location"`
	ReturnDate     string        `json:"return_date"`
	ReturnTime     string        `json:"return_time"`
	ReturnLocation Location      `json:"return_location"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// RentalDays derives the billable day count from the pickup and return
// datetimes: ceiling of the elapsed time in days, clamped to a 1-day minimum
// (a return at or before pickup still bills one day).
func RentalDays(pickupDate, pickupTime, returnDate, returnTime string) (int, error) {
	pickup, err := parseDateTime(pickupDate, pickupTime)
	if err != nil {
		return 0, fmt.Errorf("pickup: %w", err)
	}
	ret, err := parseDateTime(returnDate, returnTime)
	if err != nil {
		return 0, fmt.Errorf("return: %w", err)
	}
	days := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

func parseDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad datetime %q %q", date, clock)
	}
	return t, nil
}
