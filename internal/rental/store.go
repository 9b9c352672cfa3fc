package rental

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
	"github.com/ariefcatur/go-rental-bookings/internal/pricing"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrCannotCancel    = errors.New("order can only be cancelled before pickup")
)

// Store owns the session's cart and orders. It is the single writer for both
// collections; everything handed out is a copy, so callers can never mutate
// state behind its back. The mutex is only there because the HTTP server
// dispatches handlers on multiple goroutines.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	cart    []CartItem
	orders  []Order
	byRef   map[string]string // booking_ref -> order id
}

func NewStore(c *catalog.Catalog) *Store {
	return &Store{catalog: c, byRef: make(map[string]string)}
}

// AddToCart stages a product. Adding a product that is already in the cart
// is a no-op; added reports whether anything changed.
func (s *Store) AddToCart(productID string) (item CartItem, added bool, err error) {
	p, ok := s.catalog.ByID(productID)
	if !ok {
		return CartItem{}, false, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.cart {
		if it.Product.ID == productID {
			return it, false, nil
		}
	}
	item = CartItem{Product: p, AddedAt: time.Now().UTC()}
	s.cart = append(s.cart, item)
	return item, true, nil
}

func (s *Store) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeFromCartLocked(productID)
}

func (s *Store) removeFromCartLocked(productID string) bool {
	for i, it := range s.cart {
		if it.Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// CartItems returns the cart in insertion order.
func (s *Store) CartItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) InCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.cart {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

// CreateOrder confirms a booking: validates the form, derives the day count,
// prices the rental, and appends a fresh not_picked_up order. Confirming a
// product that sits in the cart removes it from the cart, exactly once.
//
// A non-empty BookingRef makes the call idempotent: a repeat of an already
// confirmed ref returns the original order with existed=true and touches
// nothing.
func (s *Store) CreateOrder(req BookingRequest) (Order, bool, error) {
	p, ok := s.catalog.ByID(req.ProductID)
	if !ok {
		return Order{}, false, ErrProductNotFound
	}
	if !req.PickupLocation.Valid() || !req.ReturnLocation.Valid() {
		return Order{}, false, ErrInvalidLocation
	}
	if !req.PaymentMethod.Valid() {
		return Order{}, false, ErrInvalidPayment
	}
	days, err := RentalDays(req.PickupDate, req.PickupTime, req.ReturnDate, req.ReturnTime)
	if err != nil {
		return Order{}, false, err
	}
	quote, err := pricing.Quote(p.Price, days)
	if err != nil {
		return Order{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.BookingRef != "" {
		if id, ok := s.byRef[req.BookingRef]; ok {
			if o, ok := s.findLocked(id); ok {
				return *o, true, nil
			}
		}
	}

	order := Order{
		ID:             uuid.NewString(),
		Product:        p,
		PickupDate:     req.PickupDate,
		PickupTime:     req.PickupTime,
		PickupLocation: req.PickupLocation,
		ReturnDate:     req.ReturnDate,
		ReturnTime:     req.ReturnTime,
		ReturnLocation: req.ReturnLocation,
		RentalDays:     days,
		TotalPrice:     quote.TotalPrice,
		PaymentMethod:  req.PaymentMethod,
		BookingRef:     req.BookingRef,
		Status:         StatusNotPickedUp,
		CreatedAt:      time.Now().UTC(),
	}
	s.orders = append(s.orders, order)
	if req.BookingRef != "" {
		s.byRef[req.BookingRef] = order.ID
	}
	s.removeFromCartLocked(p.ID)

	return order, false, nil
}

// UpdateStatus overwrites the status of one order. It deliberately does not
// consult the transition map: moving into rental_in_progress or completed is
// an operator action whose timing lives outside this package. Only the
// status field changes; everything else on the order stays as created.
func (s *Store) UpdateStatus(orderID string, status OrderStatus) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.findLocked(orderID)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	o.Status = status
	return *o, nil
}

// CancelOrder is the one guarded transition: it refuses unless the order is
// still waiting for pickup.
func (s *Store) CancelOrder(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.findLocked(orderID)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	if !CanTransition(o.Status, StatusCancelled) {
		return Order{}, ErrCannotCancel
	}
	o.Status = StatusCancelled
	return *o, nil
}

// RemoveOrder drops an order entirely. Administrative cleanup, not part of
// the normal lifecycle.
func (s *Store) RemoveOrder(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == orderID {
			if o.BookingRef != "" {
				delete(s.byRef, o.BookingRef)
			}
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) OrderByID(orderID string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.findLocked(orderID)
	if !ok {
		return Order{}, false
	}
	return *o, true
}

// Orders returns all orders in insertion order.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersByStatus filters orders, preserving insertion order.
func (s *Store) OrdersByStatus(status OrderStatus) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ActiveOrderCount counts orders that are neither completed nor cancelled.
func (s *Store) ActiveOrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, o := range s.orders {
		if o.Status.Active() {
			n++
		}
	}
	return n
}

// StatusCounts powers the per-tab badges in the orders view.
func (s *Store) StatusCounts() map[OrderStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[OrderStatus]int{
		StatusNotPickedUp:      0,
		StatusRentalInProgress: 0,
		StatusCompleted:        0,
		StatusCancelled:        0,
	}
	for _, o := range s.orders {
		out[o.Status]++
	}
	return out
}

func (s *Store) findLocked(orderID string) (*Order, bool) {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return &s.orders[i], true
		}
	}
	return nil, false
}
