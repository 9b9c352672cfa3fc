package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-rental-bookings/internal/redisx"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

type addToCartReq struct {
	ProductID string `json:"product_id"`
}

func (h *RentalHandler) getCart(w http.ResponseWriter, r *http.Request) {
	items := h.Store.CartItems()
	if items == nil {
		items = []rental.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *RentalHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing product_id")
		return
	}
	item, added, err := h.Store.AddToCart(req.ProductID)
	if err != nil {
		writeError(w, storeErrCode(err), err.Error())
		return
	}
	code := http.StatusCreated
	if !added {
		code = http.StatusOK // sudah ada di cart, no-op
	}
	writeJSON(w, code, map[string]any{"item": item, "added": added})
}

func (h *RentalHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if !h.Store.RemoveFromCart(chi.URLParam(r, "productID")) {
		writeError(w, http.StatusNotFound, "not in cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createOrderResp struct {
	Order      rental.Order `json:"order"`
	Idempotent bool         `json:"idempotent"`
}

func (h *RentalHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req rental.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" || req.PickupDate == "" || req.ReturnDate == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Fast-path idempotency via Redis. Kebenaran tetap di store (yang juga
	// idempotent per booking_ref), jadi hasil Exists cuma dipakai buat skip kerja.
	if req.BookingRef != "" && h.Redis != nil {
		idemKey := fmt.Sprintf(redisx.KeyIdemBooking, req.BookingRef)
		if ok, _ := redisx.Exists(ctx, h.Redis, idemKey); ok {
			if id, err := h.Redis.Get(ctx, idemKey).Result(); err == nil {
				if o, found := h.Store.OrderByID(id); found {
					writeJSON(w, http.StatusOK, createOrderResp{Order: o, Idempotent: true})
					return
				}
			}
		}
	}

	order, existed, err := h.Store.CreateOrder(req)
	if err != nil {
		writeError(w, storeErrCode(err), err.Error())
		return
	}

	if h.Redis != nil {
		if req.BookingRef != "" {
			idemKey := fmt.Sprintf(redisx.KeyIdemBooking, req.BookingRef)
			_ = h.Redis.Set(ctx, idemKey, order.ID, redisx.TTLIdempotency).Err()
		}
		statusKey := fmt.Sprintf(redisx.KeyOrderStatus, order.ID)
		_ = h.Redis.Set(ctx, statusKey, statusJSON(order.Status), redisx.TTLStatusCache).Err()
	}

	if !existed {
		h.publish(h.ProducerCreated, rental.EventOrderCreated, order.ID, r.Header.Get("X-Request-Id"),
			rental.OrderCreatedPayload{
				OrderID:        order.ID,
				BookingRef:     order.BookingRef,
				ProductID:      order.Product.ID,
				ProductSlug:    order.Product.Slug,
				RentalDays:     order.RentalDays,
				TotalPrice:     order.TotalPrice,
				PickupLocation: order.PickupLocation,
				ReturnLocation: order.ReturnLocation,
				PaymentMethod:  order.PaymentMethod,
			})
	}

	code := http.StatusCreated
	if existed {
		code = http.StatusOK
	}
	writeJSON(w, code, createOrderResp{Order: order, Idempotent: existed})
}

func (h *RentalHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	var out []rental.Order
	if q := r.URL.Query().Get("status"); q != "" {
		status := rental.OrderStatus(q)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown status")
			return
		}
		out = h.Store.OrdersByStatus(status)
	} else {
		out = h.Store.Orders()
	}
	if out == nil {
		out = []rental.Order{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *RentalHandler) activeOrderCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"active": h.Store.ActiveOrderCount()})
}

func (h *RentalHandler) statusCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.StatusCounts())
}

func (h *RentalHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Store.OrderByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// getOrderStatus melayani polling status: cek cache dulu, fallback ke store.
func (h *RentalHandler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	o, ok := h.Store.OrderByID(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	b := statusJSON(o.Status)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	}
	writeJSON(w, http.StatusOK, json.RawMessage(b))
}

type updateStatusReq struct {
	Status rental.OrderStatus `json:"status"`
}

func (h *RentalHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	orderID := chi.URLParam(r, "id")

	prev, ok := h.Store.OrderByID(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	order, err := h.Store.UpdateStatus(orderID, req.Status)
	if err != nil {
		writeError(w, storeErrCode(err), err.Error())
		return
	}
	h.afterStatusChange(r, prev.Status, order)
	writeJSON(w, http.StatusOK, order)
}

func (h *RentalHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Store.CancelOrder(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, storeErrCode(err), err.Error())
		return
	}
	h.afterStatusChange(r, rental.StatusNotPickedUp, order)
	writeJSON(w, http.StatusOK, order)
}

func (h *RentalHandler) removeOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if !h.Store.RemoveOrder(orderID) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if h.Redis != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyOrderStatus, orderID)).Err()
	}
	h.publish(h.ProducerStatus, rental.EventOrderRemoved, orderID, r.Header.Get("X-Request-Id"),
		rental.OrderRemovedPayload{OrderID: orderID})
	w.WriteHeader(http.StatusNoContent)
}

// afterStatusChange refreshes the status cache and publishes the transition.
func (h *RentalHandler) afterStatusChange(r *http.Request, old rental.OrderStatus, order rental.Order) {
	if h.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		key := fmt.Sprintf(redisx.KeyOrderStatus, order.ID)
		_ = h.Redis.Set(ctx, key, statusJSON(order.Status), redisx.TTLStatusCache).Err()
	}
	h.publish(h.ProducerStatus, rental.EventOrderStatusChanged, order.ID, r.Header.Get("X-Request-Id"),
		rental.OrderStatusChangedPayload{OrderID: order.ID, OldStatus: old, NewStatus: order.Status})
}

func statusJSON(s rental.OrderStatus) string {
	return fmt.Sprintf(`{"status":%q}`, string(s))
}

func storeErrCode(err error) int {
	switch {
	case errors.Is(err, rental.ErrProductNotFound), errors.Is(err, rental.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, rental.ErrCannotCancel):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
