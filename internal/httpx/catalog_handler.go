package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
	"github.com/ariefcatur/go-rental-bookings/internal/pricing"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

func (h *RentalHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *RentalHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type quoteResp struct {
	Product   string            `json:"product"`
	Breakdown pricing.Breakdown `json:"breakdown"`
	Formatted string            `json:"formatted_total"`
}

// quote menghitung harga sewa untuk ?days=N. Day count datang dari form di
// client; di sini cuma precondition check, bukan clamp.
func (h *RentalHandler) quote(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "days must be an integer")
		return
	}
	q, err := pricing.Quote(p.Price, days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quoteResp{
		Product:   p.Slug,
		Breakdown: q,
		Formatted: catalog.FormatIDR(q.TotalPrice),
	})
}

func (h *RentalHandler) priceChart(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product": p.Slug,
		"rows":    pricing.Chart(p.Price),
	})
}

func (h *RentalHandler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"methods": []rental.PaymentMethod{
			rental.PaymentCashOnPickup,
			rental.PaymentBankTransfer,
			rental.PaymentCreditCard,
		},
		"transfer_banks": rental.TransferBanks,
	})
}
