package pricing

import (
	"errors"
	"math"
)

// ErrInvalidDays is returned when the requested day count is below the
// 1-day minimum. Callers that derive days from pickup/return datetimes
// should clamp first (see rental.RentalDays).
var ErrInvalidDays = errors.New("rental days must be at least 1")

// Breakdown is the full pricing result for one product over a rental period.
// Amounts are rupiah; IDR has no sub-unit, so everything is rounded to
// whole rupiah.
type Breakdown struct {
	RentDays        int `json:"rent_days"`
	FreeDays        int `json:"free_days"`
	EffectiveDays   int `json:"effective_days"`
	Subtotal        int `json:"subtotal"`
	DiscountPercent int `json:"discount_percent"`
	DiscountAmount  int `json:"discount_amount"`
	TotalPrice      int `json:"total_price"`
	AveragePerDay   int `json:"average_per_day"`
}

// Quote prices a rental of days at pricePerDay.
//
// Promo "sewa 2 hari gratis 1 hari": every full block of 3 requested days
// bills only 2. On top of that a duration discount applies to the subtotal:
// 10% for 7-13 days, 20% for 14 days and up. The discount tier is looked up
// on the requested day count, not the billable days.
//
// Quote is pure: same inputs, same output.
func Quote(pricePerDay, days int) (Breakdown, error) {
	if days < 1 {
		return Breakdown{}, ErrInvalidDays
	}

	freeDays := 0
	effectiveDays := days
	if days >= 3 {
		blocks := days / 3
		freeDays = blocks
		effectiveDays = blocks*2 + days%3
	}

	subtotal := effectiveDays * pricePerDay

	discountPercent := 0
	switch {
	case days >= 14:
		discountPercent = 20
	case days >= 7:
		discountPercent = 10
	}

	discount := float64(subtotal) * float64(discountPercent) / 100
	total := math.Round(float64(subtotal) - discount)

	return Breakdown{
		RentDays:        days,
		FreeDays:        freeDays,
		EffectiveDays:   effectiveDays,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  int(math.Round(discount)),
		TotalPrice:      int(total),
		AveragePerDay:   int(math.Round(total / float64(days))),
	}, nil
}

// chartDays are the representative durations shown in the price-chart modal.
var chartDays = [...]int{1, 3, 7, 10, 12, 15}

type ChartRow struct {
	Days          int `json:"days"`
	TotalPrice    int `json:"total_price"`
	AveragePerDay int `json:"price_per_day"`
}

// Chart evaluates Quote at the fixed preview durations.
func Chart(pricePerDay int) []ChartRow {
	out := make([]ChartRow, 0, len(chartDays))
	for _, d := range chartDays {
		q, _ := Quote(pricePerDay, d) // d is always >= 1
		out = append(out, ChartRow{Days: d, TotalPrice: q.TotalPrice, AveragePerDay: q.AveragePerDay})
	}
	return out
}
