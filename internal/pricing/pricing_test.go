package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteFreeDayPromo(t *testing.T) {
	tests := []struct {
		days          int
		freeDays      int
		effectiveDays int
	}{
		{days: 1, freeDays: 0, effectiveDays: 1},
		{days: 2, freeDays: 0, effectiveDays: 2},
		{days: 3, freeDays: 1, effectiveDays: 2},
		{days: 4, freeDays: 1, effectiveDays: 3},
		{days: 5, freeDays: 1, effectiveDays: 4},
		{days: 6, freeDays: 2, effectiveDays: 4},
		{days: 7, freeDays: 2, effectiveDays: 5},
		{days: 15, freeDays: 5, effectiveDays: 10},
	}
	for _, tc := range tests {
		q, err := Quote(100000, tc.days)
		require.NoError(t, err)
		assert.Equal(t, tc.freeDays, q.FreeDays, "days=%d", tc.days)
		assert.Equal(t, tc.effectiveDays, q.EffectiveDays, "days=%d", tc.days)
	}
}

func TestQuoteDiscountTiers(t *testing.T) {
	tests := []struct {
		days int
		pct  int
	}{
		{days: 1, pct: 0},
		{days: 6, pct: 0},
		{days: 7, pct: 10},
		{days: 10, pct: 10},
		{days: 13, pct: 10},
		{days: 14, pct: 20},
		{days: 30, pct: 20},
	}
	for _, tc := range tests {
		q, err := Quote(100000, tc.days)
		require.NoError(t, err)
		assert.Equal(t, tc.pct, q.DiscountPercent, "days=%d", tc.days)
	}
}

func TestQuoteSevenDays(t *testing.T) {
	// 500k/hari, 7 hari: 2 blok gratis -> 5 hari efektif, diskon 10%
	q, err := Quote(500000, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, q.FreeDays)
	assert.Equal(t, 5, q.EffectiveDays)
	assert.Equal(t, 2500000, q.Subtotal)
	assert.Equal(t, 10, q.DiscountPercent)
	assert.Equal(t, 250000, q.DiscountAmount)
	assert.Equal(t, 2250000, q.TotalPrice)
	assert.Equal(t, 321429, q.AveragePerDay)
}

func TestQuoteFifteenDays(t *testing.T) {
	q, err := Quote(300000, 15)
	require.NoError(t, err)
	assert.Equal(t, 5, q.FreeDays)
	assert.Equal(t, 10, q.EffectiveDays)
	assert.Equal(t, 3000000, q.Subtotal)
	assert.Equal(t, 20, q.DiscountPercent)
	assert.Equal(t, 2400000, q.TotalPrice)
	assert.Equal(t, 160000, q.AveragePerDay)
}

func TestQuoteZeroPrice(t *testing.T) {
	q, err := Quote(0, 10)
	require.NoError(t, err)
	assert.Zero(t, q.Subtotal)
	assert.Zero(t, q.DiscountAmount)
	assert.Zero(t, q.TotalPrice)
	assert.Zero(t, q.AveragePerDay)
}

func TestQuoteInvalidDays(t *testing.T) {
	for _, days := range []int{0, -1, -100} {
		_, err := Quote(100000, days)
		assert.ErrorIs(t, err, ErrInvalidDays, "days=%d", days)
	}
}

func TestQuoteDeterministic(t *testing.T) {
	for perDay := 0; perDay <= 1000000; perDay += 137000 {
		for days := 1; days <= 40; days++ {
			a, err := Quote(perDay, days)
			require.NoError(t, err)
			b, err := Quote(perDay, days)
			require.NoError(t, err)
			assert.Equal(t, a, b)

			// invariants that hold for any valid input
			assert.GreaterOrEqual(t, a.TotalPrice, 0)
			assert.LessOrEqual(t, a.EffectiveDays, days)
			assert.Equal(t, days, a.FreeDays+a.EffectiveDays)
		}
	}
}

func TestChart(t *testing.T) {
	rows := Chart(500000)
	require.Len(t, rows, 6)
	wantDays := []int{1, 3, 7, 10, 12, 15}
	for i, row := range rows {
		assert.Equal(t, wantDays[i], row.Days)
		q, err := Quote(500000, row.Days)
		require.NoError(t, err)
		assert.Equal(t, q.TotalPrice, row.TotalPrice)
		assert.Equal(t, q.AveragePerDay, row.AveragePerDay)
	}
	// spot check dari tabel harga di UI
	assert.Equal(t, 2250000, rows[2].TotalPrice) // 7 hari
}
