package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name       string
		pickupDate string
		pickupTime string
		returnDate string
		returnTime string
		want       int
	}{
		{"exactly one day", "2025-06-01", "09:00", "2025-06-02", "09:00", 1},
		{"one day plus an hour rounds up", "2025-06-01", "09:00", "2025-06-02", "10:00", 2},
		{"partial day rounds up", "2025-06-01", "09:00", "2025-06-01", "15:00", 1},
		{"seven days", "2025-06-01", "09:00", "2025-06-08", "09:00", 7},
		{"return before pickup clamps to 1", "2025-06-05", "09:00", "2025-06-01", "09:00", 1},
		{"return equals pickup clamps to 1", "2025-06-01", "09:00", "2025-06-01", "09:00", 1},
		{"late return time adds a day", "2025-06-01", "09:00", "2025-06-08", "09:01", 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RentalDays(tc.pickupDate, tc.pickupTime, tc.returnDate, tc.returnTime)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRentalDaysBadInput(t *testing.T) {
	_, err := RentalDays("01-06-2025", "09:00", "2025-06-02", "09:00")
	assert.Error(t, err)
	_, err = RentalDays("2025-06-01", "9am", "2025-06-02", "09:00")
	assert.Error(t, err)
	_, err = RentalDays("2025-06-01", "09:00", "", "09:00")
	assert.Error(t, err)
}
