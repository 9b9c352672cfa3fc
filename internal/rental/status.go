package rental

type OrderStatus string

const (
	StatusNotPickedUp      OrderStatus = "not_picked_up"
	StatusRentalInProgress OrderStatus = "rental_in_progress"
	StatusCompleted        OrderStatus = "completed"
	StatusCancelled        OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNotPickedUp, StatusRentalInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active means the rental still needs attention: not yet returned, not cancelled.
func (s OrderStatus) Active() bool {
	return s == StatusNotPickedUp || s == StatusRentalInProgress
}

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusNotPickedUp:      {StatusRentalInProgress: true, StatusCancelled: true},
	StatusRentalInProgress: {StatusCompleted: true},
	StatusCompleted:        {},
	StatusCancelled:        {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

type Location string

const (
	LocationJakarta  Location = "jakarta"
	LocationSurabaya Location = "surabaya"
)

func (l Location) Valid() bool {
	return l == LocationJakarta || l == LocationSurabaya
}

type PaymentMethod string

const (
	PaymentCashOnPickup PaymentMethod = "cash_on_pickup"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCreditCard   PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnPickup, PaymentBankTransfer, PaymentCreditCard:
		return true
	}
	return false
}

type Bank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransferBanks is the fixed list offered for bank_transfer.
var TransferBanks = []Bank{
	{ID: "bca", Name: "BCA"},
	{ID: "bri", Name: "BRI"},
	{ID: "bni", Name: "BNI"},
	{ID: "mandiri", Name: "Mandiri"},
}
