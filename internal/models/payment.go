package models

// Payment method labels offered by the admin panel. The schema stores the
// label as free text with PaymentMethodCash as the default.
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodUPI          = "UPI"
	PaymentMethodBankTransfer = "Bank Transfer"
	PaymentMethodCard         = "Card"
)

// Payment represents a rent payment for one renter and one billing month.
// At most one payment exists per (renter, month-year) pair.
type Payment struct {
	// ID is the unique identifier for the payment.
	ID int64 `json:"id"`

	// RenterID is the paying renter.
	RenterID int64 `json:"renter_id"`

	// MonthYear is the billing period key, e.g. "2025-06".
	MonthYear string `json:"month_year"`

	// Amount is the amount paid.
	Amount float64 `json:"amount"`

	// Date is the payment date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Method is the payment method label (e.g. "Cash", "UPI").
	Method string `json:"method"`
}

// PaymentRecord is a payment joined with the renter's name, as listed in
// the admin payments view.
type PaymentRecord struct {
	Payment

	RenterName string `json:"renter_name"`
}
