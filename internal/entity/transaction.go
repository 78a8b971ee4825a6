package entity

import (
	"time"
)

// TransactionTypeName is the custom type to enforce enum-like behavior
type TransactionTypeName string

func (ttn TransactionTypeName) String() string {
	return string(ttn)
}

const (
	Payment          TransactionTypeName = "payment"
	RecurringPayment TransactionTypeName = "recurring_payment"
	Refund           TransactionTypeName = "refund"
	PartialRefund    TransactionTypeName = "partial_refund"
	Chargeback       TransactionTypeName = "chargeback"
)

// transactionTypeLabels maps machine values to human labels.
var transactionTypeLabels = map[TransactionTypeName]string{
	Payment:          "Payment",
	RecurringPayment: "Recurring Payment",
	Refund:           "Refund",
	PartialRefund:    "Partial Refund",
	Chargeback:       "Chargeback",
}

// ValidTransactionTypeNames is a set of valid transaction type names
var ValidTransactionTypeNames = map[TransactionTypeName]bool{
	Payment:          true,
	RecurringPayment: true,
	Refund:           true,
	PartialRefund:    true,
	Chargeback:       true,
}

// Label returns the human label for the type, falling back to the raw value
// for types recorded before the vocabulary was closed.
func (ttn TransactionTypeName) Label() string {
	if l, ok := transactionTypeLabels[ttn]; ok {
		return l
	}
	return string(ttn)
}

// Transaction represents one settled financial event on an order. Rows are
// append-only; refunds and chargebacks carry negative amounts.
type Transaction struct {
	ID          int                 `db:"id"`
	OrderFactID int                 `db:"order_fact_id"`
	AccountID   int                 `db:"account_id"`
	Type        TransactionTypeName `db:"type"`

	// Signed amounts in integer minor units.
	AmountTotal    int64 `db:"amount_total"`
	AmountNet      int64 `db:"amount_net"`
	AmountSubtotal int64 `db:"amount_subtotal"`
	AmountTax      int64 `db:"amount_tax"`
	AmountDiscount int64 `db:"amount_discount"`

	CurrencyCode string    `db:"currency_code"`
	ProcessedAt  time.Time `db:"processed_at"`
	CreatedAt    time.Time `db:"created_at"`
}

// TransactionInsert is the shape accepted by the recording subsystem.
type TransactionInsert struct {
	OrderFactID    int                 `db:"order_fact_id" valid:"required"`
	Type           TransactionTypeName `db:"type" valid:"required"`
	AmountTotal    int64               `db:"amount_total" valid:"-"`
	AmountNet      int64               `db:"amount_net" valid:"-"`
	AmountSubtotal int64               `db:"amount_subtotal" valid:"-"`
	AmountTax      int64               `db:"amount_tax" valid:"-"`
	AmountDiscount int64               `db:"amount_discount" valid:"-"`
	CurrencyCode   string              `db:"currency_code" valid:"required,alpha,length(3|3)"`
	ProcessedAt    time.Time           `db:"processed_at" valid:"required"`
}
