package transfer

import (
	"errors"
	"time"

	"github.com/tradeforge/tradeforge/currency"
)

// Type discriminates deposits from withdrawals
type Type string

// Transaction types
const (
	Deposit    Type = "deposit"
	Withdrawal Type = "withdrawal"
)

// Status defines the canonical state of a transaction. Unrecognised exchange
// states pass through untouched.
type Status string

// Transaction statuses
const (
	Pending Status = "pending"
	OK      Status = "ok"
)

// ErrCurrencyNotSupported is returned when a withdrawal is requested in a
// currency the exchange cannot pay out
var ErrCurrencyNotSupported = errors.New("currency not supported for withdrawal")

// Fee is the cost attached to a withdrawal
type Fee struct {
	Cost     float64
	Currency currency.Code
}

// Transaction unifies deposit and withdrawal records into a single canonical
// shape
type Transaction struct {
	ID        string
	OrderID   string
	Type      Type
	Currency  currency.Code
	Amount    float64
	Address   string
	TxID      string
	Status    Status
	Timestamp time.Time
	// Fee is only present on withdrawals
	Fee  *Fee
	Info any
}
