package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/tradeforge/tradeforge/currency"
	"github.com/tradeforge/tradeforge/exchanges/asset"
)

// Side denotes the side of an order, lowercase in the canonical model
type Side string

// Order sides
const (
	UnknownSide Side = ""
	Buy         Side = "buy"
	Sell        Side = "sell"
)

// Type denotes the execution style of an order, lowercase in the canonical
// model
type Type string

// Order types
const (
	UnknownType Type = ""
	Limit       Type = "limit"
	Market      Type = "market"
)

// Status defines the canonical state of an order. Unrecognised exchange
// states are carried through untouched so new states do not break callers.
type Status string

// Order statuses
const (
	UnknownStatus Status = ""
	Open          Status = "open"
	Closed        Status = "closed"
	Cancelled     Status = "canceled"
)

var (
	// ErrOrderNotFound is returned when an order lookup by ID yields no
	// match
	ErrOrderNotFound = errors.New("order not found")

	errSymbolUnset = errors.New("submit symbol unset")
	errSideInvalid = errors.New("submit side invalid")
	errTypeInvalid = errors.New("submit order type invalid")
	errAmountUnset = errors.New("submit amount must be greater than zero")
	errPriceUnset  = errors.New("limit order requires a price")
)

// NewSide normalises an exchange side string; anything other than buy or
// sell resolves to UnknownSide
func NewSide(s string) Side {
	switch strings.ToLower(s) {
	case "buy":
		return Buy
	case "sell":
		return Sell
	default:
		return UnknownSide
	}
}

// NewType normalises an exchange order type string
func NewType(s string) Type {
	switch strings.ToLower(s) {
	case "limit":
		return Limit
	case "market":
		return Market
	default:
		return Type(strings.ToLower(s))
	}
}

// Fee is a cost-only fee record attached to an order when the exchange
// reports one
type Fee struct {
	Cost     float64
	Currency currency.Code
	Rate     float64
}

// Detail is the canonical order shape produced by every adapter
type Detail struct {
	Exchange  string
	ID        string
	Timestamp time.Time
	Symbol    string
	AssetType asset.Item
	Type      Type
	Side      Side
	Status    Status
	Price     float64
	Amount    float64
	Filled    float64
	Remaining float64
	Fee       *Fee
	Info      any
}

// Submit holds the caller supplied parameters for placing an order
type Submit struct {
	Symbol string
	Type   Type
	Side   Side
	Price  float64
	Amount float64
	// MinutesToExpire and TimeInForce are passed through to exchanges that
	// support order lifetimes
	MinutesToExpire int64
	TimeInForce     string
}

// Validate checks the submission parameters before any request is attempted
func (s *Submit) Validate() error {
	if s == nil {
		return errors.New("submit is nil")
	}
	if s.Symbol == "" {
		return errSymbolUnset
	}
	if s.Side != Buy && s.Side != Sell {
		return fmt.Errorf("%w: %q", errSideInvalid, s.Side)
	}
	if s.Type != Limit && s.Type != Market {
		return fmt.Errorf("%w: %q", errTypeInvalid, s.Type)
	}
	if s.Amount <= 0 {
		return errAmountUnset
	}
	if s.Type == Limit && s.Price <= 0 {
		return errPriceUnset
	}
	return nil
}

// SubmitResponse is returned after an order has been accepted
type SubmitResponse struct {
	// InternalOrderID tracks the order through this library independently of
	// the exchange assigned ID
	InternalOrderID uuid.UUID
	OrderID         string
}

// NewSubmitResponse returns a response for an accepted order with a fresh
// internal tracking ID
func NewSubmitResponse(orderID string) (*SubmitResponse, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &SubmitResponse{InternalOrderID: id, OrderID: orderID}, nil
}

// FilterByStatus reduces a slice of order details to those matching the
// supplied status
func FilterByStatus(orders []Detail, status Status) []Detail {
	filtered := make([]Detail, 0, len(orders))
	for i := range orders {
		if orders[i].Status == status {
			filtered = append(filtered, orders[i])
		}
	}
	return filtered
}
