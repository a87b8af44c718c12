package trade

import (
	"time"

	"github.com/tradeforge/tradeforge/exchanges/order"
)

// Data is the canonical trade shape. OrderID holds the order that matched on
// the recorded side of the execution.
type Data struct {
	ID        string
	Timestamp time.Time
	Symbol    string
	Side      order.Side
	OrderID   string
	Price     float64
	Amount    float64
	Info      any
}
