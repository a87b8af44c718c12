package exchange

import (
	"time"

	"github.com/tradeforge/tradeforge/currency"
	"github.com/tradeforge/tradeforge/exchanges/asset"
)

// Market is the canonical description of a tradable instrument. Exactly one
// of Spot, Swap or Future is true; Contract mirrors Swap || Future and Settle
// is only populated for contract markets.
type Market struct {
	ID       string
	Symbol   string
	Base     currency.Code
	Quote    currency.Code
	Settle   currency.Code
	BaseID   string
	QuoteID  string
	SettleID string
	Type     asset.Item
	Spot     bool
	Margin   bool
	Swap     bool
	Future   bool
	Option   bool
	Contract bool
	// Linear and Inverse are only meaningful for contract markets and stay
	// nil for spot
	Linear  *bool
	Inverse *bool
	Taker   float64
	Maker   float64
	// Expiry is only set for futures
	Expiry time.Time
	// Info carries the raw source record untouched for auditability
	Info any
}

// TradingFee holds the maker and taker rates for a single instrument
type TradingFee struct {
	Symbol string
	Maker  float64
	Taker  float64
	Info   any
}
