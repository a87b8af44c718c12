package account

import "github.com/tradeforge/tradeforge/currency"

// Balance is a single currency holding. Hold is derived as total minus
// available when the exchange does not report it directly.
type Balance struct {
	Currency currency.Code
	Total    float64
	Free     float64
	Hold     float64
}

// Holdings is the canonical balance set for one exchange account
type Holdings struct {
	Exchange string
	Balances []Balance
	Info     any
}

// GetBalance looks up a holding by canonical currency code
func (h *Holdings) GetBalance(c currency.Code) (Balance, bool) {
	for i := range h.Balances {
		if h.Balances[i].Currency.Equal(c) {
			return h.Balances[i], true
		}
	}
	return Balance{}, false
}
