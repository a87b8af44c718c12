package orderbook

// Level is a single price level of the book
type Level struct {
	Price  float64
	Amount float64
}

// Base holds the fields for the orderbook base
type Base struct {
	Symbol   string
	MidPrice float64
	Bids     []Level
	Asks     []Level
	Info     any
}

// BestBid returns the highest bid or zero when the book side is empty
func (b *Base) BestBid() float64 {
	if len(b.Bids) == 0 {
		return 0
	}
	return b.Bids[0].Price
}

// BestAsk returns the lowest ask or zero when the book side is empty
func (b *Base) BestAsk() float64 {
	if len(b.Asks) == 0 {
		return 0
	}
	return b.Asks[0].Price
}
