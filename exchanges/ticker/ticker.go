package ticker

import "time"

// Price is the canonical ticker shape. Fields an exchange does not report
// stay at their zero value; the normaliser never fabricates them.
type Price struct {
	Symbol     string
	Timestamp  time.Time
	Bid        float64
	Ask        float64
	Last       float64
	Close      float64
	BaseVolume float64
	Info       any
}
