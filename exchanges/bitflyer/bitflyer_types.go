package bitflyer

import "github.com/tradeforge/tradeforge/types"

// MarketInfo holds market information returned from the domestic, USA and EU
// market list endpoints
type MarketInfo struct {
	ProductCode string `json:"product_code"`
	MarketType  string `json:"market_type"`
	Alias       string `json:"alias,omitempty"`
}

// Ticker holds ticker information
type Ticker struct {
	ProductCode     string     `json:"product_code"`
	State           string     `json:"state"`
	Timestamp       types.Time `json:"timestamp"`
	TickID          int64      `json:"tick_id"`
	BestBid         float64    `json:"best_bid"`
	BestAsk         float64    `json:"best_ask"`
	BestBidSize     float64    `json:"best_bid_size"`
	BestAskSize     float64    `json:"best_ask_size"`
	TotalBidDepth   float64    `json:"total_bid_depth"`
	TotalAskDepth   float64    `json:"total_ask_depth"`
	MarketBidSize   float64    `json:"market_bid_size"`
	MarketAskSize   float64    `json:"market_ask_size"`
	LTP             float64    `json:"ltp"`
	Volume          float64    `json:"volume"`
	VolumeByProduct float64    `json:"volume_by_product"`
}

// Orderbook holds orderbook information
type Orderbook struct {
	MidPrice float64     `json:"mid_price"`
	Bids     []BookLevel `json:"bids"`
	Asks     []BookLevel `json:"asks"`
}

// BookLevel is a price level within the raw orderbook
type BookLevel struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// ExecutedTrade holds an execution record. Public executions carry both
// counterparties' acceptance IDs; private executions carry the caller's
// acceptance ID and commission instead.
type ExecutedTrade struct {
	ID                     int64      `json:"id"`
	Side                   string     `json:"side"`
	Price                  float64    `json:"price"`
	Size                   float64    `json:"size"`
	ExecDate               types.Time `json:"exec_date"`
	BuyAcceptanceID        string     `json:"buy_child_order_acceptance_id,omitempty"`
	SellAcceptanceID       string     `json:"sell_child_order_acceptance_id,omitempty"`
	ChildOrderID           string     `json:"child_order_id,omitempty"`
	ChildOrderAcceptanceID string     `json:"child_order_acceptance_id,omitempty"`
	Commission             float64    `json:"commission,omitempty"`
}

// TradingCommission holds the commission rate for a product
type TradingCommission struct {
	CommissionRate float64 `json:"commission_rate"`
}

// ChildOrderRequest is the outbound body for placing a child order
type ChildOrderRequest struct {
	ProductCode    string  `json:"product_code"`
	ChildOrderType string  `json:"child_order_type"`
	Side           string  `json:"side"`
	Price          float64 `json:"price,omitempty"`
	Size           float64 `json:"size"`
	MinuteToExpire int64   `json:"minute_to_expire,omitempty"`
	TimeInForce    string  `json:"time_in_force,omitempty"`
}

// OrderAcceptance holds the acceptance ID assigned to a submitted order
type OrderAcceptance struct {
	ChildOrderAcceptanceID string `json:"child_order_acceptance_id"`
}

// ChildOrder holds a child order record
type ChildOrder struct {
	ID                     int64      `json:"id"`
	ChildOrderID           string     `json:"child_order_id"`
	ProductCode            string     `json:"product_code"`
	Side                   string     `json:"side"`
	ChildOrderType         string     `json:"child_order_type"`
	Price                  float64    `json:"price"`
	AveragePrice           float64    `json:"average_price"`
	Size                   float64    `json:"size"`
	ChildOrderState        string     `json:"child_order_state"`
	ExpireDate             types.Time `json:"expire_date"`
	ChildOrderDate         types.Time `json:"child_order_date"`
	ChildOrderAcceptanceID string     `json:"child_order_acceptance_id"`
	OutstandingSize        float64    `json:"outstanding_size"`
	CancelSize             float64    `json:"cancel_size"`
	ExecutedSize           float64    `json:"executed_size"`
	TotalCommission        float64    `json:"total_commission"`
}

// Position holds an open margin position
type Position struct {
	ProductCode         string     `json:"product_code"`
	Side                string     `json:"side"`
	Price               float64    `json:"price"`
	Size                float64    `json:"size"`
	Commission          float64    `json:"commission"`
	SwapPointAccumulate float64    `json:"swap_point_accumulate"`
	RequireCollateral   float64    `json:"require_collateral"`
	OpenDate            types.Time `json:"open_date"`
	Leverage            float64    `json:"leverage"`
	PNL                 float64    `json:"pnl"`
	SFD                 float64    `json:"sfd"`
}

// AccountBalance holds a single currency balance
type AccountBalance struct {
	CurrencyCode string  `json:"currency_code"`
	Amount       float64 `json:"amount"`
	Available    float64 `json:"available"`
}

// CoinEvent holds a crypto deposit or withdrawal record. Withdrawals are the
// only records carrying a fee, which is how the two are told apart.
type CoinEvent struct {
	ID            int64      `json:"id"`
	OrderID       string     `json:"order_id"`
	CurrencyCode  string     `json:"currency_code"`
	Amount        float64    `json:"amount"`
	Address       string     `json:"address"`
	TxHash        string     `json:"tx_hash"`
	Fee           *float64   `json:"fee,omitempty"`
	AdditionalFee *float64   `json:"additional_fee,omitempty"`
	Status        string     `json:"status"`
	EventDate     types.Time `json:"event_date"`
}

// DepositAddress holds a crypto deposit address
type DepositAddress struct {
	Type         string `json:"type"`
	CurrencyCode string `json:"currency_code"`
	Address      string `json:"address"`
}

// WithdrawRequest is the outbound body for a bank withdrawal
type WithdrawRequest struct {
	CurrencyCode  string  `json:"currency_code"`
	BankAccountID int64   `json:"bank_account_id"`
	Amount        float64 `json:"amount"`
	AuthCode      string  `json:"code,omitempty"`
}

// WithdrawResponse holds the message ID assigned to a withdrawal request
type WithdrawResponse struct {
	MessageID string `json:"message_id"`
}

// BoardState holds operational state for a single market
type BoardState struct {
	Health string            `json:"health"`
	State  string            `json:"state"`
	Data   map[string]string `json:"data,omitempty"`
}

// ChatLog holds a trollbox chat entry
type ChatLog struct {
	Nickname string     `json:"nickname"`
	Message  string     `json:"message"`
	Date     types.Time `json:"date"`
}

// ChainAnalysisBlock returns block information from the bitflyer chain
// analysis system
type ChainAnalysisBlock struct {
	BlockHash     string   `json:"block_hash"`
	Height        int64    `json:"height"`
	IsMain        bool     `json:"is_main"`
	Version       float64  `json:"version"`
	PreviousBlock string   `json:"prev_block"`
	MerkleRoot    string   `json:"merkle_root"`
	Timestamp     string   `json:"timestamp"`
	Bits          int64    `json:"bits"`
	Nonce         int64    `json:"nonce"`
	TxNum         int64    `json:"txnum"`
	TotalFees     float64  `json:"total_fees"`
	TxHashes      []string `json:"tx_hashes"`
}

// ChainAnalysisTransaction returns transaction information from the bitflyer
// chain analysis system
type ChainAnalysisTransaction struct {
	TxHash       string  `json:"tx_hash"`
	BlockHeight  int64   `json:"block_height"`
	Confirmed    bool    `json:"confirmed"`
	Fees         float64 `json:"fees"`
	Size         int64   `json:"size"`
	ReceivedDate string  `json:"received_date"`
	Version      float64 `json:"version"`
	LockTime     int64   `json:"lock_time"`
	Inputs       []any   `json:"inputs"`
	Outputs      []any   `json:"outputs"`
}

// ChainAnalysisAddress returns balance information from the bitflyer chain
// analysis system
type ChainAnalysisAddress struct {
	Address            string  `json:"address"`
	UnconfirmedBalance float64 `json:"unconfirmed_balance"`
	ConfirmedBalance   float64 `json:"confirmed_balance"`
}
