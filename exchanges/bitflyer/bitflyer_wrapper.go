package bitflyer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeforge/tradeforge/currency"
	exchange "github.com/tradeforge/tradeforge/exchanges"
	"github.com/tradeforge/tradeforge/exchanges/account"
	"github.com/tradeforge/tradeforge/exchanges/asset"
	"github.com/tradeforge/tradeforge/exchanges/order"
	"github.com/tradeforge/tradeforge/exchanges/orderbook"
	"github.com/tradeforge/tradeforge/exchanges/ticker"
	"github.com/tradeforge/tradeforge/exchanges/trade"
	"github.com/tradeforge/tradeforge/exchanges/transfer"
)

// The exchange publishes a flat fee schedule for spot; contract markets trade
// without fees
const (
	spotTakerFee = 0.002
	spotMakerFee = 0.002
)

var (
	errMalformedProductCode = errors.New("malformed product code")
	errUnknownMonth         = errors.New("unknown month abbreviation in expiry date")
	errMalformedExpiryDate  = errors.New("malformed expiry date")
)

// expiryMonths translates the month segment of futures expiry dates such as
// 11FEB2022
var expiryMonths = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// FetchMarkets returns the canonical market list. The domestic, USA and EU
// lists are concatenated in that order; duplicate IDs are preserved so the
// caller's first-wins resolution can pick the domestic entry.
func (b *Bitflyer) FetchMarkets(ctx context.Context) ([]exchange.Market, error) {
	jp, err := b.GetMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchMarkets: %w", b.Name, err)
	}
	us, err := b.GetMarketsUSA(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchMarkets: %w", b.Name, err)
	}
	eu, err := b.GetMarketsEU(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchMarkets: %w", b.Name, err)
	}

	raw := make([]MarketInfo, 0, len(jp)+len(us)+len(eu))
	raw = append(raw, jp...)
	raw = append(raw, us...)
	raw = append(raw, eu...)

	markets := make([]exchange.Market, 0, len(raw))
	for i := range raw {
		m, err := b.parseMarket(raw[i])
		if err != nil {
			return nil, fmt.Errorf("%s FetchMarkets %q: %w", b.Name, raw[i].ProductCode, err)
		}
		markets = append(markets, m)
	}
	return markets, nil
}

// parseMarket normalises a single raw market record. Market type detection
// keys off market_type: FX products are perpetual swaps, Futures carry an
// expiry inside the product code, everything else is spot.
func (b *Bitflyer) parseMarket(raw MarketInfo) (exchange.Market, error) {
	id := raw.ProductCode
	parts := strings.Split(id, "_")

	var baseID, quoteID string
	var item asset.Item
	var expiry time.Time

	switch raw.MarketType {
	case "FX":
		// Swap ids carry a leading FX segment, e.g. FX_BTC_JPY
		if len(parts) < 3 {
			return exchange.Market{}, errMalformedProductCode
		}
		item = asset.PerpetualSwap
		baseID, quoteID = parts[1], parts[2]
	case "Futures":
		item = asset.Futures
		var expiryRaw string
		if raw.Alias == "" {
			// e.g. BTCJPY11FEB2022: three char base, three char quote,
			// nine char expiry
			if len(id) < 15 {
				return exchange.Market{}, errMalformedProductCode
			}
			baseID, quoteID = id[0:3], id[3:6]
			expiryRaw = id[len(id)-9:]
		} else {
			// e.g. alias BTCJPY_MAT1WK against id BTCJPY11MAR2022: the
			// alias names the currency pair, the id holds the expiry after
			// that pair
			pairSegment := strings.Split(raw.Alias, "_")[0]
			if len(pairSegment) <= 3 {
				return exchange.Market{}, errMalformedProductCode
			}
			baseID = pairSegment[:len(pairSegment)-3]
			quoteID = pairSegment[len(pairSegment)-3:]
			remainder := strings.SplitN(id, pairSegment, 2)
			if len(remainder) != 2 || remainder[1] == "" {
				return exchange.Market{}, errMalformedProductCode
			}
			expiryRaw = remainder[1]
		}
		var err error
		expiry, err = parseExpiryDate(expiryRaw)
		if err != nil {
			return exchange.Market{}, err
		}
	default:
		if len(parts) < 2 {
			return exchange.Market{}, errMalformedProductCode
		}
		item = asset.Spot
		baseID, quoteID = parts[0], parts[1]
	}

	base := currency.NewCode(baseID)
	quote := currency.NewCode(quoteID)

	m := exchange.Market{
		ID:      id,
		Base:    base,
		Quote:   quote,
		BaseID:  baseID,
		QuoteID: quoteID,
		Type:    item,
		Spot:    item == asset.Spot,
		Swap:    item == asset.PerpetualSwap,
		Future:  item == asset.Futures,
		Info:    raw,
	}
	m.Contract = m.Swap || m.Future
	m.Symbol = base.String() + "/" + quote.String()

	if m.Contract {
		// All contract products settle in JPY and trade fee free
		m.Settle = currency.JPY
		m.SettleID = currency.JPY.String()
		m.Linear = boolPtr(true)
		m.Inverse = boolPtr(false)
		m.Symbol += ":" + m.Settle.String()
	} else {
		m.Taker = spotTakerFee
		m.Maker = spotMakerFee
	}
	if m.Future {
		m.Expiry = expiry
		m.Symbol += "-" + expiry.Format("060102")
	}
	return m, nil
}

// parseExpiryDate converts a DDMMMYYYY expiry segment, e.g. 11FEB2022, into
// a UTC midnight timestamp. Unknown month abbreviations fail loudly rather
// than producing a silently malformed date.
func parseExpiryDate(s string) (time.Time, error) {
	if len(s) != 9 {
		return time.Time{}, fmt.Errorf("%w: %q", errMalformedExpiryDate, s)
	}
	day, err := strconv.Atoi(s[0:2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errMalformedExpiryDate, s)
	}
	month, ok := expiryMonths[s[2:5]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", errUnknownMonth, s[2:5])
	}
	year, err := strconv.Atoi(s[5:9])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errMalformedExpiryDate, s)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// FetchTicker returns the canonical ticker for a product. Only the fields
// the exchange reports are populated; nothing is fabricated.
func (b *Bitflyer) FetchTicker(ctx context.Context, productCode string) (*ticker.Price, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchTicker: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetTicker(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s FetchTicker: %w", b.Name, err)
	}
	return &ticker.Price{
		Symbol:     productCode,
		Timestamp:  raw.Timestamp.Time(),
		Bid:        raw.BestBid,
		Ask:        raw.BestAsk,
		Last:       raw.LTP,
		Close:      raw.LTP,
		BaseVolume: raw.VolumeByProduct,
		Info:       raw,
	}, nil
}

// FetchOrderBook returns the canonical order book for a product
func (b *Bitflyer) FetchOrderBook(ctx context.Context, productCode string) (*orderbook.Base, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchOrderBook: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetOrderBook(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s FetchOrderBook: %w", b.Name, err)
	}
	book := &orderbook.Base{
		Symbol:   productCode,
		MidPrice: raw.MidPrice,
		Bids:     make([]orderbook.Level, 0, len(raw.Bids)),
		Asks:     make([]orderbook.Level, 0, len(raw.Asks)),
		Info:     raw,
	}
	for i := range raw.Bids {
		book.Bids = append(book.Bids, orderbook.Level{Price: raw.Bids[i].Price, Amount: raw.Bids[i].Size})
	}
	for i := range raw.Asks {
		book.Asks = append(book.Asks, orderbook.Level{Price: raw.Asks[i].Price, Amount: raw.Asks[i].Size})
	}
	return book, nil
}

// FetchTrades returns recent public executions for a product
func (b *Bitflyer) FetchTrades(ctx context.Context, productCode string, count int64) ([]trade.Data, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchTrades: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetExecutionHistory(ctx, productCode, count)
	if err != nil {
		return nil, fmt.Errorf("%s FetchTrades: %w", b.Name, err)
	}
	trades := make([]trade.Data, len(raw))
	for i := range raw {
		trades[i] = parseTrade(raw[i], productCode)
	}
	return trades, nil
}

// FetchMyTrades returns the caller's own executions for a product
func (b *Bitflyer) FetchMyTrades(ctx context.Context, productCode string, count int64) ([]trade.Data, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchMyTrades: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetExecutions(ctx, productCode, count)
	if err != nil {
		return nil, fmt.Errorf("%s FetchMyTrades: %w", b.Name, err)
	}
	trades := make([]trade.Data, len(raw))
	for i := range raw {
		trades[i] = parseTrade(raw[i], productCode)
	}
	return trades, nil
}

// parseTrade normalises an execution record. The raw record can carry both
// counterparties' order acceptance IDs, so the matching one is resolved by
// side first with the generic acceptance ID as fallback.
func parseTrade(raw ExecutedTrade, symbol string) trade.Data {
	side := order.NewSide(raw.Side)
	var orderID string
	switch side {
	case order.Buy:
		orderID = raw.BuyAcceptanceID
	case order.Sell:
		orderID = raw.SellAcceptanceID
	}
	if orderID == "" {
		orderID = raw.ChildOrderAcceptanceID
	}
	return trade.Data{
		ID:        strconv.FormatInt(raw.ID, 10),
		Timestamp: raw.ExecDate.Time(),
		Symbol:    symbol,
		Side:      side,
		OrderID:   orderID,
		Price:     raw.Price,
		Amount:    raw.Size,
		Info:      raw,
	}
}

// FetchTradingFee returns the account's commission rate for a product
func (b *Bitflyer) FetchTradingFee(ctx context.Context, productCode string) (*exchange.TradingFee, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchTradingFee: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetTradingCommission(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s FetchTradingFee: %w", b.Name, err)
	}
	return &exchange.TradingFee{
		Symbol: productCode,
		Maker:  raw.CommissionRate,
		Taker:  raw.CommissionRate,
		Info:   raw,
	}, nil
}

// SubmitOrder places a child order and returns the exchange assigned
// acceptance ID
func (b *Bitflyer) SubmitOrder(ctx context.Context, s *order.Submit) (*order.SubmitResponse, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s SubmitOrder: %w", b.Name, err)
	}
	req := &ChildOrderRequest{
		ProductCode:    s.Symbol,
		ChildOrderType: strings.ToUpper(string(s.Type)),
		Side:           strings.ToUpper(string(s.Side)),
		Size:           s.Amount,
		MinuteToExpire: s.MinutesToExpire,
		TimeInForce:    s.TimeInForce,
	}
	if s.Type == order.Limit {
		req.Price = s.Price
	}
	raw, err := b.SendChildOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s SubmitOrder: %w", b.Name, err)
	}
	resp, err := order.NewSubmitResponse(raw.ChildOrderAcceptanceID)
	if err != nil {
		return nil, fmt.Errorf("%s SubmitOrder: %w", b.Name, err)
	}
	return resp, nil
}

// CancelOrder cancels an order by its acceptance ID
func (b *Bitflyer) CancelOrder(ctx context.Context, orderID, productCode string) error {
	if productCode == "" {
		return fmt.Errorf("%s CancelOrder: %w", b.Name, exchange.ErrSymbolRequired)
	}
	if err := b.CancelChildOrder(ctx, productCode, orderID); err != nil {
		return fmt.Errorf("%s CancelOrder: %w", b.Name, err)
	}
	return nil
}

// FetchOrders returns all child orders for a product
func (b *Bitflyer) FetchOrders(ctx context.Context, productCode string) ([]order.Detail, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchOrders: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetChildOrders(ctx, productCode, "", 0)
	if err != nil {
		return nil, fmt.Errorf("%s FetchOrders: %w", b.Name, err)
	}
	details := make([]order.Detail, len(raw))
	for i := range raw {
		details[i] = b.parseOrder(raw[i])
	}
	return details, nil
}

// FetchOpenOrders is emulated client side as a status filter over
// FetchOrders
func (b *Bitflyer) FetchOpenOrders(ctx context.Context, productCode string) ([]order.Detail, error) {
	all, err := b.FetchOrders(ctx, productCode)
	if err != nil {
		return nil, err
	}
	return order.FilterByStatus(all, order.Open), nil
}

// FetchClosedOrders is emulated client side as a status filter over
// FetchOrders
func (b *Bitflyer) FetchClosedOrders(ctx context.Context, productCode string) ([]order.Detail, error) {
	all, err := b.FetchOrders(ctx, productCode)
	if err != nil {
		return nil, err
	}
	return order.FilterByStatus(all, order.Closed), nil
}

// FetchOrder is emulated by listing all orders for the product and filtering
// by acceptance ID; the exchange exposes no single-order endpoint
func (b *Bitflyer) FetchOrder(ctx context.Context, orderID, productCode string) (*order.Detail, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchOrder: %w", b.Name, exchange.ErrSymbolRequired)
	}
	all, err := b.FetchOrders(ctx, productCode)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == orderID {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%s FetchOrder %q: %w", b.Name, orderID, order.ErrOrderNotFound)
}

// orderStatuses maps exchange child order states onto the canonical set;
// unrecognised states pass through unchanged
var orderStatuses = map[string]order.Status{
	"ACTIVE":    order.Open,
	"COMPLETED": order.Closed,
	"CANCELED":  order.Cancelled,
	"EXPIRED":   order.Cancelled,
	"REJECTED":  order.Cancelled,
}

func parseOrderStatus(state string) order.Status {
	if status, ok := orderStatuses[state]; ok {
		return status
	}
	return order.Status(state)
}

// parseOrder normalises a child order record
func (b *Bitflyer) parseOrder(raw ChildOrder) order.Detail {
	return order.Detail{
		Exchange:  b.Name,
		ID:        raw.ChildOrderAcceptanceID,
		Timestamp: raw.ChildOrderDate.Time(),
		Symbol:    raw.ProductCode,
		Type:      order.NewType(raw.ChildOrderType),
		Side:      order.NewSide(raw.Side),
		Status:    parseOrderStatus(raw.ChildOrderState),
		Price:     raw.Price,
		Amount:    raw.Size,
		Filled:    raw.ExecutedSize,
		Remaining: raw.OutstandingSize,
		Fee:       &order.Fee{Cost: raw.TotalCommission},
		Info:      raw,
	}
}

// FetchPositions returns open positions for a product
func (b *Bitflyer) FetchPositions(ctx context.Context, productCode string) ([]Position, error) {
	if productCode == "" {
		return nil, fmt.Errorf("%s FetchPositions: %w", b.Name, exchange.ErrSymbolRequired)
	}
	raw, err := b.GetPositions(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s FetchPositions: %w", b.Name, err)
	}
	return raw, nil
}

// FetchBalance returns the canonical account holdings
func (b *Bitflyer) FetchBalance(ctx context.Context) (*account.Holdings, error) {
	raw, err := b.GetAccountBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchBalance: %w", b.Name, err)
	}
	holdings := &account.Holdings{
		Exchange: b.Name,
		Balances: make([]account.Balance, len(raw)),
		Info:     raw,
	}
	for i := range raw {
		holdings.Balances[i] = account.Balance{
			Currency: currency.NewCode(raw[i].CurrencyCode),
			Total:    raw[i].Amount,
			Free:     raw[i].Available,
			Hold:     raw[i].Amount - raw[i].Available,
		}
	}
	return holdings, nil
}

// FetchDeposits returns crypto deposit history in the canonical transaction
// shape
func (b *Bitflyer) FetchDeposits(ctx context.Context) ([]transfer.Transaction, error) {
	raw, err := b.GetCoinIns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchDeposits: %w", b.Name, err)
	}
	txns := make([]transfer.Transaction, len(raw))
	for i := range raw {
		txns[i] = parseTransaction(raw[i])
	}
	return txns, nil
}

// FetchWithdrawals returns crypto withdrawal history in the canonical
// transaction shape
func (b *Bitflyer) FetchWithdrawals(ctx context.Context) ([]transfer.Transaction, error) {
	raw, err := b.GetCoinOuts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s FetchWithdrawals: %w", b.Name, err)
	}
	txns := make([]transfer.Transaction, len(raw))
	for i := range raw {
		txns[i] = parseTransaction(raw[i])
	}
	return txns, nil
}

// The deposit and withdrawal status tables are identical today but the
// exchange defines them per record type, so they are kept separate
var (
	depositStatuses = map[string]transfer.Status{
		"PENDING":   transfer.Pending,
		"COMPLETED": transfer.OK,
	}
	withdrawalStatuses = map[string]transfer.Status{
		"PENDING":   transfer.Pending,
		"COMPLETED": transfer.OK,
	}
)

// parseTransaction normalises a deposit or withdrawal record. The raw schema
// carries no type tag; the presence of a fee field is what marks a record as
// a withdrawal.
func parseTransaction(raw CoinEvent) transfer.Transaction {
	txn := transfer.Transaction{
		ID:        strconv.FormatInt(raw.ID, 10),
		OrderID:   raw.OrderID,
		Currency:  currency.NewCode(raw.CurrencyCode),
		Amount:    raw.Amount,
		Address:   raw.Address,
		TxID:      raw.TxHash,
		Timestamp: raw.EventDate.Time(),
		Info:      raw,
	}
	if raw.Fee != nil {
		txn.Type = transfer.Withdrawal
		txn.Status = lookupTransferStatus(withdrawalStatuses, raw.Status)
		// The total cost is the base fee plus the additional network fee;
		// decimal addition keeps float artifacts out of reported costs
		cost := decimal.NewFromFloat(*raw.Fee)
		if raw.AdditionalFee != nil {
			cost = cost.Add(decimal.NewFromFloat(*raw.AdditionalFee))
		}
		txn.Fee = &transfer.Fee{
			Cost:     cost.InexactFloat64(),
			Currency: txn.Currency,
		}
	} else {
		txn.Type = transfer.Deposit
		txn.Status = lookupTransferStatus(depositStatuses, raw.Status)
	}
	return txn
}

func lookupTransferStatus(table map[string]transfer.Status, state string) transfer.Status {
	if status, ok := table[state]; ok {
		return status
	}
	return transfer.Status(state)
}

// Withdraw requests a bank withdrawal; the exchange only pays out JPY
func (b *Bitflyer) Withdraw(ctx context.Context, code currency.Code, amount float64, bankAccountID int64) (*transfer.Transaction, error) {
	if !code.Equal(currency.JPY) {
		return nil, fmt.Errorf("%s Withdraw: %w: only JPY bank withdrawals are supported", b.Name, transfer.ErrCurrencyNotSupported)
	}
	raw, err := b.WithdrawFunds(ctx, &WithdrawRequest{
		CurrencyCode:  code.String(),
		BankAccountID: bankAccountID,
		Amount:        amount,
	})
	if err != nil {
		return nil, fmt.Errorf("%s Withdraw: %w", b.Name, err)
	}
	return &transfer.Transaction{
		ID:       raw.MessageID,
		Type:     transfer.Withdrawal,
		Currency: code,
		Amount:   amount,
		Status:   transfer.Pending,
		Info:     raw,
	}, nil
}

func boolPtr(v bool) *bool { return &v }
