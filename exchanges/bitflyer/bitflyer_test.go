package bitflyer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeforge/tradeforge/currency"
	exchange "github.com/tradeforge/tradeforge/exchanges"
	"github.com/tradeforge/tradeforge/exchanges/asset"
	"github.com/tradeforge/tradeforge/exchanges/order"
	"github.com/tradeforge/tradeforge/exchanges/request"
	"github.com/tradeforge/tradeforge/exchanges/transfer"
)

const (
	testAPIKey    = "testkey"
	testAPISecret = "testsecret"
	testNonceTime = 1637302000
)

// newTestExchange points the exchange at a local test server with fixed
// credentials and a deterministic clock
func newTestExchange(t *testing.T, handler http.Handler) (*Bitflyer, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b := New()
	b.SetCredentials(testAPIKey, testAPISecret)
	b.API.Endpoints.SetRunningURL(exchange.RestSpot, srv.URL)
	b.API.Endpoints.SetRunningURL(exchange.ChainAnalysis, srv.URL+"/v1/")

	timeNow = func() time.Time { return time.Unix(testNonceTime, 0) }
	t.Cleanup(func() { timeNow = time.Now })
	return b, srv
}

func TestVersionedPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/v1/getticker", versionedPath(pubGetTicker, false))
	assert.Equal(t, "/v1/me/getbalance", versionedPath(privGetBalance, true))
}

func TestSignRequestGet(t *testing.T) {
	t.Parallel()
	creds := &exchange.Credentials{Key: testAPIKey, Secret: testAPISecret}
	headers, err := signRequest(creds, "1637302000", http.MethodGet, "/v1/me/getchildorders?product_code=BTC_JPY", nil)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, headers["ACCESS-KEY"])
	assert.Equal(t, "1637302000", headers["ACCESS-TIMESTAMP"])
	assert.Equal(t, "application/json", headers["Content-Type"])
	// HMAC-SHA256("1637302000GET/v1/me/getchildorders?product_code=BTC_JPY", "testsecret")
	assert.Equal(t, "ba7d0515e6f6b9a6b92c85cb90809b9659c8470f9fff147a816a5875ccbeb8b9", headers["ACCESS-SIGN"])
}

func TestSignRequestPostAppendsBody(t *testing.T) {
	t.Parallel()
	creds := &exchange.Credentials{Key: testAPIKey, Secret: testAPISecret}
	body := []byte(`{"product_code":"BTC_JPY","child_order_type":"LIMIT","side":"BUY","price":100,"size":1}`)
	headers, err := signRequest(creds, "1637302000", http.MethodPost, "/v1/me/sendchildorder", body)
	require.NoError(t, err)
	assert.Equal(t, "31f715c7d238d9d4934dd73999ea7e0e7c4597e8b776d36c2c4ea177c792c86d", headers["ACCESS-SIGN"])
}

func TestSendAuthHTTPRequestNoCredentials(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	b := New()
	b.API.Endpoints.SetRunningURL(exchange.RestSpot, srv.URL)
	_, err := b.GetAccountBalance(context.Background())
	assert.ErrorIs(t, err, exchange.ErrCredentialsNotSet)
	assert.Zero(t, atomic.LoadInt32(&hits), "no request may be attempted without credentials")
}

func TestSendAuthHTTPRequestHeaders(t *testing.T) {
	received := make(chan http.Header, 1)
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Clone()
		w.Write([]byte(`[]`))
	}))

	_, err := b.GetChildOrders(context.Background(), "BTC_JPY", "", 0)
	require.NoError(t, err)

	headers := <-received
	assert.Equal(t, testAPIKey, headers.Get("ACCESS-KEY"))
	assert.Equal(t, "1637302000", headers.Get("ACCESS-TIMESTAMP"))
	assert.Equal(t, "ba7d0515e6f6b9a6b92c85cb90809b9659c8470f9fff147a816a5875ccbeb8b9", headers.Get("ACCESS-SIGN"))
}

func TestParseMarketSpot(t *testing.T) {
	t.Parallel()
	b := New()
	m, err := b.parseMarket(MarketInfo{ProductCode: "BTC_JPY", MarketType: "Spot"})
	require.NoError(t, err)
	assert.Equal(t, "BTC/JPY", m.Symbol)
	assert.Equal(t, currency.BTC, m.Base)
	assert.Equal(t, currency.JPY, m.Quote)
	assert.Equal(t, asset.Spot, m.Type)
	assert.True(t, m.Spot)
	assert.False(t, m.Contract)
	assert.Nil(t, m.Linear)
	assert.True(t, m.Settle.IsEmpty())
	assert.Equal(t, spotTakerFee, m.Taker)
	assert.Equal(t, spotMakerFee, m.Maker)
}

func TestParseMarketSwap(t *testing.T) {
	t.Parallel()
	b := New()
	m, err := b.parseMarket(MarketInfo{ProductCode: "FX_BTC_JPY", MarketType: "FX"})
	require.NoError(t, err)
	assert.Equal(t, "BTC/JPY:JPY", m.Symbol)
	assert.Equal(t, currency.BTC, m.Base)
	assert.Equal(t, currency.JPY, m.Quote)
	assert.Equal(t, currency.JPY, m.Settle)
	assert.Equal(t, asset.PerpetualSwap, m.Type)
	assert.True(t, m.Swap)
	assert.True(t, m.Contract)
	require.NotNil(t, m.Linear)
	assert.True(t, *m.Linear)
	require.NotNil(t, m.Inverse)
	assert.False(t, *m.Inverse)
	assert.Zero(t, m.Taker)
	assert.Zero(t, m.Maker)
}

func TestParseMarketFuture(t *testing.T) {
	t.Parallel()
	b := New()
	m, err := b.parseMarket(MarketInfo{ProductCode: "BTCJPY11FEB2022", MarketType: "Futures"})
	require.NoError(t, err)
	assert.Equal(t, currency.BTC, m.Base)
	assert.Equal(t, currency.JPY, m.Quote)
	assert.Equal(t, asset.Futures, m.Type)
	assert.True(t, m.Future)
	assert.True(t, m.Contract)
	assert.Equal(t, time.Date(2022, 2, 11, 0, 0, 0, 0, time.UTC), m.Expiry)
	assert.Equal(t, "BTC/JPY:JPY-220211", m.Symbol)
}

func TestParseMarketFutureWithAlias(t *testing.T) {
	t.Parallel()
	b := New()
	m, err := b.parseMarket(MarketInfo{
		ProductCode: "BTCJPY11MAR2022",
		MarketType:  "Futures",
		Alias:       "BTCJPY_MAT1WK",
	})
	require.NoError(t, err)
	assert.Equal(t, currency.BTC, m.Base)
	assert.Equal(t, currency.JPY, m.Quote)
	assert.Equal(t, time.Date(2022, 3, 11, 0, 0, 0, 0, time.UTC), m.Expiry)
	assert.Equal(t, "BTC/JPY:JPY-220311", m.Symbol)
}

func TestParseMarketMalformed(t *testing.T) {
	t.Parallel()
	b := New()
	_, err := b.parseMarket(MarketInfo{ProductCode: "BTCJPY", MarketType: "Spot"})
	assert.ErrorIs(t, err, errMalformedProductCode)

	_, err = b.parseMarket(MarketInfo{ProductCode: "FX_BTC", MarketType: "FX"})
	assert.ErrorIs(t, err, errMalformedProductCode)

	_, err = b.parseMarket(MarketInfo{ProductCode: "BTCJPY11XXX2022", MarketType: "Futures"})
	assert.ErrorIs(t, err, errUnknownMonth)
}

func TestParseExpiryDate(t *testing.T) {
	t.Parallel()
	expiry, err := parseExpiryDate("11FEB2022")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 2, 11, 0, 0, 0, 0, time.UTC), expiry)

	expiry, err = parseExpiryDate("01DEC2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), expiry)

	_, err = parseExpiryDate("11FEB22")
	assert.ErrorIs(t, err, errMalformedExpiryDate)

	_, err = parseExpiryDate("11QQQ2022")
	assert.ErrorIs(t, err, errUnknownMonth)
}

func TestFetchMarkets(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/getmarkets":
			w.Write([]byte(`[{"product_code":"BTC_JPY","market_type":"Spot"},{"product_code":"FX_BTC_JPY","market_type":"FX"}]`))
		case "/v1/getmarkets/usa":
			w.Write([]byte(`[{"product_code":"BTC_USD","market_type":"Spot"}]`))
		case "/v1/getmarkets/eu":
			w.Write([]byte(`[{"product_code":"BTC_EUR","market_type":"Spot"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	markets, err := b.FetchMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 4)
	// domestic first, then USA, then EU
	assert.Equal(t, "BTC_JPY", markets[0].ID)
	assert.Equal(t, "FX_BTC_JPY", markets[1].ID)
	assert.Equal(t, "BTC_USD", markets[2].ID)
	assert.Equal(t, "BTC_EUR", markets[3].ID)
}

func TestParseTradeSideResolution(t *testing.T) {
	t.Parallel()
	raw := ExecutedTrade{
		ID:               1337,
		Side:             "SELL",
		Price:            5000000,
		Size:             0.5,
		BuyAcceptanceID:  "Y",
		SellAcceptanceID: "X",
	}
	tr := parseTrade(raw, "BTC_JPY")
	assert.Equal(t, order.Sell, tr.Side)
	assert.Equal(t, "X", tr.OrderID, "the order resolved by side must win")
	assert.Equal(t, "1337", tr.ID)

	raw.Side = "BUY"
	tr = parseTrade(raw, "BTC_JPY")
	assert.Equal(t, order.Buy, tr.Side)
	assert.Equal(t, "Y", tr.OrderID)
}

func TestParseTradeFallbackOrderID(t *testing.T) {
	t.Parallel()
	// private executions lack the per-side acceptance IDs
	raw := ExecutedTrade{ID: 2, Side: "BUY", ChildOrderAcceptanceID: "JRF-1"}
	tr := parseTrade(raw, "BTC_JPY")
	assert.Equal(t, "JRF-1", tr.OrderID)

	// itayose executions carry no side at all
	raw = ExecutedTrade{ID: 3, ChildOrderAcceptanceID: "JRF-2"}
	tr = parseTrade(raw, "BTC_JPY")
	assert.Equal(t, order.UnknownSide, tr.Side)
	assert.Equal(t, "JRF-2", tr.OrderID)
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()
	assert.Equal(t, order.Open, parseOrderStatus("ACTIVE"))
	assert.Equal(t, order.Closed, parseOrderStatus("COMPLETED"))
	assert.Equal(t, order.Cancelled, parseOrderStatus("CANCELED"))
	assert.Equal(t, order.Cancelled, parseOrderStatus("EXPIRED"))
	assert.Equal(t, order.Cancelled, parseOrderStatus("REJECTED"))
	// unrecognised states pass through untouched
	assert.Equal(t, order.Status("SETTLING"), parseOrderStatus("SETTLING"))
}

func TestParseOrder(t *testing.T) {
	t.Parallel()
	b := New()
	raw := ChildOrder{
		ProductCode:            "BTC_JPY",
		Side:                   "BUY",
		ChildOrderType:         "LIMIT",
		Price:                  3000000,
		Size:                   1,
		ChildOrderState:        "ACTIVE",
		ChildOrderAcceptanceID: "JRF20211121-001",
		OutstandingSize:        0.75,
		ExecutedSize:           0.25,
		TotalCommission:        0.0005,
	}
	detail := b.parseOrder(raw)
	assert.Equal(t, "JRF20211121-001", detail.ID)
	assert.Equal(t, order.Buy, detail.Side)
	assert.Equal(t, order.Limit, detail.Type)
	assert.Equal(t, order.Open, detail.Status)
	assert.Equal(t, 0.25, detail.Filled)
	assert.Equal(t, 0.75, detail.Remaining)
	require.NotNil(t, detail.Fee)
	assert.Equal(t, 0.0005, detail.Fee.Cost)
}

func TestFetchOrderEmulation(t *testing.T) {
	var hits int32
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[
			{"child_order_acceptance_id":"JRF-A","product_code":"BTC_JPY","side":"BUY","child_order_type":"LIMIT","child_order_state":"ACTIVE"},
			{"child_order_acceptance_id":"JRF-B","product_code":"BTC_JPY","side":"SELL","child_order_type":"LIMIT","child_order_state":"COMPLETED"}
		]`))
	}))

	detail, err := b.FetchOrder(context.Background(), "JRF-B", "BTC_JPY")
	require.NoError(t, err)
	assert.Equal(t, order.Closed, detail.Status)

	_, err = b.FetchOrder(context.Background(), "JRF-MISSING", "BTC_JPY")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	before := atomic.LoadInt32(&hits)
	_, err = b.FetchOrder(context.Background(), "JRF-A", "")
	assert.ErrorIs(t, err, exchange.ErrSymbolRequired)
	assert.Equal(t, before, atomic.LoadInt32(&hits), "missing symbol must not trigger a request")
}

func TestFetchOpenAndClosedOrders(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"child_order_acceptance_id":"JRF-A","child_order_state":"ACTIVE"},
			{"child_order_acceptance_id":"JRF-B","child_order_state":"COMPLETED"},
			{"child_order_acceptance_id":"JRF-C","child_order_state":"CANCELED"}
		]`))
	}))

	open, err := b.FetchOpenOrders(context.Background(), "BTC_JPY")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "JRF-A", open[0].ID)

	closed, err := b.FetchClosedOrders(context.Background(), "BTC_JPY")
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "JRF-B", closed[0].ID)
}

func TestSubmitOrder(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChildOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "LIMIT", req.ChildOrderType)
		assert.Equal(t, "BUY", req.Side)
		assert.Equal(t, 3000000.0, req.Price)
		assert.Equal(t, "/v1/me/sendchildorder", r.URL.Path)
		w.Write([]byte(`{"child_order_acceptance_id":"JRF20211121-001"}`))
	}))

	resp, err := b.SubmitOrder(context.Background(), &order.Submit{
		Symbol: "BTC_JPY",
		Type:   order.Limit,
		Side:   order.Buy,
		Price:  3000000,
		Amount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "JRF20211121-001", resp.OrderID)
	assert.False(t, resp.InternalOrderID.IsNil())

	_, err = b.SubmitOrder(context.Background(), &order.Submit{Type: order.Limit, Side: order.Buy, Price: 1, Amount: 1})
	assert.Error(t, err)
}

func TestFetchTicker(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BTC_JPY", r.URL.Query().Get("product_code"))
		w.Write([]byte(`{"product_code":"BTC_JPY","timestamp":"2021-11-19T05:13:45.71","best_bid":6941000,"best_ask":6943365,"ltp":6942198,"volume_by_product":5766.6}`))
	}))

	price, err := b.FetchTicker(context.Background(), "BTC_JPY")
	require.NoError(t, err)
	assert.Equal(t, 6941000.0, price.Bid)
	assert.Equal(t, 6943365.0, price.Ask)
	assert.Equal(t, 6942198.0, price.Last)
	assert.Equal(t, price.Last, price.Close)
	assert.Equal(t, 5766.6, price.BaseVolume)
	assert.Equal(t, time.Date(2021, 11, 19, 5, 13, 45, 710000000, time.UTC), price.Timestamp)

	_, err = b.FetchTicker(context.Background(), "")
	assert.ErrorIs(t, err, exchange.ErrSymbolRequired)
}

func TestFetchOrderBook(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mid_price":33320,"bids":[{"price":30000,"size":0.1},{"price":25570,"size":3}],"asks":[{"price":36640,"size":5}]}`))
	}))

	book, err := b.FetchOrderBook(context.Background(), "BTC_JPY")
	require.NoError(t, err)
	assert.Equal(t, 33320.0, book.MidPrice)
	require.Len(t, book.Bids, 2)
	require.Len(t, book.Asks, 1)
	assert.Equal(t, 30000.0, book.BestBid())
	assert.Equal(t, 36640.0, book.BestAsk())
	assert.Equal(t, 0.1, book.Bids[0].Amount)
}

func TestFetchBalance(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/me/getbalance", r.URL.Path)
		w.Write([]byte(`[{"currency_code":"JPY","amount":1024078,"available":508000},{"currency_code":"BTC","amount":10.24,"available":4.12}]`))
	}))

	holdings, err := b.FetchBalance(context.Background())
	require.NoError(t, err)
	require.Len(t, holdings.Balances, 2)

	jpy, ok := holdings.GetBalance(currency.JPY)
	require.True(t, ok)
	assert.Equal(t, 1024078.0, jpy.Total)
	assert.Equal(t, 508000.0, jpy.Free)
	assert.Equal(t, 516078.0, jpy.Hold)
}

func TestParseTransactionClassification(t *testing.T) {
	t.Parallel()
	fee := 0.0004
	additional := 0.0002

	withdrawal := parseTransaction(CoinEvent{
		ID:            700,
		CurrencyCode:  "BTC",
		Amount:        0.1,
		Status:        "COMPLETED",
		Fee:           &fee,
		AdditionalFee: &additional,
	})
	assert.Equal(t, transfer.Withdrawal, withdrawal.Type)
	assert.Equal(t, transfer.OK, withdrawal.Status)
	require.NotNil(t, withdrawal.Fee)
	// 0.0004 + 0.0002 must come out as exactly 0.0006
	assert.Equal(t, 0.0006, withdrawal.Fee.Cost)

	deposit := parseTransaction(CoinEvent{
		ID:           701,
		CurrencyCode: "BTC",
		Amount:       0.1,
		Status:       "PENDING",
	})
	assert.Equal(t, transfer.Deposit, deposit.Type)
	assert.Equal(t, transfer.Pending, deposit.Status)
	assert.Nil(t, deposit.Fee)

	// unmapped statuses pass through per type
	odd := parseTransaction(CoinEvent{ID: 702, Status: "MUMBLING"})
	assert.Equal(t, transfer.Status("MUMBLING"), odd.Status)
}

func TestParseTransactionIdempotent(t *testing.T) {
	t.Parallel()
	fee := 0.0004
	raw := CoinEvent{ID: 800, CurrencyCode: "BTC", Amount: 1.5, Status: "PENDING", Fee: &fee}
	assert.Equal(t, parseTransaction(raw), parseTransaction(raw))
}

func TestFetchDepositsAndWithdrawals(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/me/getcoinins":
			w.Write([]byte(`[{"id":100,"order_id":"CDP-1","currency_code":"BTC","amount":0.3,"address":"addr1","tx_hash":"hash1","status":"COMPLETED","event_date":"2021-11-19T09:00:00.001"}]`))
		case "/v1/me/getcoinouts":
			w.Write([]byte(`[{"id":500,"order_id":"CWD-1","currency_code":"BTC","amount":0.2,"address":"addr2","tx_hash":"hash2","fee":0.0004,"additional_fee":0.0002,"status":"PENDING","event_date":"2021-11-19T10:00:00.002"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	deposits, err := b.FetchDeposits(context.Background())
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, transfer.Deposit, deposits[0].Type)
	assert.Equal(t, transfer.OK, deposits[0].Status)
	assert.Equal(t, "100", deposits[0].ID)

	withdrawals, err := b.FetchWithdrawals(context.Background())
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, transfer.Withdrawal, withdrawals[0].Type)
	require.NotNil(t, withdrawals[0].Fee)
	assert.Equal(t, 0.0006, withdrawals[0].Fee.Cost)
}

func TestWithdraw(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/me/withdraw", r.URL.Path)
		w.Write([]byte(`{"message_id":"69476620-5056-4003-bcbe-42658a2b041b"}`))
	}))

	txn, err := b.Withdraw(context.Background(), currency.JPY, 12000, 1234)
	require.NoError(t, err)
	assert.Equal(t, "69476620-5056-4003-bcbe-42658a2b041b", txn.ID)
	assert.Equal(t, transfer.Withdrawal, txn.Type)

	_, err = b.Withdraw(context.Background(), currency.BTC, 1, 1234)
	assert.ErrorIs(t, err, transfer.ErrCurrencyNotSupported)
}

func TestGetExchangeStatus(t *testing.T) {
	var status string
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/gethealth", r.URL.Path)
		w.Write([]byte(`{"status":"` + status + `"}`))
	}))

	status = "NORMAL"
	got, err := b.GetExchangeStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "NORMAL", got)

	status = "BUSY"
	got, err = b.GetExchangeStatus(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got, "high traffic")

	status = "STOP"
	got, err = b.GetExchangeStatus(context.Background())
	assert.ErrorIs(t, err, errStopped)
	assert.Equal(t, "STOP", got)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	r := SetRateLimit()
	for _, ep := range []request.EndpointLimit{request.UnAuth, request.Auth, orders, lowVolume} {
		assert.NoError(t, r.Limit(ep))
	}
}

func TestGetLatestBlockCA(t *testing.T) {
	b, _ := newTestExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/block/latest", r.URL.Path)
		w.Write([]byte(`{"block_hash":"00000000000000000036","height":500000,"is_main":true}`))
	}))

	block, err := b.GetLatestBlockCA(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(500000), block.Height)
	assert.True(t, block.IsMain)
}
