package bitflyer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tradeforge/tradeforge/common"
	"github.com/tradeforge/tradeforge/common/crypto"
	exchange "github.com/tradeforge/tradeforge/exchanges"
	"github.com/tradeforge/tradeforge/exchanges/request"
)

const (
	// APIURL; the hostname is templated as the same API is served from the
	// .jp domain
	bitflyerAPIURL       = "https://api.{hostname}"
	bitflyerAPIHostname  = "bitflyer.com"
	bitflyerAPIVersion   = "1"
	bitflyerTradeBaseURL = "https://lightning.bitflyer.com/trade/"

	// Bitflyer chain analysis endpoints
	chainAnalysisURL = "https://chainflyer.bitflyer.jp/v1/"

	// Public endpoints for chain analysis
	latestBlock        = "block/latest"
	blockByBlockHash   = "block/"
	blockByBlockHeight = "block/height/"
	transactionByHash  = "tx/"
	addressInfo        = "address/"

	// Public endpoints
	pubGetMarkets          = "getmarkets"
	pubGetMarketsUSA       = "getmarkets/usa"
	pubGetMarketsEU        = "getmarkets/eu"
	pubGetBoard            = "getboard"
	pubGetTicker           = "getticker"
	pubGetExecutionHistory = "getexecutions"
	pubGetBoardState       = "getboardstate"
	pubGetHealth           = "gethealth"
	pubGetChats            = "getchats"

	// Authenticated endpoints, all prefixed with me/ on the wire
	privGetBalance           = "getbalance"
	privSendChildOrder       = "sendchildorder"
	privCancelChildOrder     = "cancelchildorder"
	privCancelAllChildOrders = "cancelallchildorders"
	privGetChildOrders       = "getchildorders"
	privGetExecutions        = "getexecutions"
	privGetPositions         = "getpositions"
	privGetCoinIns           = "getcoinins"
	privGetCoinOuts          = "getcoinouts"
	privGetAddresses         = "getaddresses"
	privGetTradingCommission = "gettradingcommission"
	privWithdraw             = "withdraw"
)

// Bitflyer is the overarching type across this package
type Bitflyer struct {
	exchange.Base
}

// timeNow is shadowed in tests to drive deterministic nonces
var timeNow = time.Now

var errStopped = errors.New("the exchange has been stopped. Orders will not be accepted")

// SetDefaults sets the basic defaults for Bitflyer
func (b *Bitflyer) SetDefaults() {
	b.Name = "Bitflyer"
	b.Enabled = true
	b.API.Endpoints = exchange.NewEndpoints(bitflyerAPIHostname)
	b.API.Endpoints.SetDefaultEndpoints(map[exchange.URL]string{
		exchange.RestSpot:      bitflyerAPIURL,
		exchange.ChainAnalysis: chainAnalysisURL,
	})
	b.Requester = request.New(b.Name,
		&http.Client{Timeout: request.DefaultHTTPTimeout},
		request.WithLimiter(SetRateLimit()))
}

// New returns a Bitflyer exchange with defaults applied
func New() *Bitflyer {
	b := &Bitflyer{}
	b.SetDefaults()
	return b
}

// GetMarkets returns market information for the domestic market list
func (b *Bitflyer) GetMarkets(ctx context.Context) ([]MarketInfo, error) {
	var resp []MarketInfo
	return resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetMarkets, nil, &resp)
}

// GetMarketsUSA returns market information for the USA market list
func (b *Bitflyer) GetMarketsUSA(ctx context.Context) ([]MarketInfo, error) {
	var resp []MarketInfo
	return resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetMarketsUSA, nil, &resp)
}

// GetMarketsEU returns market information for the EU market list
func (b *Bitflyer) GetMarketsEU(ctx context.Context) ([]MarketInfo, error) {
	var resp []MarketInfo
	return resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetMarketsEU, nil, &resp)
}

// GetOrderBook returns market orderbook depth
func (b *Bitflyer) GetOrderBook(ctx context.Context, productCode string) (*Orderbook, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	var resp Orderbook
	return &resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetBoard, v, &resp)
}

// GetTicker returns ticker information
func (b *Bitflyer) GetTicker(ctx context.Context, productCode string) (*Ticker, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	var resp Ticker
	return &resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetTicker, v, &resp)
}

// GetExecutionHistory returns past trades that were executed on the market
func (b *Bitflyer) GetExecutionHistory(ctx context.Context, productCode string, count int64) ([]ExecutedTrade, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	if count > 0 {
		v.Set("count", strconv.FormatInt(count, 10))
	}
	var resp []ExecutedTrade
	return resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetExecutionHistory, v, &resp)
}

// GetBoardState returns the operational state of a market
func (b *Bitflyer) GetBoardState(ctx context.Context, productCode string) (*BoardState, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	var resp BoardState
	return &resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetBoardState, v, &resp)
}

// GetExchangeStatus returns exchange status information
func (b *Bitflyer) GetExchangeStatus(ctx context.Context) (string, error) {
	resp := make(map[string]string)
	err := b.SendHTTPRequest(ctx, request.UnAuth, pubGetHealth, nil, &resp)
	if err != nil {
		return "", err
	}

	switch resp["status"] {
	case "BUSY":
		return "the exchange is experiencing high traffic", nil
	case "VERY BUSY":
		return "the exchange is experiencing heavy traffic", nil
	case "SUPER BUSY":
		return "the exchange is experiencing extremely heavy traffic. There is a possibility that orders will fail or be processed after a delay.", nil
	case "STOP":
		return "STOP", errStopped
	}
	return resp["status"], nil
}

// GetChats returns trollbox chat log
// Note: returns vary from instant to infinity
func (b *Bitflyer) GetChats(ctx context.Context, fromDate string) ([]ChatLog, error) {
	v := url.Values{}
	v.Set("from_date", fromDate)
	var resp []ChatLog
	return resp, b.SendHTTPRequest(ctx, request.UnAuth, pubGetChats, v, &resp)
}

// GetLatestBlockCA returns the latest block information from bitflyer chain
// analysis system
func (b *Bitflyer) GetLatestBlockCA(ctx context.Context) (ChainAnalysisBlock, error) {
	var resp ChainAnalysisBlock
	return resp, b.SendChainHTTPRequest(ctx, latestBlock, &resp)
}

// GetBlockCA returns block information by blockhash from bitflyer chain
// analysis system
func (b *Bitflyer) GetBlockCA(ctx context.Context, blockhash string) (ChainAnalysisBlock, error) {
	var resp ChainAnalysisBlock
	return resp, b.SendChainHTTPRequest(ctx, blockByBlockHash+blockhash, &resp)
}

// GetBlockByHeightCA returns the block information by height from bitflyer
// chain analysis system
func (b *Bitflyer) GetBlockByHeightCA(ctx context.Context, height int64) (ChainAnalysisBlock, error) {
	var resp ChainAnalysisBlock
	return resp, b.SendChainHTTPRequest(ctx, blockByBlockHeight+strconv.FormatInt(height, 10), &resp)
}

// GetTransactionByHashCA returns transaction information by txHash from
// bitflyer chain analysis system
func (b *Bitflyer) GetTransactionByHashCA(ctx context.Context, txHash string) (ChainAnalysisTransaction, error) {
	var resp ChainAnalysisTransaction
	return resp, b.SendChainHTTPRequest(ctx, transactionByHash+txHash, &resp)
}

// GetAddressInfoCA returns balance information for an address from bitflyer
// chain analysis system
func (b *Bitflyer) GetAddressInfoCA(ctx context.Context, address string) (ChainAnalysisAddress, error) {
	var resp ChainAnalysisAddress
	return resp, b.SendChainHTTPRequest(ctx, addressInfo+address, &resp)
}

// GetAccountBalance returns the full list of account funds
func (b *Bitflyer) GetAccountBalance(ctx context.Context) ([]AccountBalance, error) {
	var resp []AccountBalance
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetBalance, nil, nil, &resp)
}

// SendChildOrder creates a new order
func (b *Bitflyer) SendChildOrder(ctx context.Context, req *ChildOrderRequest) (*OrderAcceptance, error) {
	var resp OrderAcceptance
	return &resp, b.SendAuthHTTPRequest(ctx, orders, http.MethodPost, privSendChildOrder, nil, req, &resp)
}

// CancelChildOrder cancels an order by its acceptance ID; the exchange
// returns an empty body on success
func (b *Bitflyer) CancelChildOrder(ctx context.Context, productCode, acceptanceID string) error {
	req := struct {
		ProductCode            string `json:"product_code"`
		ChildOrderAcceptanceID string `json:"child_order_acceptance_id"`
	}{
		ProductCode:            productCode,
		ChildOrderAcceptanceID: acceptanceID,
	}
	return b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodPost, privCancelChildOrder, nil, &req, nil)
}

// CancelAllChildOrders cancels all orders on a market
func (b *Bitflyer) CancelAllChildOrders(ctx context.Context, productCode string) error {
	req := struct {
		ProductCode string `json:"product_code"`
	}{
		ProductCode: productCode,
	}
	return b.SendAuthHTTPRequest(ctx, orders, http.MethodPost, privCancelAllChildOrders, nil, &req, nil)
}

// GetChildOrders returns child orders for a product, optionally filtered by
// order state
func (b *Bitflyer) GetChildOrders(ctx context.Context, productCode, state string, count int64) ([]ChildOrder, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	if state != "" {
		v.Set("child_order_state", state)
	}
	if count > 0 {
		v.Set("count", strconv.FormatInt(count, 10))
	}
	var resp []ChildOrder
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetChildOrders, v, nil, &resp)
}

// GetExecutions returns the caller's own executions for a product
func (b *Bitflyer) GetExecutions(ctx context.Context, productCode string, count int64) ([]ExecutedTrade, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	if count > 0 {
		v.Set("count", strconv.FormatInt(count, 10))
	}
	var resp []ExecutedTrade
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetExecutions, v, nil, &resp)
}

// GetPositions returns open positions for a product
func (b *Bitflyer) GetPositions(ctx context.Context, productCode string) ([]Position, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	var resp []Position
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetPositions, v, nil, &resp)
}

// GetCoinIns returns crypto deposit history
func (b *Bitflyer) GetCoinIns(ctx context.Context) ([]CoinEvent, error) {
	var resp []CoinEvent
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetCoinIns, nil, nil, &resp)
}

// GetCoinOuts returns crypto withdrawal history
func (b *Bitflyer) GetCoinOuts(ctx context.Context) ([]CoinEvent, error) {
	var resp []CoinEvent
	return resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetCoinOuts, nil, nil, &resp)
}

// GetDepositAddresses returns deposit addresses for the account
func (b *Bitflyer) GetDepositAddresses(ctx context.Context) ([]DepositAddress, error) {
	var resp []DepositAddress
	return resp, b.SendAuthHTTPRequest(ctx, lowVolume, http.MethodGet, privGetAddresses, nil, nil, &resp)
}

// GetTradingCommission returns the commission rate for a product
func (b *Bitflyer) GetTradingCommission(ctx context.Context, productCode string) (*TradingCommission, error) {
	v := url.Values{}
	v.Set("product_code", productCode)
	var resp TradingCommission
	return &resp, b.SendAuthHTTPRequest(ctx, request.Auth, http.MethodGet, privGetTradingCommission, v, nil, &resp)
}

// WithdrawFunds requests a bank withdrawal
func (b *Bitflyer) WithdrawFunds(ctx context.Context, req *WithdrawRequest) (*WithdrawResponse, error) {
	var resp WithdrawResponse
	return &resp, b.SendAuthHTTPRequest(ctx, lowVolume, http.MethodPost, privWithdraw, nil, req, &resp)
}

// SendHTTPRequest sends an unauthenticated request
func (b *Bitflyer) SendHTTPRequest(ctx context.Context, ep request.EndpointLimit, path string, params url.Values, result any) error {
	endpoint, err := b.API.Endpoints.GetURL(exchange.RestSpot)
	if err != nil {
		return err
	}
	req := common.EncodeURLValues(versionedPath(path, false), params)
	item := &request.Item{
		Method:  http.MethodGet,
		Path:    endpoint + req,
		Result:  result,
		Verbose: b.Verbose,
	}
	return b.SendPayload(ctx, ep, func() (*request.Item, error) {
		return item, nil
	})
}

// SendChainHTTPRequest sends an unauthenticated request to the chain
// analysis system
func (b *Bitflyer) SendChainHTTPRequest(ctx context.Context, path string, result any) error {
	endpoint, err := b.API.Endpoints.GetURL(exchange.ChainAnalysis)
	if err != nil {
		return err
	}
	item := &request.Item{
		Method:  http.MethodGet,
		Path:    endpoint + path,
		Result:  result,
		Verbose: b.Verbose,
	}
	return b.SendPayload(ctx, request.UnAuth, func() (*request.Item, error) {
		return item, nil
	})
}

// SendAuthHTTPRequest sends an authenticated HTTP request. GET parameters are
// folded into the signed request line; non-GET parameters are serialised into
// the request body and appended to the signing payload.
func (b *Bitflyer) SendAuthHTTPRequest(ctx context.Context, ep request.EndpointLimit, method, path string, params url.Values, bodyParams, result any) error {
	creds, err := b.GetCredentials()
	if err != nil {
		return err
	}
	endpoint, err := b.API.Endpoints.GetURL(exchange.RestSpot)
	if err != nil {
		return err
	}

	newRequest := func() (*request.Item, error) {
		var body []byte
		if method != http.MethodGet && bodyParams != nil {
			body, err = json.Marshal(bodyParams)
			if err != nil {
				return nil, err
			}
		}

		req := common.EncodeURLValues(versionedPath(path, true), params)
		n := b.Nonce.GetSeconds(timeNow()).String()
		headers, err := signRequest(creds, n, method, req, body)
		if err != nil {
			return nil, err
		}

		item := &request.Item{
			Method:      method,
			Path:        endpoint + req,
			Headers:     headers,
			Result:      result,
			Verbose:     b.Verbose,
			AuthRequest: true,
		}
		if len(body) > 0 {
			item.Body = bytes.NewBuffer(body)
		}
		return item, nil
	}
	return b.SendPayload(ctx, ep, newRequest)
}

// versionedPath builds the canonical request line, "/v1/" plus "me/" for the
// authenticated scope; this exact string participates in signing
func versionedPath(path string, authenticated bool) string {
	p := "/v" + bitflyerAPIVersion + "/"
	if authenticated {
		p += "me/"
	}
	return p + path
}

// signRequest derives the authentication headers for a private call. The
// signing payload is nonce + method + request line + body, HMAC-SHA256 keyed
// with the API secret and hex encoded.
func signRequest(creds *exchange.Credentials, nonce, method, req string, body []byte) (map[string]string, error) {
	payload := nonce + method + req + string(body)
	hmac, err := crypto.GetHMAC(crypto.HashSHA256, []byte(payload), []byte(creds.Secret))
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"ACCESS-KEY":       creds.Key,
		"ACCESS-TIMESTAMP": nonce,
		"ACCESS-SIGN":      crypto.HexEncodeToString(hmac),
		"Content-Type":     "application/json",
	}, nil
}
