package bitflyer

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/tradeforge/tradeforge/exchanges/request"
)

// Exchange specific rate limit consts
const (
	bitflyerRateInterval                = time.Minute * 5
	bitflyerPrivateRequestRate          = 500
	bitflyerPrivateLowVolumeRequestRate = 100
	bitflyerPrivateSendOrderRequestRate = 300
	bitflyerPublicRequestRate           = 500
)

// Endpoint limits beyond the standard authenticated allowance
const (
	orders request.EndpointLimit = iota + 10
	lowVolume
)

// RateLimit implements the request.Limiter interface
type RateLimit struct {
	Auth   *rate.Limiter
	UnAuth *rate.Limiter

	// Send a New Order
	// Submit New Parent Order (Special order)
	// Cancel All Orders
	Order     *rate.Limiter
	LowVolume *rate.Limiter
}

// Limit limits outbound requests
func (r *RateLimit) Limit(f request.EndpointLimit) error {
	switch f {
	case request.Auth:
		time.Sleep(r.Auth.Reserve().Delay())
	case orders:
		res := r.Auth.Reserve()
		time.Sleep(r.Order.Reserve().Delay())
		time.Sleep(res.Delay())
	case lowVolume:
		authShell := r.Auth.Reserve()
		orderShell := r.Order.Reserve()
		time.Sleep(r.LowVolume.Reserve().Delay())
		time.Sleep(orderShell.Delay())
		time.Sleep(authShell.Delay())
	default:
		time.Sleep(r.UnAuth.Reserve().Delay())
	}
	return nil
}

// SetRateLimit returns the rate limit for the exchange
func SetRateLimit() *RateLimit {
	return &RateLimit{
		Auth:      request.NewRateLimit(bitflyerRateInterval, bitflyerPrivateRequestRate),
		UnAuth:    request.NewRateLimit(bitflyerRateInterval, bitflyerPublicRequestRate),
		Order:     request.NewRateLimit(bitflyerRateInterval, bitflyerPrivateSendOrderRequestRate),
		LowVolume: request.NewRateLimit(time.Minute, bitflyerPrivateLowVolumeRequestRate),
	}
}
