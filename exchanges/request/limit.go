package request

import (
	"time"

	"golang.org/x/time/rate"
)

// Const here define individual functionality sub types for rate limiting
const (
	Unset EndpointLimit = iota
	Auth
	UnAuth
)

// EndpointLimit defines individual endpoint rate limits that are set when
// New is called
type EndpointLimit int

// Limiter interface groups rate limit functionality for extended rate
// limiting configuration i.e. shells of rate limits with a global rate for
// sub rates
type Limiter interface {
	Limit(EndpointLimit) error
}

// BasicLimit denotes a single rate limit that does not differentiate between
// endpoint functionality
type BasicLimit struct {
	r *rate.Limiter
}

// Limit executes a single rate limit set by NewRateLimit
func (b *BasicLimit) Limit(_ EndpointLimit) error {
	time.Sleep(b.r.Reserve().Delay())
	return nil
}

// NewRateLimit creates a new rate limiter based on a time interval and how
// many actions are allowed within it, broken down to an actions-per-second
// basis. Burst is kept at one as outbound bursting is not supported.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an unrestricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}

	i := 1 / interval.Seconds()
	rps := i * float64(actions)
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// NewBasicRateLimit returns an object that implements the Limiter interface
// for a single rate
func NewBasicRateLimit(interval time.Duration, actions int) Limiter {
	return &BasicLimit{NewRateLimit(interval, actions)}
}
