package exchange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tradeforge/tradeforge/exchanges/nonce"
	"github.com/tradeforge/tradeforge/exchanges/request"
)

// Endpoint keys used to look up running URLs for an exchange
const (
	RestSpot      URL = "RestSpotURL"
	ChainAnalysis URL = "ChainAnalysisURL"
)

var (
	// ErrCredentialsNotSet is returned when an authenticated endpoint is hit
	// without a configured API key and secret
	ErrCredentialsNotSet = errors.New("API credentials not set")
	// ErrSymbolRequired is returned before any request is attempted when an
	// operation needs a product code and none was supplied
	ErrSymbolRequired = errors.New("symbol required")
	// ErrEndpointNotFound is returned when an endpoint key has no running URL
	ErrEndpointNotFound = errors.New("no endpoint path found for the given key")
	errEndpointsNotSet  = errors.New("endpoints not set up")
)

// URL stores the endpoint key
type URL string

// Endpoints stores the running URLs for an exchange keyed by endpoint type.
// Stored URLs may carry a "{hostname}" template segment which is substituted
// on retrieval, mirroring exchanges that serve identical APIs from regional
// hostnames.
type Endpoints struct {
	hostname string
	defaults map[URL]string
	mu       sync.RWMutex
}

// NewEndpoints returns a new Endpoints store
func NewEndpoints(hostname string) *Endpoints {
	return &Endpoints{
		hostname: hostname,
		defaults: make(map[URL]string),
	}
}

// SetDefaultEndpoints declares the default running URLs for the exchange
func (e *Endpoints) SetDefaultEndpoints(m map[URL]string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range m {
		e.defaults[k] = v
	}
}

// SetRunningURL overrides a single running URL, used for testing and
// sandboxes
func (e *Endpoints) SetRunningURL(key URL, val string) {
	e.mu.Lock()
	e.defaults[key] = val
	e.mu.Unlock()
}

// SetHostname overrides the hostname substituted into templated URLs
func (e *Endpoints) SetHostname(hostname string) {
	e.mu.Lock()
	e.hostname = hostname
	e.mu.Unlock()
}

// GetURL returns the running URL for the supplied endpoint key
func (e *Endpoints) GetURL(key URL) (string, error) {
	if e == nil {
		return "", errEndpointsNotSet
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	val, ok := e.defaults[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEndpointNotFound, key)
	}
	return strings.Replace(val, "{hostname}", e.hostname, 1), nil
}

// Credentials holds the identity state needed to sign private requests
type Credentials struct {
	Key    string
	Secret string
}

// IsEmpty returns whether either the key or secret is unset
func (c *Credentials) IsEmpty() bool {
	return c == nil || c.Key == "" || c.Secret == ""
}

// API stores the exchange API settings
type API struct {
	AuthenticatedSupport bool
	Credentials          Credentials
	Endpoints            *Endpoints
}

// Base stores the individual exchange information
type Base struct {
	Name      string
	Enabled   bool
	Verbose   bool
	API       API
	Requester *request.Requester
	Nonce     nonce.Nonce
}

// GetName returns the exchange name
func (b *Base) GetName() string {
	return b.Name
}

// SetCredentials sets the API key and secret used for signing private
// requests
func (b *Base) SetCredentials(key, secret string) {
	b.API.Credentials.Key = key
	b.API.Credentials.Secret = secret
	b.API.AuthenticatedSupport = !b.API.Credentials.IsEmpty()
}

// GetCredentials returns the exchange credentials or errors when they are
// incomplete; callers must check this before building a signed request
func (b *Base) GetCredentials() (*Credentials, error) {
	if b.API.Credentials.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", b.Name, ErrCredentialsNotSet)
	}
	return &b.API.Credentials, nil
}

// SendPayload forwards a generated request to the requester
func (b *Base) SendPayload(ctx context.Context, ep request.EndpointLimit, gen request.Generate) error {
	return b.Requester.SendPayload(ctx, ep, gen)
}
