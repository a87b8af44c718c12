package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/buger/jsonparser"
	"github.com/sirupsen/logrus"
)

// Defaults for the requester
const (
	DefaultHTTPTimeout = time.Second * 15
	MaxRetryAttempts   = 3
	MaxRequestJobs     = int32(50)
	drainBodyLimit     = 100000
	userAgentHeader    = "User-Agent"
	defaultBackoffBase = time.Millisecond * 250
)

var (
	errRequestSystemIsNil   = errors.New("request system is nil")
	errRequestFunctionIsNil = errors.New("request function is nil")
	errRequestItemNil       = errors.New("request item is nil")
	errInvalidPath          = errors.New("invalid path")
	errMaxRequestJobs       = errors.New("max request jobs reached")
	errFailedToRetryRequest = errors.New("failed to retry request")

	// ErrExchangeResponse is returned when the exchange rejects a request
	// with an error payload or unexpected HTTP status code
	ErrExchangeResponse = errors.New("exchange error response")
)

// Item is a temporary holder for a request
type Item struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    io.Reader
	Result  any
	Verbose bool

	// AuthRequest denotes a signed request so rate limiting can be applied
	// against the authenticated allowance
	AuthRequest bool
}

// Generate defines a closure for functionality outside of the requester to
// generate a new request when needed
type Generate func() (*Item, error)

// Requester struct for the request client
type Requester struct {
	name       string
	client     *http.Client
	limiter    Limiter
	userAgent  string
	maxRetries int
	backoff    func(attempt int) time.Duration
	log        *logrus.Logger
	jobs       int32
}

// Option is a functional option for the requester
type Option func(*Requester)

// WithLimiter applies a rate limiter to the requester
func WithLimiter(l Limiter) Option {
	return func(r *Requester) { r.limiter = l }
}

// WithUserAgent sets the user agent header applied to outbound requests
func WithUserAgent(ua string) Option {
	return func(r *Requester) { r.userAgent = ua }
}

// WithRetryAttempts overrides the maximum retry attempts
func WithRetryAttempts(n int) Option {
	return func(r *Requester) { r.maxRetries = n }
}

// WithLogger overrides the default logger
func WithLogger(l *logrus.Logger) Option {
	return func(r *Requester) { r.log = l }
}

// New returns a new Requester
func New(name string, client *http.Client, opts ...Option) *Requester {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	r := &Requester{
		name:       name,
		client:     client,
		maxRetries: MaxRetryAttempts,
		backoff: func(attempt int) time.Duration {
			return defaultBackoffBase * time.Duration(attempt)
		},
		log: logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SendPayload handles sending HTTP requests
func (r *Requester) SendPayload(ctx context.Context, ep EndpointLimit, newRequest Generate) error {
	if r == nil {
		return errRequestSystemIsNil
	}
	if newRequest == nil {
		return errRequestFunctionIsNil
	}

	if atomic.LoadInt32(&r.jobs) >= MaxRequestJobs {
		return errMaxRequestJobs
	}

	atomic.AddInt32(&r.jobs, 1)
	defer atomic.AddInt32(&r.jobs, -1)
	return r.doRequest(ctx, ep, newRequest)
}

func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}
	if i.Path == "" {
		return nil, errInvalidPath
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.userAgent != "" && req.Header.Get(userAgentHeader) == "" {
		req.Header.Add(userAgentHeader, r.userAgent)
	}

	return req, nil
}

func (r *Requester) doRequest(ctx context.Context, endpoint EndpointLimit, newRequest Generate) error {
	for attempt := 1; ; attempt++ {
		if r.limiter != nil {
			if err := r.limiter.Limit(endpoint); err != nil {
				return err
			}
		}

		p, err := newRequest()
		if err != nil {
			return err
		}

		req, err := p.validateRequest(ctx, r)
		if err != nil {
			return err
		}

		if p.Verbose {
			r.log.WithFields(logrus.Fields{
				"exchange": r.name,
				"attempt":  attempt,
				"method":   p.Method,
				"path":     p.Path,
			}).Debug("sending request")
		}

		resp, err := r.client.Do(req)
		if retry, checkErr := canRetryRequest(resp, err); checkErr != nil {
			return checkErr
		} else if retry {
			if err == nil {
				// If the body isn't fully read the connection cannot be
				// re-used
				r.drainBody(resp.Body)
			}

			if attempt > r.maxRetries {
				if err != nil {
					return fmt.Errorf("%w, err: %w", errFailedToRetryRequest, err)
				}
				return fmt.Errorf("%w, status: %s", errFailedToRetryRequest, resp.Status)
			}

			delay := r.backoff(attempt)
			if after := retryAfter(resp, time.Now()); after > delay {
				delay = after
			}

			if dl, ok := req.Context().Deadline(); ok && time.Now().Add(delay).After(dl) {
				if err != nil {
					return fmt.Errorf("deadline would be exceeded by retry, err: %w", err)
				}
				return fmt.Errorf("deadline would be exceeded by retry, status: %s", resp.Status)
			}

			if p.Verbose {
				r.log.WithFields(logrus.Fields{
					"exchange": r.name,
					"attempt":  attempt,
					"delay":    delay,
				}).Warn("request failed, retrying")
			}

			time.Sleep(delay)
			continue
		}

		contents, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return err
		}

		if err := r.checkResponse(resp.StatusCode, contents); err != nil {
			return err
		}

		if p.Verbose {
			r.log.WithFields(logrus.Fields{
				"exchange": r.name,
				"status":   resp.StatusCode,
				"response": string(contents),
			}).Debug("received response")
		}

		if p.Result != nil && len(contents) > 0 {
			return json.Unmarshal(contents, p.Result)
		}
		return nil
	}
}

// checkResponse inspects the response body of a failed request; exchanges
// commonly reject with a JSON payload holding a status code and message, e.g.
// {"status":-200,"error_message":"Insufficient funds","data":null}
func (r *Requester) checkResponse(code int, contents []byte) error {
	if code >= http.StatusOK && code <= http.StatusAccepted {
		return nil
	}
	if msg, err := jsonparser.GetString(contents, "error_message"); err == nil && msg != "" {
		status, _ := jsonparser.GetInt(contents, "status")
		return fmt.Errorf("%s %w: %s (status %d, http %d)", r.name, ErrExchangeResponse, msg, status, code)
	}
	return fmt.Errorf("%s %w: unsuccessful HTTP status code %d raw response: %s", r.name, ErrExchangeResponse, code, contents)
}

// canRetryRequest determines whether a request should be reattempted;
// transport failures, rate limit rejections and server side errors are
// retryable
func canRetryRequest(resp *http.Response, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return true, nil
	}
	return false, nil
}

// retryAfter honours the Retry-After header when the server supplies one
func retryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp == nil {
		return 0
	}
	after := resp.Header.Get("Retry-After")
	if after == "" {
		return 0
	}
	if t, err := time.Parse(time.RFC1123, after); err == nil {
		return t.Sub(now)
	}
	if d, err := time.ParseDuration(after + "s"); err == nil {
		return d
	}
	return 0
}

func (r *Requester) drainBody(body io.ReadCloser) {
	defer body.Close()
	if _, err := io.Copy(io.Discard, io.LimitReader(body, drainBodyLimit)); err != nil {
		r.log.WithFields(logrus.Fields{
			"exchange": r.name,
		}).Errorf("failed to drain request body %s", err)
	}
}
