package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPayloadValidation(t *testing.T) {
	t.Parallel()
	var nilRequester *Requester
	err := nilRequester.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{}, nil
	})
	assert.ErrorIs(t, err, errRequestSystemIsNil)

	r := New("test", nil)
	err = r.SendPayload(context.Background(), UnAuth, nil)
	assert.ErrorIs(t, err, errRequestFunctionIsNil)

	err = r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{}, nil
	})
	assert.ErrorIs(t, err, errInvalidPath)

	err = r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, errRequestItemNil)
}

func TestSendPayloadResult(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status":"NORMAL"}`))
	}))
	defer srv.Close()

	r := New("test", srv.Client(), WithLimiter(NewBasicRateLimit(time.Second, 100)))
	result := struct {
		Status string `json:"status"`
	}{}
	err := r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: srv.URL, Result: &result}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "NORMAL", result.Status)
}

func TestCheckResponseErrorPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":-110,"error_message":"Order not found","data":null}`))
	}))
	defer srv.Close()

	r := New("test", srv.Client())
	err := r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: srv.URL}, nil
	})
	require.ErrorIs(t, err, ErrExchangeResponse)
	assert.Contains(t, err.Error(), "Order not found")
	assert.Contains(t, err.Error(), "-110")
}

func TestRetryOnServerError(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	r := New("test", srv.Client())
	err := r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: srv.URL}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestRetryExhaustion(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := New("test", srv.Client(), WithRetryAttempts(1))
	err := r.SendPayload(context.Background(), UnAuth, func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: srv.URL}, nil
	})
	assert.ErrorIs(t, err, errFailedToRetryRequest)
}

func TestNewRateLimit(t *testing.T) {
	t.Parallel()
	l := NewRateLimit(time.Second, 0)
	assert.True(t, l.Allow(), "unrestricted limiter should always allow")

	l = NewRateLimit(time.Minute, 2)
	assert.True(t, l.Allow())
	assert.False(t, l.Allow(), "second request within the window should be delayed")
}
