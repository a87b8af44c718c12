package nonce

import (
	"strconv"
	"sync"
	"time"
)

// Nonce struct holds the last issued nonce value. Values are derived from the
// wall clock in whole seconds and never go backwards, so rapid successive
// requests within the same second reuse the same value. Exchanges that accept
// second-resolution timestamps tolerate this.
type Nonce struct {
	n int64
	m sync.Mutex
}

// GetSeconds returns a non-decreasing whole-second nonce for the supplied
// time
func (n *Nonce) GetSeconds(t time.Time) Value {
	n.m.Lock()
	defer n.m.Unlock()
	if s := t.Unix(); s > n.n {
		n.n = s
	}
	return Value(n.n)
}

// Get retrieves the last issued nonce value
func (n *Nonce) Get() Value {
	n.m.Lock()
	defer n.m.Unlock()
	return Value(n.n)
}

// Set sets the nonce value, used to replay known sequences in tests
func (n *Nonce) Set(val int64) {
	n.m.Lock()
	n.n = val
	n.m.Unlock()
}

// String returns a string version of the last issued nonce
func (n *Nonce) String() string {
	return n.Get().String()
}

// Value is a return type for Get
type Value int64

// String is a Value method that changes format to a string
func (v Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}
