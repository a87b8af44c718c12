package nonce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSeconds(t *testing.T) {
	var n Nonce
	base := time.Unix(1637302000, 0)

	assert.Equal(t, Value(1637302000), n.GetSeconds(base))
	// sub-second calls reuse the same value
	assert.Equal(t, Value(1637302000), n.GetSeconds(base.Add(500*time.Millisecond)))
	assert.Equal(t, Value(1637302001), n.GetSeconds(base.Add(time.Second)))
	// a clock step backwards must not regress the nonce
	assert.Equal(t, Value(1637302001), n.GetSeconds(base.Add(-time.Hour)))
}

func TestSetGet(t *testing.T) {
	var n Nonce
	n.Set(12312313131)
	assert.Equal(t, Value(12312313131), n.Get())
	assert.Equal(t, "12312313131", n.String())
}

func TestConcurrentMonotonic(t *testing.T) {
	var n Nonce
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			n.GetSeconds(time.Unix(int64(1637302000+offset), 0))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, Value(1637302099), n.Get())
}
