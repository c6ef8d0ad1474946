package auth

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpiryNotifierFiresOncePerEvent(t *testing.T) {
	var fired atomic.Int32
	n := NewExpiryNotifier(func() { fired.Add(1) })

	n.Notify()
	n.Notify()
	n.Notify()

	assert.Equal(t, int32(1), fired.Load())
}

func TestExpiryNotifierRearms(t *testing.T) {
	var fired atomic.Int32
	n := NewExpiryNotifier(func() { fired.Add(1) })

	n.Notify()
	n.Arm()
	n.Notify()

	assert.Equal(t, int32(2), fired.Load())
}

func TestExpiryNotifierConcurrentNotify(t *testing.T) {
	var fired atomic.Int32
	n := NewExpiryNotifier(func() { fired.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Notify()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
}

func TestExpiryNotifierNilCallback(t *testing.T) {
	n := NewExpiryNotifier(nil)

	// Must not panic; suppression is the documented headless policy.
	n.Notify()
	n.Arm()
	n.Notify()
}
