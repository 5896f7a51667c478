package stream

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateSingleSlot(t *testing.T) {
	var gate Gate

	assert.False(t, gate.Busy())
	assert.True(t, gate.TryAcquire())
	assert.True(t, gate.Busy())
	assert.False(t, gate.TryAcquire())

	gate.Release()
	assert.False(t, gate.Busy())
	assert.True(t, gate.TryAcquire())
}

func TestGateConcurrentAcquire(t *testing.T) {
	var gate Gate
	var wg sync.WaitGroup
	var successes int32
	var mu sync.Mutex

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.TryAcquire() {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes)
}
