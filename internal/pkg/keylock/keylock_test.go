package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := New()

	const workers = 32
	const iterations = 100
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				kl.Lock("a@x.com")
				counter++
				kl.Unlock("a@x.com")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestKeyLock_ReleasesEntries(t *testing.T) {
	kl := New()

	kl.Lock("a@x.com")
	kl.Lock("b@x.com")
	kl.Unlock("a@x.com")
	kl.Unlock("b@x.com")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	assert.Empty(t, kl.entries)
}

func TestKeyLock_UnlockUnheldPanics(t *testing.T) {
	kl := New()
	require.Panics(t, func() { kl.Unlock("nope") })
}
