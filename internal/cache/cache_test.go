package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", 42)

	value, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	// Overwrite
	c.Set("key", "replaced")

	value, ok = c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "replaced", value)
}

func TestMemoryReset(t *testing.T) {
	c := NewMemory()
	c.Set("a", 1)
	c.Set("b", 2)

	c.Reset()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			key := fmt.Sprintf("key-%d", n%4)
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}

	wg.Wait()
}

func TestKeyBuilders(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "history:AAPL:2024-01-02:2024-06-30", HistoryKey("AAPL", start, end))
	assert.Equal(t, "fundamentals:MSFT", FundamentalsKey("MSFT"))
	assert.Equal(t, "model:00000000000000ff", ModelKey(255))

	// Different ranges must never collide
	assert.NotEqual(t,
		HistoryKey("AAPL", start, end),
		HistoryKey("AAPL", start, end.AddDate(0, 0, 1)),
	)
}
