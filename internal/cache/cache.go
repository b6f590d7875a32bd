// Package cache provides the keyed cache collaborator memoizing upstream
// fetch results and trained models across dashboard renders.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Cache is a keyed store. One render may consult it for price history,
// fundamentals snapshots and trained-model reports; Reset drops everything.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Reset()
}

// Memory is an in-memory Cache implementation.
type Memory struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]any),
	}
}

// Get implements Cache.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]

	return value, ok
}

// Set implements Cache.
func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
}

// Reset implements Cache.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]any)
}

// HistoryKey builds the cache key for a ticker's price history over a date
// range.
func HistoryKey(ticker string, start, end time.Time) string {
	return fmt.Sprintf("history:%s:%s:%s", ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// FundamentalsKey builds the cache key for a ticker's fundamentals
// snapshot.
func FundamentalsKey(ticker string) string {
	return fmt.Sprintf("fundamentals:%s", ticker)
}

// ModelKey builds the cache key for a trained model report from a feature
// fingerprint.
func ModelKey(fingerprint uint64) string {
	return fmt.Sprintf("model:%016x", fingerprint)
}
