package store

import (
	"context"
	"sync"
	"time"
)

// entry is a stored value with its optional expiry deadline.
type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is an in-memory KV implementation with TTL support. It is
// used for local runs and tests; expiry is enforced lazily on Get and
// by a periodic sweep.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemory creates an in-memory store and starts its expiry sweeper.
func NewMemory() *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go m.sweep(time.Minute)
	return m
}

// NewMemoryWithClock creates an in-memory store using the given clock
// and no background sweeper. Tests use this to control expiry.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     now,
		done:    make(chan struct{}),
	}
}

// Get returns the value for key, honoring TTL.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(m.now()) {
		// Expired entries read as absent; removal happens under the
		// write lock so a concurrent Put is not clobbered.
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, nil
}

// Put stores value under key with an optional TTL.
func (m *Memory) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

// Delete removes key. Absent keys are ignored.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Close stops the expiry sweeper.
func (m *Memory) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

// Len returns the number of live entries. Used for monitoring and tests.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	now := m.now()
	for _, e := range m.entries {
		if e.expiresAt.IsZero() || e.expiresAt.After(now) {
			n++
		}
	}
	return n
}

// sweep periodically removes expired entries so memory does not grow
// unbounded between reads.
func (m *Memory) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			now := m.now()
			m.mu.Lock()
			for key, e := range m.entries {
				if !e.expiresAt.IsZero() && !e.expiresAt.After(now) {
					delete(m.entries, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
