// Package ratelimit implements a per-provider politeness delay so the
// digest never hammers Wikipedia or the archive services with
// back-to-back requests.
package ratelimit

import (
	"sync"
	"time"

	"biodigest/internal/logger"
)

// Throttle enforces a minimum interval between successive calls to the
// same provider. Different providers do not block each other.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	sleep    func(time.Duration) // injectable for tests
}

func New(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		last:     make(map[string]time.Time),
		sleep:    time.Sleep,
	}
}

// Wait blocks until at least the configured interval has passed since
// the previous Wait for the same provider key.
func (t *Throttle) Wait(provider string) {
	t.mu.Lock()
	now := time.Now()
	wait := time.Duration(0)
	if prev, ok := t.last[provider]; ok {
		if elapsed := now.Sub(prev); elapsed < t.interval {
			wait = t.interval - elapsed
		}
	}
	t.last[provider] = now.Add(wait)
	t.mu.Unlock()

	if wait > 0 {
		logger.Debug("throttling provider", "provider", provider, "wait", wait)
		t.sleep(wait)
	}
}
