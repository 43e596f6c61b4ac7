package verification

import (
	"sync"
	"time"
)

// RateLimiter gates how often a single caller may start a new verification
// cycle. It records the last allowed request per phone number; anything
// inside the window is denied without restamping, so a denied call does not
// extend the block.
type RateLimiter struct {
	mu     sync.Mutex
	last   map[string]time.Time
	window time.Duration
	now    func() time.Time // overridable in tests
}

// NewRateLimiter creates a per-caller limiter and starts its stale-entry cleanup.
func NewRateLimiter(window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		last:   make(map[string]time.Time),
		window: window,
		now:    time.Now,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the caller may start a new verification cycle,
// stamping the current time only when it does.
func (rl *RateLimiter) Allow(phoneNumber string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.last[phoneNumber]; ok && rl.now().Sub(last) < rl.window {
		return false
	}
	rl.last[phoneNumber] = rl.now()
	return true
}

// evictStale drops entries old enough that they no longer block anything.
func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for phone, last := range rl.last {
		if now.Sub(last) >= rl.window {
			delete(rl.last, phone)
		}
	}
}

// cleanup removes stale entries every 5 minutes.
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(5 * time.Minute)
		rl.evictStale()
	}
}
