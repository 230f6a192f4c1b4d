// Package ratelimit provides a per-client fixed-window rate limiter for
// abuse-prone endpoints like the contact form.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts events per key within a fixed window
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	counts map[string]*bucket
	now    func() time.Time
}

type bucket struct {
	start time.Time
	count int
}

// NewLimiter creates a limiter allowing max events per key per window.
// A max of 0 disables limiting.
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		counts: make(map[string]*bucket),
		now:    time.Now,
	}
}

// Allow reports whether another event for key fits in the current window,
// counting it if so.
func (l *Limiter) Allow(key string) bool {
	if l.max == 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.counts[key]
	if !ok || now.Sub(b.start) >= l.window {
		l.counts[key] = &bucket{start: now, count: 1}
		l.evictStale(now)
		return true
	}
	if b.count >= l.max {
		return false
	}
	b.count++
	return true
}

// evictStale drops buckets older than one window. Called with the lock held.
func (l *Limiter) evictStale(now time.Time) {
	for key, b := range l.counts {
		if now.Sub(b.start) >= l.window {
			delete(l.counts, key)
		}
	}
}
