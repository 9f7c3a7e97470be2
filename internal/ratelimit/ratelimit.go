// Package ratelimit bounds how many audit requests a single client key
// (normally the client IP) may make within a window.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter keeps a fixed-window counter per client key: a key gets at
// most `requests` calls per `window`, and the budget resets only once
// the window has fully elapsed. The store is owned by whoever
// constructs it; it is not a package singleton.
type Limiter struct {
	mu     sync.Mutex
	perKey map[string]*entry
	limit  int
	window time.Duration
	now    func() time.Time
}

type entry struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

func New(requests int, window time.Duration) *Limiter {
	if requests <= 0 {
		panic("ratelimit: requests must be positive")
	}
	if window <= 0 {
		panic("ratelimit: window must be positive")
	}
	return &Limiter{
		perKey: make(map[string]*entry),
		limit:  requests,
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether the key may make another request now, consuming
// one slot when it may. Safe for concurrent use.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.perKey[key]
	if !ok {
		e = &entry{windowStart: now}
		l.perKey[key] = e
	}
	e.lastSeen = now

	if now.Sub(e.windowStart) >= l.window {
		e.windowStart = now
		e.count = 0
	}

	if e.count >= l.limit {
		return false
	}
	e.count++
	return true
}

// PurgeIdle drops keys not seen for at least maxIdle, so the map does
// not grow without bound.
func (l *Limiter) PurgeIdle(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxIdle)
	for key, e := range l.perKey {
		if e.lastSeen.Before(cutoff) {
			delete(l.perKey, key)
		}
	}
}
