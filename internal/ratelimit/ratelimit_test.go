package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	t.Run("sixth request within the window is rejected", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		l := New(5, time.Hour)
		l.now = func() time.Time { return now }

		for i := 0; i < 5; i++ {
			assert.True(t, l.Allow("203.0.113.7"), "request %d", i+1)
		}
		assert.False(t, l.Allow("203.0.113.7"))
	})

	t.Run("budget does not trickle back mid-window", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		l := New(5, time.Hour)
		l.now = func() time.Time { return now }

		for i := 0; i < 5; i++ {
			assert.True(t, l.Allow("203.0.113.7"), "request %d", i+1)
		}

		// Partway through the window the key must stay exhausted.
		for _, elapsed := range []time.Duration{13 * time.Minute, 30 * time.Minute, 59 * time.Minute} {
			now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(elapsed)
			assert.False(t, l.Allow("203.0.113.7"), "after %s", elapsed)
		}
	})

	t.Run("at most N requests land within any single window", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		l := New(5, time.Hour)
		l.now = func() time.Time { return now }

		allowed := 0
		for i := 0; i < 60; i++ {
			if l.Allow("203.0.113.7") {
				allowed++
			}
			now = now.Add(time.Minute)
		}
		assert.Equal(t, 5, allowed)
	})

	t.Run("allowed again after the window elapses", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		l := New(5, time.Hour)
		l.now = func() time.Time { return now }

		for i := 0; i < 5; i++ {
			l.Allow("203.0.113.7")
		}
		assert.False(t, l.Allow("203.0.113.7"))

		now = now.Add(time.Hour + time.Minute)
		assert.True(t, l.Allow("203.0.113.7"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := New(1, time.Hour)

		assert.True(t, l.Allow("203.0.113.7"))
		assert.False(t, l.Allow("203.0.113.7"))
		assert.True(t, l.Allow("198.51.100.9"))
	})

	t.Run("does not undercount under concurrent hits", func(t *testing.T) {
		l := New(5, time.Hour)

		var wg sync.WaitGroup
		allowed := make(chan bool, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				allowed <- l.Allow("203.0.113.7")
			}()
		}
		wg.Wait()
		close(allowed)

		count := 0
		for ok := range allowed {
			if ok {
				count++
			}
		}
		assert.Equal(t, 5, count)
	})

	t.Run("rejects a non-positive budget", func(t *testing.T) {
		assert.Panics(t, func() { New(0, time.Hour) })
		assert.Panics(t, func() { New(-1, time.Hour) })
		assert.Panics(t, func() { New(5, 0) })
	})

	t.Run("purges idle keys", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		l := New(5, time.Hour)
		l.now = func() time.Time { return now }

		l.Allow("203.0.113.7")
		assert.Len(t, l.perKey, 1)

		now = now.Add(2 * time.Hour)
		l.PurgeIdle(time.Hour)
		assert.Empty(t, l.perKey)
	})
}
