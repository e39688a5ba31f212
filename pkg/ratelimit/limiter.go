// Package ratelimit implements a sliding-window request limiter keyed by
// caller identity. State lives in process memory only: it is not persisted
// across restarts and is not shared between instances, so a multi-instance
// deployment needs an external store instead.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter bounds request volume per identifier. Updates to one identifier's
// window are serialized; distinct identifiers never contend beyond the brief
// registry lookup.
type Limiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu      sync.Mutex // guards windows map, never held during a slide
	windows map[string]*window
}

type window struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// New creates a limiter allowing maxRequests per identifier within the given
// window, using the wall clock.
func New(maxRequests int, windowDur time.Duration) *Limiter {
	return NewWithClock(maxRequests, windowDur, time.Now)
}

// NewWithClock creates a limiter with an injectable clock for tests.
func NewWithClock(maxRequests int, windowDur time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      windowDur,
		now:         now,
		windows:     make(map[string]*window),
	}
}

// Allow records a request attempt for identifier and reports whether it is
// within the limit. Rejected attempts are not appended to the window.
func (l *Limiter) Allow(identifier string) bool {
	w := l.windowFor(identifier)

	w.mu.Lock()
	defer w.mu.Unlock()

	allowed, next := slide(w.timestamps, l.now(), l.window, l.maxRequests)
	w.timestamps = next
	return allowed
}

// Len reports how many timestamps are currently recorded for identifier
// within the window.
func (l *Limiter) Len(identifier string) int {
	w := l.windowFor(identifier)

	w.mu.Lock()
	defer w.mu.Unlock()

	windowStart := l.now().Add(-l.window)
	n := 0
	for _, ts := range w.timestamps {
		if ts.After(windowStart) {
			n++
		}
	}
	return n
}

func (l *Limiter) windowFor(identifier string) *window {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identifier]
	if !ok {
		w = &window{}
		l.windows[identifier] = w
	}
	return w
}

// slide is the pure limiter step: drop timestamps at or before now-window,
// then either reject (count at limit) or append now and accept. Timestamps
// stay strictly ascending because now is appended last.
func slide(timestamps []time.Time, now time.Time, windowDur time.Duration, maxRequests int) (bool, []time.Time) {
	windowStart := now.Add(-windowDur)

	valid := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= maxRequests {
		return false, valid
	}

	return true, append(valid, now)
}
