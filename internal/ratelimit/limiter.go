// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements an in-memory, per-client sliding window
// request limiter.
//
// Every client identity (usually the remote IP) owns an ordered list of
// admission timestamps. On each call the list is trimmed to the trailing
// window and compared against the quota. State is process-local and is
// lost on restart.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of a single Admit call.
type Decision struct {
	Allowed bool
	// Limit is the configured quota per window.
	Limit int
	// Remaining is how many more requests the client may make in the
	// current window. Zero when rejected.
	Remaining int
	// RetryAfter is the time until the oldest recorded request leaves the
	// window. Only set on rejection.
	RetryAfter time.Duration
}

// Limiter admits at most quota requests per client within any trailing window.
// It is safe for concurrent use.
type Limiter struct {
	quota  int
	window time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	mu   sync.Mutex
	hits []time.Time
	// evicted is set by Prune once the window has been removed from the map.
	evicted bool
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now as the limiter's time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter creates a limiter with the given quota and window.
func NewLimiter(quota int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		quota:   quota,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*clientWindow),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the configured quota.
func (l *Limiter) Limit() int {
	return l.quota
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Admit records a request for clientID if the client is under quota.
// A rejected request leaves the client's window untouched.
func (l *Limiter) Admit(clientID string) Decision {
	cw := l.lockedWindow(clientID)
	defer cw.mu.Unlock()

	now := l.now()
	cw.hits = l.trim(cw.hits, now)

	if len(cw.hits) >= l.quota {
		var retryAfter time.Duration
		if len(cw.hits) > 0 {
			retryAfter = cw.hits[0].Add(l.window).Sub(now)
		}
		return Decision{
			Allowed:    false,
			Limit:      l.quota,
			Remaining:  0,
			RetryAfter: retryAfter,
		}
	}

	cw.hits = append(cw.hits, now)

	return Decision{
		Allowed:   true,
		Limit:     l.quota,
		Remaining: l.quota - len(cw.hits),
	}
}

// Prune trims every client window and drops clients with no requests left
// in the window. It returns the number of evicted clients.
func (l *Limiter) Prune() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for id, cw := range l.clients {
		cw.mu.Lock()
		cw.hits = l.trim(cw.hits, now)
		if len(cw.hits) == 0 {
			cw.evicted = true
			delete(l.clients, id)
			evicted++
		}
		cw.mu.Unlock()
	}
	return evicted
}

// Clients returns the number of tracked client windows.
func (l *Limiter) Clients() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// lockedWindow returns the live window for clientID with its mutex held.
func (l *Limiter) lockedWindow(clientID string) *clientWindow {
	for {
		cw := l.clientWindow(clientID)
		cw.mu.Lock()
		if !cw.evicted {
			return cw
		}
		cw.mu.Unlock()
	}
}

func (l *Limiter) clientWindow(clientID string) *clientWindow {
	l.mu.RLock()
	cw, ok := l.clients[clientID]
	l.mu.RUnlock()
	if ok {
		return cw
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cw, ok = l.clients[clientID]; ok {
		return cw
	}
	cw = &clientWindow{}
	l.clients[clientID] = cw
	return cw
}

// trim drops timestamps that are no longer strictly inside the window.
// hits is ordered, so the first kept entry marks the cut.
func (l *Limiter) trim(hits []time.Time, now time.Time) []time.Time {
	cut := 0
	for cut < len(hits) && now.Sub(hits[cut]) >= l.window {
		cut++
	}
	if cut == 0 {
		return hits
	}
	return append(hits[:0], hits[cut:]...)
}
