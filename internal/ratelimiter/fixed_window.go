package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter caps requests per client IP within a fixed
// window. Each client gets its own window so a burst from one address
// cannot reset the clock for everyone.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		frame:   frame,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the request may proceed; when denied it also
// returns how long the client should wait before retrying.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.start) >= rl.frame {
		rl.clients[ip] = &window{start: now, count: 1}
		return true, 0
	}
	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, rl.frame - now.Sub(w.start)
}

// cleanup drops expired windows so the client map cannot grow without
// bound under churny traffic.
func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.frame)
	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for ip, w := range rl.clients {
			if now.Sub(w.start) >= rl.frame {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
