package http

import (
	"sync"
	"time"
)

const (
	staleBucketAge  = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Tokens refill continuously
// at capacity per window rather than in whole-window bursts, so a
// client that spaces requests out is never starved by an unlucky
// window boundary.
type RateLimiter struct {
	mu       sync.Mutex
	capacity float64
	window   time.Duration
	clients  map[string]*clientBucket
	stop     chan struct{}
}

// NewRateLimiter allows capacity requests per window for each client.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: float64(capacity),
		window:   window,
		clients:  make(map[string]*clientBucket),
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.dropStale()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) dropStale() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > staleBucketAge {
			delete(r.clients, client)
		}
	}
}

// Stop ends the background cleanup goroutine.
func (r *RateLimiter) Stop() {
	close(r.stop)
}

// Allow reports whether the client may make a request now and, if so,
// consumes one token.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{tokens: r.capacity - 1, lastSeen: now}
		return true
	}

	refill := now.Sub(bucket.lastSeen).Seconds() / r.window.Seconds() * r.capacity
	bucket.tokens += refill
	if bucket.tokens > r.capacity {
		bucket.tokens = r.capacity
	}
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}
