package api

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const bucketIdleThreshold = time.Hour

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket refilled in full every refill window.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   map[string]*clientBucket
	now       func() time.Time
}

// NewRateLimiter allows capacity requests per client in every refillDur window.
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   make(map[string]*clientBucket),
		now:       time.Now,
	}
}

// Allow takes a token from the client's bucket and reports whether one was left.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{tokens: r.capacity - 1, lastRefill: now}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}
	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

// Cleanup drops buckets idle for over an hour and returns how many were dropped.
func (r *RateLimiter) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	dropped := 0
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketIdleThreshold {
			delete(r.clients, client)
			dropped++
		}
	}
	return dropped
}

// Middleware rejects requests from clients that exhausted their bucket.
func (r *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}
		if !r.Allow(ip) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, req)
	})
}
