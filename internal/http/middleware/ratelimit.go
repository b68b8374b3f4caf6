package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// RateLimiter is a fixed-window in-memory limiter. It backs single
// instance deployments; multi-instance ones use RedisLimiter instead.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	until time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{windows: make(map[string]*window)}
}

func (r *RateLimiter) Allow(key string, limit int, windowSize time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	current, ok := r.windows[key]
	if !ok || now.After(current.until) {
		r.sweep(now)
		r.windows[key] = &window{count: 1, until: now.Add(windowSize)}
		return true
	}
	if current.count >= limit {
		return false
	}
	current.count++
	return true
}

// sweep drops expired windows so the map does not grow with every
// distinct key ever seen. Called with the lock held.
func (r *RateLimiter) sweep(now time.Time) {
	if len(r.windows) < 4096 {
		return
	}
	for key, current := range r.windows {
		if now.After(current.until) {
			delete(r.windows, key)
		}
	}
}

func RateLimit(limiter Limiter, keyFn func(*http.Request) string, limit int, windowSize time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow(key, limit, windowSize) {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
