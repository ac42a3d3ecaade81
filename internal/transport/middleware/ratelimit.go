package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// clientIdleTTL is how long an untouched client limiter survives cleanup.
const clientIdleTTL = 10 * time.Minute

// RateLimiter throttles API clients with one token bucket per client IP.
// Connections from the same host share a bucket regardless of source port.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter that drops idle clients every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing maxPerMinute requests per client, with
// bursts up to the same amount. Rejected requests get 429 and Retry-After.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(maxPerMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = clientIP(r)
			}

			if !rl.limiter(ip, every, maxPerMinute).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(every, burst)}
		rl.clients[key] = c
	}
	c.lastSeen = rl.now()
	return c.limiter
}

// sweep removes clients idle for longer than clientIdleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-clientIdleTTL)
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
