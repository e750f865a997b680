package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter implements per-client token bucket rate limiting.
type RateLimiter struct {
	buckets  sync.Map // map[string]*bucket
	perMin   int
	idleTTL  time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client,
// with a background sweep of idle buckets every cleanupInterval.
// Call Stop() on shutdown.
func NewRateLimiter(perMinute int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		perMin:  perMinute,
		idleTTL: 2 * cleanupInterval,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rejects clients over their budget with 429.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, wait, ok := rl.take(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.perMin))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for key. It returns the whole tokens left and, when
// refused, how long until the next token.
func (rl *RateLimiter) take(key string) (int, time.Duration, bool) {
	capacity := float64(rl.perMin)
	perSecond := capacity / 60

	now := rl.now()
	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: capacity, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) / perSecond * float64(time.Second))
		return 0, wait, false
	}
	b.tokens--
	return int(b.tokens), 0, true
}

// clientKey is the remote IP without the port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
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

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > rl.idleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
