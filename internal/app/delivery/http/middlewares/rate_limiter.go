package middlewares

import (
	"fmt"
	"net/http"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SubmissionLimiter throttles write requests per application. A key that
// exhausts its burst is blocked for blockTime. Keys idle long enough for
// their bucket to refill are dropped on the next sweep.
type SubmissionLimiter struct {
	entries   map[string]*limiterEntry
	mu        sync.Mutex
	burst     int
	every     time.Duration
	blockTime time.Duration
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter      *rate.Limiter
	lastSeen     time.Time
	blockedUntil time.Time
}

func NewSubmissionLimiter(requestsPerMinute, burst int, blockTime time.Duration) *SubmissionLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	every := time.Minute / time.Duration(requestsPerMinute)
	return &SubmissionLimiter{
		entries:   make(map[string]*limiterEntry),
		burst:     burst,
		every:     every,
		blockTime: blockTime,
		idleAfter: every * time.Duration(burst),
		now:       time.Now,
	}
}

// Allow reports whether a request for key may proceed.
func (l *SubmissionLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, exists := l.entries[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now

	if now.Before(entry.blockedUntil) {
		return false
	}

	if !entry.limiter.AllowN(now, 1) {
		entry.blockedUntil = now.Add(l.blockTime)
		return false
	}
	return true
}

// sweep drops entries that are unblocked and have been idle for idleAfter.
// It runs at most once per idleAfter.
func (l *SubmissionLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now

	for key, entry := range l.entries {
		if now.Before(entry.blockedUntil) {
			continue
		}
		if now.Sub(entry.lastSeen) >= l.idleAfter {
			delete(l.entries, key)
		}
	}
}

func (l *SubmissionLimiter) trackedKeys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (m *Middlewares) SubmissionLimiter(limiter *SubmissionLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := chi.URLParam(r, constvars.URLParamApplicationID)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(key) {
				utils.LogSecurityEvent(m.Log, "submission_rate_limited", utils.RequestIDFromContext(r.Context()), utils.SeverityMedium,
					zap.String(constvars.LoggingApplicationIDKey, key),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				err := exceptions.ErrTooManyRequests(fmt.Errorf("limit of %d burst exceeded", limiter.burst), key)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
