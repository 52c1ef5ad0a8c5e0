package middleware

import (
	"net/http"
	"sync"
	"time"

	"barkeep/pkg/logger"
)

// AccountRateLimiter keeps a sliding window of request timestamps per
// account. Unauthenticated requests are not limited here; they never
// reach the write endpoints this limiter guards.
type AccountRateLimiter struct {
	mu       sync.RWMutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	log      *logger.Logger
	stopCh   chan struct{}
}

func NewAccountRateLimiter(limit int, window time.Duration, log *logger.Logger) *AccountRateLimiter {
	limiter := &AccountRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		log:      log,
		stopCh:   make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *AccountRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for accountID, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, accountID)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *AccountRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *AccountRateLimiter) Allow(accountID string) bool {
	if accountID == "" {
		return true
	}

	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := rl.requests[accountID][:0:0]
	for _, ts := range rl.requests[accountID] {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[accountID] = valid
		return false
	}

	rl.requests[accountID] = append(valid, now)
	return true
}

func AccountRateLimit(limiter *AccountRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, _ := AccountIDFromContext(r.Context())

			if accountID == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(accountID) {
				rejectRateLimited(w, limiter.log, r, accountID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, accountID string) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		requestID = rid.(string)
	}

	log.Warn("Rate limit exceeded",
		"request_id", requestID,
		"account_id", accountID,
		"path", r.URL.Path,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
}
