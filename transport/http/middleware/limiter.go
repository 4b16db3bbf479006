package middleware

import (
	"net/http"
	"orchid/shared/constant"
	"orchid/shared/timezone"
	"orchid/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"
)

// requestWindow counts requests per client over a fixed window, in process.
type requestWindow struct {
	mu      sync.Mutex
	windows map[string]*clientWindow
}

type clientWindow struct {
	count   int
	resetAt time.Time
}

func newRequestWindow() *requestWindow {
	return &requestWindow{
		windows: make(map[string]*clientWindow),
	}
}

// hit registers one request for the given key and returns the running
// count inside the current window.
func (rw *requestWindow) hit(key string, windowSecs int) int {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	now := timezone.Now()

	window, ok := rw.windows[key]
	if !ok || now.After(window.resetAt) {
		window = &clientWindow{resetAt: now.Add(time.Duration(windowSecs) * time.Second)}
		rw.windows[key] = window
	}

	window.count++

	return window.count
}

// sweep drops windows that have already expired.
func (rw *requestWindow) sweep() {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	now := timezone.Now()
	for key, window := range rw.windows {
		if now.After(window.resetAt) {
			delete(rw.windows, key)
		}
	}
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			limiterKey := clientIP + ":" + userAgent

			count := a.limiter.hit(limiterKey, windowSecs)
			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// Cleanup evicts expired limiter windows. Meant to be called periodically.
func (a *appMiddleware) Cleanup() {
	a.limiter.sweep()
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// Check for X-Forwarded-For header first (most common proxy header)
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	// Check for X-Real-IP header
	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr
	return r.RemoteAddr
}
