package middleware

import (
	"indivoyage/shared"
	"indivoyage/shared/constant"
	"indivoyage/shared/logger"
	"indivoyage/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"
)

const (
	cacheKeyRateLimit = "limiter"

	headerRetryAfter = "Retry-After"
	unknownAgent     = "unknown"
)

// Paths that stay reachable however busy a client is.
var rateLimitExempt = []string{"/health", "/swagger/"}

// RateLimit counts requests per client in fixed windows kept in the cache. Cache errors never
// block traffic, so the limiter is a no-op when Redis is not configured.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Enable || isRateLimitExempt(r.URL.Path) {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			client := a.getClientIP(r)

			count, err := a.cache.Increment(ctx, shared.BuildCacheKey(cacheKeyRateLimit, client, a.getUA(r)), limiter.WindowSeconds)
			if err != nil {
				logger.FromContext(ctx).Debug().Err(err).Msg("rate limiter cache unavailable")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(limiter.MaxRequests)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(limiter.MaxRequests) {
				logger.FromContext(ctx).Warn().Str("client", client).Msg("rate limit exceeded")
				w.Header().Set(headerRetryAfter, strconv.Itoa(limiter.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isRateLimitExempt(path string) bool {
	for _, prefix := range rateLimitExempt {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := strings.TrimSpace(r.Header.Get(constant.RequestHeaderUserAgent)); ua != constant.Empty {
		return ua
	}

	return unknownAgent
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket address
// without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); xri != constant.Empty {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
