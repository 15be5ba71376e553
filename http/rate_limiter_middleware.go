package http

import (
	"net"
	"net/http"

	"eligibility-engine/i18n"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	tr *i18n.Translator,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			writeError(w, r, tr, errRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
