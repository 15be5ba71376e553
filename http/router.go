package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eligibility-engine/i18n"
)

type RouterConfig struct {
	Eligibility *EligibilityHandler
	Catalog     *CatalogHandler
	Format      *FormatHandler
	Limiter     *RateLimiter
	Translator  *i18n.Translator
	Metrics     http.Handler // optional
}

// NewRouter mounts the estimate API under /v1 behind the rate limiter.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/v1", func(api chi.Router) {
		if cfg.Limiter != nil {
			api.Use(func(next http.Handler) http.Handler {
				return RateLimitMiddleware(cfg.Limiter, cfg.Translator, next)
			})
		}

		api.Get("/banks", cfg.Catalog.ListBanks)
		api.Get("/products", cfg.Catalog.ListProducts)
		api.Post("/eligibility/clamp", cfg.Eligibility.Clamp)
		api.Post("/eligibility/calculate", cfg.Eligibility.Calculate)
		api.Post("/format", cfg.Format.Format)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
