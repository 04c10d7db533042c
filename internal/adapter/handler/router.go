package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/logger"
	"github.com/rl1809/storefront/internal/metrics"
)

type RouterConfig struct {
	Logger          *zap.Logger
	Metrics         *metrics.Metrics
	RequestTimeout  time.Duration
	RateLimitPerMin int
	Production      bool
}

func NewRouter(h *HTTPHandler, cfg RouterConfig) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "no-referrer",
		SSLRedirect:        cfg.Production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !cfg.Production,
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logger.Middleware(cfg.Logger))
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(secureMiddleware.Handler)
	if cfg.RateLimitPerMin > 0 {
		r.Use(httprate.Limit(cfg.RateLimitPerMin, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			}),
		))
	}
	r.Use(cfg.Metrics.Middleware)

	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	h.Routes(r)
	return r
}
