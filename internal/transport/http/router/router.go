package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/aishki/bazario/internal/metrics"
	appmw "github.com/aishki/bazario/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Authenticate(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler

	BodyLimitBytes  int64
	RateLimitPerMin int
}

// New wires the HTTP surface. CORS stays permissive because browser
// clients call the auth endpoint cross-origin.
func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.BodyLimitBytes <= 0 {
		deps.BodyLimitBytes = 1 << 20
	}
	if deps.RateLimitPerMin <= 0 {
		deps.RateLimitPerMin = 60
	}

	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:         3600,
	}))

	r.Get("/healthz", deps.Health.Healthz)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(appmw.BodyLimit(deps.BodyLimitBytes))
		r.Use(httprate.LimitByIP(deps.RateLimitPerMin, time.Minute))

		r.Post("/api/auth", deps.Auth.Authenticate)
	})

	return r, nil
}
