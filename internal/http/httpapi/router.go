package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aquarium/internal/http/handlers"
	"aquarium/internal/infra"
	appmw "aquarium/internal/middleware"
)

// RouterOptions carries the process settings the router needs.
type RouterOptions struct {
	Logger          infra.Logger
	CORSOrigins     []string
	DefaultLocale   string
	CountryLookup   appmw.CountryLookup
	RateLimitPerMin int
}

// NewRouter mounts health, metrics and the aquarium endpoints.
func NewRouter(app *handlers.App, opts RouterOptions) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(appmw.RequestID, middleware.RealIP, middleware.Recoverer, appmw.Logger(opts.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "X-Locale", "X-Request-ID"},
		ExposedHeaders: []string{"Cache-Control", "Content-Language", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health
	r.Get("/v1/healthz", app.Health)
	r.Method(stdhttp.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(ar chi.Router) {
		ar.Use(appmw.RateLimit(opts.RateLimitPerMin, time.Minute))
		ar.Use(appmw.I18N(opts.DefaultLocale, opts.CountryLookup))
		ar.Get("/api/mastodon-activities", app.Aquarium)
		ar.Get("/v1/aquarium", app.Aquarium)
	})

	return r
}
