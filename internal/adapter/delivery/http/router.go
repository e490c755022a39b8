// Package http provides the HTTP delivery layer of the service: the JSON API,
// the short code redirect endpoint and the operational endpoints.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/shorty/internal/metrics"
)

type routerOptions struct {
	baseURL  string
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	docsPath string
}

type Option func(*routerOptions)

// WithBaseURL sets the public origin used to build full short URLs in responses.
func WithBaseURL(baseURL string) Option {
	return func(o *routerOptions) {
		o.baseURL = baseURL
	}
}

// WithMetrics instruments every request and serves gatherer on /metrics.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(o *routerOptions) {
		o.metrics = m
		o.gatherer = gatherer
	}
}

func WithDocsPath(path string) Option {
	return func(o *routerOptions) {
		o.docsPath = path
	}
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
func NewRouter(logger *httplog.Logger, urlUseCase urlUseCase, opts ...Option) *chi.Mux {
	o := routerOptions{
		docsPath: "./docs/swagger.yml",
	}

	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer)
	r.Use(o.metrics.Middleware)

	if o.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, o.docsPath)
	})

	h := newURLHandler(urlUseCase, validator.New(), o.baseURL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/shorten", func(r chi.Router) {
			r.Post("/", h.shortenURL)
			r.Post("/custom", h.shortenCustomURL)
		})

		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/urls", h.listUserURLs)
			r.Delete("/aliases/{alias}", h.unbindAlias)
		})

		r.Get("/admin/charts/{kind}", h.getChart)
	})

	r.Get("/{shortCode}", h.redirect)

	return r
}
