package api

import (
	"encoding/json"
	"net/http"

	"course-order-export/internal/application"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries everything the HTTP surface depends on
type RouterConfig struct {
	Auth        *application.AuthService
	Export      *application.ExportService
	AppURL      string
	Gatherer    prometheus.Gatherer
	Metrics     *HTTPMetrics
	SwaggerPath string
	Logger      zerolog.Logger
}

// NewRouter builds the chi router with middleware and all routes
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger, cfg.Metrics))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger documentation
	if cfg.SwaggerPath != "" {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
		r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			http.ServeFile(w, r, cfg.SwaggerPath)
		})
	}

	// Browser-facing API
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/orders", ordersHandler(cfg.Export, cfg.Logger))
		r.Get("/orders.csv", ordersCSVHandler(cfg.Export, cfg.Logger))
		r.Get("/products", productsHandler(cfg.Export, cfg.Logger))
		r.Get("/auth/check", authCheckHandler(cfg.Auth, cfg.Logger))
		r.Get("/auth/callback", authCallbackHandler(cfg.Auth, cfg.AppURL, cfg.Logger))
	})

	return r
}
