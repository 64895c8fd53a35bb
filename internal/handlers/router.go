package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtside/tennis-predictor/internal/web"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	// StaticDir serves main.wasm and wasm_exec.js. Empty serves only the stylesheet.
	StaticDir string
}

// Router builds the full HTTP surface.
func (h *Handler) Router(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Ingest-Token"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/", h.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(cfg.StaticDir)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/players/names", h.GetPlayerNames)
		r.Post("/predict", h.Predict)

		r.Route("/v1", func(r chi.Router) {
			r.Use(h.IngestAuthMiddleware)
			r.Post("/matches", h.IngestMatches)
		})
	})

	return r
}

// staticHandler serves the embedded stylesheet, falling back to dir for
// everything else.
func staticHandler(dir string) http.Handler {
	embedded, _ := fs.Sub(web.Static, "static")
	embeddedServer := http.FileServer(http.FS(embedded))

	var disk http.Handler = http.NotFoundHandler()
	if dir != "" {
		disk = http.FileServer(http.Dir(dir))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := fs.Stat(embedded, r.URL.Path); err == nil {
			embeddedServer.ServeHTTP(w, r)
			return
		}
		if dir != "" {
			if _, err := os.Stat(dir); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		disk.ServeHTTP(w, r)
	})
}
