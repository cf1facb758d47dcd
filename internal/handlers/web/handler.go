package web

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/KirkDiggler/ceelo/internal/services/admin"
	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the scoreboard API and the static frontend
type Handler struct {
	roundService     round.Service
	adminService     admin.Service
	messagingService messaging.Service
	metricsHandler   http.Handler
	staticDir        string
	log              *slog.Logger
}

// Config holds the configuration for the web handler
type Config struct {
	RoundService     round.Service
	AdminService     admin.Service
	MessagingService messaging.Service

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler

	// StaticDir is served for every path the API does not claim; empty disables it
	StaticDir string

	Logger *slog.Logger
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}

	if cfg.AdminService == nil {
		return nil, errors.New("admin service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Handler{
		roundService:     cfg.RoundService,
		adminService:     cfg.AdminService,
		messagingService: cfg.MessagingService,
		metricsHandler:   cfg.MetricsHandler,
		staticDir:        cfg.StaticDir,
		log:              log,
	}, nil
}

// Router builds the chi router with every route mounted
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.withLogging)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if h.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Post("/roll", h.Roll)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Post("/logout", h.Logout)
				r.Post("/reset", h.Reset)
				r.Put("/friends", h.SetFriends)
			})
		})
	})

	if h.staticDir != "" {
		if _, err := os.Stat(h.staticDir); err != nil {
			h.log.Warn("static directory unavailable", "dir", h.staticDir, "error", err)
		} else {
			r.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
		}
	}

	return r
}
