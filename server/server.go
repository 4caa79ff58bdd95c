package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tripventura-pricing/services"
	"tripventura-pricing/utils"
)

// Server exposes the dashboard data contract over HTTP.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	logger  *utils.Logger
	handler *Handler
}

// New creates a new HTTP server around the given session.
func New(port int, session *services.Session, insights *services.InsightService, logger *utils.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		logger:  logger,
		handler: NewHandler(session, insights, logger),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	// The dashboard frontend is served from a different origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handler.HandleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/tours", s.handler.HandleGetTours)
		r.Get("/tours/selected", s.handler.HandleGetSelected)
		r.Get("/summary", s.handler.HandleGetSummary)
		r.Post("/refresh", s.handler.HandleRefresh)
		r.Get("/export.csv", s.handler.HandleExport)

		r.Route("/selection", func(r chi.Router) {
			r.Post("/toggle", s.handler.HandleToggle)
			r.Post("/all", s.handler.HandleSelectAll)
			r.Post("/none", s.handler.HandleDeselectAll)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("[http] %s %s → %d (%dB in %v)",
			r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
