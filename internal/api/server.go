// Package api provides the HTTP API server and handlers for the storefront content service.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/storefrontapp/storefront-server/internal/config"
	"github.com/storefrontapp/storefront-server/internal/content"
	"github.com/storefrontapp/storefront-server/internal/contentstack"
	"github.com/storefrontapp/storefront-server/internal/personalize"
	"github.com/storefrontapp/storefront-server/internal/validation"
)

// EntrySource fetches raw CMS entries. *contentstack.Client implements
// it; tests substitute stubs.
type EntrySource interface {
	Entries(ctx context.Context, q contentstack.Query) ([]content.RawEntry, error)
	EntryByURL(ctx context.Context, q contentstack.Query, entryURL string) (content.RawEntry, error)
}

// SessionSource initializes personalization sessions.
// *personalize.Client implements it; tests substitute stubs.
type SessionSource interface {
	ProjectUID() string
	EdgeURL() string
	InitSession(ctx context.Context, userID string, attrs map[string]any) (personalize.SessionData, error)
}

// Server holds dependencies for HTTP handlers. Either vendor source
// may be nil when its configuration is absent; the affected endpoints
// then answer with a configuration error.
type Server struct {
	cfg          *config.Config
	cms          EntrySource
	personalizer SessionSource
	validator    *validation.Validator
	router       *chi.Mux
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, cms EntrySource, personalizer SessionSource, logger *slog.Logger) *Server {
	s := &Server{
		cfg:          cfg,
		cms:          cms,
		personalizer: personalizer,
		validator:    validation.New(),
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(s.requestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/entries", s.handleListEntries)
		r.Get("/entrybyurl", s.handleEntryByURL)
		r.Get("/page", s.handlePage)
		r.Get("/personalize-sdk", s.handlePersonalizeSDK)
	})

	// Unversioned aliases kept for existing front-end callers.
	s.router.Get("/entries", s.handleListEntries)
	s.router.Get("/entrybyurl", s.handleEntryByURL)
	s.router.Get("/personalize-sdk", s.handlePersonalizeSDK)
}
