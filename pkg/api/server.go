package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/hadrianhq/userhub/pkg/auth"
	"github.com/hadrianhq/userhub/pkg/httputil"
	"github.com/hadrianhq/userhub/pkg/middleware"
	"github.com/hadrianhq/userhub/pkg/observability"
	"github.com/hadrianhq/userhub/pkg/session"
	"github.com/hadrianhq/userhub/pkg/users"
)

// Server represents the HTTP API server
type Server struct {
	router     *mux.Router
	auth       *auth.Service
	users      users.Store
	sessions   session.Store
	sessionTTL time.Duration
	logger     *logrus.Logger
	metrics    *observability.Metrics
	health     *observability.HealthChecker
}

// Options configures a Server. AuthService, UserStore, and SessionStore are
// required; everything else has a usable zero value.
type Options struct {
	AuthService  *auth.Service
	UserStore    users.Store
	SessionStore session.Store

	// TTL stamped on session cookies. Zero means session.DefaultTTL.
	SessionTTL time.Duration

	Logger  *logrus.Logger
	Metrics *observability.Metrics
	Health  *observability.HealthChecker

	// Origins allowed to make credentialed browser requests
	AllowedOrigins []string

	// Registry for the /metrics endpoint. Nil disables it.
	MetricsRegistry *prometheus.Registry
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = session.DefaultTTL
	}

	s := &Server{
		router:     mux.NewRouter(),
		auth:       opts.AuthService,
		users:      opts.UserStore,
		sessions:   opts.SessionStore,
		sessionTTL: opts.SessionTTL,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		health:     opts.Health,
	}

	s.setupRoutes(opts)
	return s
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes(opts Options) {
	s.router.Use(httputil.Chain(
		httputil.RecoveryMiddleware(s.logger),
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(s.logger),
		httputil.CORSMiddleware(opts.AllowedOrigins),
	))
	if s.metrics != nil {
		s.router.Use(observability.HTTPMetricsMiddleware(s.metrics))
	}

	sessionMW := middleware.NewSessionMiddleware(s.sessions, s.logger)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(sessionMW.TrySession)

	// Authentication routes
	api.HandleFunc("/auth/signup", s.handleSignup).Methods("POST")
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/auth/logout", s.handleLogout).Methods("POST")
	api.HandleFunc("/auth/me", s.handleMe).Methods("GET")

	// Health route
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// User routes require a session
	protected := api.PathPrefix("/users").Subrouter()
	protected.Use(sessionMW.RequireSession)
	protected.HandleFunc("", s.handleListUsers).Methods("GET")
	protected.HandleFunc("/{id}", s.handleGetUser).Methods("GET")

	// Operational endpoints outside the /api prefix
	if s.health != nil {
		s.router.HandleFunc("/health/live", s.health.Liveness).Methods("GET")
		s.router.HandleFunc("/health/ready", s.health.Readiness).Methods("GET")
	}
	if opts.MetricsRegistry != nil {
		observability.RegisterMetricsEndpoint(s.router, opts.MetricsRegistry)
	}
}

// Router returns the configured HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		s.health.Readiness(w, r)
		return
	}
	httputil.WriteSuccess(w, map[string]string{"status": "ok"})
}
