// Package api provides the HTTP REST API server for the userhub authentication service.
//
// # Overview
//
// This package implements the HTTP boundary: it binds the authentication
// service, the user store, and the session store to cookie-based REST
// endpoints built on gorilla/mux.
//
// # API Endpoints
//
// Authentication:
//
//	POST   /api/auth/signup   - Register and open a session
//	POST   /api/auth/login    - Verify credentials and open a session
//	POST   /api/auth/logout   - Revoke the session and clear the cookie
//	GET    /api/auth/me       - Current user for the session cookie
//
// Users (session required):
//
//	GET    /api/users         - List all users
//	GET    /api/users/{id}    - Get a user by id
//
// Operational:
//
//	GET    /api/health        - Readiness over Postgres and Redis
//	GET    /health/live       - Liveness probe
//	GET    /health/ready      - Readiness probe
//	GET    /metrics           - Prometheus metrics (when a registry is configured)
//
// # Sessions
//
// Successful signup and login set the session cookie; logout clears it.
// Password hashes never appear in responses.
//
// # Usage Example
//
//	server := api.NewServer(api.Options{
//		AuthService:  authService,
//		UserStore:    userStore,
//		SessionStore: sessionStore,
//		SessionTTL:   cfg.Session.TTL,
//		Logger:       logger,
//	})
//	log.Fatal(http.ListenAndServe(":8080", server.Router()))
//
// # Related Packages
//
//   - pkg/auth: signup, login, and identity resolution
//   - pkg/session: token issuance and the session cookie
//   - pkg/users: Postgres-backed user store
//   - pkg/middleware: session gating for protected routes
package api
