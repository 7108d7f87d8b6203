// Package middleware provides HTTP middleware for session-based authentication.
//
// # Overview
//
// This package gates requests on the session cookie. Protected routes use
// RequireSession; routes that merely want to know who is calling use
// TrySession.
//
// # Middleware Components
//
// RequireSession: reject requests without a valid session
//
//	mw := middleware.NewSessionMiddleware(sessionStore, logger)
//	protected.Use(mw.RequireSession)
//	// Resolves the cookie, attaches the principal ID to the request context
//
// TrySession: best-effort identity attachment
//
//	router.Use(mw.TrySession)
//	// Attaches identity when present, never rejects
//
// # Related Packages
//
//   - pkg/session: token issuance and resolution
//   - pkg/contextkeys: principal ID context accessors
package middleware
