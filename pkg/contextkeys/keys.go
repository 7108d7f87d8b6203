// Package contextkeys provides centralized context key definitions
//
// IMPORTANT: All context keys used across the application must be defined here.
// This prevents typos, documents dependencies, and makes key usage discoverable.
package contextkeys

import "context"

// Key is the type for context keys to prevent collisions
type Key string

const (
	// PrincipalIDKey contains the authenticated principal's user ID string.
	// Set by: middleware.SessionMiddleware (pkg/middleware/auth.go)
	// Required by: all handlers behind RequireSession
	// Type: string
	PrincipalIDKey Key = "principal_id"

	// RequestIDKey contains the request ID string.
	// Set by: httputil.RequestIDMiddleware
	// Used by: logging
	// Type: string
	RequestIDKey Key = "request_id"
)

// WithPrincipalID attaches the authenticated principal's ID to the context
func WithPrincipalID(ctx context.Context, principalID string) context.Context {
	return context.WithValue(ctx, PrincipalIDKey, principalID)
}

// PrincipalID retrieves the authenticated principal's ID from the context
func PrincipalID(ctx context.Context) (string, bool) {
	principalID, ok := ctx.Value(PrincipalIDKey).(string)
	return principalID, ok
}

// WithRequestID attaches the request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID retrieves the request ID from the context
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
