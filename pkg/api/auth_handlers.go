package api

import (
	"errors"
	"net/http"

	"github.com/hadrianhq/userhub/pkg/auth"
	"github.com/hadrianhq/userhub/pkg/httputil"
	"github.com/hadrianhq/userhub/pkg/observability"
	"github.com/hadrianhq/userhub/pkg/session"
	"github.com/hadrianhq/userhub/pkg/users"
)

// handleSignup handles POST /api/auth/signup
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Email, "email") ||
		!httputil.RequireNonEmpty(w, req.Name, "name") ||
		!httputil.RequireNonEmpty(w, req.Password, "password") {
		return
	}

	user, token, err := s.auth.Signup(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			s.countSignup(observability.OutcomeRejected)
			httputil.WriteConflict(w, "email already registered")
			return
		}
		s.countSignup(observability.OutcomeError)
		httputil.WriteInternalError(w)
		return
	}

	s.countSignup(observability.OutcomeSuccess)
	session.SetCookie(w, token, s.sessionTTL)
	httputil.WriteCreated(w, authResponse{User: user})
}

// handleLogin handles POST /api/auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Email, "email") ||
		!httputil.RequireNonEmpty(w, req.Password, "password") {
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.countLogin(observability.OutcomeRejected)
			httputil.WriteUnauthorized(w, "invalid credentials")
			return
		}
		s.countLogin(observability.OutcomeError)
		httputil.WriteInternalError(w)
		return
	}

	s.countLogin(observability.OutcomeSuccess)
	session.SetCookie(w, token, s.sessionTTL)
	httputil.WriteSuccess(w, authResponse{User: user})
}

// handleLogout handles POST /api/auth/logout. It succeeds whether or not a
// session existed; the cookie is always cleared.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		s.auth.Logout(r.Context(), cookie.Value)
	}
	if s.metrics != nil {
		s.metrics.LogoutsTotal.Inc()
	}

	session.ClearCookie(w)
	httputil.WriteSuccess(w, map[string]string{"message": "logged out"})
}

// handleMe handles GET /api/auth/me
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		httputil.WriteUnauthorized(w, "unauthorized")
		return
	}

	user, err := s.auth.Identify(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, auth.ErrNoIdentity) {
			httputil.WriteUnauthorized(w, "unauthorized")
			return
		}
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, authResponse{User: user})
}

func (s *Server) countSignup(outcome string) {
	if s.metrics != nil {
		s.metrics.SignupsTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *Server) countLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues(outcome).Inc()
	}
}
