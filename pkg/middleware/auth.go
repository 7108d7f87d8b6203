package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hadrianhq/userhub/pkg/contextkeys"
	"github.com/hadrianhq/userhub/pkg/httputil"
	"github.com/hadrianhq/userhub/pkg/session"
)

// SessionMiddleware gates requests on a valid session cookie.
type SessionMiddleware struct {
	sessions session.Store
	logger   *logrus.Logger
}

// NewSessionMiddleware creates session authentication middleware.
func NewSessionMiddleware(sessions session.Store, logger *logrus.Logger) *SessionMiddleware {
	if logger == nil {
		logger = logrus.New()
	}
	return &SessionMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireSession rejects any request that does not carry a resolvable session.
// Requests without a session cookie are rejected without touching the session
// store. A session store fault yields a 500 rather than letting the request
// through unauthenticated.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			httputil.WriteUnauthorized(w, "unauthorized")
			return
		}

		principalID, ok, err := m.sessions.Resolve(r.Context(), cookie.Value)
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"path":  r.URL.Path,
				"error": err.Error(),
			}).Error("session resolution failed")
			httputil.WriteInternalError(w)
			return
		}
		if !ok {
			httputil.WriteUnauthorized(w, "unauthorized")
			return
		}

		ctx := contextkeys.WithPrincipalID(r.Context(), principalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TrySession attaches the requester's identity when a valid session cookie is
// present but never rejects the request. Resolution failures are logged and
// the request proceeds anonymously.
func (m *SessionMiddleware) TrySession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		principalID, ok, err := m.sessions.Resolve(r.Context(), cookie.Value)
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"path":  r.URL.Path,
				"error": err.Error(),
			}).Warn("session resolution failed, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		m.logger.WithFields(logrus.Fields{
			"path":         r.URL.Path,
			"principal_id": principalID,
		}).Debug("authenticated request")

		ctx := contextkeys.WithPrincipalID(r.Context(), principalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
