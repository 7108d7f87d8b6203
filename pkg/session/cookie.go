package session

import (
	"net/http"
	"time"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "session_id"

// SetCookie issues the session cookie. Callers must only invoke this after the
// session is durably recorded in the store.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl / time.Second),
	})
}

// ClearCookie removes the session cookie from the client regardless of whether
// it referenced a live session.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
