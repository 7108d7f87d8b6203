package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hadrianhq/userhub/pkg/httputil"
	"github.com/hadrianhq/userhub/pkg/users"
)

// handleListUsers handles GET /api/users
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list users")
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, usersResponse{Users: list})
}

// handleGetUser handles GET /api/users/{id}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	raw, err := httputil.ParsePathString(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		httputil.WriteBadRequest(w, "invalid user id")
		return
	}

	user, err := s.users.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			httputil.WriteNotFoundError(w, "user not found")
			return
		}
		s.logger.WithError(err).WithField("user_id", id).Error("failed to load user")
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, authResponse{User: user})
}
