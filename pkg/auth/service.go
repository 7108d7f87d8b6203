package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hadrianhq/userhub/pkg/session"
	"github.com/hadrianhq/userhub/pkg/users"
)

// Service orchestrates signup, login, logout, and identity lookup by composing
// the password hasher with the user and session stores. All collaborators are
// injected; Service holds no state of its own and is safe for concurrent use.
type Service struct {
	users    users.Store
	sessions session.Store
	hasher   *Hasher
	logger   *logrus.Logger
}

// NewService creates an auth service. A nil hasher gets DefaultParams; a nil
// logger falls back to the standard logrus logger.
func NewService(userStore users.Store, sessionStore session.Store, hasher *Hasher, logger *logrus.Logger) *Service {
	if hasher == nil {
		hasher = NewHasher(DefaultParams())
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		users:    userStore,
		sessions: sessionStore,
		hasher:   hasher,
		logger:   logger,
	}
}

// Signup registers a new user and opens a session for it. The session is only
// created after the credential is persisted; if the session write then fails,
// the account exists without a session and the client has to log in once the
// store recovers (there is no compensating delete).
func (s *Service) Signup(ctx context.Context, email, name, password string) (*users.User, string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.WithError(err).WithField("op", "signup").Error("failed to hash password")
		return nil, "", err
	}

	user, err := s.users.Create(ctx, email, name, hash)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, "", err
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":    "signup",
			"email": email,
		}).Error("failed to create user")
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID.String())
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":      "signup",
			"user_id": user.ID,
		}).Error("failed to create session for new user")
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and opens a session. An unknown email and a
// wrong password produce the same ErrInvalidCredentials; a stored hash that
// cannot be parsed is an internal error, never a credential mismatch.
func (s *Service) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":    "login",
			"email": email,
		}).Error("failed to look up user")
		return nil, "", fmt.Errorf("login: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":      "login",
			"user_id": user.ID,
		}).Error("stored credential hash is unusable")
		return nil, "", err
	}
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"op":    "login",
			"email": email,
		}).Warn("invalid password attempt")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID.String())
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":      "login",
			"user_id": user.ID,
		}).Error("failed to create session")
		return nil, "", err
	}

	return user, token, nil
}

// Logout revokes the session. It always succeeds from the caller's point of
// view: revoking an absent token is a no-op and store failures are only
// logged, since the cookie is cleared regardless.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.WithError(err).WithField("op", "logout").Error("failed to revoke session")
	}
}

// Identify resolves a token to its user. "No such session" and "session valid
// but user deleted" both yield ErrNoIdentity; callers treat either as
// unauthenticated.
func (s *Service) Identify(ctx context.Context, token string) (*users.User, error) {
	principalID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		s.logger.WithError(err).WithField("op", "identify").Error("failed to resolve session")
		return nil, err
	}
	if !ok {
		return nil, ErrNoIdentity
	}

	id, err := uuid.Parse(principalID)
	if err != nil {
		s.logger.WithError(err).WithField("op", "identify").Error("session resolved to a malformed principal id")
		return nil, ErrNoIdentity
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrNoIdentity
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"op":      "identify",
			"user_id": id,
		}).Error("failed to load user for session")
		return nil, fmt.Errorf("identify: %w", err)
	}

	return user, nil
}
