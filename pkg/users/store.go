package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned by Create when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned by lookups that match no user.
	ErrNotFound = errors.New("user not found")
)

// Store is the persistence capability consumed by the auth layer. The auth
// core references users by ID only and never mutates profile fields.
type Store interface {
	Create(ctx context.Context, email, name, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
