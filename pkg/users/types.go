package users

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash holds the encoded
// argon2id credential and is excluded from every serialized form.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
