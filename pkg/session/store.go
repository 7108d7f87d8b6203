package session

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is the fixed session lifetime. Expiry is enforced by the backing
// store; the TTL is never extended on read.
const DefaultTTL = 7 * 24 * time.Hour

// ErrStoreUnavailable indicates the backing store could not be reached. The
// calling operation fails; there is no silent fallback.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store maps opaque session tokens to principal IDs with per-key expiry.
type Store interface {
	// Create issues a fresh token for the principal and records it with the
	// session TTL.
	Create(ctx context.Context, principalID string) (string, error)
	// Resolve looks up a token. A token that is absent or expired yields
	// ok == false with a nil error.
	Resolve(ctx context.Context, token string) (principalID string, ok bool, err error)
	// Revoke deletes the token. Revoking an absent token is not an error.
	Revoke(ctx context.Context, token string) error
}
