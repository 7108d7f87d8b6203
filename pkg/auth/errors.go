package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two cases are deliberately indistinguishable so responses cannot be
	// used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHashingFailed indicates the password hash could not be derived.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrMalformedHash indicates a stored credential string could not be
	// parsed. This is an internal fault, never a verification mismatch.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrNoIdentity is returned by Identify when a token resolves to nothing,
	// whether the session is absent, expired, or its principal was deleted.
	ErrNoIdentity = errors.New("no identity for session")
)
