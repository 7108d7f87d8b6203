// Package users provides the Postgres-backed account store.
//
// # Overview
//
// Accounts live in the users table (uuid id, unique email, display name,
// argon2id password hash, timestamps). The Store interface is what the rest
// of the service programs against; PostgresStore is the production
// implementation.
//
// # Errors
//
// Create maps a unique-constraint violation on email to ErrEmailTaken; the
// lookup methods return ErrNotFound for missing rows. Anything else is a
// store fault.
//
// # Related Packages
//
//   - pkg/auth: hashes the credential stored here
package users
