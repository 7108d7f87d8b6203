// Package auth implements the credential and session core: argon2id password
// hashing and verification, and the service that composes the user store and
// session store into signup, login, logout, and identity lookup.
//
// # Error contract
//
// Authentication outcomes (ErrInvalidCredentials, ErrNoIdentity, and
// users.ErrEmailTaken passed through from the user store) are user-facing and
// map to precise HTTP statuses at the boundary. Everything else (hashing
// faults, malformed stored hashes, store connectivity) is internal: logged
// with context here and reported to clients as a generic server error.
//
// # Related Packages
//
//   - pkg/session: expiring token -> principal store backing the sessions
//   - pkg/users: relational persistence of accounts and credential hashes
//   - pkg/middleware: request gating built on the session store
package auth
