// Package session provides opaque session tokens backed by Redis TTL keys,
// plus the session cookie helpers.
//
// # Overview
//
// A session is a random token mapped to a principal id under a "session:"
// key with a fixed TTL. Resolve never extends the TTL; logout and expiry
// both make the token unresolvable immediately.
//
// # Errors
//
// A token that does not resolve is ("", false, nil); only store connectivity
// faults produce an error, wrapped in ErrStoreUnavailable so callers can
// fail closed.
//
// # Related Packages
//
//   - pkg/middleware: gates requests on the cookie set here
package session
