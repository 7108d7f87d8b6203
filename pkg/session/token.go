package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenLength is the number of random bytes per token (32 bytes = 256 bits)
const tokenLength = 32

// NewToken generates a cryptographically random, URL-safe session token. The
// token carries no embedded structure and cannot be decoded to reveal the
// principal it belongs to.
func NewToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
