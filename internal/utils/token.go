package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

const accessTokenBytes = 32

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// NewAccessToken returns an opaque URL-safe bearer token with 256 bits of
// randomness. The token carries no claims and no expiry.
func NewAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
