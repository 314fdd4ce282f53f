package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformedBasicAuth = errors.New("invalid basic authentication header")

// ParseBasicAuth decodes an "Authorization: Basic <base64>" header value
// into its username and password. It is a pure parser: any header that
// does not decode to a non-empty username and non-empty password fails.
func ParseBasicAuth(header string) (string, string, error) {
	const basicPrefix = "Basic "
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", ErrMalformedBasicAuth
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return "", "", ErrMalformedBasicAuth
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return "", "", ErrMalformedBasicAuth
	}

	return username, password, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Returns an empty string when no token is present.
func ParseBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
