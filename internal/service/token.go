package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const accessTokenBytes = 32

// GenerateAccessToken returns an opaque, URL-safe credential for the
// company login path.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
