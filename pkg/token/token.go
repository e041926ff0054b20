// Package token generates paste identifiers. Identifiers double as access
// capabilities, so they come from crypto/rand, not a counter or timestamp.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// 12 random bytes encode to 16 URL-safe characters (96 bits of entropy).
const rawLen = 12

var ErrEntropyUnavailable = errors.New("token: entropy source unavailable")

func New() (string, error) {
	b := make([]byte, rawLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
