package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrRandomSourceUnavailable indicates the operating system's CSPRNG could
// not be read. Callers must treat this as fatal for the current operation;
// there is deliberately no fallback to a weaker source.
var ErrRandomSourceUnavailable = errors.New("cryptox: secure random source unavailable")

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy (22 chars base64url).
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy (43 chars base64url).
	TokenSize256 = 32
	// TokenSize384 provides 384 bits of entropy (64 chars base64url).
	// This is the size used for emailed invite tokens.
	TokenSize384 = 48
)

// GenerateToken creates a cryptographically secure random token of the
// specified byte length. The token is returned as a base64url-encoded
// string (URL-safe alphabet, no padding), so it can be embedded in a query
// string without escaping.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
