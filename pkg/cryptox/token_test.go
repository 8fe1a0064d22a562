package cryptox_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/harbourview/concierge/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)

		_, err = cryptox.GenerateToken(-8)
		require.Error(t, err)
	})

	t.Run("384-bit token encodes to 64 chars", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize384)
		require.NoError(t, err)
		require.Len(t, token, 64)
	})

	t.Run("tokens are url-safe without padding", func(t *testing.T) {
		for range 50 {
			token, err := cryptox.GenerateToken(cryptox.TokenSize384)
			require.NoError(t, err)
			require.NotContains(t, token, "+")
			require.NotContains(t, token, "/")
			require.NotContains(t, token, "=")

			// Decodes back to the requested number of bytes.
			raw, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, raw, cryptox.TokenSize384)
		}
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			token, err := cryptox.GenerateToken(cryptox.TokenSize256)
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup, "duplicate token generated")
			seen[token] = struct{}{}
		}
	})
}

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	t.Run("fixed length from the restricted alphabet", func(t *testing.T) {
		for range 200 {
			code, err := cryptox.GenerateCode()
			require.NoError(t, err)
			require.Len(t, code, cryptox.CodeLength)
			for _, r := range code {
				require.Contains(t, cryptox.CodeAlphabet, string(r))
			}
		}
	})

	t.Run("never contains ambiguous characters", func(t *testing.T) {
		for range 200 {
			code, err := cryptox.GenerateCode()
			require.NoError(t, err)
			for _, ambiguous := range []string{"0", "1", "l", "O", "I"} {
				require.False(t, strings.Contains(code, ambiguous),
					"code %q contains ambiguous character %q", code, ambiguous)
			}
		}
	})

	t.Run("every alphabet symbol is reachable", func(t *testing.T) {
		seen := make(map[rune]int)
		for range 2000 {
			code, err := cryptox.GenerateCode()
			require.NoError(t, err)
			for _, r := range code {
				seen[r]++
			}
		}
		// 16000 symbols over a 33-char alphabet: each should show up.
		for _, r := range cryptox.CodeAlphabet {
			require.Greater(t, seen[r], 0, "symbol %q never generated", r)
		}
	})
}
