package cryptox

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet is the symbol set for human-entered invite codes: lowercase
// letters and digits with l, 0 and 1 removed, so codes survive being read
// aloud or copied from a screen by hand. 33 symbols.
const CodeAlphabet = "abcdefghijkmnopqrstuvwxyz23456789"

// CodeLength is the number of symbols in a generated code.
const CodeLength = 8

// maxUnbiasedByte is the largest multiple of len(CodeAlphabet) that fits in
// a byte. Raw bytes at or above it are redrawn: taking them modulo 33 would
// make the first 25 symbols of the alphabet slightly more likely.
const maxUnbiasedByte = 256 - (256 % len(CodeAlphabet))

// GenerateCode returns a CodeLength-symbol code with every symbol drawn
// independently and uniformly from CodeAlphabet, using the operating
// system's CSPRNG via crypto/rand. Fails with ErrRandomSourceUnavailable
// if the random source cannot be read.
func GenerateCode() (string, error) {
	code := make([]byte, 0, CodeLength)
	buf := make([]byte, 2*CodeLength)

	for len(code) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue // rejection sampling, redraw
			}
			code = append(code, CodeAlphabet[int(b)%len(CodeAlphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}

	return string(code), nil
}
