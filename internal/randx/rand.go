// Package randx generates unpredictable random strings from crypto/rand.
package randx

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// TokenBytes is the number of random bytes in a confirmation token.
// Hex encoding doubles it, so tokens are 40 characters (160 bits).
const TokenBytes = 20

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding, so the resulting string is twice as long. It returns an error if
// the random source fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ConfirmationToken returns a fresh single-use token for email confirmation
// links. Each call draws from crypto/rand with no dependency on prior state.
func ConfirmationToken() (string, error) {
	return MakeRandHexString(TokenBytes)
}
