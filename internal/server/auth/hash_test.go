package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Hashing at cost 12 is slow on purpose, so the round-trip tests share one
// hash instead of generating a fresh one per case.
func TestHashIdentity_RoundTrip(t *testing.T) {
	hash, err := HashIdentity("a@x.com", "secret123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash must encode bcrypt cost 12: %s", hash)

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"same inputs verify", "a@x.com", "secret123", true},
		{"altered password fails", "a@x.com", "secret124", false},
		{"altered email fails", "b@x.com", "secret123", false},
		// email+password is a plain concatenation, so shifting the boundary
		// produces the same input string and still verifies.
		{"shifted concatenation boundary verifies", "a@x.coms", "ecret123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, VerifyIdentity(hash, tt.email, tt.password))
		})
	}
}

func TestVerifyIdentity_GarbageHash(t *testing.T) {
	require.False(t, VerifyIdentity("not-a-bcrypt-hash", "a@x.com", "secret123"))
}
