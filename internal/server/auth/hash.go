// Package auth derives the stored identity verifier from signup credentials.
package auth

import "golang.org/x/crypto/bcrypt"

// IdentityHashCost is the bcrypt work factor for identity hashes. It is
// deliberately expensive to slow brute-force attempts.
const IdentityHashCost = 12

// HashIdentity derives the stored verifier from the concatenation of email
// and plaintext password. The resulting string is self-describing: it
// encodes algorithm, cost, and salt, so nothing else needs to be stored.
//
// No login path reads this hash; it exists so the raw password is never
// persisted.
func HashIdentity(email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(email+password), IdentityHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyIdentity reports whether the given email and password produce the
// stored hash.
func VerifyIdentity(hash, email, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(email+password)) == nil
}
