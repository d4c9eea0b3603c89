// Package auth provides credential hashing for staff accounts.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the bcrypt digest stored in place of a staff password.
func HashPassword(plain string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// ComparePassword checks a submitted password against the stored digest. A
// mismatch is reported as a non-nil error.
func ComparePassword(digest, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
}
