package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash of the plaintext. The salt
// is random per call, so two hashes of the same password differ and
// CheckPassword is the only valid way to compare.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// Malformed stored hashes are treated as non-matching.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
