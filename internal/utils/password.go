package utils

import "golang.org/x/crypto/bcrypt"

// HashPIN returns the bcrypt hash of a POS PIN using the given cost.
func HashPIN(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPIN safely compares a stored bcrypt hash against a candidate PIN.
func VerifyPIN(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
