package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the given plaintext.
//
// The output is self-describing: it embeds the algorithm version, cost
// factor, and random salt, so two calls with the same plaintext always
// produce different strings while both verify correctly.
//
// cost selects the bcrypt work factor; values outside the valid bcrypt range
// fall back to bcrypt.DefaultCost. Never use this hash as a general-purpose
// checksum.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
//
// The comparison uses the parameters embedded in storedHash and runs in
// constant time. Any mismatch or malformed stored value yields false; the
// function never panics and never returns an error to the caller.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
