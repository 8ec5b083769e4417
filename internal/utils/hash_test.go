package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("hash result is empty")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt-formatted hash, got %q", hash)
	}
	if strings.Contains(hash, "correct horse") {
		t.Error("plaintext must never appear in the stored hash")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	h2, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password must differ (random salt)")
	}
	if !CheckPassword("same-password", h1) || !CheckPassword("same-password", h2) {
		t.Error("both salted hashes must verify against the original password")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 9000)
	if err != nil {
		t.Fatalf("expected fallback to default cost, got: %v", err)
	}
	if !CheckPassword("pw", hash) {
		t.Error("hash produced with fallback cost must still verify")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("open sesame", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
		stored    string
		want      bool
	}{
		{"correct password", "open sesame", hash, true},
		{"wrong password", "open says me", hash, false},
		{"empty password", "", hash, false},
		{"malformed stored hash", "open sesame", "not-a-bcrypt-hash", false},
		{"empty stored hash", "open sesame", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.plaintext, tt.stored); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
