package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Errorf("hash %q missing salt separator", hash)
	}
	if hash == "secret1!" {
		t.Error("hash must not equal the plain password")
	}

	match, err := VerifyPassword(hash, "secret1!")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !match {
		t.Error("correct password should verify")
	}

	match, err = VerifyPassword(hash, "wrong")
	if err != nil {
		t.Fatalf("VerifyPassword wrong: %v", err)
	}
	if match {
		t.Error("wrong password must not verify")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, _ := HashPassword("secret1!")
	second, _ := HashPassword("secret1!")
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-hash", "secret1!"); err == nil {
		t.Error("expected error for malformed stored hash")
	}
}
