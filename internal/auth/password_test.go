package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pw1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %q", hash)
	}
	if !CheckPassword("pw1", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("pw2", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("hashes should differ per salt")
	}
}
