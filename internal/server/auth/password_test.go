package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_DoesNotStoreCleartext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter42")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if strings.Contains(hash, "hunter42") {
		t.Fatalf("hash contains cleartext: %q", hash)
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword(hash, "correct horse") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong horse") {
		t.Fatalf("expected mismatching password to fail")
	}
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("expected malformed hash to fail")
	}
}
