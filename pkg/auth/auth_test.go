package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	v := NewVerifier([]byte(hash))

	ok, err := v.Verify("s3cret")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, err = v.Verify("wrong")
	if err != nil {
		t.Fatalf("Verify wrong password: %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestLoadVerifier(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	path := filepath.Join(t.TempDir(), "admin.hash")
	// Trailing newline as written by the hashpass subcommand.
	if err := os.WriteFile(path, []byte(hash+"\n"), 0o600); err != nil {
		t.Fatalf("write hash file: %v", err)
	}

	v, err := LoadVerifier(path)
	if err != nil {
		t.Fatalf("LoadVerifier: %v", err)
	}
	ok, err := v.Verify("s3cret")
	if err != nil || !ok {
		t.Errorf("Verify after load = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestLoadVerifier_Missing(t *testing.T) {
	if _, err := LoadVerifier(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing hash file")
	}
}

func TestLoadVerifier_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadVerifier(path); err == nil {
		t.Error("expected error for empty hash file")
	}
}
