// file: internals/features/vault/entry/service/crypto_service_test.go
package service_test

import (
	"bytes"
	"errors"
	"testing"

	"sukaza_backend/internals/features/vault/entry/service"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ct, nonce, salt, err := service.EncryptSecret("correct horse", "wifi: hunter2")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	plain, err := service.DecryptSecret("correct horse", ct, nonce, salt)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "wifi: hunter2" {
		t.Fatalf("round trip gave %q", plain)
	}
}

func TestWrongPasswordIsErrorNotPanic(t *testing.T) {
	ct, nonce, salt, err := service.EncryptSecret("right", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := service.DecryptSecret("wrong", ct, nonce, salt); !errors.Is(err, service.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestTamperedCiphertextRejected(t *testing.T) {
	ct, nonce, salt, err := service.EncryptSecret("pw", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	ct[0] ^= 0xFF

	if _, err := service.DecryptSecret("pw", ct, nonce, salt); !errors.Is(err, service.ErrWrongPassword) {
		t.Fatalf("tampered ciphertext must fail authentication, got %v", err)
	}
}

func TestPerEntrySaltsDiffer(t *testing.T) {
	_, _, salt1, err := service.EncryptSecret("pw", "a")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	_, _, salt2, err := service.EncryptSecret("pw", "a")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(salt1, salt2) {
		t.Fatal("two entries must not share a salt")
	}
}

func TestShortNonceRejected(t *testing.T) {
	ct, _, salt, err := service.EncryptSecret("pw", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := service.DecryptSecret("pw", ct, []byte{1, 2}, salt); !errors.Is(err, service.ErrWrongPassword) {
		t.Fatalf("truncated nonce must be rejected, got %v", err)
	}
}
