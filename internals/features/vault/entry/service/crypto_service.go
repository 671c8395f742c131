// file: internals/features/vault/entry/service/crypto_service.go
package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLen     = 32 // AES-256
	saltLen    = 16
	iterations = 120_000
)

// ErrWrongPassword is returned when GCM authentication fails, which is what
// a wrong master password looks like at decrypt time.
var ErrWrongPassword = errors.New("master password is incorrect")

// DeriveKey stretches the master password with PBKDF2-SHA256 and the
// per-entry salt.
func DeriveKey(masterPassword string, salt []byte) []byte {
	return pbkdf2.Key([]byte(masterPassword), salt, iterations, keyLen, sha256.New)
}

// NewSalt returns a fresh random per-entry salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncryptSecret seals the plaintext under the master password. It returns
// the ciphertext, the GCM nonce and the salt used for key derivation; all
// three are stored with the entry.
func EncryptSecret(masterPassword, plaintext string) (ciphertext, nonce, salt []byte, err error) {
	salt, err = NewSalt()
	if err != nil {
		return nil, nil, nil, err
	}

	block, err := aes.NewCipher(DeriveKey(masterPassword, salt))
	if err != nil {
		return nil, nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, nil, nil, err
	}

	ciphertext = gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return ciphertext, nonce, salt, nil
}

// DecryptSecret opens the ciphertext. A wrong master password surfaces as
// ErrWrongPassword, never as a panic.
func DecryptSecret(masterPassword string, ciphertext, nonce, salt []byte) (string, error) {
	block, err := aes.NewCipher(DeriveKey(masterPassword, salt))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(nonce) != gcm.NonceSize() {
		return "", ErrWrongPassword
	}

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrWrongPassword
	}
	return string(plain), nil
}
