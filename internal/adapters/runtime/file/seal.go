package file

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltSize      = 16
	argonTime     = 2
	argonMemoryKB = 19 * 1024
	argonThreads  = 1
)

var errSealOpen = errors.New("sealed seed does not open with this device key")

func deriveKey(deviceKey string, salt []byte) []byte {
	return argon2.IDKey([]byte(deviceKey), salt, argonTime, argonMemoryKB, argonThreads, chacha20poly1305.KeySize)
}

// sealSeed encrypts seed under a key derived from deviceKey. The session name
// is bound as additional data so a sealed seed cannot be moved between
// session files unnoticed.
func sealSeed(deviceKey, name, seed string) (salt, nonce, sealed string, err error) {
	saltBytes := make([]byte, saltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", "", fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(deviceKey, saltBytes))
	if err != nil {
		return "", "", "", fmt.Errorf("init cipher: %w", err)
	}

	nonceBytes := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonceBytes); err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonceBytes, []byte(seed), []byte(name))

	enc := base64.StdEncoding
	return enc.EncodeToString(saltBytes), enc.EncodeToString(nonceBytes), enc.EncodeToString(ciphertext), nil
}

func openSeed(deviceKey string, session sessionSchema) (string, error) {
	enc := base64.StdEncoding
	salt, err := enc.DecodeString(session.Salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := enc.DecodeString(session.Nonce)
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}
	ciphertext, err := enc.DecodeString(session.SealedSeed)
	if err != nil {
		return "", fmt.Errorf("decode sealed seed: %w", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(deviceKey, salt))
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return "", fmt.Errorf("nonce size %d (expected %d)", len(nonce), aead.NonceSize())
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(session.Name))
	if err != nil {
		return "", errSealOpen
	}

	return string(plaintext), nil
}
