package utils // utils provides hashing and field encryption helpers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// FieldCipher encrypts and decrypts individual HR fields of staff
// records with AES-256-GCM.  Ciphertexts are stored base64 encoded with
// the nonce prepended.  The cipher is constructed once at startup from
// the configured key; an empty plaintext maps to an empty ciphertext so
// optional fields round-trip cleanly.
type FieldCipher struct {
	aead cipher.AEAD
}

// ErrCipherKey indicates a key that is not 32 bytes after base64 decoding.
var ErrCipherKey = errors.New("encryption key must decode to 32 bytes")

// NewFieldCipher builds a FieldCipher from a base64 encoded 32-byte key.
func NewFieldCipher(b64key string) (*FieldCipher, error) {
	key, err := base64.StdEncoding.DecodeString(b64key)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, ErrCipherKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &FieldCipher{aead: aead}, nil
}

// Encrypt seals a plaintext field.  The random nonce is prepended to the
// ciphertext before base64 encoding.
func (fc *FieldCipher) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	nonce := make([]byte, fc.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	sealed := fc.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a base64 encoded ciphertext produced by Encrypt.
func (fc *FieldCipher) Decrypt(enc string) (string, error) {
	if enc == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	ns := fc.aead.NonceSize()
	if len(raw) < ns {
		return "", errors.New("ciphertext too short")
	}
	plain, err := fc.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	return string(plain), nil
}
