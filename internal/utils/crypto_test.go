package utils

import (
	"encoding/base64"
	"strings"
	"testing"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestNewFieldCipherKeyValidation(t *testing.T) {
	if _, err := NewFieldCipher("not base64!!"); err == nil {
		t.Error("expected error for invalid base64 key")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if _, err := NewFieldCipher(short); err != ErrCipherKey {
		t.Errorf("expected ErrCipherKey for short key, got %v", err)
	}
	if _, err := NewFieldCipher(testKey()); err != nil {
		t.Errorf("valid key rejected: %v", err)
	}
}

func TestFieldCipherRoundTrip(t *testing.T) {
	fc, err := NewFieldCipher(testKey())
	if err != nil {
		t.Fatal(err)
	}
	for _, plain := range []string{"3200.00", "DE89370400440532013000", "Hauptstraße 1, 22880 Wedel", ""} {
		enc, err := fc.Encrypt(plain)
		if err != nil {
			t.Fatalf("encrypt %q: %v", plain, err)
		}
		if plain == "" && enc != "" {
			t.Error("empty plaintext should map to empty ciphertext")
		}
		if plain != "" && enc == plain {
			t.Errorf("ciphertext equals plaintext for %q", plain)
		}
		dec, err := fc.Decrypt(enc)
		if err != nil {
			t.Fatalf("decrypt %q: %v", plain, err)
		}
		if dec != plain {
			t.Errorf("round trip of %q gave %q", plain, dec)
		}
	}
}

func TestFieldCipherNonDeterministic(t *testing.T) {
	fc, _ := NewFieldCipher(testKey())
	a, _ := fc.Encrypt("secret")
	b, _ := fc.Encrypt("secret")
	if a == b {
		t.Error("two encryptions of the same value must differ (random nonce)")
	}
}

func TestFieldCipherRejectsTampering(t *testing.T) {
	fc, _ := NewFieldCipher(testKey())
	enc, _ := fc.Encrypt("secret")
	raw, _ := base64.StdEncoding.DecodeString(enc)
	raw[len(raw)-1] ^= 0xff
	if _, err := fc.Decrypt(base64.StdEncoding.EncodeToString(raw)); err == nil {
		t.Error("tampered ciphertext must not decrypt")
	}
	if _, err := fc.Decrypt("AAAA"); err == nil || !strings.Contains(err.Error(), "short") {
		t.Errorf("truncated ciphertext should fail, got %v", err)
	}
}

func TestPINHashing(t *testing.T) {
	hash, err := HashPIN("4711", 4)
	if err != nil {
		t.Fatal(err)
	}
	if hash == "4711" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPIN(hash, "4711") {
		t.Error("correct PIN rejected")
	}
	if VerifyPIN(hash, "0000") {
		t.Error("wrong PIN accepted")
	}
	if VerifyPIN("", "4711") {
		t.Error("empty hash accepted a PIN")
	}
}
