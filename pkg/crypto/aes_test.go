package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestKeyFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hexKey  string
		wantErr bool
	}{
		{"valid 32-byte key", testKeyHex, false},
		{"too short", "deadbeef", true},
		{"not hex", strings.Repeat("zz", 32), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := KeyFromHex(tt.hexKey)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("KeyFromHex failed: %v", err)
			}
			if len(key) != 32 {
				t.Errorf("expected 32-byte key, got %d", len(key))
			}
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("KeyFromHex failed: %v", err)
	}

	plaintexts := []string{
		"NHIF-12345678",
		"",
		"insurance number with unicode: 保険",
	}

	for _, pt := range plaintexts {
		enc, err := Encrypt(key, pt)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", pt, err)
		}
		if enc == pt && pt != "" {
			t.Errorf("ciphertext equals plaintext for %q", pt)
		}

		dec, err := Decrypt(key, enc)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if dec != pt {
			t.Errorf("round trip mismatch: got %q, want %q", dec, pt)
		}
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	a, err := Encrypt(key, "NHIF-12345678")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	b, err := Encrypt(key, "NHIF-12345678")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical ciphertext")
	}
}

func TestEncrypt_InvalidKey(t *testing.T) {
	if _, err := Encrypt([]byte("short"), "data"); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	enc, err := Encrypt(key, "NHIF-12345678")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip a character in the base64 payload
	tampered := []byte(enc)
	if tampered[len(tampered)-5] == 'A' {
		tampered[len(tampered)-5] = 'B'
	} else {
		tampered[len(tampered)-5] = 'A'
	}

	if _, err := Decrypt(key, string(tampered)); err == nil {
		t.Error("expected error decrypting tampered ciphertext")
	}
}

func TestDecrypt_TooShort(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	if _, err := Decrypt(key, "QQ=="); err == nil {
		t.Error("expected error for ciphertext shorter than nonce")
	}
}

func TestHash_Deterministic(t *testing.T) {
	a := Hash("NHIF-12345678")
	b := Hash("NHIF-12345678")
	if a != b {
		t.Error("hash is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if Hash("other") == a {
		t.Error("different inputs produced identical hashes")
	}
}
