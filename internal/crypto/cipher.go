package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

// PhoneCipher encrypts and decrypts phone numbers with AES-GCM. Stored
// values have the form "iv:ciphertext", both halves hex-encoded, so a
// record is self-contained and decryptable with the key alone.
type PhoneCipher struct {
	aead cipher.AEAD
}

// NewPhoneCipher builds a PhoneCipher from a 16-, 24- or 32-byte AES key.
func NewPhoneCipher(key []byte) (*PhoneCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("invalid phone cipher key: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &PhoneCipher{aead: aead}, nil
}

// Encrypt encrypts plain with a fresh random IV and returns the stored form.
func (c *PhoneCipher) Encrypt(plain string) (string, error) {
	iv := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nil, iv, []byte(plain), nil)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Malformed input, a truncated IV, or a
// ciphertext sealed under a different key all yield apperr.ErrCrypto.
func (c *PhoneCipher) Decrypt(stored string) (string, error) {
	ivHex, dataHex, ok := strings.Cut(stored, ":")
	if !ok {
		return "", apperr.ErrCrypto
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != c.aead.NonceSize() {
		return "", apperr.ErrCrypto
	}
	sealed, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", apperr.ErrCrypto
	}
	plain, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", apperr.ErrCrypto
	}
	return string(plain), nil
}
