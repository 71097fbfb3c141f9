package credstore

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/salsa20"
)

const (
	nonceSize = 8
	tagSize   = 16
)

var (
	ErrCipherTextTooShort     = errors.New("ciphertext block size is too short")
	ErrHMACVerificationFailed = errors.New("HMAC verification failed")
)

// cipher encrypts stored credentials with Salsa20 and authenticates them
// with a truncated HMAC-SHA256 tag (Encrypt-then-MAC). The Salsa20 key is
// derived from the configured secret via SHA256, so any secret length works.
type cipher struct {
	derivedKey *[32]byte
	secret     string
}

func newCipher(secret string) *cipher {
	hash := sha256.Sum256([]byte(secret))

	return &cipher{
		derivedKey: &hash,
		secret:     secret,
	}
}

func (c *cipher) encrypt(plainText []byte) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	cipherText := make([]byte, len(plainText))
	salsa20.XORKeyStream(cipherText, plainText, nonce, c.derivedKey)

	h := hmac.New(sha256.New, []byte(c.secret))
	h.Write(nonce)
	h.Write(cipherText)
	tag := h.Sum(nil)[:tagSize]

	result := make([]byte, 0, len(nonce)+len(cipherText)+len(tag))
	result = append(result, nonce...)
	result = append(result, cipherText...)
	result = append(result, tag...)

	return result, nil
}

func (c *cipher) decrypt(encrypted []byte) ([]byte, error) {
	if len(encrypted) < nonceSize+1+tagSize {
		return nil, ErrCipherTextTooShort
	}

	nonce := encrypted[:nonceSize]
	cipherText := encrypted[nonceSize : len(encrypted)-tagSize]
	tag := encrypted[len(encrypted)-tagSize:]

	h := hmac.New(sha256.New, []byte(c.secret))
	h.Write(nonce)
	h.Write(cipherText)

	if !hmac.Equal(tag, h.Sum(nil)[:tagSize]) {
		return nil, ErrHMACVerificationFailed
	}

	plainText := make([]byte, len(cipherText))
	salsa20.XORKeyStream(plainText, cipherText, nonce, c.derivedKey)

	return plainText, nil
}
