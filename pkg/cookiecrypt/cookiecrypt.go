package cookiecrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Codec encrypts cookie values with AES-256-GCM and writes them with the
// httpOnly + SameSite=Strict flags the registration draft requires.
var (
	ErrCookieNotFound    = errors.New("cookie not found")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

const keySize = 32

type Codec struct {
	aead   cipher.AEAD
	secure bool
}

// NewCodec builds a codec from a 32-byte key. secure controls the cookie
// Secure flag and is off only in local development.
func NewCodec(key string, secure bool) (*Codec, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("cookie encryption key must be %d bytes, got %d", keySize, len(key))
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("create cipher failed: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm failed: %w", err)
	}

	return &Codec{aead: aead, secure: secure}, nil
}

func (c *Codec) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce failed: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *Codec) Decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}

	if len(sealed) < c.aead.NonceSize() {
		return nil, ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}

	return plaintext, nil
}

// SetCookie encrypts value and stores it under name for maxAge seconds.
func (c *Codec) SetCookie(gc *gin.Context, name string, value string, maxAge int) error {
	encrypted, err := c.Encrypt([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypt cookie %q failed: %w", name, err)
	}

	gc.SetSameSite(http.SameSiteStrictMode)
	gc.SetCookie(name, encrypted, maxAge, "/", "", c.secure, true)

	return nil
}

// Cookie reads and decrypts the named cookie. Absence and corruption are
// distinguishable through ErrCookieNotFound and ErrInvalidCiphertext.
func (c *Codec) Cookie(gc *gin.Context, name string) (string, error) {
	encrypted, err := gc.Cookie(name)
	if err != nil {
		return "", ErrCookieNotFound
	}

	plaintext, err := c.Decrypt(encrypted)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// ClearCookie expires the named cookie immediately.
func (c *Codec) ClearCookie(gc *gin.Context, name string) {
	gc.SetSameSite(http.SameSiteStrictMode)
	gc.SetCookie(name, "", -1, "/", "", c.secure, true)
}
