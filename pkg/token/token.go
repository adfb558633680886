package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies the registration draft collected in step one.
// The draft never touches the database; it travels to the browser and back
// inside a cookie, so every read must re-check signature and expiry.
var (
	ErrTokenExpired = errors.New("draft token expired")
	ErrTokenInvalid = errors.New("draft token invalid")
)

// Draft holds the personal data collected by the first registration step.
type Draft struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	BirthDate string `json:"birth_date"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type draftClaims struct {
	Draft Draft `json:"draft"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey string
	ttl        time.Duration
}

func NewManager(signingKey string, ttl time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	if ttl == 0 {
		return nil, errors.New("empty draft ttl")
	}

	return &Manager{
		signingKey: signingKey,
		ttl:        ttl,
	}, nil
}

// TTL reports the lifetime of issued tokens, which the cookie max-age follows.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(d Draft) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, draftClaims{
		Draft: d,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	})

	signed, err := t.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign draft token failed: %w", err)
	}

	return signed, nil
}

// Verify validates signature and expiry and returns the embedded draft.
// Callers get ErrTokenExpired or ErrTokenInvalid, never a silent nil.
func (m *Manager) Verify(signed string) (*Draft, error) {
	var claims draftClaims

	_, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return &claims.Draft, nil
}
