package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fccardedeu/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager provides logic for the admin-dashboard JWT generation and parsing.
type TokenManager interface {
	NewJWT(adminID *uuid.UUID) (string, time.Duration, error)
	Parse(accessToken string) (string, error)
}

type Manager struct {
	signingKey     string
	accessTokenTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	return &Manager{
		signingKey:     cfg.SigningKey,
		accessTokenTTL: cfg.AccessTokenTTL,
	}, nil
}

func (m *Manager) NewJWT(adminID *uuid.UUID) (string, time.Duration, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTokenTTL)),
		Subject:   adminID.String(),
	})

	accessToken, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return accessToken, m.accessTokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (string, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (i interface{}, err error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("error get admin claims from token")
	}

	//nolint:forcetypeassert
	return claims["sub"].(string), nil
}
