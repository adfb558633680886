package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"
	"github.com/fccardedeu/backend/pkg/auth"
	"github.com/fccardedeu/backend/pkg/hash"
)

type Tokens struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type adminService struct {
	repo         repository.Admins
	hasher       hash.PasswordHasher
	tokenManager auth.TokenManager
}

func newAdminService(repo repository.Admins, hasher hash.PasswordHasher, tokenManager auth.TokenManager) *adminService {
	return &adminService{
		repo:         repo,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

func (s *adminService) SignIn(ctx context.Context, email, password string) (*Tokens, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	admin, err := s.repo.GetByCredentials(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	accessToken, ttl, err := s.tokenManager.NewJWT(&admin.ID)
	if err != nil {
		return nil, fmt.Errorf("issue admin jwt failed: %w", err)
	}

	return &Tokens{
		AccessToken: accessToken,
		ExpiresIn:   ttl,
	}, nil
}
