// Package services implements the application services sitting between the
// HTTP layer and the repositories: the authentication service and one thin
// CRUD service per resource type.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/auth"
	"github.com/fintrackhq/fintrack/internal/server/config"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	repo            users.Repository
	jwtSecret       []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:            repo,
		jwtSecret:       []byte(cfg.SecretKey),
		accessValidity:  cfg.AccessTokenValidity,
		refreshValidity: cfg.RefreshTokenValidity,
	}
}

// Register creates an account. The username must not be taken; the check
// here is best-effort, with the relational backend's UNIQUE constraint as
// a backstop against a racing duplicate.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: username is taken", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := s.repo.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// An unknown username and a wrong password fail identically, so callers
// cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Username, auth.TokenTypeAccess, s.jwtSecret, s.accessValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshToken, err := auth.GenerateToken(user.ID, user.Username, auth.TokenTypeRefresh, s.jwtSecret, s.refreshValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is reused until it expires; there is no rotation and no
// server-side token store.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {

	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if claims.TokenType != auth.TokenTypeRefresh {
		return "", common.ErrInvalidToken
	}

	return auth.GenerateToken(claims.UserID, claims.Username, auth.TokenTypeAccess, s.jwtSecret, s.accessValidity)
}

// VerifyAccessToken validates a bearer token for a protected call and
// returns its claims. Refresh tokens are rejected here: they can only mint
// new access tokens.
func (s *AuthService) VerifyAccessToken(tokenString string) (*auth.Claims, error) {

	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != auth.TokenTypeAccess {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
