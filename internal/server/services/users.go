// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login and minting access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sweetshop/internal/common"
	"sweetshop/internal/server/auth"
	"sweetshop/internal/server/config"
	"sweetshop/internal/server/models"
	"sweetshop/internal/server/repositories/repomanager"
)

// AuthService provides authentication-related operations:
// - Register: create accounts (unique username and email)
// - Login: verify credentials and mint a signed access token
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account with the given role. The username is checked
// before the email, so a request colliding on both reports the username.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrorUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash, Role: role}
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			// lost a race with a concurrent register on the same username
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return created, nil
}

// Login resolves the account by username first, then by email, verifies the
// password and returns a signed token whose subject is the username. Both
// unknown-user and bad-password cases surface as distinguishable errors for
// the boundary to translate.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, usernameOrEmail)
	if errors.Is(err, common.ErrorNotFound) {
		user, err = repo.GetByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUserNotFound
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.UserName, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}
