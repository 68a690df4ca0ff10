package controller

import (
	"context"
	"fmt"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/validation"
	"go.uber.org/zap"
)

// AuthService authenticates credentials and manages the token pair.
type AuthService struct {
	repo   *db.Repository
	tokens *auth.Manager
	logger *zap.Logger
}

func NewAuthService(repo *db.Repository, tokens *auth.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		logger: logger.Named("auth_service"),
	}
}

// Login exchanges credentials for an access/refresh token pair. The
// same error covers an unknown email and a wrong password so the
// response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	if err := validation.Credentials(email, password); err != nil {
		return auth.TokenPair{}, err
	}

	user, err := ignoreNotFound(s.repo.GetUserByEmail(ctx, email))
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return auth.TokenPair{}, fmt.Errorf("%w: invalid email or password", e.ErrUnauthenticated)
	}

	return s.tokens.IssuePair(user.ID)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.Resolve(refreshToken, auth.TypeRefresh)
	if err != nil {
		return "", fmt.Errorf("%w: invalid refresh token", e.ErrUnauthenticated)
	}

	// The account may have been removed since the token was issued.
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return "", fmt.Errorf("%w: unknown user", e.ErrUnauthenticated)
	}

	return s.tokens.IssueAccess(userID)
}
