package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/apperrors"
	"github.com/1Cealus/InvestmentTracker/internal/auth"
	"github.com/1Cealus/InvestmentTracker/internal/model"
	"github.com/1Cealus/InvestmentTracker/internal/repository"
	"github.com/1Cealus/InvestmentTracker/internal/validation"
)

// AuthService handles account registration and credential verification.
// Login failures never reveal whether the username exists.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService with the provided repository and
// token settings.
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password. A taken
// username is apperrors.ErrUsernameTaken. The plaintext password is never
// stored or logged.
func (s *AuthService) Register(ctx context.Context, req request.AuthRequest) error {
	if err := validation.ValidateAuthRequest(req); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	// The unique constraint on username still backstops a concurrent register.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	return nil
}

// Login verifies the credentials and returns a signed token carrying the
// user's identity. Unknown usernames and wrong passwords produce the same
// apperrors.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req request.AuthRequest) (string, error) {
	if err := validation.ValidateAuthRequest(req); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logrus.WithField("user_id", user.ID).Warn("login failed")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetUser resolves a user ID taken from a validated token back to the account.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// DeleteUser removes an account and, through the foreign key cascade, every
// investment it owns. Administrative operation, not exposed over HTTP.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
