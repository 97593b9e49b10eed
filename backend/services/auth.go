package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"habittracker/backend/config"
	"habittracker/backend/models"
	"habittracker/backend/store"
	"habittracker/backend/utils"
)

const minPasswordLength = 6

// AuthService registers users and issues access, refresh and reset tokens.
type AuthService struct {
	store  store.Store
	cfg    *config.Config
	clock  Clock
	logger *zap.Logger
}

func NewAuthService(s store.Store, cfg *config.Config, clock Clock, logger *zap.Logger) *AuthService {
	return &AuthService{store: s, cfg: cfg, clock: clock, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return newValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    s.clock.now(),
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and stores a fresh refresh token for the user,
// replacing any previous one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	now := s.clock.now()
	access, err := utils.GenerateAccessToken(user, s.cfg, now)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, s.cfg, now)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := s.store.Tokens().SaveRefresh(ctx, models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh mints a new access token from the stored refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.cfg.RefreshTokenSecret, utils.AudienceRefresh)
	if err != nil {
		return "", ErrInvalidToken
	}

	stored, err := s.store.Tokens().GetRefresh(ctx, claims.Subject)
	if err != nil || stored.Token != refreshToken {
		return "", ErrInvalidToken
	}

	user, err := s.store.Users().GetByID(ctx, claims.Subject)
	if err != nil {
		return "", ErrInvalidToken
	}

	access, err := utils.GenerateAccessToken(user, s.cfg, s.clock.now())
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// ForgotPassword stores a reset token for a known email and logs it in place
// of sending mail. Unknown emails succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	now := s.clock.now()
	token, err := utils.GenerateResetToken(user.ID, s.cfg, now)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}
	if err := s.store.Tokens().SaveReset(ctx, models.ResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.ResetTokenTTL),
	}); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	s.logger.Info("password reset requested",
		zap.String("user_id", user.ID),
		zap.String("reset_token", token),
	)
	return nil
}

// ResetPassword consumes a reset token and replaces the user's password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	claims, err := utils.ParseToken(token, s.cfg.JWTSecret, utils.AudienceReset)
	if err != nil {
		return ErrInvalidReset
	}
	stored, err := s.store.Tokens().GetReset(ctx, token)
	if err != nil || stored.UserID != claims.Subject || stored.ExpiresAt.Before(s.clock.now()) {
		return ErrInvalidReset
	}

	user, err := s.store.Users().GetByID(ctx, stored.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := s.store.Users().Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return s.store.Tokens().DeleteReset(ctx, token)
}
