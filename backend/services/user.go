package services

import (
	"context"
	"errors"
	"fmt"

	"habittracker/backend/models"
	"habittracker/backend/store"
)

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdateEmail(ctx context.Context, userID, email string) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Email = normalizeEmail(email)
	return s.save(ctx, user)
}

func (s *UserService) UpdateRole(ctx context.Context, userID, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, newValidationError("role must be one of: user, admin")
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	return s.save(ctx, user)
}

func (s *UserService) save(ctx context.Context, user *models.User) (*models.User, error) {
	switch err := s.store.Users().Update(ctx, user); {
	case errors.Is(err, store.ErrConflict):
		return nil, ErrEmailInUse
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
