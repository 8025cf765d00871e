package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, now: utcNow}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser validates and persists a new user. Email uniqueness is enforced
// by the store and surfaces as domain.ErrDuplicateEmail.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(in.Name, in.Email, in.Age)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.logger.Debug().Str("email", user.Email).Msg("duplicate email rejected")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies patch with merge semantics: fields absent from the patch
// keep their stored values.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	normalized, err := domain.NormalizePatch(patch)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, normalized)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// DeleteUser removes the user. Posts authored by the user are left in place.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
