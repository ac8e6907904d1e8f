package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanishkPamecha/Movies/internal/types"
)

var _ UserService = (*UserServiceImpl)(nil)

type UserService interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, params types.UpdateProfileParams) (*types.User, error)
	ListUsers(ctx context.Context) ([]types.PublicUser, error)
}

type UserServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
}

func NewUserService(repo UserRepo, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// UpdateUserProfile applies a partial update. A supplied password is hashed
// with a fresh salt; the admin flag is not reachable from here at all.
func (s *UserServiceImpl) UpdateUserProfile(ctx context.Context, userID uuid.UUID, params types.UpdateProfileParams) (*types.User, error) {
	l := s.logger.With(slog.String("method", "UpdateUserProfile"))

	if params.Username == nil && params.Email == nil && params.Password == nil {
		return nil, fmt.Errorf("no updatable fields supplied: %w", types.ErrValidation)
	}
	if params.Username != nil && *params.Username == "" {
		return nil, fmt.Errorf("username must not be empty: %w", types.ErrValidation)
	}
	if params.Email != nil && *params.Email == "" {
		return nil, fmt.Errorf("email must not be empty: %w", types.ErrValidation)
	}

	var passwordHash *string
	if params.Password != nil {
		if *params.Password == "" {
			return nil, fmt.Errorf("password must not be empty: %w", types.ErrValidation)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	user, err := s.repo.UpdateUser(ctx, userID, params.Username, params.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	l.InfoContext(ctx, "Profile updated", slog.String("user_id", userID.String()))
	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]types.PublicUser, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]types.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}
