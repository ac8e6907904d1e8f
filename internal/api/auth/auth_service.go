package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kanishkPamecha/Movies/app/observability/metrics"
	"github.com/kanishkPamecha/Movies/config"
	"github.com/kanishkPamecha/Movies/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// AuthService orchestrates registration and login on top of the credential
// store and the hashing/signing primitives. Both operations return the stored
// user and a signed session token for the cookie.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*types.User, string, error)
	Login(ctx context.Context, email, password string) (*types.User, string, error)
}

type AuthServiceImpl struct {
	logger  *slog.Logger
	cfg     *config.Config
	repo    AuthRepo
	metrics *metrics.AppMetrics
}

func NewAuthService(repo AuthRepo, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger:  logger,
		cfg:     cfg,
		repo:    repo,
		metrics: m,
	}
}

// Register creates a new user with a freshly salted password hash and issues
// a session token for the new identifier.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*types.User, string, error) {
	l := s.logger.With(slog.String("method", "Register"))

	if username == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("username, email and password are required: %w", types.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	start := time.Now()
	user, err := s.repo.CreateUser(ctx, username, email, string(hashedPassword))
	s.recordQueryDuration(ctx, start)
	if err != nil {
		// The unique constraint on email is the authority here; a prior
		// existence check would still race with concurrent registrations.
		return nil, "", err
	}

	token, err := GenerateSessionToken(s.cfg.JWT, user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.metrics != nil {
		s.metrics.RegisterRequestsTotal.Add(ctx, 1)
	}
	l.InfoContext(ctx, "User registered", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password collapse into the same generic error so the endpoint does
// not leak account existence.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*types.User, string, error) {
	l := s.logger.With(slog.String("method", "Login"))

	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", types.ErrValidation)
	}

	start := time.Now()
	user, err := s.repo.GetUserByEmail(ctx, email)
	s.recordQueryDuration(ctx, start)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.countAuthFailure(ctx)
			return nil, "", fmt.Errorf("invalid credentials: %w", types.ErrUnauthenticated)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.countAuthFailure(ctx)
		return nil, "", fmt.Errorf("invalid credentials: %w", types.ErrUnauthenticated)
	}

	token, err := GenerateSessionToken(s.cfg.JWT, user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.metrics != nil {
		s.metrics.LoginRequestsTotal.Add(ctx, 1)
	}
	l.InfoContext(ctx, "User logged in", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

func (s *AuthServiceImpl) countAuthFailure(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.AuthFailuresTotal.Add(ctx, 1)
	}
}

func (s *AuthServiceImpl) recordQueryDuration(ctx context.Context, start time.Time) {
	if s.metrics != nil {
		s.metrics.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}
}
