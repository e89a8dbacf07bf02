package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/SolarInitiative/Cloud-Solar-Backend/app/observability/metrics"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*types.User, error)
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	UpdateProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.User, error)
	ListUsers(ctx context.Context, page types.Pagination) ([]types.User, error)
	UpdateUserStatus(ctx context.Context, userID int64, params types.UpdateUserStatusParams) (*types.User, error)
	EnsureAdmin(ctx context.Context, spec AdminUserSpec) (*types.User, bool, error)
	SeedUsers(ctx context.Context, users []SeedUser) (int, error)
}

type AuthServiceImpl struct {
	logger   *slog.Logger
	repo     UserRepo
	tokens   *TokenService
	hashCost int
	compare  func(hashed, password []byte) error

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(repo UserRepo, tokens *TokenService, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger:   logger,
		repo:     repo,
		tokens:   tokens,
		hashCost: bcrypt.DefaultCost,
		compare:  bcrypt.CompareHashAndPassword,
	}
}

// dummy is a hash at the service's cost, compared against when the username is unknown so
// that both login failures spend the same bcrypt work.
func (s *AuthServiceImpl) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cloud-solar-unknown-user"), s.hashCost)
	})
	return s.dummyHash
}

func (s *AuthServiceImpl) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Signup creates an active, non-admin account.
func (s *AuthServiceImpl) Signup(ctx context.Context, req SignupRequest) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Signup", trace.WithAttributes(
		attribute.String("auth.username", req.Username),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Signup"), slog.String("username", req.Username))

	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "username check failed")
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		span.SetStatus(codes.Error, "username taken")
		return nil, ErrUsernameTaken
	}
	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "email check failed")
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		span.SetStatus(codes.Error, "email taken")
		return nil, ErrEmailTaken
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, types.CreateUserParams{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		FullName:       req.FullName,
		Location:       req.Location,
		IsActive:       true,
	})
	if err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, types.ErrConflict) {
			span.SetStatus(codes.Error, "concurrent signup")
			return nil, s.takenBy(ctx, req)
		}
		l.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	l.InfoContext(ctx, "User signed up", slog.Int64("userID", user.ID))
	span.SetStatus(codes.Ok, "user created")
	return user, nil
}

// takenBy reports which unique field a conflicting insert collided on.
func (s *AuthServiceImpl) takenBy(ctx context.Context, req SignupRequest) error {
	if taken, err := s.repo.ExistsByUsername(ctx, req.Username); err == nil && taken {
		return ErrUsernameTaken
	}
	if taken, err := s.repo.ExistsByEmail(ctx, req.Email); err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login checks the password and returns a bearer token. Unknown users and wrong passwords give
// the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (resp *TokenResponse, err error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login", trace.WithAttributes(
		attribute.String("auth.username", username),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		m := metrics.Get()
		attrs := metric.WithAttributes(attribute.String("result", result))
		m.LoginRequestsTotal.Add(ctx, 1, attrs)
		m.LoginDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	l := s.logger.With(slog.String("method", "Login"), slog.String("username", username))

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			_ = s.compare(s.dummy(), []byte(password))
			span.SetStatus(codes.Error, "unknown user")
			return nil, ErrBadCredentials
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if err := s.compare([]byte(user.HashedPassword), []byte(password)); err != nil {
		l.WarnContext(ctx, "Password mismatch")
		span.SetStatus(codes.Error, "password mismatch")
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		span.SetStatus(codes.Error, "inactive account")
		return nil, fmt.Errorf("%w: user %d", ErrInactiveAccount, user.ID)
	}

	token, err := s.tokens.IssueForUser(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token issue failed")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		l.WarnContext(ctx, "Failed to record last login", slog.Any("error", err))
	}

	l.InfoContext(ctx, "User logged in", slog.Int64("userID", user.ID))
	span.SetStatus(codes.Ok, "logged in")
	return tokenResponse(token, s.tokens.TTL()), nil
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "UpdateProfile", trace.WithAttributes(
		attribute.Int64("auth.user_id", userID),
	))
	defer span.End()

	user, err := s.repo.UpdateProfile(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	span.SetStatus(codes.Ok, "profile updated")
	return user, nil
}

func (s *AuthServiceImpl) ListUsers(ctx context.Context, page types.Pagination) ([]types.User, error) {
	users, err := s.repo.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (s *AuthServiceImpl) UpdateUserStatus(ctx context.Context, userID int64, params types.UpdateUserStatusParams) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "UpdateUserStatus", trace.WithAttributes(
		attribute.Int64("auth.user_id", userID),
	))
	defer span.End()

	user, err := s.repo.UpdateStatus(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating user status: %w", err)
	}
	s.logger.InfoContext(ctx, "User status changed",
		slog.Int64("userID", userID), slog.Bool("is_admin", user.IsAdmin), slog.Bool("is_active", user.IsActive))
	span.SetStatus(codes.Ok, "status updated")
	return user, nil
}

// EnsureAdmin creates the admin account, or promotes and reactivates it when the username
// already exists. The bool reports whether a new row was created.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, spec AdminUserSpec) (*types.User, bool, error) {
	l := s.logger.With(slog.String("method", "EnsureAdmin"), slog.String("username", spec.Username))

	existing, err := s.repo.GetUserByUsername(ctx, spec.Username)
	switch {
	case err == nil:
		yes := true
		user, err := s.repo.UpdateStatus(ctx, existing.ID, types.UpdateUserStatusParams{IsAdmin: &yes, IsActive: &yes})
		if err != nil {
			return nil, false, fmt.Errorf("error promoting %s: %w", spec.Username, err)
		}
		l.InfoContext(ctx, "Existing user promoted to admin", slog.Int64("userID", user.ID))
		return user, false, nil
	case !errors.Is(err, types.ErrNotFound):
		return nil, false, fmt.Errorf("error fetching user: %w", err)
	}

	hashed, err := s.hash(spec.Password)
	if err != nil {
		return nil, false, err
	}
	user, err := s.repo.CreateUser(ctx, types.CreateUserParams{
		Username:       spec.Username,
		Email:          spec.Email,
		HashedPassword: hashed,
		FullName:       optional(spec.FullName),
		Location:       optional(spec.Location),
		IsAdmin:        true,
		IsActive:       true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("error creating admin: %w", err)
	}
	l.InfoContext(ctx, "Admin user created", slog.Int64("userID", user.ID))
	return user, true, nil
}

// SeedUsers creates the users that do not exist yet and returns how many were created.
func (s *AuthServiceImpl) SeedUsers(ctx context.Context, users []SeedUser) (int, error) {
	created := 0
	for _, su := range users {
		exists, err := s.repo.ExistsByUsername(ctx, su.Username)
		if err != nil {
			return created, fmt.Errorf("error checking seed user %s: %w", su.Username, err)
		}
		if exists {
			s.logger.DebugContext(ctx, "Seed user already present", slog.String("username", su.Username))
			continue
		}
		hashed, err := s.hash(su.Password)
		if err != nil {
			return created, err
		}
		active := true
		if su.Active != nil {
			active = *su.Active
		}
		if _, err := s.repo.CreateUser(ctx, types.CreateUserParams{
			Username:       su.Username,
			Email:          su.Email,
			HashedPassword: hashed,
			FullName:       optional(su.FullName),
			Location:       optional(su.Location),
			IsAdmin:        su.IsAdmin,
			IsActive:       active,
		}); err != nil {
			return created, fmt.Errorf("error creating seed user %s: %w", su.Username, err)
		}
		created++
	}
	s.logger.InfoContext(ctx, "Seeded users", slog.Int("created", created), slog.Int("total", len(users)))
	return created, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
