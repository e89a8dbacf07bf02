package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testSecret = "test-secret-key-for-unit-tests"

// fakeClock lets token tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestTokens(t *testing.T, cfg config.JWTConfig) (*TokenService, *fakeClock) {
	t.Helper()
	if cfg.SecretKey == "" {
		cfg.SecretKey = testSecret
	}
	s, err := NewTokenService(cfg)
	require.NoError(t, err)
	clk := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.now = clk.Now
	return s, clk
}

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

var _ UserRepo = (*MockUserRepo)(nil)

func (m *MockUserRepo) user(args mock.Arguments) (*types.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error) {
	return m.user(m.Called(ctx, externalID))
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	return m.user(m.Called(ctx, params))
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id int64, params types.UpdateProfileParams) (*types.User, error) {
	return m.user(m.Called(ctx, id, params))
}

func (m *MockUserRepo) UpdateStatus(ctx context.Context, id int64, params types.UpdateUserStatusParams) (*types.User, error) {
	return m.user(m.Called(ctx, id, params))
}

func (m *MockUserRepo) ListUsers(ctx context.Context, page types.Pagination) ([]types.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.User), args.Error(1)
}

func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memUsers is a UserStore backed by a map, so tests can change a row between requests.
type memUsers struct {
	mu      sync.Mutex
	byID    map[int64]*types.User
	lookups int
}

func newMemUsers(users ...*types.User) *memUsers {
	m := &memUsers{byID: map[int64]*types.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUsers) GetUserByID(_ context.Context, id int64) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	u, ok := m.byID[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetUserByExternalID(_ context.Context, externalID string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	for _, u := range m.byID {
		if u.ExternalID != nil && *u.ExternalID == externalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, types.ErrNotFound
}

func (m *memUsers) update(id int64, fn func(u *types.User)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.byID[id])
}

func strPtr(s string) *string { return &s }
