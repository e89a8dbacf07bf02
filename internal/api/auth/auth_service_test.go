package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

func newTestService(t *testing.T) (*AuthServiceImpl, *MockUserRepo) {
	t.Helper()
	tokens, _ := newTestTokens(t, config.JWTConfig{})
	repo := new(MockUserRepo)
	svc := NewAuthService(repo, tokens, testLogger)
	svc.hashCost = bcrypt.MinCost
	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	req := SignupRequest{Username: "maya", Email: "maya@example.com", Password: "password123", FullName: strPtr("Maya")}

	t.Run("creates an active non-admin user with a hashed password", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("ExistsByUsername", mock.Anything, "maya").Return(false, nil).Once()
		repo.On("ExistsByEmail", mock.Anything, "maya@example.com").Return(false, nil).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(p types.CreateUserParams) bool {
			return p.Username == "maya" && p.IsActive && !p.IsAdmin &&
				p.HashedPassword != "password123" &&
				bcrypt.CompareHashAndPassword([]byte(p.HashedPassword), []byte("password123")) == nil
		})).Return(&types.User{ID: 1, Username: "maya", IsActive: true}, nil).Once()

		u, err := svc.Signup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("ExistsByUsername", mock.Anything, "maya").Return(true, nil).Once()

		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("ExistsByUsername", mock.Anything, "maya").Return(false, nil).Once()
		repo.On("ExistsByEmail", mock.Anything, "maya@example.com").Return(true, nil).Once()

		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	raceTests := []struct {
		name          string
		usernameAfter bool
		emailAfter    bool
		want          error
	}{
		{name: "concurrent insert took the username", usernameAfter: true, want: ErrUsernameTaken},
		{name: "concurrent insert took the email", emailAfter: true, want: ErrEmailTaken},
		{name: "concurrent insert took both", usernameAfter: true, emailAfter: true, want: ErrUsernameTaken},
	}
	for _, tt := range raceTests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			repo.On("ExistsByUsername", mock.Anything, "maya").Return(false, nil).Once()
			repo.On("ExistsByEmail", mock.Anything, "maya@example.com").Return(false, nil).Once()
			repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, types.ErrConflict).Once()
			repo.On("ExistsByUsername", mock.Anything, "maya").Return(tt.usernameAfter, nil).Once()
			repo.On("ExistsByEmail", mock.Anything, "maya@example.com").Return(tt.emailAfter, nil).Maybe()

			_, err := svc.Signup(ctx, req)
			assert.ErrorIs(t, err, tt.want)
			if tt.want == ErrEmailTaken {
				assert.NotErrorIs(t, err, ErrUsernameTaken)
			}
		})
	}

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("ExistsByUsername", mock.Anything, "maya").Return(false, errors.New("db down")).Once()

		_, err := svc.Signup(ctx, req)
		require.Error(t, err)
		status, _ := StatusFor(err)
		assert.Equal(t, 500, status)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a verifiable token", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetUserByUsername", mock.Anything, "nina").
			Return(&types.User{ID: 12, Username: "nina", HashedPassword: hashed(t, "secret-pw"), IsActive: true, IsAdmin: true}, nil).Once()
		repo.On("UpdateLastLogin", mock.Anything, int64(12)).Return(nil).Once()

		resp, err := svc.Login(ctx, "nina", "secret-pw")
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(1800), resp.ExpiresIn)

		claims, err := svc.tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "nina", claims.Subject)
		assert.Equal(t, int64(12), claims.UserID)
		assert.True(t, claims.IsAdmin)
		repo.AssertExpectations(t)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetUserByUsername", mock.Anything, "nina").
			Return(&types.User{ID: 12, Username: "nina", HashedPassword: hashed(t, "secret-pw"), IsActive: true}, nil).Once()
		repo.On("UpdateLastLogin", mock.Anything, int64(12)).Return(errors.New("timeout")).Once()

		resp, err := svc.Login(ctx, "nina", "secret-pw")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("unknown user still compares a password hash", func(t *testing.T) {
		svc, repo := newTestService(t)
		var compared [][]byte
		svc.compare = func(hashed, password []byte) error {
			compared = append(compared, hashed)
			return bcrypt.CompareHashAndPassword(hashed, password)
		}
		repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, types.ErrNotFound).Once()
		repo.On("GetUserByUsername", mock.Anything, "nina").
			Return(&types.User{ID: 1, Username: "nina", HashedPassword: hashed(t, "secret-pw"), IsActive: true}, nil).Once()

		_, err := svc.Login(ctx, "ghost", "secret-pw")
		assert.ErrorIs(t, err, ErrBadCredentials)
		_, err = svc.Login(ctx, "nina", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)

		require.Len(t, compared, 2)
		cost, err := bcrypt.Cost(compared[0])
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		user     *types.User
		repoErr  error
		password string
		wantErr  error
	}{
		{name: "unknown user", repoErr: types.ErrNotFound, password: "x", wantErr: ErrBadCredentials},
		{name: "wrong password", user: &types.User{ID: 1, Username: "nina", IsActive: true}, password: "wrong", wantErr: ErrBadCredentials},
		{name: "inactive", user: &types.User{ID: 1, Username: "nina", IsActive: false}, password: "secret-pw", wantErr: ErrInactiveAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			if tt.user != nil {
				tt.user.HashedPassword = hashed(t, "secret-pw")
				repo.On("GetUserByUsername", mock.Anything, "nina").Return(tt.user, nil).Once()
			} else {
				repo.On("GetUserByUsername", mock.Anything, "nina").Return(nil, tt.repoErr).Once()
			}

			resp, err := svc.Login(ctx, "nina", tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_UpdateProfileAndStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	params := types.UpdateProfileParams{City: strPtr("Faro")}
	repo.On("UpdateProfile", mock.Anything, int64(3), params).Return(&types.User{ID: 3, City: strPtr("Faro")}, nil).Once()
	u, err := svc.UpdateProfile(ctx, 3, params)
	require.NoError(t, err)
	assert.Equal(t, "Faro", *u.City)

	off := false
	status := types.UpdateUserStatusParams{IsActive: &off}
	repo.On("UpdateStatus", mock.Anything, int64(4), status).Return(nil, types.ErrNotFound).Once()
	_, err = svc.UpdateUserStatus(ctx, 4, status)
	assert.ErrorIs(t, err, types.ErrNotFound)

	repo.On("ListUsers", mock.Anything, types.Pagination{Limit: 10}).Return([]types.User{{ID: 1}, {ID: 2}}, nil).Once()
	users, err := svc.ListUsers(ctx, types.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	repo.AssertExpectations(t)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	spec := AdminUserSpec{Username: "admin", Email: "admin@example.com", Password: "admin-pass", FullName: "Site Admin"}

	t.Run("creates when missing", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetUserByUsername", mock.Anything, "admin").Return(nil, types.ErrNotFound).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(p types.CreateUserParams) bool {
			return p.IsAdmin && p.IsActive && p.FullName != nil && *p.FullName == "Site Admin" && p.Location == nil
		})).Return(&types.User{ID: 1, Username: "admin", IsAdmin: true, IsActive: true}, nil).Once()

		u, created, err := svc.EnsureAdmin(ctx, spec)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, u.IsAdmin)
		repo.AssertExpectations(t)
	})

	t.Run("promotes an existing user", func(t *testing.T) {
		svc, repo := newTestService(t)
		yes := true
		repo.On("GetUserByUsername", mock.Anything, "admin").Return(&types.User{ID: 9, Username: "admin"}, nil).Once()
		repo.On("UpdateStatus", mock.Anything, int64(9), types.UpdateUserStatusParams{IsAdmin: &yes, IsActive: &yes}).
			Return(&types.User{ID: 9, Username: "admin", IsAdmin: true, IsActive: true}, nil).Once()

		u, created, err := svc.EnsureAdmin(ctx, spec)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(9), u.ID)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetUserByUsername", mock.Anything, "admin").Return(nil, errors.New("boom")).Once()

		_, _, err := svc.EnsureAdmin(ctx, spec)
		assert.Error(t, err)
	})
}

func TestAuthService_SeedUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	inactive := false

	seed := []SeedUser{
		{Username: "old", Email: "old@example.com", Password: "pw-old-123"},
		{Username: "new", Email: "new@example.com", Password: "pw-new-123", IsAdmin: true},
		{Username: "off", Email: "off@example.com", Password: "pw-off-123", Active: &inactive},
	}
	repo.On("ExistsByUsername", mock.Anything, "old").Return(true, nil).Once()
	repo.On("ExistsByUsername", mock.Anything, "new").Return(false, nil).Once()
	repo.On("ExistsByUsername", mock.Anything, "off").Return(false, nil).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(p types.CreateUserParams) bool {
		return p.Username == "new" && p.IsAdmin && p.IsActive
	})).Return(&types.User{ID: 2}, nil).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(p types.CreateUserParams) bool {
		return p.Username == "off" && !p.IsAdmin && !p.IsActive
	})).Return(&types.User{ID: 3}, nil).Once()

	created, err := svc.SeedUsers(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	repo.AssertExpectations(t)
}
