package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/suite"

	appMiddleware "github.com/SolarInitiative/Cloud-Solar-Backend/app/middleware"
	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/customer"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/energy"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/farm"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/router"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const e2eDevKey = "e2e-dev-key"

// memUserRepo is an in-memory auth.UserRepo shared by the e2e suite and the benchmarks.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*types.User
}

func newMemUserRepo(seed ...types.User) *memUserRepo {
	m := &memUserRepo{users: map[int64]*types.User{}}
	for i := range seed {
		u := seed[i]
		m.users[u.ID] = &u
		if u.ID > m.nextID {
			m.nextID = u.ID
		}
	}
	return m
}

func (m *memUserRepo) get(pred func(*types.User) bool) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if pred(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, types.ErrNotFound
}

func (m *memUserRepo) GetUserByID(_ context.Context, id int64) (*types.User, error) {
	return m.get(func(u *types.User) bool { return u.ID == id })
}

func (m *memUserRepo) GetUserByExternalID(_ context.Context, externalID string) (*types.User, error) {
	return m.get(func(u *types.User) bool { return u.ExternalID != nil && *u.ExternalID == externalID })
}

func (m *memUserRepo) GetUserByUsername(_ context.Context, username string) (*types.User, error) {
	return m.get(func(u *types.User) bool { return u.Username == username })
}

func (m *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetUserByUsername(ctx, username)
	return err == nil, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.get(func(u *types.User) bool { return strings.EqualFold(u.Email, email) })
	return err == nil, nil
}

func (m *memUserRepo) CreateUser(_ context.Context, p types.CreateUserParams) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == p.Username || u.Email == p.Email {
			return nil, types.ErrConflict
		}
	}
	m.nextID++
	now := time.Now().UTC()
	u := &types.User{
		ID:             m.nextID,
		Username:       p.Username,
		Email:          p.Email,
		HashedPassword: p.HashedPassword,
		FullName:       p.FullName,
		Location:       p.Location,
		ExternalID:     p.ExternalID,
		IsAdmin:        p.IsAdmin,
		IsActive:       p.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) mutate(id int64, fn func(*types.User)) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	fn(u)
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, id int64, p types.UpdateProfileParams) (*types.User, error) {
	return m.mutate(id, func(u *types.User) {
		if p.FullName != nil {
			u.FullName = p.FullName
		}
		if p.Location != nil {
			u.Location = p.Location
		}
		if p.City != nil {
			u.City = p.City
		}
		if p.Phone != nil {
			u.Phone = p.Phone
		}
	})
}

func (m *memUserRepo) UpdateStatus(_ context.Context, id int64, p types.UpdateUserStatusParams) (*types.User, error) {
	return m.mutate(id, func(u *types.User) {
		if p.IsAdmin != nil {
			u.IsAdmin = *p.IsAdmin
		}
		if p.IsActive != nil {
			u.IsActive = *p.IsActive
		}
		if p.AccountStatus != nil {
			u.AccountStatus = p.AccountStatus
		}
	})
}

func (m *memUserRepo) ListUsers(_ context.Context, page types.Pagination) ([]types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.User, 0, len(m.users))
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	if page.Skip >= len(out) {
		return []types.User{}, nil
	}
	out = out[page.Skip:]
	if len(out) > page.Limit {
		out = out[:page.Limit]
	}
	return out, nil
}

func (m *memUserRepo) UpdateLastLogin(_ context.Context, id int64) error {
	_, err := m.mutate(id, func(u *types.User) {
		now := time.Now().UTC()
		u.LastLoginAt = &now
	})
	return err
}

var _ auth.UserRepo = (*memUserRepo)(nil)

// E2ETestSuite drives the assembled router over HTTP: real token service, resolver, guard and
// auth service on an in-memory user store, and the farm stack on a mocked pool.
type E2ETestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	users  *memUserRepo
	pool   pgxmock.PgxPoolIface
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var cfg config.Config
	cfg.Mode = "development"
	cfg.JWT = config.JWTConfig{SecretKey: "e2e-secret", AccessTokenTTL: 30 * time.Minute}
	cfg.Auth.DevAPIKey = e2eDevKey
	cfg.Auth.DevUserID = 1

	tokens, err := auth.NewTokenService(cfg.JWT)
	s.Require().NoError(err)

	s.users = newMemUserRepo(types.User{ID: 1, Username: "admin", Email: "admin@cloudsolar.com", IsAdmin: true, IsActive: true})
	authService := auth.NewAuthService(s.users, tokens, logger)
	resolver := auth.NewResolver(s.users, logger, auth.BuildStrategies(&cfg, tokens, nil)...)

	pool, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.pool = pool
	farmService := farm.NewService(farm.NewRepository(pool, logger), cache.New(time.Minute, time.Minute), logger)

	r := chi.NewMux()
	appMiddleware.Use(r, logger, 5*time.Second)
	r.Mount("/", router.SetupRouter(&router.Config{
		AuthHandler:     auth.NewAuthHandler(authService, logger),
		FarmHandler:     farm.NewHandler(farmService, logger),
		EnergyHandler:   energy.NewHandler(energy.NewService(energy.NewRepository(pool, logger), logger), logger),
		CustomerHandler: customer.NewHandler(customer.NewService(customer.NewRepository(pool, logger), logger), logger),
		Guard:           auth.NewGuard(resolver, logger),
	}))

	s.server = httptest.NewServer(r)
	s.client = s.server.Client()
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
	s.pool.Close()
}

func (s *E2ETestSuite) TearDownTest() {
	s.NoError(s.pool.ExpectationsWereMet())
}

type e2eResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r e2eResponse) decode(v any) error {
	return json.Unmarshal(r.body, v)
}

func (r e2eResponse) errorMessage() string {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(r.body, &body)
	return body.Error
}

func (s *E2ETestSuite) do(method, path string, body any, headers map[string]string) e2eResponse {
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.server.URL+path, rdr)
	s.Require().NoError(err)
	if rdr != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return e2eResponse{status: resp.StatusCode, header: resp.Header, body: raw}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

var devKey = map[string]string{"X-API-Key": e2eDevKey}

func (s *E2ETestSuite) signupAndLogin(username string) (int64, string) {
	resp := s.do(http.MethodPost, "/api/v1/auth/signup", auth.SignupRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.status, string(resp.body))
	var user types.User
	s.Require().NoError(resp.decode(&user))

	resp = s.do(http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{Username: username, Password: "correct-horse"}, nil)
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))
	var tok auth.TokenResponse
	s.Require().NoError(resp.decode(&tok))
	s.Equal("bearer", strings.ToLower(tok.TokenType))
	s.Equal(int64(1800), tok.ExpiresIn)
	return user.ID, tok.AccessToken
}

func (s *E2ETestSuite) TestSignupLoginAndProfile() {
	id, token := s.signupAndLogin("alice")

	resp := s.do(http.MethodPost, "/api/v1/auth/signup", auth.SignupRequest{
		Username: "alice", Email: "other@example.com", Password: "correct-horse",
	}, nil)
	s.Equal(http.StatusBadRequest, resp.status)
	s.Equal("Username already registered", resp.errorMessage())

	resp = s.do(http.MethodGet, "/api/v1/auth/me", nil, bearer(token))
	s.Require().Equal(http.StatusOK, resp.status)
	var me types.User
	s.Require().NoError(resp.decode(&me))
	s.Equal(id, me.ID)
	s.Equal("alice", me.Username)
	s.NotContains(string(resp.body), "correct-horse")
	s.NotContains(string(resp.body), "hashed_password")

	resp = s.do(http.MethodPut, "/api/v1/auth/me", map[string]string{"city": "Lisbon"}, bearer(token))
	s.Require().Equal(http.StatusOK, resp.status)
	s.Require().NoError(resp.decode(&me))
	s.Require().NotNil(me.City)
	s.Equal("Lisbon", *me.City)

	resp = s.do(http.MethodGet, "/api/v1/auth/session", nil, bearer(token))
	s.Require().Equal(http.StatusOK, resp.status)
	var sess auth.SessionResponse
	s.Require().NoError(resp.decode(&sess))
	s.True(sess.Authenticated)
	s.Equal("alice", sess.User.Username)

	resp = s.do(http.MethodGet, "/", nil, bearer(token))
	s.Equal(http.StatusOK, resp.status)
	s.Contains(string(resp.body), "Welcome to Cloud Solar API, alice")
}

func (s *E2ETestSuite) TestLoginWithPasswordForm() {
	s.signupAndLogin("frank")

	form := url.Values{"username": {"frank"}, "password": {"correct-horse"}}
	resp := s.do(http.MethodPost, "/api/v1/auth/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))
	s.Equal("no-store", resp.header.Get("Cache-Control"))

	form.Set("password", "wrong-horse")
	resp = s.do(http.MethodPost, "/api/v1/auth/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	s.Equal(http.StatusUnauthorized, resp.status)
	s.Equal("Incorrect username or password", resp.errorMessage())
	s.Equal("Bearer", resp.header.Get("WWW-Authenticate"))
}

func (s *E2ETestSuite) TestAdminPromotion() {
	id, token := s.signupAndLogin("bob")

	resp := s.do(http.MethodGet, "/api/v1/admin/users", nil, bearer(token))
	s.Equal(http.StatusForbidden, resp.status)
	s.Equal("Admin privileges required", resp.errorMessage())

	resp = s.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/users/%d", id), map[string]bool{"is_admin": true}, devKey)
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))

	// The same token now passes: privileges are read from the store on every request.
	resp = s.do(http.MethodGet, "/api/v1/admin/users?limit=2", nil, bearer(token))
	s.Require().Equal(http.StatusOK, resp.status)
	var users []types.User
	s.Require().NoError(resp.decode(&users))
	s.Len(users, 2)
	s.Equal("admin", users[0].Username)
}

func (s *E2ETestSuite) TestDeactivation() {
	id, token := s.signupAndLogin("carol")

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/auth/me", nil, bearer(token)).status)

	resp := s.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/users/%d", id), map[string]bool{"is_active": false}, devKey)
	s.Require().Equal(http.StatusOK, resp.status)

	resp = s.do(http.MethodGet, "/api/v1/auth/me", nil, bearer(token))
	s.Equal(http.StatusForbidden, resp.status)
	s.Equal("Inactive user account", resp.errorMessage())

	resp = s.do(http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{Username: "carol", Password: "correct-horse"}, nil)
	s.Equal(http.StatusForbidden, resp.status)

	resp = s.do(http.MethodGet, "/api/v1/auth/session", nil, bearer(token))
	s.Equal(http.StatusOK, resp.status)
	s.Contains(string(resp.body), `"authenticated":false`)
}

func (s *E2ETestSuite) TestCredentialFailures() {
	resp := s.do(http.MethodGet, "/api/v1/auth/me", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.status)
	s.Equal("Bearer", resp.header.Get("WWW-Authenticate"))
	s.Equal("Not authenticated", resp.errorMessage())

	resp = s.do(http.MethodGet, "/api/v1/auth/me", nil, bearer("not.a.token"))
	s.Equal(http.StatusUnauthorized, resp.status)
	s.Equal(`Bearer error="invalid_token"`, resp.header.Get("WWW-Authenticate"))

	other, err := auth.NewTokenService(config.JWTConfig{SecretKey: "someone-else", AccessTokenTTL: time.Minute})
	s.Require().NoError(err)
	forged, err := other.IssueForUser(&types.User{ID: 1, Username: "admin"})
	s.Require().NoError(err)
	resp = s.do(http.MethodGet, "/api/v1/admin/users", nil, bearer(forged))
	s.Equal(http.StatusUnauthorized, resp.status)

	resp = s.do(http.MethodGet, "/api/v1/auth/me", nil, map[string]string{"X-API-Key": "wrong"})
	s.Equal(http.StatusUnauthorized, resp.status)

	resp = s.do(http.MethodPost, "/api/v1/auth/signup", `{"username":`, nil)
	s.Equal(http.StatusBadRequest, resp.status)

	resp = s.do(http.MethodGet, "/api/v1/nowhere", nil, devKey)
	s.Equal(http.StatusNotFound, resp.status)
}

func (s *E2ETestSuite) TestDevKeyActsAsConfiguredUser() {
	resp := s.do(http.MethodGet, "/api/v1/auth/me", nil, devKey)
	s.Require().Equal(http.StatusOK, resp.status)
	var me types.User
	s.Require().NoError(resp.decode(&me))
	s.Equal(int64(1), me.ID)
	s.True(me.IsAdmin)
}

func (s *E2ETestSuite) TestFarmCreateAndCachedRead() {
	farmCols := []string{"farm_id", "farm_name", "location_address", "latitude", "longitude",
		"total_capacity_kw", "available_capacity_kw", "land_lease_start_date", "land_lease_end_date",
		"land_owner", "operational_status", "commissioning_date", "created_at", "updated_at"}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(farmCols).
			AddRow(int64(7), "Sunny Ridge", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, now, now)
	}

	s.pool.ExpectQuery(`INSERT INTO solar_farms \(farm_name\) VALUES \(\$1\) RETURNING farm_id`).
		WithArgs("Sunny Ridge").
		WillReturnRows(row())
	s.pool.ExpectQuery(`FROM solar_farms WHERE farm_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(row())

	resp := s.do(http.MethodPost, "/api/v1/farms", map[string]string{"farm_name": "Sunny Ridge"}, devKey)
	s.Require().Equal(http.StatusCreated, resp.status, string(resp.body))

	for range 2 {
		resp = s.do(http.MethodGet, "/api/v1/farms/7", nil, devKey)
		s.Require().Equal(http.StatusOK, resp.status)
		var f types.SolarFarm
		s.Require().NoError(resp.decode(&f))
		s.Equal("Sunny Ridge", f.FarmName)
	}

	resp = s.do(http.MethodPost, "/api/v1/farms", map[string]string{"farm_name": "Sunny Ridge"}, nil)
	s.Equal(http.StatusUnauthorized, resp.status)
}
