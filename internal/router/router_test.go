package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/customer"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/energy"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/farm"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// keyResolver resolves the X-API-Key header against a fixed set of users.
type keyResolver map[string]*types.User

func (k keyResolver) Resolve(r *http.Request) (*types.User, error) {
	key := r.Header.Get("X-API-Key")
	if key == "" {
		return nil, auth.ErrUnauthenticated
	}
	u, ok := k[key]
	if !ok {
		return nil, auth.ErrInvalidCredential
	}
	return u, nil
}

// farmStub serves ListFarms only.
type farmStub struct {
	farm.Service
}

func (farmStub) ListFarms(context.Context, types.Pagination) ([]types.SolarFarm, error) {
	return []types.SolarFarm{{FarmID: 1, FarmName: "North Field"}}, nil
}

func newTestRouter() http.Handler {
	resolver := keyResolver{
		"admin-key": {ID: 1, Username: "admin", IsAdmin: true, IsActive: true},
		"alice-key": {ID: 2, Username: "alice", IsActive: true},
	}
	return SetupRouter(&Config{
		AuthHandler:     auth.NewAuthHandler(nil, testLogger),
		FarmHandler:     farm.NewHandler(farmStub{}, testLogger),
		EnergyHandler:   energy.NewHandler(nil, testLogger),
		CustomerHandler: customer.NewHandler(nil, testLogger),
		Guard:           auth.NewGuard(resolver, testLogger),
	})
}

func TestSetupRouter(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		key        string
		wantStatus int
		wantBody   string
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK, "healthy"},
		{"root anonymous", http.MethodGet, "/", "", http.StatusOK, "Welcome to Cloud Solar API"},
		{"root greets user", http.MethodGet, "/", "alice-key", http.StatusOK, "Welcome to Cloud Solar API, alice"},
		{"root ignores bad key", http.MethodGet, "/", "bogus", http.StatusOK, "Welcome"},
		{"session anonymous", http.MethodGet, "/api/v1/auth/session", "", http.StatusOK, `"authenticated":false`},
		{"session signed in", http.MethodGet, "/api/v1/auth/session", "alice-key", http.StatusOK, `"authenticated":true`},
		{"me needs credentials", http.MethodGet, "/api/v1/auth/me", "", http.StatusUnauthorized, ""},
		{"me", http.MethodGet, "/api/v1/auth/me", "alice-key", http.StatusOK, `"username":"alice"`},
		{"farms need credentials", http.MethodGet, "/api/v1/farms", "", http.StatusUnauthorized, ""},
		{"farms bad key", http.MethodGet, "/api/v1/farms", "bogus", http.StatusUnauthorized, ""},
		{"farms", http.MethodGet, "/api/v1/farms", "alice-key", http.StatusOK, "North Field"},
		{"energy needs credentials", http.MethodGet, "/api/v1/energy/generation", "", http.StatusUnauthorized, ""},
		{"customers need credentials", http.MethodGet, "/api/v1/customers/credits", "", http.StatusUnauthorized, ""},
		{"admin refused", http.MethodGet, "/api/v1/admin/users", "alice-key", http.StatusForbidden, ""},
		{"admin anonymous", http.MethodPut, "/api/v1/admin/users/2", "", http.StatusUnauthorized, ""},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
}
