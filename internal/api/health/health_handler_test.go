package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Server is running fine!"}`, rr.Body.String())
}

func TestRoot(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"message":"Welcome to Cloud Solar API"`)
	})

	t.Run("known user", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(auth.WithUser(r.Context(), &types.User{ID: 2, Username: "alice"}))
		rr := httptest.NewRecorder()
		Root(rr, r)

		assert.Contains(t, rr.Body.String(), "Welcome to Cloud Solar API, alice")
	})
}
