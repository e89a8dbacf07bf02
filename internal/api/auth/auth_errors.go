package auth

import (
	"errors"
	"net/http"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
)

var (
	// ErrConfiguration means the auth layer cannot be built, e.g. no signing secret. Fatal at startup.
	ErrConfiguration = errors.New("auth configuration error")
	// ErrInvalidCredential covers bad signatures, malformed or expired tokens.
	ErrInvalidCredential     = errors.New("could not validate credentials")
	ErrUnauthenticated       = errors.New("not authenticated")
	ErrUserNotFound          = errors.New("user not found")
	ErrInactiveAccount       = errors.New("inactive account")
	ErrInsufficientPrivilege = errors.New("admin privileges required")

	ErrUsernameTaken  = errors.New("username already registered")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("incorrect username or password")
)

// StatusFor maps an auth error to its HTTP status and client message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, ErrBadCredentials):
		return http.StatusUnauthorized, "Incorrect username or password"
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, ErrInactiveAccount):
		return http.StatusForbidden, "Inactive user account"
	case errors.Is(err, ErrInsufficientPrivilege):
		return http.StatusForbidden, "Admin privileges required"
	case errors.Is(err, ErrUsernameTaken):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// WriteError writes the response for err. Every 401 carries a WWW-Authenticate challenge.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := StatusFor(err)
	if status == http.StatusUnauthorized {
		challenge := "Bearer"
		if errors.Is(err, ErrInvalidCredential) {
			challenge = `Bearer error="invalid_token"`
		}
		w.Header().Set("WWW-Authenticate", challenge)
	}
	api.ErrorResponse(w, r, status, msg)
}
