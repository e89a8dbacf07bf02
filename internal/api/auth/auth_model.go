package auth

import (
	"time"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=100" example:"solar_sam"`
	Email    string  `json:"email" validate:"required,email,max=255" example:"sam@example.com"`
	Password string  `json:"password" validate:"required,min=8,max=72" example:"Str0ngP@ss!"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// SessionResponse answers GET /auth/session for anonymous and signed-in callers alike.
type SessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *types.User `json:"user,omitempty"`
}

// AdminUserSpec describes the account the create-admin command ensures.
type AdminUserSpec struct {
	Username string
	Email    string
	Password string
	FullName string
	Location string
}

// SeedUser is one entry of the users seed file.
type SeedUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Location string `yaml:"location"`
	IsAdmin  bool   `yaml:"is_admin"`
	Active   *bool  `yaml:"is_active"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

func tokenResponse(token string, ttl time.Duration) *TokenResponse {
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl / time.Second),
	}
}
