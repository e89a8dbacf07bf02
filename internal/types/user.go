package types

import (
	"time"
)

// User is a customer or operator account. Customers own panels and receive credits;
// admins manage farms and other accounts.
type User struct {
	ID                   int64      `json:"id"`
	Username             string     `json:"username"`
	Email                string     `json:"email"`
	HashedPassword       string     `json:"-"` // never exposed
	FullName             *string    `json:"full_name"`
	Location             *string    `json:"location"`
	FirstName            *string    `json:"first_name,omitempty"`
	LastName             *string    `json:"last_name,omitempty"`
	Phone                *string    `json:"phone,omitempty"`
	Address              *string    `json:"address,omitempty"`
	City                 *string    `json:"city,omitempty"`
	State                *string    `json:"state,omitempty"`
	PostalCode           *string    `json:"postal_code,omitempty"`
	UtilityProvider      *string    `json:"utility_provider,omitempty"`
	UtilityAccountNumber *string    `json:"utility_account_number,omitempty"`
	RegistrationDate     *Date      `json:"registration_date,omitempty"`
	AccountStatus        *string    `json:"account_status,omitempty"`
	ExternalID           *string    `json:"-"` // identity issued by the external session service
	IsAdmin              bool       `json:"is_admin"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	LastLoginAt          *time.Time `json:"last_login_at,omitempty"`
}

// CreateUserParams carries an already hashed password.
type CreateUserParams struct {
	Username       string
	Email          string
	HashedPassword string
	FullName       *string
	Location       *string
	ExternalID     *string
	IsAdmin        bool
	IsActive       bool
}

// UpdateProfileParams defines the fields a user may change on their own account.
// Use pointers for optional fields, allowing partial updates.
type UpdateProfileParams struct {
	FullName             *string `json:"full_name,omitempty"`
	Location             *string `json:"location,omitempty"`
	FirstName            *string `json:"first_name,omitempty"`
	LastName             *string `json:"last_name,omitempty"`
	Phone                *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address              *string `json:"address,omitempty"`
	City                 *string `json:"city,omitempty"`
	State                *string `json:"state,omitempty"`
	PostalCode           *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	UtilityProvider      *string `json:"utility_provider,omitempty"`
	UtilityAccountNumber *string `json:"utility_account_number,omitempty"`
}

// UpdateUserStatusParams is the administrative counterpart of UpdateProfileParams.
type UpdateUserStatusParams struct {
	IsAdmin       *bool   `json:"is_admin,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	AccountStatus *string `json:"account_status,omitempty" validate:"omitempty,oneof=active suspended closed"`
}
