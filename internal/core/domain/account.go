package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("all fields are required")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// Account is a registered user of the system.
type Account struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}
