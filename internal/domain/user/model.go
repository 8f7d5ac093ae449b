package user

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ErrEmailTaken is returned by repositories when the unique email index rejects an insert.
var ErrEmailTaken = errors.New("email already registered")

// User is an account. PasswordHash never leaves the service.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID string
}

func NormalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
