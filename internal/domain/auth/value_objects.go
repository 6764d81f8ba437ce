package auth

import (
	"strings"

	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrUsernameRequired   = errs.New("username is required")
	ErrPasswordRequired   = errs.New("password is required")
	ErrInvalidRole        = errs.New("invalid role")
)

type Role string

const (
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrUsernameRequired
	}
	if password == "" {
		return Credentials{}, ErrPasswordRequired
	}
	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
