package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoActiveSession    = errors.New("no active session")
	ErrSuperAdminRequired = errors.New("super admin access required")
)
