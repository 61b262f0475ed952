package auth

import (
	"context"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
)

// SessionService is the session gate in front of the store. It is a demo
// gate, not a security boundary: failed logins are not counted or limited.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (hrm.Session, error)
}
