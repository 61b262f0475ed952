package auth

import (
	"context"
	"fmt"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/jwt"
)

type SessionServiceImpl struct {
	store hrm.StoreService
	jwt.Service
}

func NewSessionService(store hrm.StoreService, jwtService jwt.Service) auth.SessionService {
	return &SessionServiceImpl{
		store:   store,
		Service: jwtService,
	}
}

// Login implements auth.SessionService. The store performs the credential
// check and session materialization; this layer only adds the transport
// token for the HTTP boundary.
func (a *SessionServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	session, ok := a.store.Login(ctx, req.Username, req.Password)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateAccessToken(session)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Session:              session,
	}, nil
}

// Logout implements auth.SessionService.
func (a *SessionServiceImpl) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	return nil
}

// CurrentSession implements auth.SessionService.
func (a *SessionServiceImpl) CurrentSession(ctx context.Context) (hrm.Session, error) {
	if err := ctx.Err(); err != nil {
		return hrm.Session{}, err
	}
	session, ok := a.store.CurrentSession()
	if !ok {
		return hrm.Session{}, auth.ErrNoActiveSession
	}
	return session, nil
}
