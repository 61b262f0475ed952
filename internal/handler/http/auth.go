package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/domain/view"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	sessionService auth.SessionService
	router         view.Router
}

func NewAuthHandler(sessionService auth.SessionService, router view.Router) AuthHandler {
	return &AuthHandlerImpl{
		sessionService: sessionService,
		router:         router,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.sessionService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.router.Activate(tokenResponse.Session)
	slog.Info("User logged in successfully", "username", tokenResponse.Session.Username)
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessionService.Logout(r.Context()); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.router.Deactivate()
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Session implements AuthHandler.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	session, err := a.sessionService.CurrentSession(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, session)
}
