package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/domain/view"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/validator"
)

type ViewHandler interface {
	Navigation(w http.ResponseWriter, r *http.Request)
	CurrentView(w http.ResponseWriter, r *http.Request)
	SetView(w http.ResponseWriter, r *http.Request)
}

type ViewHandlerImpl struct {
	sessionService auth.SessionService
	router         view.Router
}

func NewViewHandler(sessionService auth.SessionService, router view.Router) ViewHandler {
	return &ViewHandlerImpl{
		sessionService: sessionService,
		router:         router,
	}
}

// Navigation implements ViewHandler. The descriptor set is filtered for the
// active session's role.
func (v *ViewHandlerImpl) Navigation(w http.ResponseWriter, r *http.Request) {
	session, err := v.sessionService.CurrentSession(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, v.router.Navigation(session.Role))
}

// CurrentView implements ViewHandler. The frame may still be in the loading
// state when the transition delay has not elapsed yet.
func (v *ViewHandlerImpl) CurrentView(w http.ResponseWriter, r *http.Request) {
	frame, ok := v.router.CurrentFrame()
	if !ok {
		response.Success(w, map[string]interface{}{
			"view_id": v.router.CurrentView(),
		})
		return
	}
	response.Success(w, frame)
}

// SetView implements ViewHandler.
func (v *ViewHandlerImpl) SetView(w http.ResponseWriter, r *http.Request) {
	viewID := chi.URLParam(r, "viewID")
	if !validator.IsValidViewID(viewID) {
		response.BadRequest(w, "invalid view id", nil)
		return
	}

	if _, err := v.sessionService.CurrentSession(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	v.router.RenderView(viewID)
	response.SuccessWithMessage(w, "View rendering", map[string]interface{}{
		"view_id": viewID,
	})
}
