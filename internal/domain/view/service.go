package view

import "github.com/hrmpro/hrm-backend-go/internal/domain/hrm"

// Router dispatches one view at a time. There is no history stack, only a
// cursor over the current view id.
type Router interface {
	// Register binds a renderer to a view id. Unregistered ids fall back
	// to the under-construction placeholder.
	Register(viewID string, r Renderer)

	// Activate marks the session as established and renders the dashboard.
	Activate(session hrm.Session)
	// Deactivate drops back to the login gate.
	Deactivate()

	// RenderView moves the cursor, presents a loading frame immediately
	// and dispatches the renderer after a short cosmetic delay. A call
	// that arrives before the delay elapses supersedes the pending one.
	RenderView(viewID string)

	CurrentView() string
	CurrentFrame() (Frame, bool)

	// Navigation returns the descriptor set filtered for a role.
	// Filtering affects visibility only; it does not block RenderView.
	Navigation(role hrm.Role) []NavGroup
}
