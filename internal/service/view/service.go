package view

import (
	"strings"
	"sync"
	"time"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/domain/view"
)

// viewTitles maps view ids to display titles. Unmapped ids fall back to a
// capitalized form of the id.
var viewTitles = map[string]string{
	"dashboard":  "Dashboard Overview",
	"employees":  "Employee Directory",
	"shifts":     "Shift Management",
	"attendance": "Attendance Tracking",
	"id-cards":   "ID Card Creator",
	"payroll":    "Payroll & Salaries",
	"companies":  "Company Management",
	"locations":  "Location Management",
	"clients":    "Client Status Tracking",
	"admin":      "Admin Control Panel",
	"reminders":  "Reminders & Notifications",
}

// defaultNavigation is the full descriptor set before role filtering.
// Group-level visibility uses the superadmin-only tag; entry-level
// visibility uses an exact-role hide list.
var defaultNavigation = []view.NavGroup{
	{
		Label: "Workforce",
		Entries: []view.NavEntry{
			{ViewID: "dashboard", Label: "Dashboard", Icon: "layout-dashboard"},
			{ViewID: "employees", Label: "Employees", Icon: "users"},
			{ViewID: "attendance", Label: "Attendance", Icon: "calendar-check"},
			{ViewID: "shifts", Label: "Shifts", Icon: "clock"},
			{ViewID: "id-cards", Label: "ID Cards", Icon: "contact-2"},
		},
	},
	{
		Label: "Operations",
		Entries: []view.NavEntry{
			{ViewID: "payroll", Label: "Payroll", Icon: "banknote", HideFor: []hrm.Role{hrm.RoleAdmin}},
			{ViewID: "clients", Label: "Clients", Icon: "briefcase"},
			{ViewID: "reminders", Label: "Reminders", Icon: "bell"},
		},
	},
	{
		Label: "Organization",
		Role:  view.RoleSuperAdminOnly,
		Entries: []view.NavEntry{
			{ViewID: "companies", Label: "Companies", Icon: "building"},
			{ViewID: "locations", Label: "Locations", Icon: "map-pin"},
			{ViewID: "admin", Label: "Admin Panel", Icon: "shield"},
		},
	},
}

// RouterImpl renders one view at a time. Each RenderView bumps a generation
// counter; a dispatch scheduled by an older call notices the newer
// generation and drops its result, so rapid navigation never lets a stale
// fragment overwrite the current view.
type RouterImpl struct {
	mu            sync.Mutex
	store         hrm.StoreService
	sink          view.Sink
	delay         time.Duration
	renderers     map[string]view.Renderer
	current       string
	generation    uint64
	authenticated bool
	lastFrame     *view.Frame
}

func NewRouter(store hrm.StoreService, sink view.Sink, delay time.Duration) *RouterImpl {
	return &RouterImpl{
		store:     store,
		sink:      sink,
		delay:     delay,
		renderers: make(map[string]view.Renderer),
		current:   view.ViewLogin,
	}
}

// Register implements view.Router.
func (r *RouterImpl) Register(viewID string, renderer view.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[viewID] = renderer
}

// Activate implements view.Router.
func (r *RouterImpl) Activate(session hrm.Session) {
	r.mu.Lock()
	r.authenticated = true
	r.mu.Unlock()
	r.RenderView(view.ViewDashboard)
}

// Deactivate implements view.Router. Bumping the generation also cancels
// any dispatch still pending from before the logout.
func (r *RouterImpl) Deactivate() {
	r.mu.Lock()
	r.authenticated = false
	r.current = view.ViewLogin
	r.generation++
	frame := view.Frame{ViewID: view.ViewLogin, Title: "Sign In", State: view.FrameReady}
	r.lastFrame = &frame
	r.mu.Unlock()
	r.sink.Present(frame)
}

// RenderView implements view.Router. The loading frame goes out
// synchronously; the rendered fragment follows after the transition delay
// unless a newer render supersedes it.
func (r *RouterImpl) RenderView(viewID string) {
	r.mu.Lock()
	if !r.authenticated {
		r.mu.Unlock()
		return
	}
	r.current = viewID
	r.generation++
	gen := r.generation
	title := titleFor(viewID)
	loading := view.Frame{ViewID: viewID, Title: title, State: view.FrameLoading}
	r.lastFrame = &loading
	r.mu.Unlock()

	r.sink.Present(loading)

	time.AfterFunc(r.delay, func() {
		r.dispatch(viewID, title, gen)
	})
}

func (r *RouterImpl) dispatch(viewID, title string, gen uint64) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}
	renderer, ok := r.renderers[viewID]
	r.mu.Unlock()

	if !ok {
		renderer = underConstruction
	}

	fragment := renderer(r.store.Snapshot())
	frame := view.Frame{ViewID: viewID, Title: title, State: view.FrameReady, Fragment: &fragment}

	// The snapshot render ran unlocked; re-check before publishing.
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}
	r.lastFrame = &frame
	r.mu.Unlock()

	r.sink.Present(frame)
}

// CurrentView implements view.Router.
func (r *RouterImpl) CurrentView() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// CurrentFrame implements view.Router.
func (r *RouterImpl) CurrentFrame() (view.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFrame == nil {
		return view.Frame{}, false
	}
	return *r.lastFrame, true
}

// Navigation implements view.Router. This filters what the shell shows; it
// is not an authorization check on the underlying operations.
func (r *RouterImpl) Navigation(role hrm.Role) []view.NavGroup {
	var groups []view.NavGroup
	for _, group := range defaultNavigation {
		if group.Role == view.RoleSuperAdminOnly && role != hrm.RoleSuperAdmin {
			continue
		}
		filtered := view.NavGroup{Label: group.Label, Role: group.Role}
		for _, entry := range group.Entries {
			if hiddenFor(entry, role) {
				continue
			}
			filtered.Entries = append(filtered.Entries, entry)
		}
		groups = append(groups, filtered)
	}
	return groups
}

func hiddenFor(entry view.NavEntry, role hrm.Role) bool {
	for _, hidden := range entry.HideFor {
		if hidden == role {
			return true
		}
	}
	return false
}

func titleFor(viewID string) string {
	if title, ok := viewTitles[viewID]; ok {
		return title
	}
	return capitalize(viewID)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func underConstruction(_ hrm.Document) view.Fragment {
	return view.Fragment{
		Kind: view.FragmentConstruction,
		Text: "This module is being developed with premium features. Stay tuned!",
	}
}
