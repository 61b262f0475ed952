package view

import "github.com/hrmpro/hrm-backend-go/internal/domain/hrm"

// ViewLogin is the only reachable view before a session exists.
const (
	ViewLogin     = "login"
	ViewDashboard = "dashboard"
)

// FrameState distinguishes the transient loading placeholder from the
// rendered content that replaces it.
type FrameState string

const (
	FrameLoading FrameState = "loading"
	FrameReady   FrameState = "ready"
)

// Frame is what the router pushes to the presentation boundary.
type Frame struct {
	ViewID   string     `json:"view_id"`
	Title    string     `json:"title"`
	State    FrameState `json:"state"`
	Fragment *Fragment  `json:"fragment,omitempty"`
}

// Fragment is a presentation-neutral render tree. The markup produced from
// it is not this layer's concern.
type Fragment struct {
	Kind     string     `json:"kind"`
	Heading  string     `json:"heading,omitempty"`
	Text     string     `json:"text,omitempty"`
	Stats    []Stat     `json:"stats,omitempty"`
	Columns  []string   `json:"columns,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Items    []Item     `json:"items,omitempty"`
	Children []Fragment `json:"children,omitempty"`
}

const (
	FragmentStats        = "stats"
	FragmentTable        = "table"
	FragmentCards        = "cards"
	FragmentNotice       = "notice"
	FragmentGroup        = "group"
	FragmentConstruction = "construction"
)

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend,omitempty"`
}

type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

// Renderer turns a read-only document snapshot into a fragment for one view.
type Renderer func(doc hrm.Document) Fragment

// Sink receives frames from the router. The HTTP layer keeps the latest
// frame; a TUI or SSR layer could stream them instead.
type Sink interface {
	Present(frame Frame)
}

// RoleSuperAdminOnly tags a navigation group as visible to the top
// privilege tier only. Entry-level hiding uses an exact-role hide list.
const RoleSuperAdminOnly = "superadmin-only"

type NavEntry struct {
	ViewID  string     `json:"view_id"`
	Label   string     `json:"label"`
	Icon    string     `json:"icon,omitempty"`
	HideFor []hrm.Role `json:"hide_for,omitempty"`
}

type NavGroup struct {
	Label   string     `json:"label"`
	Role    string     `json:"role,omitempty"`
	Entries []NavEntry `json:"entries"`
}
