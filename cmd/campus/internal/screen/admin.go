// Package screen assembles the course administration header shown by the
// CLI and drives it outside a browser.
package screen

import (
	"fmt"
	"log/slog"

	"github.com/campusui/campus/cmd/campus/internal/config"
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/primitives"
	"github.com/campusui/campus/pkg/widgets"
)

// Admin is the header of the course administration page: course search,
// account menu, term picker and lecture speed menu, with a status line
// describing the last action.
type Admin struct {
	core.StatefulBase
	Config *config.Resolved
	// User and Email identify the signed-in account.
	User  string
	Email string
	// Logger receives one record per user action. Nil uses slog.Default.
	Logger *slog.Logger
}

func (Admin) CreateState() core.State { return &adminState{rate: 1} }

type adminState struct {
	core.StateBase
	term   string
	rate   float64
	status string
}

func (s *adminState) logger() *slog.Logger {
	if l := s.Element().Widget().(Admin).Logger; l != nil {
		return l
	}
	return slog.Default()
}

// report records status as the outcome of an action.
func (s *adminState) report(action, status string, args ...any) {
	s.logger().Debug("admin action", append([]any{"action", action}, args...)...)
	s.SetState(func() { s.status = status })
}

func (s *adminState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Admin)
	cfg := w.Config

	terms := make([]widgets.DropdownItem[string], len(cfg.Terms))
	for i, term := range cfg.Terms {
		terms[i] = widgets.DropdownItem[string]{Value: term, Label: term}
	}

	header := primitives.RowOf(
		primitives.Text{Content: cfg.AppName},
		widgets.SearchBox{
			TestID:      "course-search",
			Placeholder: "Search courses",
			Suggestions: cfg.Courses,
			OnSearch: func(query string) {
				s.report("search", fmt.Sprintf("Searched for %q", query), "query", query)
			},
			OnSelect: func(course string) {
				s.report("open-course", "Opened "+course, "course", course)
			},
		},
		widgets.ProfileMenu{
			Name:  w.User,
			Email: w.Email,
			Actions: []widgets.MenuAction{
				{Label: "Profile", Shortcut: "P", OnSelect: func() { s.report("profile", "Opened profile") }},
				{Label: "Settings", Shortcut: "S", OnSelect: func() { s.report("settings", "Opened settings") }},
				{Label: "Billing", Disabled: true},
			},
			OnSignOut: func() { s.report("sign-out", "Signed out") },
		},
	)

	controls := primitives.RowOf(
		primitives.Text{Content: "Term"},
		widgets.Dropdown[string]{
			TestID: "term-picker",
			Value:  s.term,
			Items:  terms,
			Hint:   "Select a term",
			OnChanged: func(term string) {
				s.report("term", "Term set to "+term, "term", term)
				s.SetState(func() { s.term = term })
			},
		},
		primitives.Text{Content: "Lecture"},
		widgets.SpeedMenu{
			Rate:  s.rate,
			Rates: cfg.Rates,
			OnRateChange: func(rate float64) {
				s.report("speed", "Playback at "+widgets.FormatRate(rate), "rate", rate)
				s.SetState(func() { s.rate = rate })
			},
		},
	)

	status := primitives.Box{
		TestID:   "status",
		Children: []core.Widget{primitives.Text{Content: s.status}},
	}

	return disclosure.DefaultsProvider{
		Defaults: cfg.Defaults,
		Child:    primitives.ColumnOf(header, controls, status),
	}
}
