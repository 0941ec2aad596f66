package widgets

import (
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/primitives"
)

// DefaultMaxSuggestions caps the suggestion list when MaxSuggestions is 0.
const DefaultMaxSuggestions = 5

// SearchBox is a text field with a fuzzy-matched suggestion menu.
//
// The menu is a controlled disclosure: it is open while the query is
// non-empty, has at least one match, and has not been dismissed. Escape,
// an outside press or choosing a suggestion dismisses it until the query
// changes again. Arrow keys pressed in the field move focus into the
// suggestions.
type SearchBox struct {
	core.StatefulBase
	Placeholder    string
	Suggestions    []string
	MaxSuggestions int
	// OnSearch is called with the query when Enter is pressed in the field.
	OnSearch func(query string)
	// OnSelect is called with the chosen suggestion.
	OnSelect func(suggestion string)
	// TestID sets data-testid on the input.
	TestID string
}

func (SearchBox) CreateState() core.State { return &searchBoxState{} }

type searchBoxState struct {
	core.StateBase
	query     string
	dismissed bool
}

// MatchSuggestions returns the suggestions matching query, best first,
// limited to limit entries when limit is positive.
func MatchSuggestions(query string, suggestions []string, limit int) fuzzy.Matches {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, suggestions)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (s *searchBoxState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(SearchBox)
	limit := w.MaxSuggestions
	if limit == 0 {
		limit = DefaultMaxSuggestions
	}
	matches := MatchSuggestions(s.query, w.Suggestions, limit)
	open := len(matches) > 0 && !s.dismissed

	entries := make([]core.Widget, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, disclosure.Item{
			WidgetKey: m.Index,
			Child:     highlight(m),
			OnSelect:  s.selectHandler(w, m.Str),
		})
	}

	return disclosure.Root{
		Open:         &open,
		OnOpenChange: s.onOpenChange,
		TestID:       "search-box",
		Children: []core.Widget{
			comboboxInput{input: primitives.TextInput{
				Value:       s.query,
				Placeholder: w.Placeholder,
				TestID:      w.TestID,
				Attrs: map[string]string{
					"role":          "combobox",
					"aria-expanded": strconv.FormatBool(open),
				},
				OnChanged: func(query string) {
					s.SetState(func() {
						s.query = query
						s.dismissed = false
					})
				},
				OnKeyDown: func(ev *dom.Event) {
					if ev.Key == dom.KeyEnter && w.OnSearch != nil {
						ev.PreventDefault()
						w.OnSearch(s.query)
					}
				},
			}},
			disclosure.Panel{Label: "Suggestions", Children: entries},
		},
	}
}

// comboboxInput names the field as the panel's anchor.
type comboboxInput struct {
	core.StatelessBase
	input primitives.TextInput
}

func (c comboboxInput) Build(ctx core.BuildContext) core.Widget {
	scope := disclosure.MustScopeOf(ctx, "SearchBox")
	in := c.input
	in.Attrs["id"] = scope.TriggerID()
	in.Attrs["aria-controls"] = scope.PanelID()
	in.Attrs["aria-autocomplete"] = "list"
	return in
}

func (s *searchBoxState) onOpenChange(open bool) {
	s.SetState(func() { s.dismissed = !open })
}

func (s *searchBoxState) selectHandler(w SearchBox, suggestion string) func() {
	return func() {
		s.SetState(func() {
			s.query = suggestion
			s.dismissed = true
		})
		if w.OnSelect != nil {
			w.OnSelect(suggestion)
		}
	}
}

// highlight renders a match with its matched runes wrapped in mark
// elements. MatchedIndexes are the byte offsets where matched runes start.
func highlight(m fuzzy.Match) core.Widget {
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}
	var parts []core.Widget
	flush := func(run string, marked bool) {
		if run == "" {
			return
		}
		text := primitives.Text{Content: run}
		if marked {
			parts = append(parts, primitives.Box{Tag: "mark", Children: []core.Widget{text}})
		} else {
			parts = append(parts, text)
		}
	}
	start, marked := 0, false
	for i := range m.Str {
		if matched[i] != marked {
			flush(m.Str[start:i], marked)
			start, marked = i, matched[i]
		}
	}
	flush(m.Str[start:], marked)
	return primitives.Box{Tag: "span", Children: parts}
}
