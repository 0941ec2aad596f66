package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/primitives"
)

// MenuAction is one entry of a [ProfileMenu].
type MenuAction struct {
	Label    string
	Shortcut string
	Disabled bool
	OnSelect func()
}

// ProfileMenu is the account menu of the admin header: an avatar trigger
// showing the user's initials and a panel aligned to the trigger's end.
type ProfileMenu struct {
	core.StatelessBase
	Name    string
	Email   string
	Actions []MenuAction
	// OnSignOut adds a trailing "Sign out" entry when set.
	OnSignOut func()
}

func (p ProfileMenu) Build(ctx core.BuildContext) core.Widget {
	entries := []core.Widget{
		disclosure.Label{Text: p.Name},
	}
	if p.Email != "" {
		entries = append(entries, disclosure.Label{Text: p.Email})
	}
	if len(p.Actions) > 0 {
		entries = append(entries, disclosure.Separator{})
		group := make([]core.Widget, 0, len(p.Actions))
		for _, action := range p.Actions {
			group = append(group, disclosure.Item{
				Label:    action.Label,
				Shortcut: action.Shortcut,
				Disabled: action.Disabled,
				OnSelect: action.OnSelect,
			})
		}
		entries = append(entries, disclosure.Group{Children: group})
	}
	if p.OnSignOut != nil {
		entries = append(entries,
			disclosure.Separator{},
			disclosure.Item{Label: "Sign out", OnSelect: p.OnSignOut},
		)
	}

	avatar := primitives.Box{
		Tag:      "span",
		Attrs:    map[string]string{"data-slot": "avatar", "aria-label": p.Name},
		Children: []core.Widget{primitives.Text{Content: Initials(p.Name)}},
	}
	return disclosure.Root{
		TestID: "profile-menu",
		Children: []core.Widget{
			disclosure.Trigger{Child: avatar},
			disclosure.Panel{Align: disclosure.AlignEnd, Label: "Account", Children: entries},
		},
	}
}

// Initials returns up to two uppercase initials from the first and last
// words of name, or "?" when name has no letters.
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 {
		return "?"
	}
	first, _ := utf8.DecodeRuneInString(words[0])
	out := string(unicode.ToUpper(first))
	if len(words) > 1 {
		last, _ := utf8.DecodeRuneInString(words[len(words)-1])
		out += string(unicode.ToUpper(last))
	}
	return out
}
