package disclosure

import (
	"reflect"
	"time"

	"github.com/campusui/campus/pkg/core"
)

const (
	// DefaultOffset is the gap between trigger and panel.
	DefaultOffset = 4
	// DefaultExitDuration is how long a closing panel stays mounted.
	DefaultExitDuration = 200 * time.Millisecond
	// NoOffset places the panel flush against the trigger. A zero Offset
	// means unset and takes the default.
	NoOffset = -1
)

// Defaults are the panel settings used when a Panel leaves a field zero.
type Defaults struct {
	Side         Side
	Align        Align
	Offset       int
	ExitDuration time.Duration
}

// BuiltinDefaults returns bottom, start, DefaultOffset and
// DefaultExitDuration.
func BuiltinDefaults() Defaults {
	return Defaults{
		Side:         SideBottom,
		Align:        AlignStart,
		Offset:       DefaultOffset,
		ExitDuration: DefaultExitDuration,
	}
}

// Gap returns the offset to lay out with: Offset, or 0 for [NoOffset].
func (d Defaults) Gap() int { return max(d.Offset, 0) }

// merge fills the zero fields of d from fallback.
func (d Defaults) merge(fallback Defaults) Defaults {
	if d.Side == "" {
		d.Side = fallback.Side
	}
	if d.Align == "" {
		d.Align = fallback.Align
	}
	if d.Offset == 0 {
		d.Offset = fallback.Offset
	}
	if d.ExitDuration == 0 {
		d.ExitDuration = fallback.ExitDuration
	}
	return d
}

// DefaultsProvider overrides panel defaults for its subtree.
type DefaultsProvider struct {
	core.InheritedBase
	Defaults Defaults
	Child    core.Widget
}

func (p DefaultsProvider) ChildWidget() core.Widget { return p.Child }

func (p DefaultsProvider) UpdateShouldNotify(old core.InheritedWidget) bool {
	return p.Defaults != old.(DefaultsProvider).Defaults
}

var defaultsType = reflect.TypeOf(DefaultsProvider{})

// DefaultsOf returns the defaults in effect at ctx, falling back to
// [BuiltinDefaults] for every unset field.
func DefaultsOf(ctx core.BuildContext) Defaults {
	if p, ok := ctx.DependOnInherited(defaultsType).(DefaultsProvider); ok {
		return p.Defaults.merge(BuiltinDefaults())
	}
	return BuiltinDefaults()
}
