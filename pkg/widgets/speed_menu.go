package widgets

import (
	"strconv"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
)

// DefaultRates are the playback rates offered when SpeedMenu.Rates is empty.
var DefaultRates = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}

// SpeedMenu is the playback-speed menu of the lecture video player. It
// opens above the player controls, aligned to their end.
type SpeedMenu struct {
	core.StatelessBase
	Rate         float64
	Rates        []float64
	OnRateChange func(rate float64)
}

func (m SpeedMenu) Build(ctx core.BuildContext) core.Widget {
	rates := m.Rates
	if len(rates) == 0 {
		rates = DefaultRates
	}
	entries := []core.Widget{disclosure.Label{Text: "Playback speed"}}
	for _, rate := range rates {
		entries = append(entries, disclosure.RadioItem{
			Label:    FormatRate(rate),
			Checked:  rate == m.Rate,
			OnSelect: m.rateHandler(rate),
		})
	}
	return disclosure.Root{
		TestID: "speed-menu",
		Children: []core.Widget{
			disclosure.Trigger{Label: FormatRate(m.Rate), Attrs: map[string]string{"aria-label": "Playback speed"}},
			disclosure.Panel{Side: disclosure.SideTop, Align: disclosure.AlignEnd, Children: entries},
		},
	}
}

func (m SpeedMenu) rateHandler(rate float64) func() {
	return func() {
		if m.OnRateChange != nil && rate != m.Rate {
			m.OnRateChange(rate)
		}
	}
}

// FormatRate renders a playback rate such as "1.25x".
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "x"
}
