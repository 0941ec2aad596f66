// Package testbed provides small widgets used by the tester's own tests.
package testbed

import (
	"strconv"
	"time"

	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/primitives"
)

// Counter renders a button showing a count that increments on tap.
type Counter struct {
	core.StatefulBase
	Initial int
	OnTap   func(count int)
}

func (Counter) CreateState() core.State { return &counterState{} }

type counterState struct {
	core.StateBase
	count *core.Managed[int]
}

func (s *counterState) InitState() {
	s.count = core.NewManaged(s, s.Element().Widget().(Counter).Initial)
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Counter)
	return primitives.Button{
		TestID: "counter",
		Label:  strconv.Itoa(s.count.Value()),
		OnTap: func() {
			s.count.Update(func(v int) int { return v + 1 })
			if w.OnTap != nil {
				w.OnTap(s.count.Value())
			}
		},
	}
}

// Delayed shows Pending until Delay has elapsed, then Done.
type Delayed struct {
	core.StatefulBase
	Delay   time.Duration
	Pending string
	Done    string
}

func (Delayed) CreateState() core.State { return &delayedState{} }

type delayedState struct {
	core.StateBase
	done bool
}

func (s *delayedState) InitState() {
	timer := animation.AfterFunc(s.Element().Widget().(Delayed).Delay, func() {
		s.SetState(func() { s.done = true })
	})
	s.OnDispose(func() { timer.Stop() })
}

func (s *delayedState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Delayed)
	label := w.Pending
	if s.done {
		label = w.Done
	}
	return primitives.Box{TestID: "delayed", Children: []core.Widget{primitives.Text{Content: label}}}
}
