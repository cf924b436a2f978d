// README: Injectable clock; every temporal decision in the domain reads through it.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a hand-driven clock for tests and simulations.
type Manual struct {
	now time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Set(t time.Time) { m.now = t }

func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }
