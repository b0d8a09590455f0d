package clock

import (
	"sync"
	"time"
)

// Clock abstracts time for components that timestamp events or pace
// simulated lifecycles, so tests can run instantly and deterministically.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
	// Sleep pauses for the given duration. Implementations may return
	// immediately.
	Sleep(d time.Duration)
}

// Real is a Clock backed by the wall clock.
type Real struct{}

// Now implements Clock.
func (Real) Now() time.Time { return time.Now().UTC() }

// Sleep implements Clock.
func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Manual is a Clock under test control. Sleep advances the clock instead of
// blocking, so each simulated lifecycle step gets a strictly later timestamp.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start.UTC()}
}

// Now implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Tick one microsecond per read so consecutive events never share a
	// timestamp even when the caller skips Sleep.
	m.now = m.now.Add(time.Microsecond)
	return m.now
}

// Sleep implements Clock by advancing the internal time.
func (m *Manual) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.now = m.now.Add(d)
	}
}
