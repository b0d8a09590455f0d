package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestManual_NowMonotonic verifies that consecutive reads never repeat.
func TestManual_NowMonotonic(t *testing.T) {
	c := NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	first := c.Now()
	second := c.Now()

	assert.True(t, second.After(first))
}

// TestManual_SleepAdvances verifies that Sleep moves time without blocking.
func TestManual_SleepAdvances(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewManual(start)

	before := c.Now()
	c.Sleep(5 * time.Minute)
	after := c.Now()

	assert.True(t, after.Sub(before) >= 5*time.Minute)
}

// TestReal_NowIsUTC verifies that the wall clock reports UTC.
func TestReal_NowIsUTC(t *testing.T) {
	now := Real{}.Now()
	assert.Equal(t, time.UTC, now.Location())
}
