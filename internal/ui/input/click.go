package input

import (
	"time"

	"github.com/bnema/pagecore/internal/domain/entity"
)

const (
	// DefaultDoubleClickInterval is the longest gap between clicks of a series.
	DefaultDoubleClickInterval = 500 * time.Millisecond
	// DefaultClickSlop is how far the pointer may move within a series.
	DefaultClickSlop = 4
)

// clickCounter assigns click counts to consecutive presses.
type clickCounter struct {
	interval time.Duration
	slop     int

	button entity.MouseButton
	pos    entity.Point
	at     time.Time
	count  int
}

func (c *clickCounter) press(button entity.MouseButton, pos entity.Point, at time.Time) int {
	d := pos.Sub(c.pos)
	if c.count > 0 &&
		button == c.button &&
		at.Sub(c.at) <= c.interval &&
		abs(d.X) <= c.slop && abs(d.Y) <= c.slop {
		c.count++
	} else {
		c.count = 1
	}
	c.button, c.pos, c.at = button, pos, at
	return c.count
}

func (c *clickCounter) reset() { c.count = 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
