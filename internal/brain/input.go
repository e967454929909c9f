package brain

import (
	"slices"
	"time"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Touch is one active touch point.
type Touch struct {
	ID  int
	Pos Vec
}

// InputSample is the raw pointer state polled from the host in one tick.
type InputSample struct {
	Cursor    Vec
	Focused   bool
	MouseDown bool // left button went down this tick
	MouseUp   bool // left button went up this tick

	Touches      []Touch // currently active
	TouchStarted []int   // IDs that began this tick
}

// Controller turns raw pointer and single-touch events into simulation
// state changes and click triggers.
type Controller struct {
	sim *Sim

	hovering   bool
	lastCursor Vec
	touching   bool
	touchID    int
}

func NewController(s *Sim) *Controller {
	return &Controller{sim: s, lastCursor: Vec{config.OffCanvas, config.OffCanvas}}
}

func (c *Controller) PointerMove(p Vec) {
	c.sim.Pointer.Pos = p
}

// PointerDown presses the pointer at p and fires a click stamped now.
func (c *Controller) PointerDown(p Vec, now time.Time) ClickResult {
	c.sim.Pointer.Pos = p
	c.sim.Pointer.Down = true
	return c.sim.Click(p, now)
}

func (c *Controller) PointerUp() {
	c.sim.Pointer.Down = false
}

// PointerLeave parks the pointer off the surface.
func (c *Controller) PointerLeave() {
	c.sim.Pointer = Pointer{Pos: Vec{config.OffCanvas, config.OffCanvas}}
}

func (c *Controller) TouchStart(p Vec, now time.Time) ClickResult {
	return c.PointerDown(p, now)
}

func (c *Controller) TouchMove(p Vec) {
	c.PointerMove(p)
}

func (c *Controller) TouchEnd() {
	c.PointerLeave()
}

// Apply routes one polled sample into pointer events. The first touch wins
// over the mouse until it lifts; a cursor outside the w x h surface or an
// unfocused window counts as leaving. It returns the clicks fired.
func (c *Controller) Apply(in InputSample, w, h float64, now time.Time) []ClickResult {
	var clicks []ClickResult

	if !c.touching {
		for _, id := range in.TouchStarted {
			if p, ok := findTouch(in.Touches, id); ok {
				c.touching, c.touchID, c.hovering = true, id, false
				clicks = append(clicks, c.TouchStart(p, now))
				break
			}
		}
	} else if p, ok := findTouch(in.Touches, c.touchID); ok {
		c.TouchMove(p)
	} else {
		c.touching = false
		c.TouchEnd()
	}
	if c.touching || len(in.Touches) > 0 {
		c.lastCursor = in.Cursor
		return clicks
	}

	inside := in.Focused && in.Cursor.X >= 0 && in.Cursor.Y >= 0 && in.Cursor.X < w && in.Cursor.Y < h
	if !inside {
		if c.hovering {
			c.PointerLeave()
		}
		c.hovering = false
		c.lastCursor = in.Cursor
		return clicks
	}

	// A cursor that sits still after a touch is stale, not a hover.
	moved := in.Cursor != c.lastCursor
	c.lastCursor = in.Cursor
	if moved || c.hovering || in.MouseDown {
		c.hovering = true
		c.PointerMove(in.Cursor)
	}
	if in.MouseDown {
		clicks = append(clicks, c.PointerDown(in.Cursor, now))
	}
	if in.MouseUp {
		c.PointerUp()
	}
	return clicks
}

func findTouch(ts []Touch, id int) (Vec, bool) {
	i := slices.IndexFunc(ts, func(t Touch) bool { return t.ID == id })
	if i < 0 {
		return Vec{}, false
	}
	return ts[i].Pos, true
}
