package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/brain-visualization/internal/brain"
)

type rawTouch struct {
	id   ebiten.TouchID
	x, y int
}

// input polls ebiten's pointer state into a brain.InputSample.
type input struct {
	ids     []ebiten.TouchID
	started []ebiten.TouchID
	touches []rawTouch
	sample  brain.InputSample
}

func (in *input) poll(scale float64) brain.InputSample {
	cx, cy := ebiten.CursorPosition()

	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	in.touches = in.touches[:0]
	for _, id := range in.ids {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, rawTouch{id: id, x: x, y: y})
	}
	in.started = inpututil.AppendJustPressedTouchIDs(in.started[:0])

	return in.build(cx, cy, ebiten.IsFocused(),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		scale)
}

// build converts the polled screen-pixel state to logical units.
func (in *input) build(cx, cy int, focused, down, up bool, scale float64) brain.InputSample {
	s := &in.sample
	s.Cursor = toLogical(cx, cy, scale)
	s.Focused = focused
	s.MouseDown = down
	s.MouseUp = up

	s.Touches = s.Touches[:0]
	for _, t := range in.touches {
		s.Touches = append(s.Touches, brain.Touch{ID: int(t.id), Pos: toLogical(t.x, t.y, scale)})
	}
	s.TouchStarted = s.TouchStarted[:0]
	for _, id := range in.started {
		s.TouchStarted = append(s.TouchStarted, int(id))
	}
	return *s
}

func toLogical(x, y int, scale float64) brain.Vec {
	if scale <= 0 {
		scale = 1
	}
	return brain.Vec{X: float64(x) / scale, Y: float64(y) / scale}
}
