package brain

import "github.com/iburimskiy/brain-visualization/internal/config"

// Layer classifies a node's ring in the layout.
type Layer uint8

const (
	Core Layer = iota
	Mid
	Outer
	Edge
)

var layerNames = [...]string{"core", "mid", "outer", "edge"}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// RestBrightness is the brightness a node settles to when nothing excites it.
func (l Layer) RestBrightness() float64 {
	switch l {
	case Core:
		return 0.7
	case Mid:
		return 0.5
	case Outer:
		return 0.3
	default:
		return 0.15
	}
}

// Node is a vertex of the brain graph. Radius, Layer, Base and Adj are
// fixed once the graph is built.
type Node struct {
	Pos  Vec
	Base Vec
	Vel  Vec

	Radius           float64
	Brightness       float64
	TargetBrightness float64
	Phase            float64
	Layer            Layer
	Adj              []int
	ClickEnergy      float64
}

// TrailPoint is one remembered particle position.
type TrailPoint struct {
	Pos   Vec
	Alpha float64
}

// Trail is a fixed-capacity history, oldest first.
type Trail struct {
	pts   [config.TrailLength]TrailPoint
	start int
	n     int
}

// Push appends p, evicting the oldest point when full.
func (t *Trail) Push(p TrailPoint) {
	if t.n < len(t.pts) {
		t.pts[(t.start+t.n)%len(t.pts)] = p
		t.n++
		return
	}
	t.pts[t.start] = p
	t.start = (t.start + 1) % len(t.pts)
}

func (t *Trail) Len() int { return t.n }

// At returns the i-th point, 0 being the oldest.
func (t *Trail) At(i int) TrailPoint {
	return t.pts[(t.start+i)%len(t.pts)]
}

// Particle travels along the edge From -> To.
type Particle struct {
	From, To   int
	Progress   float64
	Speed      float64
	Brightness float64
	Size       float64
	Pos        Vec
	Trail      Trail

	dead bool
}

// Burst reports whether the particle came from a click burst.
func (p *Particle) Burst() bool { return p.Speed > config.BurstSpeedFloor }

// Shockwave is an expanding ring.
type Shockwave struct {
	Origin    Vec
	Radius    float64
	MaxRadius float64
	Alpha     float64
	Speed     float64
}

// Spark is a short-lived ballistic ember.
type Spark struct {
	Pos     Vec
	Vel     Vec
	Life    float64
	MaxLife float64
	Size    float64
	Hue     float64
}

// Beam is a jagged bolt from a click to a node.
type Beam struct {
	From, To Vec
	Life     float64
	MaxLife  float64
	Width    float64
	// Lateral offsets of the interior vertices, re-rolled every frame.
	Jitter [config.BeamSegments - 1]float64
}

// Pointer is the normalized pointer state.
type Pointer struct {
	Pos  Vec
	Down bool
}

// Active reports whether the pointer is over the surface.
func (p Pointer) Active() bool { return p.Pos.X > 0 && p.Pos.Y > 0 }
