// Package render turns simulation state into an ordered list of draw ops.
// Building a frame never mutates the sim and uses no randomness.
package render

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Pass is a drawing layer. Ops are emitted in increasing pass order.
type Pass uint8

const (
	PassAmbient Pass = iota
	PassConnections
	PassBeams
	PassShockwaves
	PassParticles
	PassSparks
	PassNodes
	PassTraces
	PassLinks
	PassCursor
)

// Shape selects how an op is drawn.
type Shape uint8

const (
	FillCircle Shape = iota
	StrokeCircle
	Line
	DashedLine
	Polyline
	Glow // linear radial cone, additive
	Halo // radial tent peaking at half radius, additive
)

// Op is one draw call in logical coordinates. Circles and glows use A as
// the centre, lines run A -> B, polylines use Path.
type Op struct {
	Pass   Pass
	Shape  Shape
	A, B   brain.Vec
	Path   []brain.Vec
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// Frame is a reusable op buffer.
type Frame struct {
	Ops []Op

	pathBuf []brain.Vec
	near    []linkTarget
}

// Extras carries inputs that are not part of the simulation.
type Extras struct {
	AudioLevel float64 // 0..1, brightens the ambient glow
}

type linkTarget struct {
	idx  int
	dist float64
}

// Build fills f with the ops for the current state of s.
func (f *Frame) Build(s *brain.Sim, ex Extras) {
	f.Ops = f.Ops[:0]
	f.pathBuf = f.pathBuf[:0]
	if !s.Ready() {
		return
	}
	pal := paletteFor(s.Attract)
	active := s.Pointer.Active()

	if active {
		f.ambient(s, pal, ex)
	}
	f.connections(s)
	f.beams(s)
	f.shockwaves(s, pal)
	f.particles(s)
	f.sparks(s)
	f.nodes(s)
	f.traces(s)
	if active {
		f.links(s, pal)
		f.cursor(s, pal)
	}
}

func (f *Frame) add(op Op) { f.Ops = append(f.Ops, op) }

// path reserves n points in the shared path buffer.
func (f *Frame) path(n int) []brain.Vec {
	start := len(f.pathBuf)
	for range n {
		f.pathBuf = append(f.pathBuf, brain.Vec{})
	}
	return f.pathBuf[start : start+n : start+n]
}

func (f *Frame) ambient(s *brain.Sim, pal modeColors, ex Extras) {
	alpha := 0.06 * (1 + clamp01(ex.AudioLevel))
	f.add(Op{Pass: PassAmbient, Shape: Glow, A: s.Pointer.Pos, Radius: config.AmbientRadius,
		Color: withAlpha(pal.ambient, alpha)})
}

func (f *Frame) connections(s *brain.Sim) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		for _, j := range n.Adj {
			if j <= i || j >= len(s.Nodes) {
				continue
			}
			o := &s.Nodes[j]
			avg := (n.Brightness + o.Brightness) / 2
			energy := math.Max(n.ClickEnergy, o.ClickEnergy)
			alpha := avg*0.3 + energy*0.4
			width := avg*1.2 + energy*2

			if energy > 0.1 {
				f.add(Op{Pass: PassConnections, Shape: Line, A: n.Pos, B: o.Pos, Width: width,
					Color: rgba(100, 220, 255, alpha)})
				f.add(Op{Pass: PassConnections, Shape: Line, A: n.Pos, B: o.Pos, Width: width + 2,
					Color: rgba(150, 240, 255, energy*0.3)})
				continue
			}
			f.add(Op{Pass: PassConnections, Shape: Line, A: n.Pos, B: o.Pos, Width: width,
				Color: rgba(0, 180, 255, alpha)})
		}
	}
}

func (f *Frame) beams(s *brain.Sim) {
	for i := range s.Beams {
		b := &s.Beams[i]
		pts := f.path(config.BeamSegments + 1)
		pts[0] = b.From
		d := b.To.Sub(b.From)
		for seg := 1; seg <= config.BeamSegments; seg++ {
			t := float64(seg) / config.BeamSegments
			p := b.From.Add(d.Scale(t))
			if seg < config.BeamSegments {
				j := b.Jitter[seg-1]
				p = p.Add(brain.Vec{X: j, Y: j})
			}
			pts[seg] = p
		}

		alpha := b.Life * 0.8
		f.add(Op{Pass: PassBeams, Shape: Polyline, Path: pts, Width: b.Width * b.Life,
			Color: rgba(150, 230, 255, alpha)})
		f.add(Op{Pass: PassBeams, Shape: Polyline, Path: pts, Width: b.Width * b.Life * 3,
			Color: rgba(100, 200, 255, alpha*0.3)})
	}
}

func (f *Frame) shockwaves(s *brain.Sim, pal modeColors) {
	for _, w := range s.Shockwaves {
		f.add(Op{Pass: PassShockwaves, Shape: StrokeCircle, A: w.Origin, Radius: w.Radius, Width: 2,
			Color: withAlpha(pal.wave, w.Alpha*0.5)})
		f.add(Op{Pass: PassShockwaves, Shape: StrokeCircle, A: w.Origin, Radius: w.Radius, Width: 8,
			Color: withAlpha(pal.wave, w.Alpha*0.15)})
	}
}

func (f *Frame) particles(s *brain.Sim) {
	for i := range s.Particles {
		p := &s.Particles[i]
		n := p.Trail.Len()
		for t := 0; t < n; t++ {
			tp := p.Trail.At(t)
			alpha := float64(t) / float64(n) * tp.Alpha * 0.4
			f.add(Op{Pass: PassParticles, Shape: FillCircle, A: tp.Pos, Radius: p.Size * 0.6,
				Color: rgba(100, 220, 255, alpha)})
		}
		f.add(Op{Pass: PassParticles, Shape: FillCircle, A: p.Pos, Radius: p.Size,
			Color: rgba(150, 235, 255, p.Brightness)})
		f.add(Op{Pass: PassParticles, Shape: FillCircle, A: p.Pos, Radius: p.Size * 3,
			Color: rgba(100, 220, 255, p.Brightness*0.15)})
	}
}

func (f *Frame) sparks(s *brain.Sim) {
	for _, sp := range s.Sparks {
		r := sp.Size * sp.Life
		f.add(Op{Pass: PassSparks, Shape: FillCircle, A: sp.Pos, Radius: r,
			Color: hsla(sp.Hue, 1, 0.75, sp.Life)})
		f.add(Op{Pass: PassSparks, Shape: FillCircle, A: sp.Pos, Radius: r * 2.5,
			Color: hsla(sp.Hue, 1, 0.75, sp.Life*0.2)})
	}
}

// pulse is the slow per-node breathing factor in [0.4, 1].
func pulse(t, phase float64) float64 {
	return math.Sin(t*2+phase)*0.3 + 0.7
}

func (f *Frame) nodes(s *brain.Sim) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		pl := pulse(s.Time, n.Phase)

		glow := n.Radius * (4 + n.ClickEnergy*6) * n.Brightness
		if glow > 0 {
			f.add(Op{Pass: PassNodes, Shape: Glow, A: n.Pos, Radius: glow / 2,
				Color: rgba(0, 200, 255, n.Brightness*0.5*pl)})
			f.add(Op{Pass: PassNodes, Shape: Halo, A: n.Pos, Radius: glow,
				Color: rgba(0, 150, 255, n.Brightness*0.15*pl)})
		}
		f.add(Op{Pass: PassNodes, Shape: FillCircle, A: n.Pos, Radius: n.Radius * pl,
			Color: rgba(180, 240, 255, n.Brightness)})
		if n.ClickEnergy > 0.2 {
			f.add(Op{Pass: PassNodes, Shape: StrokeCircle, A: n.Pos, Radius: n.Radius * pl * 1.8, Width: 0.8,
				Color: rgba(200, 250, 255, n.ClickEnergy*0.5)})
		}
	}
}

// traces draws the circuit stubs that stick out of edge nodes.
func (f *Frame) traces(s *brain.Sim) {
	center := s.Center()
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Layer != brain.Edge {
			continue
		}
		angle := n.Base.Sub(center).Angle()
		length := 15 + math.Sin(s.Time+n.Phase)*5
		elbow := 6.0
		if math.Sin(n.Phase) <= 0 {
			elbow = -6
		}

		pts := f.path(3)
		pts[0] = n.Pos
		pts[1] = brain.Vec{X: n.Pos.X + math.Cos(angle)*length, Y: n.Pos.Y}
		pts[2] = brain.Vec{X: pts[1].X, Y: n.Pos.Y + elbow}

		alpha := n.Brightness*0.3 + n.ClickEnergy*0.4
		f.add(Op{Pass: PassTraces, Shape: Polyline, Path: pts, Width: 0.6, Color: rgba(0, 150, 220, alpha)})
		f.add(Op{Pass: PassTraces, Shape: FillCircle, A: pts[2], Radius: 1, Color: rgba(0, 200, 255, alpha)})
	}
}

// links draws dashed lines from the pointer to its nearest nodes.
func (f *Frame) links(s *brain.Sim, pal modeColors) {
	f.near = f.near[:0]
	for i := range s.Nodes {
		if d := s.Nodes[i].Pos.Dist(s.Pointer.Pos); d < config.LinkRadius {
			f.near = append(f.near, linkTarget{idx: i, dist: d})
		}
	}
	slices.SortFunc(f.near, func(a, b linkTarget) int { return cmp.Compare(a.dist, b.dist) })

	for _, lt := range f.near[:min(len(f.near), config.LinkCount)] {
		alpha := (1 - lt.dist/config.LinkRadius) * 0.35
		f.add(Op{Pass: PassLinks, Shape: DashedLine, A: s.Pointer.Pos, B: s.Nodes[lt.idx].Pos, Width: 1,
			Color: withAlpha(pal.accent, alpha)})
	}
}

func (f *Frame) cursor(s *brain.Sim, pal modeColors) {
	f.add(Op{Pass: PassCursor, Shape: FillCircle, A: s.Pointer.Pos, Radius: 3, Color: withAlpha(pal.accent, 0.6)})
	f.add(Op{Pass: PassCursor, Shape: FillCircle, A: s.Pointer.Pos, Radius: 8, Color: withAlpha(pal.accent, 0.1)})
}
