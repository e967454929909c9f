// Package brain simulates the interactive neural graph: layout, graph
// construction, node kinematics and the click-triggered transient effects.
//
// A Sim is not safe for concurrent use. The host must serialize input
// calls and Step (ebiten does so by running both from Update).
package brain

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Options configures a new simulation.
type Options struct {
	Width, Height float64
	Seed          uint64
}

// Sim owns the node graph, every transient effect and the interaction state.
type Sim struct {
	rng    *rand.Rand
	width  float64
	height float64

	Nodes      []Node
	Particles  []Particle
	Shockwaves []Shockwave
	Sparks     []Spark
	Beams      []Beam

	Pointer      Pointer
	Attract      bool
	GlobalEnergy float64
	Time         float64

	lastClick time.Time
}

// New creates a simulation laid out for the given surface size.
func New(opts Options) *Sim {
	s := &Sim{
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		Pointer: Pointer{Pos: Vec{config.OffCanvas, config.OffCanvas}},
	}
	s.Resize(opts.Width, opts.Height)
	return s
}

// Size returns the logical surface size.
func (s *Sim) Size() (w, h float64) { return s.width, s.height }

// Ready reports whether the surface had a usable size at the last layout.
func (s *Sim) Ready() bool { return len(s.Nodes) > 0 }

// Center is the middle of the brain ellipse.
func (s *Sim) Center() Vec { return Ellipse(s.width, s.height).Center }

// Resize regenerates the layout, graph and seeded particles, and drops all
// other transient effects. A non-positive size leaves the sim idle.
func (s *Sim) Resize(w, h float64) {
	s.width, s.height = w, h
	s.Shockwaves = s.Shockwaves[:0]
	s.Sparks = s.Sparks[:0]
	s.Beams = s.Beams[:0]
	s.Particles = s.Particles[:0]
	s.Nodes = nil

	if w <= 0 || h <= 0 {
		return
	}
	s.Nodes = generateNodes(w, h, s.rng)
	connect(s.Nodes, w, h, s.rng)
	s.Particles = seedParticles(s.Particles, s.Nodes, s.rng)
}

// Step advances the simulation by one frame.
func (s *Sim) Step() {
	if !s.Ready() {
		return
	}
	s.Time += config.FrameDelta
	s.GlobalEnergy *= config.GlobalEnergyDecay

	s.integrate()
	s.advanceBeams()
	s.advanceShockwaves()
	s.advanceParticles()
	s.advanceSparks()
}

// Stats summarizes the current population.
type Stats struct {
	Nodes        int
	Edges        int
	Particles    int
	Shockwaves   int
	Sparks       int
	Beams        int
	Attract      bool
	GlobalEnergy float64
}

func (s *Sim) Stats() Stats {
	st := Stats{
		Nodes:        len(s.Nodes),
		Particles:    len(s.Particles),
		Shockwaves:   len(s.Shockwaves),
		Sparks:       len(s.Sparks),
		Beams:        len(s.Beams),
		Attract:      s.Attract,
		GlobalEnergy: s.GlobalEnergy,
	}
	for _, n := range s.Nodes {
		st.Edges += len(n.Adj)
	}
	st.Edges /= 2
	return st
}

func (s *Sim) uniform(lo, span float64) float64 {
	return lo + s.rng.Float64()*span
}
