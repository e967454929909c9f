package brain

import (
	"math"
	"slices"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Every collection is advanced in full and then pruned, so removal never
// shifts indices under a running loop.

func (s *Sim) advanceBeams() {
	for i := range s.Beams {
		b := &s.Beams[i]
		b.Life -= config.FrameDelta / b.MaxLife
		for j := range b.Jitter {
			b.Jitter[j] = (s.rng.Float64() - 0.5) * config.BeamJitter * b.Life
		}
	}
	s.Beams = slices.DeleteFunc(s.Beams, func(b Beam) bool { return b.Life <= 0 })
}

func (s *Sim) advanceShockwaves() {
	for i := range s.Shockwaves {
		w := &s.Shockwaves[i]
		w.Radius += w.Speed
		w.Alpha -= config.WaveFade
		if w.Alpha <= 0 {
			continue
		}
		for j := range s.Nodes {
			n := &s.Nodes[j]
			off := n.Pos.Sub(w.Origin)
			ring := math.Abs(off.Len() - w.Radius)
			if ring >= config.WaveBand {
				continue
			}
			push := w.Alpha * config.WavePush * (1 - ring/config.WaveBand)
			n.Vel = n.Vel.Add(polar(off.Angle(), push))
			n.Brightness = math.Min(1, n.Brightness+w.Alpha*config.WaveGlow)
		}
	}
	s.Shockwaves = slices.DeleteFunc(s.Shockwaves, func(w Shockwave) bool { return w.Alpha <= 0 })
}

func (s *Sim) advanceSparks() {
	for i := range s.Sparks {
		sp := &s.Sparks[i]
		sp.Pos = sp.Pos.Add(sp.Vel)
		sp.Vel = sp.Vel.Scale(config.SparkDrag)
		sp.Vel.Y += config.SparkGravity
		sp.Life -= config.FrameDelta / sp.MaxLife
	}
	s.Sparks = slices.DeleteFunc(s.Sparks, func(sp Spark) bool { return sp.Life <= 0 })
}

// capParticles discards the oldest particles above the population ceiling.
func (s *Sim) capParticles() {
	if excess := len(s.Particles) - config.MaxParticles; excess > 0 {
		s.Particles = slices.Delete(s.Particles, 0, excess)
	}
}

func (s *Sim) validNode(i int) bool { return i >= 0 && i < len(s.Nodes) }

func (s *Sim) advanceParticles() {
	s.capParticles()

	for i := range s.Particles {
		p := &s.Particles[i]
		if !s.validNode(p.From) || !s.validNode(p.To) {
			p.dead = true
			continue
		}

		pos := s.Nodes[p.From].Pos.Lerp(s.Nodes[p.To].Pos, p.Progress)
		boost := 1.0
		if d := pos.Dist(s.Pointer.Pos); d < config.ParticleBoostDist {
			boost = 1.5 + (1-d/config.ParticleBoostDist)*2
			p.Brightness = math.Min(1, p.Brightness+config.ParticleBrightStep)
		}

		p.Progress += p.Speed * boost
		if p.Progress >= 1 {
			p.Progress = 0
			p.From = p.To
			adj := s.Nodes[p.From].Adj
			if len(adj) == 0 {
				p.dead = true
				continue
			}
			p.To = adj[s.rng.IntN(len(adj))]
			if !s.validNode(p.To) {
				p.dead = true
				continue
			}
			p.Brightness *= config.ParticleDecay
			if p.Brightness < config.ParticleMinBright && p.Burst() {
				p.dead = true
				continue
			}
		}

		p.Pos = s.Nodes[p.From].Pos.Lerp(s.Nodes[p.To].Pos, p.Progress)
		p.Trail.Push(TrailPoint{Pos: p.Pos, Alpha: p.Brightness})
	}
	s.Particles = slices.DeleteFunc(s.Particles, func(p Particle) bool { return p.dead })
}
