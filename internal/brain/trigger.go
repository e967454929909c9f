package brain

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// ClickResult describes what a click spawned.
type ClickResult struct {
	Double     bool
	Shockwaves int
	Sparks     int
	Beams      int
	Particles  int
	Energized  int
}

type nearNode struct {
	idx  int
	dist float64
}

// Click fires the click effects at p. A click no later than the double-click
// window after the previous click toggles attract mode, so a fast run of
// clicks toggles on every click after the first.
func (s *Sim) Click(p Vec, now time.Time) ClickResult {
	var res ClickResult
	if !s.Ready() {
		return res
	}

	res.Double = !s.lastClick.IsZero() && now.Sub(s.lastClick) <= config.DoubleClickWindow
	s.lastClick = now
	if res.Double {
		s.Attract = !s.Attract
		s.GlobalEnergy = 1
		s.Shockwaves = append(s.Shockwaves, Shockwave{
			Origin: p, MaxRadius: config.ModeWaveRadius, Alpha: config.ModeWaveAlpha, Speed: config.ModeWaveSpeed,
		})
		res.Shockwaves++
	}

	s.Shockwaves = append(s.Shockwaves, Shockwave{
		Origin: p, MaxRadius: config.WaveMaxRadius, Alpha: config.WaveAlpha, Speed: config.WaveSpeed,
	})
	res.Shockwaves++

	res.Sparks = s.spawnSparks(p, res.Double)

	near := s.energize(p)
	res.Energized = len(near)

	for _, nn := range near[:min(len(near), config.MaxBeams)] {
		s.Beams = append(s.Beams, Beam{
			From:    p,
			To:      s.Nodes[nn.idx].Pos,
			Life:    1,
			MaxLife: s.uniform(0.4, 0.3),
			Width:   s.uniform(1, 2),
		})
		res.Beams++
	}

	res.Particles = s.burst(near)
	s.capParticles()
	return res
}

func (s *Sim) spawnSparks(p Vec, double bool) int {
	count := config.SparkCount
	if double {
		count = config.DoubleSparkCount
	}
	hue := float64(config.RepelHue)
	if s.Attract {
		hue = config.AttractHue
	}
	for range count {
		angle := s.rng.Float64() * 2 * math.Pi
		s.Sparks = append(s.Sparks, Spark{
			Pos:     p,
			Vel:     polar(angle, s.uniform(2, 6)),
			Life:    1,
			MaxLife: s.uniform(0.5, 0.8),
			Size:    s.uniform(1, 2.5),
			Hue:     hue,
		})
	}
	return count
}

// energize raises the click energy of every node within reach of p and
// returns them nearest first.
func (s *Sim) energize(p Vec) []nearNode {
	var near []nearNode
	for i := range s.Nodes {
		n := &s.Nodes[i]
		d := n.Pos.Dist(p)
		if d >= config.ClickRadius {
			continue
		}
		n.ClickEnergy = math.Max(n.ClickEnergy, 1-d/config.ClickRadius)
		near = append(near, nearNode{idx: i, dist: d})
	}
	slices.SortFunc(near, func(a, b nearNode) int { return cmp.Compare(a.dist, b.dist) })
	return near
}

// burst spawns fast particles out of the nearest connected nodes.
func (s *Sim) burst(near []nearNode) int {
	spawned, used := 0, 0
	for _, nn := range near {
		if used == config.BurstNodes {
			break
		}
		adj := s.Nodes[nn.idx].Adj
		if len(adj) == 0 {
			continue
		}
		used++
		for range config.BurstPerNode {
			to := adj[s.rng.IntN(len(adj))]
			s.Particles = append(s.Particles, Particle{
				From:       nn.idx,
				To:         to,
				Speed:      s.uniform(0.015, 0.02),
				Brightness: 1,
				Size:       s.uniform(2, 1.5),
				Pos:        s.Nodes[nn.idx].Pos,
			})
			spawned++
		}
	}
	return spawned
}
