package brain

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clickTime(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestClickSpawnsEffects(t *testing.T) {
	s := newTestSim(t, 800, 600)
	click := Vec{100, 100}

	prior := make([]float64, len(s.Nodes))
	within := 0
	for i, n := range s.Nodes {
		prior[i] = n.ClickEnergy
		if n.Pos.Dist(click) < config.ClickRadius {
			within++
		}
	}
	particlesBefore := len(s.Particles)

	res := s.Click(click, clickTime(0))

	if res.Double {
		t.Error("first click reported as double")
	}
	if len(s.Shockwaves) != 1 || s.Shockwaves[0].MaxRadius != 250 {
		t.Fatalf("shockwaves = %+v, want one with max radius 250", s.Shockwaves)
	}
	w := s.Shockwaves[0]
	if w.Radius != 0 || w.Alpha != 0.8 || w.Speed != 5 || w.Origin != click {
		t.Errorf("shockwave = %+v", w)
	}
	if len(s.Sparks) != 15 {
		t.Errorf("sparks = %d, want 15", len(s.Sparks))
	}
	for _, sp := range s.Sparks {
		if sp.Hue != config.RepelHue || sp.Life != 1 || sp.Pos != click {
			t.Fatalf("spark = %+v", sp)
		}
	}
	if want := min(within, config.MaxBeams); len(s.Beams) != want || res.Beams != want {
		t.Errorf("beams = %d (result %d), want %d", len(s.Beams), res.Beams, want)
	}
	if res.Energized != within {
		t.Errorf("energized = %d, want %d", res.Energized, within)
	}
	for i, n := range s.Nodes {
		d := n.Pos.Dist(click)
		want := prior[i]
		if d < config.ClickRadius {
			want = math.Max(prior[i], 1-d/config.ClickRadius)
		}
		if math.Abs(n.ClickEnergy-want) > 1e-12 {
			t.Errorf("node %d at %.1f: energy %v, want %v", i, d, n.ClickEnergy, want)
		}
	}
	if got := len(s.Particles) - particlesBefore; got != res.Particles || got > config.BurstNodes*config.BurstPerNode {
		t.Errorf("burst spawned %d particles (result %d)", got, res.Particles)
	}
}

func TestClickKeepsHigherEnergy(t *testing.T) {
	s := newTestSim(t, 800, 600)
	n := &s.Nodes[0]
	n.ClickEnergy = 5

	s.Click(n.Pos, clickTime(0))

	if n.ClickEnergy != 5 {
		t.Errorf("energy = %v, want prior 5 kept", n.ClickEnergy)
	}
}

func TestClickBeamsTargetNearest(t *testing.T) {
	s := newTestSim(t, 800, 600)
	click := s.Center()

	s.Click(click, clickTime(0))

	if len(s.Beams) != config.MaxBeams {
		t.Fatalf("beams = %d at the core, want %d", len(s.Beams), config.MaxBeams)
	}
	farthestBeam := 0.0
	for _, b := range s.Beams {
		farthestBeam = math.Max(farthestBeam, b.To.Dist(click))
	}
	closer := 0
	for _, n := range s.Nodes {
		if n.Pos.Dist(click) < farthestBeam {
			closer++
		}
	}
	if closer > config.MaxBeams-1 {
		t.Errorf("%d nodes are closer than the farthest beam target", closer)
	}
}

func TestBurstParticlesLeaveClickedNodes(t *testing.T) {
	s := newTestSim(t, 800, 600)
	s.Particles = nil

	res := s.Click(s.Center(), clickTime(0))

	if res.Particles == 0 || len(s.Particles) != res.Particles {
		t.Fatalf("particles = %d, result %d", len(s.Particles), res.Particles)
	}
	for _, p := range s.Particles {
		if p.Progress != 0 || p.Brightness != 1 || !p.Burst() {
			t.Errorf("burst particle = %+v", p)
		}
		if p.From < 0 || p.From >= len(s.Nodes) {
			t.Fatalf("bad from %d", p.From)
		}
		if p.Pos != s.Nodes[p.From].Pos {
			t.Errorf("burst particle starts at %v, not its node %v", p.Pos, s.Nodes[p.From].Pos)
		}
		found := false
		for _, j := range s.Nodes[p.From].Adj {
			found = found || j == p.To
		}
		if !found {
			t.Errorf("burst particle %d -> %d is not an edge", p.From, p.To)
		}
	}
}

func TestDoubleClick(t *testing.T) {
	tests := []struct {
		name        string
		clicks      []int // ms
		wantToggles int
		wantAttract bool
	}{
		{"single", []int{0}, 0, false},
		{"pair", []int{0, 200}, 1, true},
		{"at window", []int{0, 350}, 1, true},
		{"too slow", []int{0, 351}, 0, false},
		{"third click late", []int{0, 200, 600}, 1, true},
		{"third click fast", []int{0, 200, 300}, 2, false},
		{"fast run", []int{0, 200, 300, 450}, 3, true},
		{"two separate pairs", []int{0, 200, 1000, 1300}, 2, false},
		{"slow then fast", []int{0, 400, 700}, 1, true},
		{"chain slow", []int{0, 400, 800, 1200}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, 800, 600)
			toggles := 0
			for _, ms := range tt.clicks {
				before := s.Attract
				res := s.Click(Vec{400, 300}, clickTime(ms))
				if res.Double != (before != s.Attract) {
					t.Fatalf("click at %dms: double=%v but toggle %v->%v", ms, res.Double, before, s.Attract)
				}
				if res.Double {
					toggles++
				}
			}
			if toggles != tt.wantToggles {
				t.Errorf("toggles = %d, want %d", toggles, tt.wantToggles)
			}
			if s.Attract != tt.wantAttract {
				t.Errorf("attract = %v, want %v", s.Attract, tt.wantAttract)
			}
		})
	}
}

func TestDoubleClickEffects(t *testing.T) {
	s := newTestSim(t, 800, 600)
	s.Click(Vec{400, 300}, clickTime(0))
	s.Shockwaves, s.Sparks = nil, nil

	res := s.Click(Vec{400, 300}, clickTime(100))

	if !res.Double || !s.Attract {
		t.Fatal("second click did not toggle attract mode")
	}
	if s.GlobalEnergy != 1 {
		t.Errorf("global energy = %v, want 1", s.GlobalEnergy)
	}
	if len(s.Shockwaves) != 2 {
		t.Fatalf("shockwaves = %d, want 2", len(s.Shockwaves))
	}
	radii := map[float64]bool{}
	for _, w := range s.Shockwaves {
		radii[w.MaxRadius] = true
	}
	if !radii[250] || !radii[400] {
		t.Errorf("shockwave radii = %v, want 250 and 400", radii)
	}
	if len(s.Sparks) != 30 {
		t.Errorf("sparks = %d, want 30", len(s.Sparks))
	}
	for _, sp := range s.Sparks {
		if sp.Hue != config.AttractHue {
			t.Fatalf("spark hue = %v, want attract hue", sp.Hue)
		}
	}
}

func TestClickOnIdleSim(t *testing.T) {
	s := New(Options{Width: 0, Height: 300, Seed: 1})

	res := s.Click(Vec{10, 10}, clickTime(0))
	res2 := s.Click(Vec{10, 10}, clickTime(100))

	if res != (ClickResult{}) || res2 != (ClickResult{}) {
		t.Errorf("idle sim reported %+v, %+v", res, res2)
	}
	if len(s.Shockwaves)+len(s.Sparks)+len(s.Beams)+len(s.Particles) != 0 {
		t.Error("idle sim spawned effects")
	}
	if s.Attract {
		t.Error("idle sim toggled mode")
	}
}
