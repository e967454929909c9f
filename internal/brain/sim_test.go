package brain

import (
	"math"
	"testing"
)

func TestZeroSizeIsIdle(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {800, 0}, {-5, 300}} {
		s := New(Options{Width: size[0], Height: size[1], Seed: 3})
		if s.Ready() {
			t.Errorf("%v: sim should not be ready", size)
		}
		s.Step()
		if s.Time != 0 {
			t.Errorf("%v: idle sim advanced time", size)
		}
	}
}

func TestResizeRegenerates(t *testing.T) {
	s := newTestSim(t, 800, 600)
	oldBase := make([]Vec, len(s.Nodes))
	for i, n := range s.Nodes {
		oldBase[i] = n.Base
	}
	s.Click(Vec{400, 300}, clickTime(0))
	s.Step()

	s.Resize(400, 300)

	if len(s.Nodes) != 125 {
		t.Fatalf("nodes = %d after resize, want 125", len(s.Nodes))
	}
	if w, h := s.Size(); w != 400 || h != 300 {
		t.Errorf("size = %vx%v", w, h)
	}

	// A plain rescale would map every old base onto half of itself.
	rescaled := 0
	for i, n := range s.Nodes {
		if n.Base.Dist(oldBase[i].Scale(0.5)) < 1e-6 {
			rescaled++
		}
	}
	if rescaled == len(s.Nodes) {
		t.Error("layout is a rescale of the previous one")
	}

	e := Ellipse(400, 300)
	for i, n := range s.Nodes {
		if n.Layer == Edge {
			if f := e.Fraction(n.Base); f < 1.1-1e-9 || f > 1.8+1e-9 {
				t.Errorf("node %d: edge fraction %v after resize", i, f)
			}
		}
		for _, j := range n.Adj {
			if d := n.Base.Dist(s.Nodes[j].Base); d >= 300*0.18 {
				t.Errorf("edge %d-%d spans %v, built for the old size", i, j, d)
			}
		}
	}

	if len(s.Shockwaves)+len(s.Sparks)+len(s.Beams) != 0 {
		t.Error("transient effects survived the resize")
	}
	for _, p := range s.Particles {
		fresh := p.Progress >= 0 && p.Progress < 1 && p.Trail.Len() == 0 &&
			p.Speed >= 0.003 && p.Speed < 0.013 && p.Brightness >= 0.5
		if !fresh {
			t.Errorf("particle not freshly seeded: %+v", p)
		}
	}
}

func TestResizeFromZero(t *testing.T) {
	s := New(Options{Seed: 9})
	s.Resize(640, 480)
	if !s.Ready() || len(s.Nodes) != NodeCount() {
		t.Fatalf("resize from zero produced %d nodes", len(s.Nodes))
	}
	s.Step()
	if s.Time == 0 {
		t.Error("sim did not advance after resize")
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	a := New(Options{Width: 800, Height: 600, Seed: 11})
	b := New(Options{Width: 800, Height: 600, Seed: 11})
	for i := range a.Nodes {
		if a.Nodes[i].Base != b.Nodes[i].Base || len(a.Nodes[i].Adj) != len(b.Nodes[i].Adj) {
			t.Fatalf("node %d differs between equal seeds", i)
		}
	}
}

func TestLongRunStaysFinite(t *testing.T) {
	s := newTestSim(t, 800, 600)
	c := NewController(s)
	for i := 0; i < 2000; i++ {
		switch {
		case i%37 == 0:
			c.PointerDown(Vec{float64(100 + i%600), float64(50 + i%500)}, clickTime(i*100))
		case i%37 == 5:
			c.PointerUp()
		case i%301 == 0:
			c.PointerLeave()
		default:
			c.PointerMove(Vec{float64(100 + i%600), float64(50 + i%500)})
		}
		s.Step()
	}
	for i, n := range s.Nodes {
		if math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y) || math.IsInf(n.Vel.X, 0) {
			t.Fatalf("node %d diverged: %+v", i, n)
		}
		if n.Pos.Dist(n.Base) > 200 {
			t.Errorf("node %d drifted %v from rest", i, n.Pos.Dist(n.Base))
		}
		if n.Brightness < 0 || n.Brightness > 1 {
			t.Errorf("node %d brightness %v", i, n.Brightness)
		}
	}
}

func TestStats(t *testing.T) {
	s := newTestSim(t, 800, 600)
	st := s.Stats()
	adj := 0
	for _, n := range s.Nodes {
		adj += len(n.Adj)
	}
	if st.Nodes != 125 || st.Edges*2 != adj || st.Particles != len(s.Particles) {
		t.Errorf("stats = %+v", st)
	}
}
