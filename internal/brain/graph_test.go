package brain

import (
	"math"
	"slices"
	"testing"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

func TestAdjacencySymmetric(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		s := New(Options{Width: 800, Height: 600, Seed: seed})
		for i, n := range s.Nodes {
			seen := map[int]bool{}
			for _, j := range n.Adj {
				if j == i {
					t.Fatalf("seed %d: node %d links to itself", seed, i)
				}
				if seen[j] {
					t.Fatalf("seed %d: node %d links to %d twice", seed, i, j)
				}
				seen[j] = true
				if !slices.Contains(s.Nodes[j].Adj, i) {
					t.Fatalf("seed %d: %d -> %d has no reverse edge", seed, i, j)
				}
			}
		}
	}
}

func TestEdgesRespectDistance(t *testing.T) {
	s := newTestSim(t, 800, 600)
	maxDist := math.Min(800, 600) * config.LinkDistFrac
	for i, n := range s.Nodes {
		for _, j := range n.Adj {
			if d := n.Base.Dist(s.Nodes[j].Base); d >= maxDist {
				t.Errorf("edge %d-%d spans %.1f >= %.1f", i, j, d, maxDist)
			}
		}
	}
	if s.Stats().Edges == 0 {
		t.Error("graph has no edges")
	}
}

func TestLinkProbability(t *testing.T) {
	tests := []struct {
		a, b Layer
		want float64
	}{
		{Core, Core, 0.7},
		{Core, Edge, 0.7},
		{Edge, Core, 0.7},
		{Edge, Mid, 0.3},
		{Outer, Edge, 0.3},
		{Mid, Outer, 0.5},
		{Outer, Outer, 0.5},
	}
	for _, tt := range tests {
		if got := linkProbability(tt.a, tt.b); got != tt.want {
			t.Errorf("linkProbability(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSeedParticlesFollowEdges(t *testing.T) {
	s := newTestSim(t, 800, 600)
	if len(s.Particles) == 0 || len(s.Particles) > config.SeedParticles {
		t.Fatalf("seeded %d particles", len(s.Particles))
	}
	for i, p := range s.Particles {
		if !slices.Contains(s.Nodes[p.From].Adj, p.To) {
			t.Errorf("particle %d: %d -> %d is not an edge", i, p.From, p.To)
		}
		if p.Progress < 0 || p.Progress >= 1 {
			t.Errorf("particle %d: progress %v", i, p.Progress)
		}
		want := s.Nodes[p.From].Pos.Lerp(s.Nodes[p.To].Pos, p.Progress)
		if p.Pos.Dist(want) > 1e-9 {
			t.Errorf("particle %d: pos %v, want %v on its edge", i, p.Pos, want)
		}
	}
}
