package brain

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// linkProbability is the chance that two nearby nodes get connected.
func linkProbability(a, b Layer) float64 {
	switch {
	case a == Core || b == Core:
		return config.CoreLinkProb
	case a == Edge || b == Edge:
		return config.EdgeLinkProb
	default:
		return config.OtherLinkProb
	}
}

// connect builds the symmetric proximity graph over base positions.
func connect(nodes []Node, w, h float64, rng *rand.Rand) {
	maxDist := math.Min(w, h) * config.LinkDistFrac
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Base.Dist(nodes[j].Base) >= maxDist {
				continue
			}
			if rng.Float64() < linkProbability(nodes[i].Layer, nodes[j].Layer) {
				nodes[i].Adj = append(nodes[i].Adj, j)
				nodes[j].Adj = append(nodes[j].Adj, i)
			}
		}
	}
}

func seedParticles(dst []Particle, nodes []Node, rng *rand.Rand) []Particle {
	for range config.SeedParticles {
		from := rng.IntN(len(nodes))
		adj := nodes[from].Adj
		if len(adj) == 0 {
			continue
		}
		to := adj[rng.IntN(len(adj))]
		progress := rng.Float64()
		dst = append(dst, Particle{
			From:       from,
			To:         to,
			Progress:   progress,
			Speed:      0.003 + rng.Float64()*0.01,
			Brightness: 0.5 + rng.Float64()*0.5,
			Size:       1 + rng.Float64()*1.5,
			Pos:        nodes[from].Pos.Lerp(nodes[to].Pos, progress),
		})
	}
	return dst
}
