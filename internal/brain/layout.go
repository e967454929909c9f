package brain

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// EllipseBounds is the brain silhouette every ring is laid out against.
type EllipseBounds struct {
	Center Vec
	RX, RY float64
}

// Ellipse computes the silhouette for a w x h surface.
func Ellipse(w, h float64) EllipseBounds {
	m := math.Min(w, h)
	return EllipseBounds{
		Center: Vec{w * config.CenterXFrac, h * config.CenterYFrac},
		RX:     m * config.RadiusXFrac,
		RY:     m * config.RadiusYFrac,
	}
}

// Fraction returns the elliptical radial fraction of p: 1 on the ellipse.
func (e EllipseBounds) Fraction(p Vec) float64 {
	d := p.Sub(e.Center)
	return math.Hypot(d.X/e.RX, d.Y/e.RY)
}

// ring describes one concentric layer. Random ranges are lo + U*span.
type ring struct {
	layer        Layer
	count        int
	jitter       float64
	distLo       float64
	distSpan     float64
	wrinkleFreq  float64
	wrinkleAmp   float64
	radiusLo     float64
	radiusSpan   float64
	brightLo     float64
	brightSpan   float64
	targetBright float64
}

var rings = [...]ring{
	{layer: Core, count: 20, jitter: 0.3, distLo: 0, distSpan: 0.3,
		radiusLo: 2.5, radiusSpan: 2.5, brightLo: 0.8, brightSpan: 0.2, targetBright: 0.8},
	{layer: Mid, count: 35, jitter: 0.2, distLo: 0.3, distSpan: 0.4, wrinkleFreq: 5, wrinkleAmp: 0.08,
		radiusLo: 1.8, radiusSpan: 1.5, brightLo: 0.6, brightSpan: 0.3, targetBright: 0.5},
	{layer: Outer, count: 40, jitter: 0.1, distLo: 0.7, distSpan: 0.3, wrinkleFreq: 7, wrinkleAmp: 0.06,
		radiusLo: 1.2, radiusSpan: 1.2, brightLo: 0.4, brightSpan: 0.3, targetBright: 0.3},
	{layer: Edge, count: 30, jitter: 0.3, distLo: 1.1, distSpan: 0.7,
		radiusLo: 0.8, radiusSpan: 1, brightLo: 0.2, brightSpan: 0.3, targetBright: 0.15},
}

// NodeCount is the total number of nodes in every layout.
func NodeCount() int {
	n := 0
	for _, r := range rings {
		n += r.count
	}
	return n
}

func generateNodes(w, h float64, rng *rand.Rand) []Node {
	e := Ellipse(w, h)
	nodes := make([]Node, 0, NodeCount())

	for _, r := range rings {
		for i := 0; i < r.count; i++ {
			angle := 2*math.Pi*float64(i)/float64(r.count) + rng.Float64()*r.jitter
			dist := r.distLo + rng.Float64()*r.distSpan
			if r.wrinkleAmp != 0 {
				dist += math.Sin(angle*r.wrinkleFreq) * r.wrinkleAmp
			}
			p := e.Center.Add(Vec{math.Cos(angle) * e.RX * dist, math.Sin(angle) * e.RY * dist})

			nodes = append(nodes, Node{
				Pos:              p,
				Base:             p,
				Radius:           r.radiusLo + rng.Float64()*r.radiusSpan,
				Brightness:       r.brightLo + rng.Float64()*r.brightSpan,
				TargetBrightness: r.targetBright,
				Phase:            rng.Float64() * 2 * math.Pi,
				Layer:            r.layer,
			})
		}
	}
	return nodes
}
