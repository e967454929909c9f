// Package headless drives the simulation without a window, for the stats
// command and for soak testing.
package headless

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Config describes one headless run. Clicks are spread evenly over the
// frames at random points inside the brain outline.
type Config struct {
	Width, Height float64
	Seed          uint64
	Frames        int
	Clicks        int
}

// Peak holds the largest effect counts seen in any frame.
type Peak struct {
	Particles  int
	Shockwaves int
	Sparks     int
	Beams      int
}

// Report summarizes a run.
type Report struct {
	Frames    int
	Clicks    int
	Doubles   int
	Energized int
	Final     brain.Stats
	Peak      Peak
	Elapsed   time.Duration
}

// Run steps a fresh simulation cfg.Frames times.
func Run(cfg Config) (Report, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Report{}, errors.New("surface size must be positive")
	}
	if cfg.Frames < 0 || cfg.Clicks < 0 {
		return Report{}, errors.New("frames and clicks must not be negative")
	}

	start := time.Now()
	sim := brain.New(brain.Options{Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed})
	ctrl := brain.NewController(sim)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	bounds := brain.Ellipse(cfg.Width, cfg.Height)

	// simulated clock, one tick per frame
	clock := time.Unix(0, 0)
	tick := time.Duration(config.FrameDelta * float64(time.Second))

	every := 0
	if cfg.Clicks > 0 {
		every = max(cfg.Frames/cfg.Clicks, 1)
	}

	rep := Report{Frames: cfg.Frames}
	for f := range cfg.Frames {
		now := clock.Add(time.Duration(f) * tick)
		if every > 0 && rep.Clicks < cfg.Clicks && f%every == 0 {
			p := bounds.Center.Add(brain.Vec{
				X: (rng.Float64()*2 - 1) * bounds.RX,
				Y: (rng.Float64()*2 - 1) * bounds.RY,
			})
			res := ctrl.PointerDown(p, now)
			ctrl.PointerUp()
			rep.Clicks++
			rep.Energized += res.Energized
			if res.Double {
				rep.Doubles++
			}
		}

		sim.Step()

		st := sim.Stats()
		rep.Peak.Particles = max(rep.Peak.Particles, st.Particles)
		rep.Peak.Shockwaves = max(rep.Peak.Shockwaves, st.Shockwaves)
		rep.Peak.Sparks = max(rep.Peak.Sparks, st.Sparks)
		rep.Peak.Beams = max(rep.Peak.Beams, st.Beams)
	}
	ctrl.PointerLeave()

	rep.Final = sim.Stats()
	rep.Elapsed = time.Since(start)
	return rep, nil
}

// Rows lays the report out as metric/value pairs.
func (r Report) Rows() [][]string {
	mode := "repel"
	if r.Final.Attract {
		mode = "attract"
	}
	return [][]string{
		{"frames", strconv.Itoa(r.Frames)},
		{"clicks", strconv.Itoa(r.Clicks)},
		{"double clicks", strconv.Itoa(r.Doubles)},
		{"nodes energized", strconv.Itoa(r.Energized)},
		{"nodes", strconv.Itoa(r.Final.Nodes)},
		{"edges", strconv.Itoa(r.Final.Edges)},
		{"particles", fmt.Sprintf("%d (peak %d)", r.Final.Particles, r.Peak.Particles)},
		{"shockwaves", fmt.Sprintf("%d (peak %d)", r.Final.Shockwaves, r.Peak.Shockwaves)},
		{"sparks", fmt.Sprintf("%d (peak %d)", r.Final.Sparks, r.Peak.Sparks)},
		{"beams", fmt.Sprintf("%d (peak %d)", r.Final.Beams, r.Peak.Beams)},
		{"mode", mode},
		{"global energy", strconv.FormatFloat(r.Final.GlobalEnergy, 'f', 3, 64)},
		{"elapsed", r.Elapsed.Round(time.Microsecond).String()},
	}
}
