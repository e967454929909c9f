package headless

import (
	"testing"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/config"
)

func TestRunSpacedClicks(t *testing.T) {
	rep, err := Run(Config{Width: 1024, Height: 640, Seed: 3, Frames: 300, Clicks: 5})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Frames != 300 || rep.Clicks != 5 {
		t.Errorf("frames %d clicks %d", rep.Frames, rep.Clicks)
	}
	// 60 frames apart is far outside the double-click window
	if rep.Doubles != 0 || rep.Final.Attract {
		t.Errorf("doubles = %d, attract = %v", rep.Doubles, rep.Final.Attract)
	}
	if rep.Final.Nodes != brain.NodeCount() {
		t.Errorf("nodes = %d", rep.Final.Nodes)
	}
	if rep.Peak.Shockwaves < 1 || rep.Peak.Sparks < config.SparkCount {
		t.Errorf("peak = %+v", rep.Peak)
	}
}

func TestRunRapidClicksToggle(t *testing.T) {
	rep, err := Run(Config{Width: 800, Height: 600, Seed: 9, Frames: 100, Clicks: 100})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Clicks != 100 {
		t.Fatalf("clicks = %d", rep.Clicks)
	}
	// 16ms apart: every click after the first toggles
	if rep.Doubles != 99 {
		t.Errorf("doubles = %d, want 99", rep.Doubles)
	}
	if !rep.Final.Attract {
		t.Error("an odd number of toggles should end in attract mode")
	}
	if rep.Peak.Particles > config.MaxParticles {
		t.Errorf("peak particles %d over ceiling", rep.Peak.Particles)
	}
}

func TestRunNoClicks(t *testing.T) {
	rep, err := Run(Config{Width: 640, Height: 480, Seed: 1, Frames: 50})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Clicks != 0 || rep.Peak.Shockwaves != 0 || rep.Peak.Beams != 0 {
		t.Errorf("idle run spawned effects: %+v", rep)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Height: 100, Frames: 1}},
		{"negative frames", Config{Width: 100, Height: 100, Frames: -1}},
		{"negative clicks", Config{Width: 100, Height: 100, Clicks: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReportRows(t *testing.T) {
	rep := Report{Frames: 10, Clicks: 2, Doubles: 1}
	rep.Final.Attract = true
	rep.Final.Particles = 61
	rep.Peak.Particles = 70

	rows := rep.Rows()
	got := map[string]string{}
	for _, r := range rows {
		if len(r) != 2 {
			t.Fatalf("row %v has %d cells", r, len(r))
		}
		got[r[0]] = r[1]
	}
	want := map[string]string{
		"frames":        "10",
		"double clicks": "1",
		"particles":     "61 (peak 70)",
		"mode":          "attract",
		"global energy": "0.000",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
