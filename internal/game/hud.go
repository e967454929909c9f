package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func (g *Game) status() string {
	st := g.sim.Stats()
	mode := "repel"
	if st.Attract {
		mode = "attract"
	}
	audio := "on"
	switch {
	case g.player == nil:
		audio = "off"
	case g.muted:
		audio = "muted"
	}
	s := fmt.Sprintf("mode: %s  energy: %.2f  audio: %s  up: %s\n",
		mode, st.GlobalEnergy, audio, formatDuration(time.Since(g.started)))
	s += fmt.Sprintf("nodes: %d  edges: %d  particles: %d\n", st.Nodes, st.Edges, st.Particles)
	s += fmt.Sprintf("waves: %d  sparks: %d  beams: %d\n", st.Shockwaves, st.Sparks, st.Beams)
	s += fmt.Sprintf("TPS: %.1f  FPS: %.1f  skipped: %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), g.skipped)
	if g.lastSaved != "" {
		s += "saved: " + g.lastSaved + "\n"
	}
	if g.lastErr != nil {
		s += "Error: " + g.lastErr.Error() + "\n"
	}
	s += "H: HUD  S: screenshot  M: mute  Esc/Q: quit"
	return s
}

// formatDuration formats a duration as MM:SS, or H:MM:SS past an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
