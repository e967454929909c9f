// Package game hosts the brain simulation in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/capture"
	"github.com/iburimskiy/brain-visualization/internal/config"
	"github.com/iburimskiy/brain-visualization/internal/render"
	"github.com/iburimskiy/brain-visualization/internal/sound"
	"github.com/iburimskiy/brain-visualization/internal/ui"
)

// Game implements ebiten.Game.
type Game struct {
	sim     *brain.Sim
	ctrl    *brain.Controller
	frame   render.Frame
	painter *painter
	input   input

	player *sound.Player // nil when audio is off or failed to start
	muted  bool
	level  float64

	// logical surface size, and the one Layout asked for
	width, height float64
	pendW, pendH  float64
	scale         float64

	background color.NRGBA
	shot       capture.Request
	hud        bool
	skipped    int
	lastErr    error
	lastSaved  string
	started    time.Time
}

// New builds a game from settings. The seed must already be resolved.
func New(s *config.Settings) (*Game, error) {
	g, err := newGame(s)
	if err != nil {
		return nil, err
	}
	g.painter = newPainter()
	if s.Audio.Enabled {
		p, err := sound.New(s.Audio.Volume)
		if err != nil {
			ui.Warnf("audio disabled: %v", err)
			g.lastErr = err
		} else {
			g.player = p
		}
	}
	return g, nil
}

// newGame builds the state that needs neither a GPU nor an audio device.
func newGame(s *config.Settings) (*Game, error) {
	bg, err := config.ParseHex(s.HUD.Background)
	if err != nil {
		return nil, err
	}
	w, h := float64(s.Window.Width), float64(s.Window.Height)
	sim := brain.New(brain.Options{Width: w, Height: h, Seed: s.Sim.Seed})
	return &Game{
		sim:        sim,
		ctrl:       brain.NewController(sim),
		width:      w,
		height:     h,
		pendW:      w,
		pendH:      h,
		scale:      1,
		background: bg,
		hud:        s.HUD.Enabled,
		started:    time.Now(),
	}, nil
}

// guard runs one frame stage, turning a panic into a skipped frame.
func (g *Game) guard(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			g.skipped++
			g.lastErr = fmt.Errorf("%s: %v", stage, r)
			ui.Badf("frame skipped in %s: %v", stage, r)
		}
	}()
	fn()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.guard("update", func() {
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			g.hud = !g.hud
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.muted = !g.muted
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.shot.Ask()
		}
		g.tick(g.input.poll(g.scale), time.Now())
	})
	return nil
}

// syncSize applies the size Layout last asked for. It reports whether the
// simulation was resized.
func (g *Game) syncSize() bool {
	if g.pendW == g.width && g.pendH == g.height {
		return false
	}
	g.width, g.height = g.pendW, g.pendH
	g.sim.Resize(g.width, g.height)
	return true
}

// tick advances one frame from an already polled input sample.
func (g *Game) tick(in brain.InputSample, now time.Time) {
	g.syncSize()

	clicks := g.ctrl.Apply(in, g.width, g.height, now)
	if g.player != nil && !g.muted {
		for _, res := range clicks {
			g.player.Click(res, g.sim.Attract)
		}
		g.level = g.level*config.LevelSmoothing + g.player.Level()*(1-config.LevelSmoothing)
	} else {
		g.level *= config.LevelSmoothing
	}

	g.sim.Step()

	if path, done, err := g.shot.Poll(); done {
		switch {
		case err != nil:
			g.lastErr = err
			ui.Badf("screenshot: %v", err)
		case path != "":
			g.lastSaved = path
			ui.Infof("screenshot saved to %s", path)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.guard("draw", func() {
		screen.Fill(g.background)
		g.frame.Build(g.sim, render.Extras{AudioLevel: g.level})
		g.painter.paint(screen, &g.frame, g.scale)

		if g.shot.Pending() {
			g.grab(screen)
		}
		if g.hud {
			ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
		}
	})
}

// grab copies the back buffer and hands it to the save dialog. The HUD
// is drawn after this so it never ends up in the picture.
func (g *Game) grab(screen *ebiten.Image) {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	g.shot.Start(img, capture.Prompt)
}

// Layout keeps the simulation in logical units and renders at the
// monitor's device scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	return g.layout(outsideWidth, outsideHeight, scale)
}

// layout records the logical size for the next tick and returns the back
// buffer size at scale.
func (g *Game) layout(outsideWidth, outsideHeight int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	g.scale = scale
	g.pendW, g.pendH = float64(outsideWidth), float64(outsideHeight)
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// Close releases the audio device.
func (g *Game) Close() {
	if g.player != nil {
		g.player.Close()
		g.player = nil
	}
}

// Run opens the window and blocks until it closes.
func Run(s *config.Settings) error {
	g, err := New(s)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	if s.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
