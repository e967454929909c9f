package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/render"
)

const (
	glowSize = 128
	dashOn   = 4
	dashOff  = 4
)

// painter replays render ops onto an ebiten image.
type painter struct {
	glow *ebiten.Image
	halo *ebiten.Image
	opts ebiten.DrawImageOptions
}

func newPainter() *painter {
	return &painter{
		glow: ebiten.NewImageFromImage(render.GlowImage(glowSize)),
		halo: ebiten.NewImageFromImage(render.HaloImage(glowSize)),
	}
}

// paint draws f onto dst, scaling logical coordinates by scale.
func (p *painter) paint(dst *ebiten.Image, f *render.Frame, scale float64) {
	s := float32(scale)
	for i := range f.Ops {
		op := &f.Ops[i]
		if op.Color.A == 0 {
			continue
		}
		width := float32(op.Width) * s
		switch op.Shape {
		case render.FillCircle:
			vector.DrawFilledCircle(dst, float32(op.A.X)*s, float32(op.A.Y)*s, float32(op.Radius)*s, op.Color, true)
		case render.StrokeCircle:
			vector.StrokeCircle(dst, float32(op.A.X)*s, float32(op.A.Y)*s, float32(op.Radius)*s, width, op.Color, true)
		case render.Line:
			line(dst, op.A, op.B, s, width, op)
		case render.DashedLine:
			dashed(dst, op.A, op.B, s, width, op)
		case render.Polyline:
			for j := 1; j < len(op.Path); j++ {
				line(dst, op.Path[j-1], op.Path[j], s, width, op)
			}
		case render.Glow:
			p.drawSprite(dst, p.glow, op, scale)
		case render.Halo:
			p.drawSprite(dst, p.halo, op, scale)
		}
	}
}

func line(dst *ebiten.Image, a, b brain.Vec, s, width float32, op *render.Op) {
	vector.StrokeLine(dst, float32(a.X)*s, float32(a.Y)*s, float32(b.X)*s, float32(b.Y)*s, width, op.Color, true)
}

func dashed(dst *ebiten.Image, a, b brain.Vec, s, width float32, op *render.Op) {
	length := a.Dist(b)
	if length == 0 {
		return
	}
	for t := 0.0; t < length; t += dashOn + dashOff {
		end := min(t+dashOn, length)
		line(dst, a.Lerp(b, t/length), a.Lerp(b, end/length), s, width, op)
	}
}

// drawSprite stretches a white falloff sprite over the op's radius and
// tints it, adding its light to what is already drawn.
func (p *painter) drawSprite(dst, sprite *ebiten.Image, op *render.Op, scale float64) {
	if op.Radius <= 0 {
		return
	}
	k := op.Radius * 2 / glowSize * scale
	p.opts.GeoM.Reset()
	p.opts.GeoM.Scale(k, k)
	p.opts.GeoM.Translate((op.A.X-op.Radius)*scale, (op.A.Y-op.Radius)*scale)
	p.opts.ColorScale.Reset()
	p.opts.ColorScale.ScaleWithColor(op.Color)
	p.opts.Blend = ebiten.BlendLighter
	p.opts.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, &p.opts)
}
