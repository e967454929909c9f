package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rgba builds a straight-alpha colour; alpha is clamped to [0,1].
func rgba(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// hsla converts HSL (hue in degrees, saturation and lightness 0-1).
func hsla(h, s, l, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return rgba(r, g, b, alpha)
}

// Palette entries that switch with attract/repel mode.
type modeColors struct {
	ambient [3]uint8
	accent  [3]uint8
	wave    [3]uint8
}

var (
	repelColors   = modeColors{ambient: [3]uint8{0, 150, 255}, accent: [3]uint8{0, 200, 255}, wave: [3]uint8{0, 200, 255}}
	attractColors = modeColors{ambient: [3]uint8{120, 100, 255}, accent: [3]uint8{140, 120, 255}, wave: [3]uint8{120, 100, 255}}
)

func paletteFor(attract bool) modeColors {
	if attract {
		return attractColors
	}
	return repelColors
}

func withAlpha(c [3]uint8, alpha float64) color.NRGBA {
	return rgba(c[0], c[1], c[2], alpha)
}
