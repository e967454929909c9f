package render

import (
	"image"
	"image/color"
	"math"
)

// GlowFalloff is a linear cone: 1 at the centre, 0 at the rim.
func GlowFalloff(r float64) float64 {
	return clamp01(1 - r)
}

// HaloFalloff is a ring tent: 0 at the centre, 1 at half radius, 0 at the
// rim. Added to a Glow of half the radius it reproduces a three-stop
// radial gradient whose middle stop has its own colour.
func HaloFalloff(r float64) float64 {
	switch {
	case r <= 0 || r >= 1:
		return 0
	case r < 0.5:
		return 2 * r
	default:
		return 2 - 2*r
	}
}

// GlowImage renders the white cone sprite with premultiplied alpha.
func GlowImage(size int) *image.RGBA { return falloffImage(size, GlowFalloff) }

// HaloImage renders the white ring sprite with premultiplied alpha.
func HaloImage(size int) *image.RGBA { return falloffImage(size, HaloFalloff) }

func falloffImage(size int, falloff func(float64) float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := uint8(clamp01(falloff(r))*255 + 0.5)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}
