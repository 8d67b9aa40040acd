package particle

import (
	"image/color"
	"math"
)

// Particle is shared by the ambient field and the burst overlay. The burst
// uses VY as its fall speed and Angle to drive the horizontal sway.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Color   color.RGBA // straight alpha
	Glow    bool
	Angle   float64
}

// RGBA returns the particle colour scaled by its opacity, premultiplied for drawing.
func (p Particle) RGBA() color.RGBA {
	a := float64(p.Color.A) / 255 * clamp01(p.Opacity)
	return color.RGBA{
		R: uint8(float64(p.Color.R)*a + 0.5),
		G: uint8(float64(p.Color.G)*a + 0.5),
		B: uint8(float64(p.Color.B)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Canvas is the logical drawing area a particle set lives in.
type Canvas struct {
	Width, Height float64
}

// wrap folds v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Premultiply scales c (straight alpha) by opacity for drawing.
func Premultiply(c color.RGBA, opacity float64) color.RGBA {
	return Particle{Color: c, Opacity: opacity}.RGBA()
}
