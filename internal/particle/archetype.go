// Package particle implements the two canvas animations of the tracker: the
// ambient background field and the confetti burst shown on celebration.
package particle

import (
	"image/color"
	"math/rand/v2"
)

// Theme is the colour theme observed by the ambient field.
type Theme int

const (
	Light Theme = iota
	Dark
)

// ThemeOf maps the document-level dark flag to a Theme.
func ThemeOf(isDark bool) Theme {
	if isDark {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Swatch is a palette entry picked with probability proportional to Weight.
type Swatch struct {
	Color  color.RGBA
	Weight float64
}

// Archetype describes how one kind of ambient particle is generated.
type Archetype struct {
	Name       string
	Count      int
	MinSize    float64
	MaxSize    float64
	MaxSpeed   float64 // per-axis bound on |vx| and |vy|
	MinOpacity float64
	MaxOpacity float64
	GlowChance float64
	Palette    []Swatch
	LinkColor  color.RGBA
}

var (
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	starGold   = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	softGold   = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	sand       = color.RGBA{R: 244, G: 164, B: 96, A: 255}
	softBronze = color.RGBA{R: 184, G: 115, B: 51, A: 255}
)

// Star populates the dark theme: a slow, mostly white starfield.
var Star = Archetype{
	Name:       "Star",
	Count:      100,
	MinSize:    0.5,
	MaxSize:    2.5,
	MaxSpeed:   0.1,
	MinOpacity: 0.3,
	MaxOpacity: 1.0,
	GlowChance: 0.1,
	Palette: []Swatch{
		{Color: white, Weight: 0.8},
		{Color: starGold, Weight: 0.2},
	},
	LinkColor: white,
}

// MorningParticle populates the light theme with warm, translucent motes.
var MorningParticle = Archetype{
	Name:       "MorningParticle",
	Count:      60,
	MinSize:    1,
	MaxSize:    4,
	MaxSpeed:   0.15,
	MinOpacity: 1,
	MaxOpacity: 1,
	Palette: []Swatch{
		{Color: withAlpha(softGold, 0.4), Weight: 1},
		{Color: withAlpha(sand, 0.4), Weight: 1},
		{Color: withAlpha(softBronze, 0.3), Weight: 1},
	},
	LinkColor: softGold,
}

// ArchetypeFor returns the archetype that populates the field for theme.
func ArchetypeFor(theme Theme) Archetype {
	if theme == Dark {
		return Star
	}
	return MorningParticle
}

// pick draws a palette colour by weight.
func (a Archetype) pick(rng *rand.Rand) color.RGBA {
	var total float64
	for _, s := range a.Palette {
		total += s.Weight
	}
	r := rng.Float64() * total
	for _, s := range a.Palette {
		if r < s.Weight {
			return s.Color
		}
		r -= s.Weight
	}
	return a.Palette[len(a.Palette)-1].Color
}

// spawn creates one particle at a random position inside w×h.
func (a Archetype) spawn(rng *rand.Rand, w, h float64) Particle {
	return Particle{
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		VX:      (rng.Float64()*2 - 1) * a.MaxSpeed,
		VY:      (rng.Float64()*2 - 1) * a.MaxSpeed,
		Size:    between(rng, a.MinSize, a.MaxSize),
		Opacity: between(rng, a.MinOpacity, a.MaxOpacity),
		Color:   a.pick(rng),
		Glow:    a.GlowChance > 0 && rng.Float64() < a.GlowChance,
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// withAlpha returns c with a straight (non-premultiplied) alpha of a in [0,1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}
