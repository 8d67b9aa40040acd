package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
)

const (
	// LinkDistance is the distance below which two ambient particles are joined.
	LinkDistance = 100.0
	// LinkMaxOpacity is the opacity of a link between coincident particles.
	LinkMaxOpacity = 0.1
)

// Field is the ambient background animation. It holds exactly one particle
// set, generated for the current theme.
type Field struct {
	rng       *rand.Rand
	canvas    Canvas
	theme     Theme
	archetype Archetype
	particles []Particle
}

// NewField creates a field of w×h populated for theme.
func NewField(rng *rand.Rand, w, h float64, theme Theme) *Field {
	f := &Field{
		rng:    rng,
		canvas: Canvas{Width: w, Height: h},
	}
	f.Regenerate(theme)
	return f
}

// Regenerate discards the current particles and repopulates the field with
// the archetype for theme.
func (f *Field) Regenerate(theme Theme) {
	f.theme = theme
	f.archetype = ArchetypeFor(theme)
	particles := make([]Particle, f.archetype.Count)
	for i := range particles {
		particles[i] = f.archetype.spawn(f.rng, f.canvas.Width, f.canvas.Height)
	}
	f.particles = particles
}

// Resize changes the canvas bounds. Particles keep their positions; any left
// outside the new bounds are folded back on the next Update.
func (f *Field) Resize(w, h float64) {
	f.canvas = Canvas{Width: w, Height: h}
}

// Update advances every particle by its velocity and wraps it toroidally.
func (f *Field) Update() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X = wrap(p.X+p.VX, f.canvas.Width)
		p.Y = wrap(p.Y+p.VY, f.canvas.Height)
	}
}

func (f *Field) Theme() Theme          { return f.theme }
func (f *Field) Archetype() Archetype  { return f.archetype }
func (f *Field) Canvas() Canvas        { return f.canvas }
func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) LinkColor() color.RGBA { return f.archetype.LinkColor }

// Links calls fn for every unordered pair of particles closer than
// LinkDistance, with the opacity of the connecting line.
// Quadratic in the particle count.
func (f *Field) Links(fn func(a, b Particle, opacity float64)) {
	ps := f.particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if op, ok := ConnectionOpacity(d); ok && op > 0 {
				fn(ps[i], ps[j], op)
			}
		}
	}
}

// ConnectionOpacity returns the opacity of a link between particles d apart.
// It decays linearly from LinkMaxOpacity at 0 to 0 at LinkDistance; ok is
// false for d > LinkDistance.
func ConnectionOpacity(d float64) (float64, bool) {
	if d < 0 || d > LinkDistance {
		return 0, false
	}
	return LinkMaxOpacity * (1 - d/LinkDistance), true
}
