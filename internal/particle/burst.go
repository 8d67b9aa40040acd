package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"
)

const (
	BurstCount     = 100
	BurstInterval  = 20 * time.Millisecond
	BurstAngleStep = 0.05
	burstResetY    = -10.0
)

// BurstPalette holds the confetti colours.
var BurstPalette = []color.RGBA{
	{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff},
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
}

// interval is a cancellable periodic task fed with elapsed frame time.
type interval struct {
	period  time.Duration
	pending time.Duration
}

// advance returns how many periods have completed after d more time.
func (iv *interval) advance(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	iv.pending += d
	n := int(iv.pending / iv.period)
	iv.pending -= time.Duration(n) * iv.period
	return n
}

// Burst is the confetti overlay. It owns at most one canvas, one particle
// set and one periodic task, all of which exist only while running.
type Burst struct {
	rng       *rand.Rand
	canvas    *Canvas
	task      *interval
	particles []Particle
	redraw    bool
}

func NewBurst(rng *rand.Rand) *Burst {
	return &Burst{rng: rng}
}

// Start creates a w×h canvas and populates it with confetti falling in from
// above. It reports false and does nothing if the burst is already running.
func (b *Burst) Start(w, h float64) bool {
	if b.task != nil {
		return false
	}
	b.canvas = &Canvas{Width: w, Height: h}
	b.particles = make([]Particle, BurstCount)
	for i := range b.particles {
		b.particles[i] = Particle{
			X:       b.rng.Float64() * w,
			Y:       b.rng.Float64()*h - h,
			Size:    between(b.rng, 2, 7),
			VY:      between(b.rng, 1, 4),
			Opacity: 1,
			Color:   BurstPalette[b.rng.IntN(len(BurstPalette))],
			Angle:   b.rng.Float64() * 2 * math.Pi,
		}
	}
	b.task = &interval{period: BurstInterval}
	b.redraw = true
	return true
}

// Stop releases the periodic task, canvas and particles. It reports false
// if the burst was not running.
func (b *Burst) Stop() bool {
	if b.task == nil {
		return false
	}
	b.task = nil
	b.canvas = nil
	b.particles = nil
	b.redraw = false
	return true
}

func (b *Burst) Running() bool { return b.task != nil }

// Canvas returns the drawing surface, or nil when stopped.
func (b *Burst) Canvas() *Canvas { return b.canvas }

func (b *Burst) Particles() []Particle { return b.particles }

// Advance feeds elapsed time to the periodic task and runs one tick per
// completed interval. It returns the number of ticks run.
func (b *Burst) Advance(elapsed time.Duration) int {
	if b.task == nil {
		return 0
	}
	n := b.task.advance(elapsed)
	for i := 0; i < n; i++ {
		b.tick()
	}
	return n
}

func (b *Burst) tick() {
	h := b.canvas.Height
	for i := range b.particles {
		p := &b.particles[i]
		p.Y += p.VY
		p.X += math.Sin(p.Angle)
		p.Angle += BurstAngleStep
		if p.Y > h {
			p.Y = burstResetY
			p.X = b.rng.Float64() * b.canvas.Width
		}
	}
	b.redraw = true
}

// TakeRedraw reports whether a tick has requested a redraw since the last call.
func (b *Burst) TakeRedraw() bool {
	r := b.redraw
	b.redraw = false
	return r
}
