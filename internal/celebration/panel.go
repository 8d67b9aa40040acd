package celebration

import "time"

// FadeDuration is how long a dismissed panel stays mounted while fading out.
const FadeDuration = time.Second

// Burst is the animation hosted by the panel.
type Burst interface {
	Start(w, h float64) bool
	Stop() bool
}

// Panel is the celebration overlay. A dismissed panel is hidden at once but
// stays mounted until its fade-out has elapsed.
type Panel struct {
	burst     Burst
	size      func() (float64, float64)
	visible   bool
	mounted   bool
	changedAt time.Time
}

// NewPanel creates a hidden panel. size reports the viewport used for the burst.
func NewPanel(burst Burst, size func() (float64, float64)) *Panel {
	return &Panel{burst: burst, size: size}
}

// Show mounts the panel, makes it visible and starts the burst.
func (p *Panel) Show(now time.Time) {
	p.visible = true
	p.mounted = true
	p.changedAt = now
	w, h := p.size()
	p.burst.Start(w, h)
}

// Dismiss hides the panel and stops the burst immediately; the panel is
// unmounted by Update once FadeDuration has passed.
func (p *Panel) Dismiss(now time.Time) {
	p.burst.Stop()
	if !p.visible {
		return
	}
	p.visible = false
	p.changedAt = now
}

// Update unmounts a dismissed panel whose fade has finished.
func (p *Panel) Update(now time.Time) {
	if p.mounted && !p.visible && now.Sub(p.changedAt) >= FadeDuration {
		p.mounted = false
	}
}

func (p *Panel) Visible() bool { return p.visible }
func (p *Panel) Mounted() bool { return p.mounted }

// Opacity is the panel's presentation opacity at now: it fades in and out
// over FadeDuration.
func (p *Panel) Opacity(now time.Time) float64 {
	if !p.mounted {
		return 0
	}
	t := float64(now.Sub(p.changedAt)) / float64(FadeDuration)
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	if p.visible {
		return t
	}
	return 1 - t
}
