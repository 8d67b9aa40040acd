package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/sunnah-tracker/internal/celebration"
	"github.com/iburimskiy/sunnah-tracker/internal/config"
	"github.com/iburimskiy/sunnah-tracker/internal/particle"
	"github.com/iburimskiy/sunnah-tracker/internal/record"
	"github.com/iburimskiy/sunnah-tracker/internal/tracker"
)

const (
	formWidth = 260
	// maxFrameStep caps the time fed to the burst after a stall (window drag, breakpoint).
	maxFrameStep = 250 * time.Millisecond
)

// Options wires the game to its collaborators.
type Options struct {
	Config  config.Config
	Backend tracker.Backend
	Store   celebration.Store
	Dialogs Dialogs
	Logger  *slog.Logger
	Rand    *rand.Rand
}

type Game struct {
	ctx    context.Context
	logger *slog.Logger

	tracker     *tracker.Tracker
	celebration *celebration.Celebration
	panel       *celebration.Panel
	field       *particle.Field
	burst       *particle.Burst
	chime       *chime
	dialogs     Dialogs

	// viewport
	width, height int

	// burst surface, allocated only while the burst runs
	burstImg *ebiten.Image

	face      text.Face
	rows      []formRow
	hoverRow  int
	buttons   []*button
	closeBtn  *button
	dark      bool
	showStats bool
	status    string

	// days this device has celebrated, refreshed with the stats overlay
	celebrated int

	lastUpdate   time.Time
	panelShowing bool
	dialogOpen   bool
}

func New(ctx context.Context, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	dialogs := opts.Dialogs
	if dialogs == nil {
		dialogs = ZenityDialogs{}
	}

	g := &Game{
		ctx:      ctx,
		logger:   opts.Logger,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		dark:     opts.Config.Dark,
		dialogs:  dialogs,
		chime:    newChime(opts.Logger),
		face:     text.NewGoXFace(basicfont.Face7x13),
		rows:     buildForm(),
		hoverRow: -1,
	}

	g.field = particle.NewField(rng, float64(g.width), float64(g.height), particle.ThemeOf(g.dark))
	g.burst = particle.NewBurst(rng)
	g.panel = celebration.NewPanel(g.burst, func() (float64, float64) {
		return float64(g.width), float64(g.height)
	})
	g.celebration = celebration.New(opts.Store, g.panel, opts.Logger)
	g.tracker = tracker.New(ctx, opts.Backend, g.celebration, opts.Logger, time.Now())

	g.buttons = []*button{
		{label: "< Prev", w: 80, h: config.ButtonHeight, action: func() { g.tracker.ChangeDate(-1) }},
		{label: "Next >", w: 80, h: config.ButtonHeight, action: func() { g.tracker.ChangeDate(1) }},
		{label: "Theme (T)", w: config.ButtonWidth, h: config.ButtonHeight, action: func() { g.NotifyThemeChanged(!g.dark) }},
		{label: "Journal (J)", w: config.ButtonWidth, h: config.ButtonHeight, action: g.openJournal},
		{label: "Stats (S)", w: config.ButtonWidth, h: config.ButtonHeight, action: g.toggleStats},
	}
	g.closeBtn = &button{label: "Close", w: 100, h: config.ButtonHeight}
	g.layoutButtons()

	g.tracker.Load()
	return g
}

// NotifyThemeChanged switches the colour theme and regenerates the ambient
// field for it.
func (g *Game) NotifyThemeChanged(isDark bool) {
	g.dark = isDark
	g.field.Regenerate(particle.ThemeOf(isDark))
	g.logger.Debug("theme changed", "theme", particle.ThemeOf(isDark))
}

func (g *Game) layoutButtons() {
	w := float64(g.width)
	g.buttons[0].x, g.buttons[0].y = config.FormX, 60
	g.buttons[1].x, g.buttons[1].y = config.FormX+90, 60
	for i, b := range g.buttons[2:] {
		b.x = w - config.ButtonWidth - 20
		b.y = 20 + float64(i)*(config.ButtonHeight+10)
	}
	g.closeBtn.x = w/2 - g.closeBtn.w/2
	g.closeBtn.y = float64(g.height)*0.65 + 40
}

func (g *Game) Update() error {
	now := time.Now()
	dt := time.Duration(0)
	if !g.lastUpdate.IsZero() {
		dt = min(now.Sub(g.lastUpdate), maxFrameStep)
	}
	g.lastUpdate = now

	g.tracker.Drain()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.panel.Visible() {
		g.updatePanelInput(now)
	} else {
		g.updateFormInput()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.chime.ToggleMute() {
			g.status = "Sound muted"
		} else {
			g.status = "Sound on"
		}
	}

	g.field.Update()
	g.burst.Advance(dt)
	g.panel.Update(now)

	if g.panel.Visible() && !g.panelShowing {
		g.chime.Play()
	}
	g.panelShowing = g.panel.Visible()

	return nil
}

func (g *Game) updatePanelInput(now time.Time) {
	mx, my := ebiten.CursorPosition()
	if g.closeBtn.update(mx, my) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.panel.Dismiss(now)
	}
}

func (g *Game) updateFormInput() {
	mx, my := ebiten.CursorPosition()
	for _, b := range g.buttons {
		if b.update(mx, my) {
			b.action()
		}
	}

	g.hoverRow = rowAt(g.rows, mx, my)
	if g.hoverRow >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if r := g.rows[g.hoverRow]; r.isText() {
			g.editText(r.text)
		} else {
			g.tracker.Toggle(r.field.Name)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.tracker.ChangeDate(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.tracker.ChangeDate(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.NotifyThemeChanged(!g.dark)
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		g.openJournal()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.toggleStats()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.showFeedback()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.replayCelebration()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.showStats = false
	}
}

func (g *Game) toggleStats() {
	g.showStats = !g.showStats
	if !g.showStats {
		return
	}
	g.tracker.LoadStats()
	days, err := g.celebration.Days(g.ctx)
	if err != nil {
		g.logger.Error("list celebrated days", "err", err)
		return
	}
	g.celebrated = len(days)
}

// replayCelebration forgets that today was celebrated, so the panel shows
// again if the four Sunnah prayers are still checked.
func (g *Game) replayCelebration() {
	if err := g.celebration.Reset(g.ctx); err != nil {
		g.logger.Error("reset celebration", "err", err)
		g.status = "Could not reset today's celebration"
		return
	}
	g.tracker.CheckCelebration()
}

// editText asks for a new value of a text field in a native dialog and saves
// it.
func (g *Game) editText(f record.TextField) {
	if g.dialogOpen || g.tracker.Loading() {
		return
	}
	g.dialogOpen = true
	initial := g.tracker.Record().Text(f.Name)
	date := g.tracker.DateKey()

	go func() {
		value, err := g.dialogs.Entry(f.Label, f.Label+":", initial)
		g.tracker.Post(func() {
			g.dialogOpen = false
			if err != nil {
				if !errors.Is(err, zenity.ErrCanceled) {
					g.logger.Error("text dialog", "field", f.Name, "err", err)
					g.status = "Dialog failed: " + err.Error()
				}
				return
			}
			if date != g.tracker.DateKey() {
				g.status = f.Label + " not saved: the day changed"
				return
			}
			g.tracker.Set(f.Name, value)
		})
	}()
}

// openJournal asks for the day's journal entry in a native dialog and sends it
// for analysis.
func (g *Game) openJournal() {
	if g.dialogOpen || g.tracker.Analyzing() {
		return
	}
	g.dialogOpen = true
	initial := g.tracker.Record().Journal()

	go func() {
		entry, err := g.dialogs.Entry("Daily journal", "How was your day?", initial)
		g.tracker.Post(func() {
			g.dialogOpen = false
			if err != nil {
				if !errors.Is(err, zenity.ErrCanceled) {
					g.logger.Error("journal dialog", "err", err)
					g.status = "Journal dialog failed: " + err.Error()
				}
				return
			}
			g.tracker.Analyze(entry)
		})
	}()
}

// showFeedback opens the AI feedback in a native dialog, which can render
// scripts the bitmap face cannot.
func (g *Game) showFeedback() {
	msg := g.tracker.Feedback()
	if msg == "" || g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		if err := g.dialogs.Info("Encouragement", msg); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.logger.Error("feedback dialog", "err", err)
		}
		g.tracker.Post(func() { g.dialogOpen = false })
	}()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		g.layoutButtons()
	}
	return g.width, g.height
}
