package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sunnah-tracker/internal/calendar"
	"github.com/iburimskiy/sunnah-tracker/internal/config"
	"github.com/iburimskiy/sunnah-tracker/internal/particle"
	"github.com/iburimskiy/sunnah-tracker/internal/record"
)

var (
	gold      = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	emerald   = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	nightTop  = color.RGBA{R: 8, G: 12, B: 32, A: 255}
	nightLow  = color.RGBA{R: 28, G: 22, B: 56, A: 255}
	dawnTop   = color.RGBA{R: 255, G: 250, B: 238, A: 255}
	dawnLow   = color.RGBA{R: 250, G: 228, B: 196, A: 255}
	inkDark   = color.RGBA{R: 232, G: 232, B: 242, A: 255}
	inkLight  = color.RGBA{R: 64, G: 48, B: 30, A: 255}
	panelDark = color.RGBA{R: 20, G: 24, B: 48, A: 200}
	panelLite = color.RGBA{R: 255, G: 255, B: 255, A: 190}
)

func (g *Game) ink() color.RGBA {
	if g.dark {
		return inkDark
	}
	return inkLight
}

func (g *Game) card() color.RGBA {
	if g.dark {
		return panelDark
	}
	return panelLite
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawField(screen)

	g.drawHeader(screen)
	for _, b := range g.buttons {
		g.drawButton(screen, b)
	}
	g.drawForm(screen)
	g.drawProgress(screen)
	g.drawFeedback(screen)
	if g.showStats {
		g.drawStats(screen)
	}
	g.drawStatus(screen)

	g.drawCelebration(screen)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	top, low := dawnTop, dawnLow
	if g.dark {
		top, low = nightTop, nightLow
	}
	const band = 4
	h := float64(g.height)
	for y := 0.0; y < h; y += band {
		t := y / h
		c := color.RGBA{
			R: uint8(float64(top.R) + t*(float64(low.R)-float64(top.R))),
			G: uint8(float64(top.G) + t*(float64(low.G)-float64(top.G))),
			B: uint8(float64(top.B) + t*(float64(low.B)-float64(top.B))),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, c, false)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	link := g.field.LinkColor()
	g.field.Links(func(a, b particle.Particle, opacity float64) {
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			config.LinkWidth, particle.Premultiply(link, opacity), true)
	})

	for _, p := range g.field.Particles() {
		if p.Glow {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size*4),
				particle.Premultiply(p.Color, 0.08), true)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size*2),
				particle.Premultiply(p.Color, 0.25), true)
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.RGBA(), true)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	g.drawText(screen, "Sunnah Tracker", config.FormX, 16, gold)
	g.drawText(screen, calendar.Format(g.tracker.Date()), config.FormX, 36, g.ink())
	if g.tracker.Loading() {
		g.drawText(screen, "loading...", config.FormX+200, 68, g.ink())
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	var bg color.RGBA
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	if !g.dark {
		bg = color.RGBA{R: bg.R + 100, G: bg.G + 70, B: bg.B / 2, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, gold, false)

	textWidth := float64(len(b.label) * 7)
	g.drawText(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-13)/2, color.White)
}

func (g *Game) drawForm(screen *ebiten.Image) {
	if len(g.rows) == 0 {
		return
	}
	top := g.rows[0].y - 6
	bottom := g.rows[len(g.rows)-1].y + config.RowHeight + 6
	vector.DrawFilledRect(screen, config.FormX-10, float32(top), formWidth+20, float32(bottom-top), g.card(), false)

	rec := g.tracker.Record()
	for i, r := range g.rows {
		if r.isHeader() {
			g.drawText(screen, r.header, config.FormX, r.y+4, gold)
			continue
		}
		if i == g.hoverRow {
			vector.DrawFilledRect(screen, config.FormX-4, float32(r.y), formWidth+8, config.RowHeight, fade(gold, 0.15), false)
		}
		if r.isText() {
			g.drawTextRow(screen, r, rec.Text(r.text.Name))
			continue
		}
		box := float32(r.y + 4)
		vector.StrokeRect(screen, config.FormX+12, box, 14, 14, 1.5, g.ink(), false)
		if rec.Bool(r.field.Name) {
			vector.DrawFilledRect(screen, config.FormX+15, box+3, 8, 8, emerald, false)
		}
		g.drawText(screen, r.field.Label, config.FormX+36, r.y+4, g.ink())
	}
}

// drawTextRow draws a text input as its label and a value box; clicking the
// row opens the entry dialog.
func (g *Game) drawTextRow(screen *ebiten.Image, r formRow, value string) {
	g.drawText(screen, r.text.Label, config.FormX+12, r.y+4, g.ink())
	const boxX = config.FormX + 110
	vector.StrokeRect(screen, boxX, float32(r.y+2), formWidth-120, config.RowHeight-4, 1, g.ink(), false)
	if value != "" && printable(value) {
		g.drawText(screen, truncate(value, (formWidth-130)/7), boxX+5, r.y+4, g.ink())
	}
}

func (g *Game) drawProgress(screen *ebiten.Image) {
	x := float64(config.FormX + formWidth + 60)
	y := float64(config.FormY)
	w := float64(g.width) - x - config.ButtonWidth - 60
	if w < 120 {
		w = 120
	}
	const h = 24

	progress := g.tracker.Progress()
	g.drawText(screen, "Daily progress", x, y-20, g.ink())
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), h, g.card(), false)
	if progress > 0 {
		fill := w * float64(progress) / 100
		r, gv, b := hsvToRgb(40+float64(progress)*1.2, 0.7, 0.85)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), h, color.RGBA{R: r, G: gv, B: b, A: 230}, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), h, 2, gold, false)
	g.drawText(screen, fmt.Sprintf("%d%%", progress), x+w/2-10, y+5, g.ink())
}

func (g *Game) drawFeedback(screen *ebiten.Image) {
	x := float64(config.FormX + formWidth + 60)
	y := float64(config.FormY + 60)

	if g.tracker.Analyzing() {
		g.drawText(screen, "Analyzing your journal...", x, y, g.ink())
		return
	}
	if j := g.tracker.Record().Journal(); j != "" && printable(j) {
		g.drawText(screen, "Journal: "+truncate(j, 60), x, y, g.ink())
	}
	msg := g.tracker.Feedback()
	if msg == "" {
		return
	}
	if printable(msg) {
		g.drawText(screen, truncate(msg, 70), x, y+20, emerald)
	}
	g.drawText(screen, "Press F to read the full encouragement", x, y+40, gold)
}

func (g *Game) drawStats(screen *ebiten.Image) {
	x := float64(config.FormX + formWidth + 60)
	y := float64(config.FormY + 130)
	w := float64(360)

	s := g.tracker.Stats()
	lines := 2
	if s != nil {
		lines += len(record.Fields) + 1
	}
	vector.DrawFilledRect(screen, float32(x-10), float32(y-10), float32(w), float32(lines*16+20), g.card(), false)

	if s == nil {
		g.drawText(screen, "Loading stats...", x, y, g.ink())
		return
	}
	g.drawText(screen, fmt.Sprintf("Last %d days: avg %.0f%%, %d full sunnah days", s.Days, s.AvgProgress, s.SunnahDays), x, y, gold)
	g.drawText(screen, fmt.Sprintf("Celebrated on this device: %d days", g.celebrated), x, y+16, g.ink())
	for i, f := range record.Fields {
		ly := y + float64(i+3)*16
		rate := s.Rates[f.Name]
		g.drawText(screen, f.Label, x, ly, g.ink())
		vector.DrawFilledRect(screen, float32(x+140), float32(ly+3), float32(150*rate), 8, emerald, false)
		g.drawText(screen, fmt.Sprintf("%3.0f%%", rate*100), x+300, ly, g.ink())
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	msg := g.status
	if err := g.tracker.Err(); err != nil {
		msg = "Backend error: " + err.Error()
	}
	if msg == "" {
		msg = "Click to edit  <-/-> day  T theme  J journal  S stats  R replay  M mute  Q quit"
	}
	g.drawText(screen, truncate(msg, (g.width-40)/7), 20, float64(g.height-24), g.ink())
}

// drawCelebration draws the celebration panel and its confetti surface. The
// surface lives exactly as long as the burst runs; it is repainted only when
// the burst's periodic task has requested a redraw.
func (g *Game) drawCelebration(screen *ebiten.Image) {
	if !g.burst.Running() && g.burstImg != nil {
		g.burstImg.Deallocate()
		g.burstImg = nil
	}
	if !g.panel.Mounted() {
		return
	}

	now := g.lastUpdate
	alpha := g.panel.Opacity(now)
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), fade(color.RGBA{A: 255}, 0.6*alpha), false)

	if c := g.burst.Canvas(); c != nil {
		if g.burstImg == nil {
			g.burstImg = ebiten.NewImage(int(c.Width), int(c.Height))
		}
		if g.burst.TakeRedraw() {
			g.burstImg.Clear()
			for _, p := range g.burst.Particles() {
				vector.DrawFilledCircle(g.burstImg, float32(p.X), float32(p.Y), float32(p.Size), p.RGBA(), true)
			}
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(g.burstImg, op)
	}

	cx := float64(g.width) / 2
	cy := float64(g.height) * 0.4
	r, gv, b := hsvToRgb(40+20*float64(now.UnixMilli()%2000)/2000, 0.8, 1)
	title := "A house in Jannah!"
	g.drawText(screen, title, cx-float64(len(title)*7)/2, cy, fade(color.RGBA{R: r, G: gv, B: b, A: 255}, alpha))
	sub := "All four sunnah prayers completed today"
	g.drawText(screen, sub, cx-float64(len(sub)*7)/2, cy+24, fade(inkDark, alpha))

	if g.panel.Visible() {
		g.drawButton(screen, g.closeBtn)
	}
}
