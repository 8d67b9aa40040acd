package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/sunnah-tracker/internal/config"
	"github.com/iburimskiy/sunnah-tracker/internal/record"
)

// button is a clickable rectangle. A click is a press and release that both
// land on the button.
type button struct {
	label   string
	x, y    float64
	w, h    float64
	action  func()
	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.x && fx <= b.x+b.w && fy >= b.y && fy <= b.y+b.h
}

// update tracks hover/press state and reports whether the button was clicked.
func (b *button) update(mouseX, mouseY int) bool {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

// formRow is one line of the tracker form: a group header, a checkbox or a
// text input.
type formRow struct {
	header string
	field  record.Field
	text   record.TextField
	y      float64
}

func (r formRow) isHeader() bool { return r.header != "" }
func (r formRow) isText() bool   { return r.text.Name != "" }

// buildForm lays out the form rows top to bottom, inserting a header before
// each group and the group's text inputs after its checkboxes.
func buildForm() []formRow {
	var rows []formRow
	var group record.Group
	y := float64(config.FormY)

	flush := func() {
		for _, tf := range record.TextFields {
			if tf.Group == group {
				rows = append(rows, formRow{text: tf, y: y})
				y += config.RowHeight
			}
		}
	}

	for _, f := range record.Fields {
		if f.Group != group {
			flush()
			group = f.Group
			rows = append(rows, formRow{header: string(group), y: y})
			y += config.RowHeight
		}
		rows = append(rows, formRow{field: f, y: y})
		y += config.RowHeight
	}
	flush()
	return rows
}

// rowAt returns the index of the checkbox or text row under (x, y), or -1.
func rowAt(rows []formRow, x, y int) int {
	if x < config.FormX || x > config.FormX+formWidth {
		return -1
	}
	fy := float64(y)
	for i, r := range rows {
		if r.isHeader() {
			continue
		}
		if fy >= r.y && fy < r.y+config.RowHeight {
			return i
		}
	}
	return -1
}
