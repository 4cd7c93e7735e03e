package tui

import "github.com/jask/sandwich/internal/dnd"

const (
	minPaletteWidth = 22
	chromeRows      = 3 // header, status, footer
	paneChromeRows  = 3 // top border, title, bottom border
)

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// itemTop is the screen row of the first list item inside a pane.
func (r rect) itemTop() int { return r.Y + 2 }

func (r rect) itemRows() int { return max(0, r.H-paneChromeRows) }

func (r rect) innerWidth() int { return max(0, r.W-2) }

// itemRow maps a screen position to a visible list row, or -1.
func (r rect) itemRow(x, y int) int {
	if x <= r.X || x >= r.X+r.W-1 {
		return -1
	}
	row := y - r.itemTop()
	if row < 0 || row >= r.itemRows() {
		return -1
	}
	return row
}

// layout is the screen geometry for one terminal size. View and mouse
// hit-testing both read from it.
type layout struct {
	width, height int
	palette       rect
	stack         rect
	footerY       int
}

func computeLayout(width, height int) layout {
	width, height = max(1, width), max(1, height)
	bodyH := max(0, height-chromeRows)
	pw := max(minPaletteWidth, width/3)
	if pw > width/2 {
		pw = width / 2
	}
	return layout{
		width:   width,
		height:  height,
		palette: rect{X: 0, Y: 2, W: pw, H: bodyH},
		stack:   rect{X: pw, Y: 2, W: width - pw, H: bodyH},
		footerY: height - 1,
	}
}

const resetLabel = "[ Reset ]"

// resetButton sits at the right end of the stack pane's title row. It is
// empty when the pane is too narrow to show it beside the title.
func (r rect) resetButton() rect {
	w := len(resetLabel)
	if r.innerWidth() < w+16 || r.H < paneChromeRows {
		return rect{}
	}
	return rect{X: r.X + 1 + r.innerWidth() - w, Y: r.Y + 1, W: w, H: 1}
}

// follow returns the first visible row of a window of rows items. The window
// only moves when cursor leaves it, so a press that moves the cursor inside
// the window never scrolls what is under the pointer.
func follow(top, cursor, total, rows int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	switch {
	case cursor < top:
		top = cursor
	case cursor >= top+rows:
		top = cursor - rows + 1
	}
	return min(max(top, 0), total-rows)
}

func (m *Model) syncWindows() {
	l := m.layout()
	m.paletteTop = follow(m.paletteTop, m.paletteCursor, len(m.visible), l.palette.itemRows())
	m.stackTop = follow(m.stackTop, m.stackCursor, m.stack.Len(), l.stack.itemRows())
}

type hit struct {
	source dnd.Source
	target string
	reset  bool
}

// hitTest resolves what is under the pointer: the item that a press would
// pick up and the drop target a release would report.
func (m Model) hitTest(x, y int) hit {
	l := m.layout()
	switch {
	case l.palette.contains(x, y):
		h := hit{target: dnd.PaletteContainerID}
		if row := l.palette.itemRow(x, y); row >= 0 {
			if idx := m.paletteTop + row; idx < len(m.visible) {
				h.source = dnd.Source{Kind: dnd.KindTemplate, ID: m.visible[idx].ID}
			}
		}
		return h
	case l.stack.contains(x, y):
		h := hit{target: dnd.StackContainerID}
		if l.stack.resetButton().contains(x, y) {
			h.reset = true
			return h
		}
		if row := l.stack.itemRow(x, y); row >= 0 {
			if in, ok := m.stack.At(m.stackTop + row); ok {
				h.source = dnd.Source{Kind: dnd.KindInstance, ID: in.ID}
				h.target = in.ID
			}
		}
		return h
	default:
		return hit{}
	}
}
