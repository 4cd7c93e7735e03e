package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/sandwich/internal/catalog"
	"github.com/jask/sandwich/internal/dnd"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()
	parts := []string{m.renderHeader(l.width), m.renderStatus(l.width)}
	if l.palette.H > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, m.renderPalette(l.palette), m.renderStack(l.stack)))
	}
	parts = append(parts, m.renderFooter(l.width))
	view := fitHeight(strings.Join(parts, "\n"), l.height)
	return appStyle.Width(l.width).MaxWidth(l.width).Render(view)
}

func (m Model) renderHeader(width int) string {
	left := headerAppStyle.Render(m.title)
	right := headerMetaStyle.Render(fmt.Sprintf("%d layers · %d ingredients", m.stack.Len(), m.catalog.Len()))
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < width {
		gap = width - w
	}
	return renderBar(headerBarStyle, width, left+strings.Repeat(" ", gap)+right)
}

func (m Model) renderStatus(width int) string {
	if src, dragging := m.tracker.Dragging(); dragging {
		return renderBar(statusDragBarStyle, width, fmt.Sprintf("Dragging %s → %s", m.sourceName(src), m.targetName(m.tracker.Over())))
	}
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, width, msg)
	}
	return renderBar(statusBarStyle, width, msg)
}

func (m Model) sourceName(src dnd.Source) string {
	switch src.Kind {
	case dnd.KindTemplate:
		if t, ok := m.catalog.Lookup(src.ID); ok {
			return t.Name
		}
	case dnd.KindInstance:
		if in, ok := m.stack.At(m.stack.IndexOf(src.ID)); ok {
			return in.Template.Name
		}
	}
	return src.ID
}

func (m Model) targetName(target string) string {
	switch target {
	case "":
		return "nowhere"
	case dnd.PaletteContainerID:
		return "palette (drop to cancel)"
	case dnd.StackContainerID:
		return "end of sandwich"
	}
	idx := m.stack.IndexOf(target)
	if in, ok := m.stack.At(idx); ok {
		return fmt.Sprintf("layer %d (%s)", idx+1, in.Template.Name)
	}
	return target
}

func (m Model) renderPalette(r rect) string {
	title := paneTitleStyle.Render("Ingredients")
	if m.filtering {
		title = m.filter.View()
	} else if q := strings.TrimSpace(m.filter.Value()); q != "" {
		title += paneHintStyle.Render("  /" + q)
	}

	dragged, dragging := m.tracker.Dragging()
	rows := r.itemRows()
	lines := make([]string, 0, rows)
	for i := m.paletteTop; i < len(m.visible) && len(lines) < rows; i++ {
		t := m.visible[i]
		line := swatch(t) + " " + t.Label()
		if dragging && dragged.Kind == dnd.KindTemplate && dragged.ID == t.ID {
			line = draggedStyle.Render(line)
		}
		lines = append(lines, m.marker(panePalette, i == m.paletteCursor)+line)
	}
	if len(m.visible) == 0 && rows > 0 {
		lines = append(lines, paneHintStyle.Render("No matches"))
	}

	border := colorBorder
	if m.focus == panePalette {
		border = colorAccent
	}
	return renderPane(r, title, lines, border)
}

func (m Model) renderStack(r rect) string {
	title := paneTitleStyle.Render(fmt.Sprintf("Sandwich (%d)", m.stack.Len()))
	if btn := r.resetButton(); btn.W > 0 {
		style := resetIdleStyle
		if m.stack.Len() > 0 {
			style = resetStyle
		}
		pad := max(1, btn.X-(r.X+1)-ansi.StringWidth(title))
		title = ansi.Truncate(title, btn.X-(r.X+1)-1, "…") + strings.Repeat(" ", pad) + style.Render(resetLabel)
	}

	dragged, dragging := m.tracker.Dragging()
	over := m.tracker.Over()
	rows := r.itemRows()
	items := m.stack.Items()
	lines := make([]string, 0, rows)
	for i := m.stackTop; i < len(items) && len(lines) < rows; i++ {
		in := items[i]
		line := fmt.Sprintf("%2d %s %s", i+1, swatch(in.Template), in.Template.Label())
		switch {
		case dragging && dragged.Kind == dnd.KindInstance && dragged.ID == in.ID:
			line = draggedStyle.Render(line)
		case dragging && over == in.ID:
			line = hoverStyle.Render(line)
		case m.flashID == in.ID:
			line = flashStyle.Render(line)
		}
		lines = append(lines, m.marker(paneStack, i == m.stackCursor)+line)
	}
	if len(items) == 0 && rows > 1 {
		lines = append(lines, "", paneHintStyle.Render("Click or drag ingredients here"))
	}

	border := colorBorder
	switch {
	case dragging && (over == dnd.StackContainerID || m.stack.Contains(over)):
		border = colorSuccess
	case m.focus == paneStack:
		border = colorAccent
	}
	return renderPane(r, title, lines, border)
}

func (m Model) marker(p pane, atCursor bool) string {
	if atCursor && m.focus == p {
		return cursorStyle.Render("› ")
	}
	return "  "
}

func swatch(t catalog.Template) string {
	if t.Color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render("█")
}

func renderPane(r rect, title string, lines []string, border lipgloss.TerminalColor) string {
	if r.W < 2 || r.H < 2 {
		return fitHeight("", r.H)
	}
	inner := r.innerWidth()
	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, ansi.Truncate(title, inner, "…"))
	for _, line := range lines {
		rows = append(rows, ansi.Truncate(line, inner, ""))
	}
	content := fitHeight(strings.Join(rows, "\n"), r.H-2)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(inner).
		Height(r.H - 2).
		MaxHeight(r.H).
		Render(content)
}

func (m Model) renderFooter(width int) string {
	h := help.New()
	h.Width = width
	h.ShortSeparator = "  "
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerStyle
	h.Styles.Ellipsis = footerDescStyle
	line := h.ShortHelpView(m.keys.Help(m.ActiveScope()))
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, width, line)
}

// renderBar paints a single full-width row. Overlong text is cut at the
// terminal edge.
func renderBar(style lipgloss.Style, width int, text string) string {
	if width <= 0 {
		return ""
	}
	first, _, _ := strings.Cut(text, "\n")
	return style.Width(width).MaxWidth(width).Render(ansi.Truncate(first, width, ""))
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
