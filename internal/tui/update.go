package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/sandwich/internal/catalog"
	"github.com/jask/sandwich/internal/dnd"
	"github.com/jask/sandwich/internal/stack"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncWindows()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tracker.Cancel()
		return m, nil
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashID = ""
		}
		return m, nil
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	scope := m.ActiveScope()
	if m.keys.Matches(msg, "quit", scope) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.filtering {
		switch {
		case m.keys.Matches(msg, "filter-accept", scope):
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case m.keys.Matches(msg, "filter-clear", scope):
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.refreshVisible()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refreshVisible()
		return m, cmd
	}

	action, ok := m.keys.Lookup(msg, scope)
	if !ok {
		return m, nil
	}
	switch action {
	case "switch-pane":
		if m.focus == panePalette {
			m.focus = paneStack
		} else {
			m.focus = panePalette
		}
	case "cursor-up":
		m.moveCursor(-1)
	case "cursor-down":
		m.moveCursor(1)
	case "activate":
		if m.paletteCursor < len(m.visible) {
			cmd := m.appendTemplate(m.visible[m.paletteCursor])
			return m, cmd
		}
	case "remove":
		if in, ok := m.stack.At(m.stackCursor); ok {
			cmd := m.removeInstance(in.ID)
			return m, cmd
		}
	case "move-up", "move-down":
		in, ok := m.stack.At(m.stackCursor)
		if !ok {
			return m, nil
		}
		delta := 1
		if action == "move-up" {
			delta = -1
		}
		target := m.stackCursor + delta
		status := fmt.Sprintf("Moved %s to layer %d", in.Template.Name, clampCursor(target, m.stack.Len())+1)
		cmd := m.commit(m.stack.MoveTo(in.ID, target), in.ID, status)
		return m, cmd
	case "reset":
		cmd := m.reset()
		return m, cmd
	case "filter":
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case "cancel":
		if _, pressed := m.tracker.Pressed(); pressed {
			m.tracker.Cancel()
			m.SetStatus("Drag cancelled")
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneStack {
		m.stackCursor = clampCursor(m.stackCursor+delta, m.stack.Len())
		return
	}
	m.paletteCursor = clampCursor(m.paletteCursor+delta, len(m.visible))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	h := m.hitTest(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		switch h.target {
		case "":
		case dnd.PaletteContainerID:
			m.focus = panePalette
			m.moveCursor(delta)
		default:
			m.focus = paneStack
			m.moveCursor(delta)
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if h.reset {
			m.tracker.Cancel()
			return m.reset()
		}
		m.focusHit(h)
		m.tracker.Press(h.source, msg.X, msg.Y)
		return nil
	case tea.MouseActionMotion:
		if m.tracker.Move(msg.X, msg.Y, h.target) {
			if src, dragging := m.tracker.Dragging(); dragging {
				m.log.Debug("drag over", zap.String("kind", src.Kind.String()), zap.String("dragged", src.ID), zap.String("over", h.target))
			}
		}
		return nil
	case tea.MouseActionRelease:
		out := m.tracker.Release(msg.X, msg.Y, h.target)
		switch out.Kind {
		case dnd.OutcomeClick:
			return m.click(out.Source)
		case dnd.OutcomeDrop:
			return m.drop(out.Drop)
		}
	}
	return nil
}

// focusHit moves focus and cursor to the item under a press.
func (m *Model) focusHit(h hit) {
	switch h.source.Kind {
	case dnd.KindTemplate:
		m.focus = panePalette
		for i, t := range m.visible {
			if t.ID == h.source.ID {
				m.paletteCursor = i
				break
			}
		}
	case dnd.KindInstance:
		m.focus = paneStack
		if idx := m.stack.IndexOf(h.source.ID); idx >= 0 {
			m.stackCursor = idx
		}
	}
}

func (m *Model) click(src dnd.Source) tea.Cmd {
	switch src.Kind {
	case dnd.KindTemplate:
		t, ok := m.catalog.Lookup(src.ID)
		if !ok {
			return nil
		}
		return m.appendTemplate(t)
	case dnd.KindInstance:
		return m.removeInstance(src.ID)
	}
	return nil
}

func (m *Model) drop(ev dnd.DragEnd) tea.Cmd {
	intent := dnd.Resolve(ev, m.stack, m.catalog)
	switch intent.Kind {
	case dnd.IntentAppend:
		return m.appendTemplate(intent.Template)
	case dnd.IntentReorder:
		in, _ := m.stack.At(m.stack.IndexOf(intent.InstanceID))
		next := intent.Apply(m.stack)
		return m.commit(next, intent.InstanceID, fmt.Sprintf("Moved %s to layer %d", in.Template.Name, next.IndexOf(intent.InstanceID)+1))
	default:
		m.log.Debug("drop ignored",
			zap.String("reason", intent.Reason),
			zap.String("kind", ev.Kind.String()),
			zap.String("dragged", ev.DraggedID),
			zap.String("target", ev.DropTargetID),
		)
		return nil
	}
}

func (m *Model) appendTemplate(t catalog.Template) tea.Cmd {
	next := m.stack.Append(t)
	added, _ := next.At(next.Len() - 1)
	return m.commit(next, added.ID, "Added "+t.Name)
}

func (m *Model) removeInstance(id string) tea.Cmd {
	in, ok := m.stack.At(m.stack.IndexOf(id))
	if !ok {
		return nil
	}
	return m.commit(m.stack.RemoveByID(id), "", "Removed "+in.Template.Name)
}

// reset empties the sandwich. The cleared stack keeps the id source so ids
// stay unique across resets.
func (m *Model) reset() tea.Cmd {
	n := m.stack.Len()
	return m.commit(m.stack.Clear(), "", fmt.Sprintf("Sandwich reset (%d layers removed)", n))
}

// commit installs next as the current stack. Unchanged stacks are ignored so
// that no-op moves neither update the status nor flash a layer. focusID, when
// set, moves the stack cursor onto that layer and highlights it.
func (m *Model) commit(next *stack.Stack, focusID, status string) tea.Cmd {
	if next == m.stack {
		return nil
	}
	m.stack = next
	m.SetStatus(status)
	m.log.Debug("stack changed", zap.String("action", status), zap.Int("layers", next.Len()))

	if idx := next.IndexOf(focusID); idx >= 0 {
		m.stackCursor = idx
		return m.startFlash(focusID)
	}
	m.stackCursor = clampCursor(m.stackCursor, next.Len())
	return nil
}

func (m *Model) startFlash(id string) tea.Cmd {
	if m.flashDuration <= 0 {
		return nil
	}
	m.flashSeq++
	m.flashID = id
	seq := m.flashSeq
	return tea.Tick(m.flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}
