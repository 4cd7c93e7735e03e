package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopePalette = "pane:palette"
	scopeStack   = "pane:stack"
	scopeFilter  = "filter"
)

// KeyBinding ties a bubbles key binding to an action in a set of scopes.
// No scopes, or "*", means every scope.
type KeyBinding struct {
	key.Binding
	Action string
	Scopes []string
}

func (b KeyBinding) inScope(scope string) bool {
	if len(b.Scopes) == 0 {
		return true
	}
	for _, s := range b.Scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: append([]KeyBinding(nil), bindings...)}
}

// Lookup returns the first action bound to msg in scope. Keys are matched
// exactly, so J and j can carry different actions.
func (r *KeyRegistry) Lookup(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.bindings {
		if b.inScope(scope) && key.Matches(msg, b.Binding) {
			return b.Action, true
		}
	}
	return "", false
}

// Matches reports whether msg triggers action in scope.
func (r *KeyRegistry) Matches(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action == action && b.inScope(scope) && key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

// Help lists the bindings to advertise in scope, one per action.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	seen := map[string]bool{}
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if !b.inScope(scope) || b.Help().Desc == "" || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, b.Binding)
	}
	return out
}

func bind(action string, scopes []string, keys []string, helpKey, helpDesc string) KeyBinding {
	opts := []key.BindingOpt{key.WithKeys(keys...)}
	if helpDesc != "" {
		opts = append(opts, key.WithHelp(helpKey, helpDesc))
	}
	return KeyBinding{Binding: key.NewBinding(opts...), Action: action, Scopes: scopes}
}

func DefaultKeyBindings() []KeyBinding {
	panes := []string{scopePalette, scopeStack}
	palette := []string{scopePalette}
	stackOnly := []string{scopeStack}
	filter := []string{scopeFilter}
	return []KeyBinding{
		bind("quit", nil, []string{"ctrl+c"}, "", ""),
		bind("quit", panes, []string{"q"}, "q", "quit"),
		bind("switch-pane", panes, []string{"tab", "shift+tab"}, "tab", "switch pane"),
		bind("cursor-up", panes, []string{"k", "up"}, "↑/k", "up"),
		bind("cursor-down", panes, []string{"j", "down"}, "↓/j", "down"),
		bind("activate", palette, []string{"enter", " "}, "enter", "add"),
		bind("filter", palette, []string{"/"}, "/", "filter"),
		bind("remove", stackOnly, []string{"x", "delete", "backspace", "enter", " "}, "x", "remove"),
		bind("move-up", stackOnly, []string{"K", "shift+up"}, "K", "move up"),
		bind("move-down", stackOnly, []string{"J", "shift+down"}, "J", "move down"),
		bind("reset", panes, []string{"R", "ctrl+r"}, "R", "reset"),
		bind("cancel", panes, []string{"esc"}, "esc", "cancel drag"),
		bind("filter-accept", filter, []string{"enter"}, "enter", "keep filter"),
		bind("filter-clear", filter, []string{"esc"}, "esc", "clear filter"),
	}
}
