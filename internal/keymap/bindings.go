// Package keymap is the single source of truth for key bindings: the
// help overlay and status hints are generated from it so they can never
// drift from what the dispatcher actually handles.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding pairs a key binding with the context it applies in.
type Binding struct {
	key.Binding
	Context string
}

// Contexts, in help display order.
const (
	ContextGlobal      = "global"
	ContextNormal      = "normal"
	ContextSearchEntry = "search entry"
	ContextVisual      = "visual"
)

func bind(ctx, help, desc string, keys ...string) Binding {
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Context: ctx,
	}
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		bind(ContextGlobal, "q", "quit", "q", "ctrl+c"),
		bind(ContextGlobal, "?", "toggle help", "?"),

		// Normal context
		bind(ContextNormal, "j/↓", "scroll down", "j", "down"),
		bind(ContextNormal, "k/↑", "scroll up", "k", "up"),
		bind(ContextNormal, "ctrl+d", "half page down", "ctrl+d", "pgdown"),
		bind(ContextNormal, "ctrl+u", "half page up", "ctrl+u", "pgup"),
		bind(ContextNormal, "g", "go to top", "g", "home"),
		bind(ContextNormal, "G", "go to bottom", "G", "end"),
		bind(ContextNormal, "h/←", "scroll left", "h", "left"),
		bind(ContextNormal, "l/→", "scroll right", "l", "right"),
		bind(ContextNormal, "/", "search", "/"),
		bind(ContextNormal, "n", "next match", "n"),
		bind(ContextNormal, "N", "previous match", "N"),
		bind(ContextNormal, "]", "next hunk", "]"),
		bind(ContextNormal, "[", "previous hunk", "["),
		bind(ContextNormal, "V", "visual select", "V", "v"),

		// Search entry context
		bind(ContextSearchEntry, "enter", "commit query", "enter"),
		bind(ContextSearchEntry, "esc", "cancel query", "esc"),
		bind(ContextSearchEntry, "backspace", "delete character", "backspace"),

		// Visual context
		bind(ContextVisual, "j/↓", "extend down", "j", "down"),
		bind(ContextVisual, "k/↑", "extend up", "k", "up"),
		bind(ContextVisual, "y", "yank selection", "y"),
		bind(ContextVisual, "]", "next hunk", "]"),
		bind(ContextVisual, "[", "previous hunk", "["),
		bind(ContextVisual, "esc", "exit visual", "esc", "V"),
	}
}

// ForContext returns the default bindings for one context, in order.
func ForContext(ctx string) []Binding {
	var out []Binding
	for _, b := range DefaultBindings() {
		if b.Context == ctx {
			out = append(out, b)
		}
	}
	return out
}

// Contexts returns the known contexts in help display order.
func Contexts() []string {
	return []string{ContextGlobal, ContextNormal, ContextSearchEntry, ContextVisual}
}
