// Package app wires the diff viewer, renderer and diff sources into a
// bubbletea program: one pane, a title row and a status row.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/diffpane/internal/render"
	"github.com/marcus/diffpane/internal/source"
	"github.com/marcus/diffpane/internal/viewer"
)

// chromeRows is the fixed height of the title and status rows. The
// viewer's body height is the terminal height minus this.
const chromeRows = 2

// Model is the top-level bubbletea model.
type Model struct {
	viewer   *viewer.Viewer
	renderer *render.Renderer
	title    string

	reload  func() (string, error) // re-reads the source on watch events
	reloads <-chan source.Event

	width  int
	height int
	ready  bool
	help   bool   // help overlay visible
	toast  string // transient one-line notice, cleared on next keystroke
}

// Option configures the model.
type Option func(*Model)

// WithRenderOptions overrides the renderer's appearance defaults.
func WithRenderOptions(opts render.Options) Option {
	return func(m *Model) {
		m.renderer = render.NewWithOptions(m.width, opts)
	}
}

// WithReload makes the model reload its content whenever the given channel
// signals, using fn to re-read the source.
func WithReload(events <-chan source.Event, fn func() (string, error)) Option {
	return func(m *Model) {
		m.reloads = events
		m.reload = fn
	}
}

// New creates the application model around an initial diff text.
func New(title, text string, opts ...Option) Model {
	m := Model{
		viewer:   viewer.New(0),
		renderer: render.New(0),
		title:    title,
	}
	m.viewer.SetContent(text)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Viewer exposes the underlying viewer, mainly for tests.
func (m Model) Viewer() *viewer.Viewer { return m.viewer }

// Init starts the reload listener when one is configured.
func (m Model) Init() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return waitForReload(m.reloads)
}

func waitForReload(events <-chan source.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ReloadMsg{Path: ev.Path}
	}
}
