package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/diffpane/internal/viewer"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewer.Resize(msg.Height - chromeRows)
		m.renderer.SetWidth(msg.Width)
		m.ready = true
		return m, nil

	case ReloadMsg:
		cmd := m.loadContent()
		return m, tea.Batch(cmd, waitForReload(m.reloads))

	case ContentMsg:
		if msg.Err != nil {
			m.toast = "Reload failed: " + msg.Err.Error()
			return m, nil
		}
		m.viewer.SetContent(msg.Text)
		return m, nil

	case viewer.YankMsg:
		if msg.Err != nil {
			m.toast = "Copy failed: " + msg.Err.Error()
		} else {
			m.toast = fmt.Sprintf("Yanked %d lines", msg.Count)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""

	// Any keystroke dismisses the help overlay.
	if m.help {
		m.help = false
		return m, nil
	}

	if handled, cmd := m.viewer.HandleKey(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "?":
		m.help = true
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// loadContent re-reads the diff source off the update loop.
func (m Model) loadContent() tea.Cmd {
	reload := m.reload
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		text, err := reload()
		return ContentMsg{Text: text, Err: err}
	}
}
