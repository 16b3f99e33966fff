package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/diffpane/internal/keymap"
	"github.com/marcus/diffpane/internal/styles"
	"github.com/marcus/diffpane/internal/viewer"
)

// View renders the title row, the diff pane body, and the status row.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := styles.Title.Render(m.title)
	body := m.renderer.Render(m.viewer)
	if m.help {
		body = m.helpBody()
	}
	return title + "\n" + body + "\n" + m.statusLine()
}

// helpBody lists the key bindings per context, sized to the pane body.
func (m Model) helpBody() string {
	rows := make([]string, 0, m.height)
	for _, ctx := range keymap.Contexts() {
		rows = append(rows, styles.StatusMode.Render(ctx))
		for _, b := range keymap.ForContext(ctx) {
			rows = append(rows, fmt.Sprintf("  %-12s %s", b.Help().Key, b.Help().Desc))
		}
		rows = append(rows, "")
	}

	bodyHeight := m.height - chromeRows
	if len(rows) > bodyHeight {
		rows = rows[:bodyHeight]
	}
	for len(rows) < bodyHeight {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// statusLine composes the bottom row. While a query is being typed it
// doubles as the search bar, mirroring the draft; otherwise it shows the
// mode, search and selection readouts on the left and the scroll position
// on the right.
func (m Model) statusLine() string {
	var left string
	switch {
	case m.help:
		left = styles.Muted.Render("press any key to close help")
	case m.viewer.Mode() == viewer.ModeSearchEntry:
		left = styles.SearchBar.Render("/" + m.viewer.DraftQuery())
	case m.toast != "":
		left = styles.Muted.Render(m.toast)
	default:
		left = m.normalStatus()
	}

	right := m.scrollStatus()
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return styles.StatusBar.Render(ansi.Truncate(line, m.width, ""))
}

func (m Model) normalStatus() string {
	var parts []string
	if sel := m.viewer.Selection(); sel.Active {
		parts = append(parts, styles.StatusMode.Render("VISUAL"))
		parts = append(parts, fmt.Sprintf("%d lines selected", sel.Count()))
	}
	if s := m.viewer.Search(); s.HasMatches() {
		parts = append(parts, fmt.Sprintf("match %d/%d", s.Current+1, len(s.Matches)))
	}
	if len(parts) == 0 {
		return styles.Muted.Render("/ search  V select  [ ] hunks  ? help  q quit")
	}
	return strings.Join(parts, "  ")
}

func (m Model) scrollStatus() string {
	start, end := m.viewer.VisibleRange()
	total := m.viewer.Doc().Len()
	if total == 0 {
		return styles.Muted.Render("empty")
	}
	return styles.Muted.Render(fmt.Sprintf("%d–%d / %d", start+1, end, total))
}
