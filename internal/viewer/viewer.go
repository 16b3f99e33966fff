// Package viewer implements the diff viewing and navigation engine behind
// the review tool's diff pane: viewport scrolling, in-document search with
// cyclic match traversal, hunk jumps, and vim-style visual line selection,
// all routed through a single mode-aware key dispatcher.
package viewer

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/diffpane/internal/diffdoc"
)

// Mode is the dispatcher's input mode. Visual selection is deliberately not
// a Mode: it is an orthogonal flag that only reinterprets the vertical
// movement keys, while search entry is fully modal and captures every key.
type Mode int

const (
	// ModeNormal routes keys to navigation, search and selection commands.
	ModeNormal Mode = iota
	// ModeSearchEntry captures every keystroke into the draft query.
	ModeSearchEntry
)

// YankMsg reports the outcome of copying a visual selection.
type YankMsg struct {
	Count int
	Err   error
}

// Viewer owns all state for one diff document view. State is exclusive to
// the instance; the host pushes in content and dimensions and reads the
// derived view back out after each keystroke.
type Viewer struct {
	doc       diffdoc.Document
	viewport  Viewport
	search    SearchState
	selection Selection
	segments  map[int][]diffdoc.WordSegment

	mode      Mode
	draft     string
	focused   bool
	colOffset int
}

// New creates a viewer with the given content area height.
func New(bodyHeight int) *Viewer {
	v := &Viewer{focused: true}
	v.viewport.Resize(bodyHeight, 0)
	return v
}

// SetContent replaces the document, re-deriving the line list and hunk
// index wholesale. The selection is discarded (its indices belong to the
// old document) and a committed query is re-applied against the new text.
func (v *Viewer) SetContent(text string) {
	v.doc = diffdoc.Parse(text)
	v.segments = nil
	v.selection.Exit()
	v.viewport.Resize(v.viewport.BodyHeight, v.doc.Len())
	if v.search.Query != "" {
		v.applyQuery(v.search.Query)
	}
}

// SetWordSegments attaches externally computed word-diff segments, keyed by
// line index. Only Add/Del lines are expected to have entries.
func (v *Viewer) SetWordSegments(segments map[int][]diffdoc.WordSegment) {
	v.segments = segments
}

// Resize updates the content area height and re-clamps the viewport.
func (v *Viewer) Resize(bodyHeight int) {
	v.viewport.Resize(bodyHeight, v.doc.Len())
}

// Focus marks the viewer active. An unfocused viewer ignores all keys so
// they pass through to the host.
func (v *Viewer) Focus(focused bool) { v.focused = focused }

// Focused reports whether the viewer is receiving input.
func (v *Viewer) Focused() bool { return v.focused }

// HandleKey dispatches one keystroke. It reports whether the key was
// consumed; unconsumed keys belong to the host. The returned command, if
// any, performs a side effect such as a clipboard write.
func (v *Viewer) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !v.focused {
		return false, nil
	}
	if v.mode == ModeSearchEntry {
		v.handleSearchEntryKey(msg)
		return true, nil
	}
	return v.handleNormalKey(msg)
}

// handleSearchEntryKey captures every keystroke while a query is being
// typed. The query applies incrementally: each edit re-runs the scan.
func (v *Viewer) handleSearchEntryKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEscape:
		v.draft = ""
		v.search.SetQuery("", v.doc)
		v.mode = ModeNormal
	case tea.KeyEnter:
		// Matches were already built incrementally; just leave entry mode.
		v.mode = ModeNormal
	case tea.KeyBackspace, tea.KeyDelete:
		if len(v.draft) > 0 {
			runes := []rune(v.draft)
			v.draft = string(runes[:len(runes)-1])
			v.applyQuery(v.draft)
		}
	case tea.KeySpace:
		v.draft += " "
		v.applyQuery(v.draft)
	case tea.KeyRunes:
		v.draft += string(msg.Runes)
		v.applyQuery(v.draft)
	}
}

func (v *Viewer) handleNormalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selection.Active {
			v.selection.ExtendUp(v.doc.Len())
			v.viewport.EnsureVisible(v.selection.Extent)
		} else {
			v.viewport.LineUp()
		}
	case "down", "j":
		if v.selection.Active {
			v.selection.ExtendDown(v.doc.Len())
			v.viewport.EnsureVisible(v.selection.Extent)
		} else {
			v.viewport.LineDown()
		}
	case "pgup", "ctrl+u":
		v.viewport.PageUp()
	case "pgdown", "ctrl+d":
		v.viewport.PageDown()
	case "home", "g":
		v.viewport.GotoTop()
	case "end", "G":
		v.viewport.GotoBottom()
	case "left", "h":
		if v.colOffset > 0 {
			v.colOffset--
		}
	case "right", "l":
		if v.colOffset < v.maxColOffset() {
			v.colOffset++
		}
	case "/":
		v.mode = ModeSearchEntry
		v.draft = ""
	case "V", "v":
		if v.selection.Active {
			v.selection.Exit()
		} else {
			v.selection.Enter(v.viewport.Offset+v.viewport.BodyHeight/2, v.doc.Len())
		}
	case "n":
		if v.selection.Active || !v.search.HasMatches() {
			return true, nil
		}
		v.search.Next()
		v.jumpToCurrentMatch()
	case "N":
		if v.selection.Active || !v.search.HasMatches() {
			return true, nil
		}
		v.search.Prev()
		v.jumpToCurrentMatch()
	case "[":
		v.prevHunk()
	case "]":
		v.nextHunk()
	case "y":
		if v.selection.Active {
			return true, v.yankSelection()
		}
		return false, nil
	case "esc":
		if v.selection.Active {
			v.selection.Exit()
			return true, nil
		}
		return false, nil
	default:
		return false, nil
	}
	return true, nil
}

// maxColOffset bounds horizontal scrolling at the widest visible line's
// last column, so the pane cannot scroll off into empty space.
func (v *Viewer) maxColOffset() int {
	widest := 0
	start, end := v.viewport.Visible()
	for _, l := range v.doc.Lines[start:end] {
		if w := runewidth.StringWidth(l.Text); w > widest {
			widest = w
		}
	}
	if widest == 0 {
		return 0
	}
	return widest - 1
}

// applyQuery rebuilds the match list and, when anything matched, jumps the
// viewport to the first match's line.
func (v *Viewer) applyQuery(query string) {
	v.search.SetQuery(query, v.doc)
	v.jumpToCurrentMatch()
}

func (v *Viewer) jumpToCurrentMatch() {
	if m, ok := v.search.CurrentMatch(); ok {
		v.viewport.JumpTo(m.Line)
	}
}

// nextHunk jumps to the closest hunk header strictly below the current
// offset. Silent no-op when there is none.
func (v *Viewer) nextHunk() {
	for _, h := range v.doc.Hunks {
		if h > v.viewport.Offset {
			v.viewport.JumpTo(h)
			return
		}
	}
}

// prevHunk jumps to the closest hunk header strictly above the current
// offset. Silent no-op when there is none.
func (v *Viewer) prevHunk() {
	for i := len(v.doc.Hunks) - 1; i >= 0; i-- {
		if v.doc.Hunks[i] < v.viewport.Offset {
			v.viewport.JumpTo(v.doc.Hunks[i])
			return
		}
	}
}

// yankSelection copies the selected lines to the clipboard and leaves
// visual mode.
func (v *Viewer) yankSelection() tea.Cmd {
	lo, hi, ok := v.selection.Range()
	if !ok {
		return nil
	}
	var sb strings.Builder
	for i := lo; i <= hi && i < v.doc.Len(); i++ {
		if i > lo {
			sb.WriteByte('\n')
		}
		sb.WriteString(v.doc.Lines[i].Text)
	}
	count := v.selection.Count()
	v.selection.Exit()
	text := sb.String()
	return func() tea.Msg {
		return YankMsg{Count: count, Err: clipboard.WriteAll(text)}
	}
}

// Doc returns the current document.
func (v *Viewer) Doc() diffdoc.Document { return v.doc }

// Offset returns the viewport scroll offset.
func (v *Viewer) Offset() int { return v.viewport.Offset }

// BodyHeight returns the viewport content height.
func (v *Viewer) BodyHeight() int { return v.viewport.BodyHeight }

// ColOffset returns the horizontal scroll column.
func (v *Viewer) ColOffset() int { return v.colOffset }

// VisibleRange returns the [start, end) line range currently in view.
func (v *Viewer) VisibleRange() (int, int) { return v.viewport.Visible() }

// VisibleLines returns the visible slice of the document.
func (v *Viewer) VisibleLines() []diffdoc.Line {
	start, end := v.viewport.Visible()
	return v.doc.Lines[start:end]
}

// Mode returns the dispatcher mode.
func (v *Viewer) Mode() Mode { return v.mode }

// DraftQuery returns the in-progress query while in search entry mode, so
// a host-level search bar can mirror it.
func (v *Viewer) DraftQuery() string { return v.draft }

// Search returns the search state for status display and highlighting.
func (v *Viewer) Search() *SearchState { return &v.search }

// Selection returns the visual selection for status display and rendering.
func (v *Viewer) Selection() *Selection { return &v.selection }

// WordSegments returns the word-diff segments for a line, or nil.
func (v *Viewer) WordSegments(line int) []diffdoc.WordSegment {
	return v.segments[line]
}
