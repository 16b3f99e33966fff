// Package render turns the viewer's visible window into styled terminal
// rows: per-kind coloring, line number gutter, search match and selection
// highlighting, word-diff segments, and horizontal scroll slicing.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/diffpane/internal/diffdoc"
	"github.com/marcus/diffpane/internal/styles"
	"github.com/marcus/diffpane/internal/viewer"
)

const cacheEntries = 4096

// Options controls renderer appearance.
type Options struct {
	SyntaxHighlight bool
	LineNumbers     bool
	TabWidth        int
}

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{SyntaxHighlight: true, LineNumbers: true, TabWidth: 4}
}

// Renderer paints the diff pane body.
type Renderer struct {
	width       int
	opts        Options
	tabSpaces   string
	highlighter *SyntaxHighlighter
	highlighted string // filename the highlighter was built for
	cache       *lineCache
}

// New creates a renderer for the given terminal width.
func New(width int) *Renderer {
	return NewWithOptions(width, DefaultOptions())
}

// NewWithOptions creates a renderer with explicit appearance options.
func NewWithOptions(width int, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 1
	}
	return &Renderer{
		width:     width,
		opts:      opts,
		tabSpaces: strings.Repeat(" ", opts.TabWidth),
		cache:     newLineCache(cacheEntries),
	}
}

// SetWidth updates the available width.
func (r *Renderer) SetWidth(width int) { r.width = width }

// Render returns the visible document slice as newline-joined styled rows.
// Empty rows pad the bottom when the document is shorter than the view.
func (r *Renderer) Render(v *viewer.Viewer) string {
	doc := v.Doc()
	if doc.Len() == 0 {
		return styles.Muted.Render("No diff content")
	}

	r.ensureHighlighter(doc.FilePath())

	gutter := 0
	if r.opts.LineNumbers {
		gutter = len(strconv.Itoa(doc.Len()))
	}
	start, end := v.VisibleRange()
	rows := make([]string, 0, v.BodyHeight())
	for i := start; i < end; i++ {
		rows = append(rows, r.renderRow(v, i, doc.Lines[i], gutter))
	}
	for len(rows) < v.BodyHeight() {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// ensureHighlighter rebuilds the syntax highlighter when the document's
// file path changes. Avoids re-creating the lexer on every render.
func (r *Renderer) ensureHighlighter(filename string) {
	if !r.opts.SyntaxHighlight {
		return
	}
	if filename == r.highlighted {
		return
	}
	r.highlighter = NewSyntaxHighlighter(filename)
	r.highlighted = filename
	r.cache = newLineCache(cacheEntries)
}

func (r *Renderer) renderRow(v *viewer.Viewer, idx int, line diffdoc.Line, gutter int) string {
	prefix := " "
	if v.Selection().Contains(idx) {
		prefix = selectionMarker
	}
	if gutter > 0 {
		prefix += styles.LineNumber.Render(runewidth.FillLeft(strconv.Itoa(line.Number), gutter)) + " "
	}
	content := r.renderContent(v, idx, line)
	contentWidth := r.width - gutter - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	if v.ColOffset() > 0 {
		content = ansi.TruncateLeft(content, v.ColOffset(), "")
	}
	if ansi.StringWidth(content) > contentWidth {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return prefix + content
}

// expand replaces tabs with spaces so column math stays in cells.
func (r *Renderer) expand(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	return strings.ReplaceAll(text, "\t", r.tabSpaces)
}

var selectionMarker = lipgloss.NewStyle().Foreground(styles.Primary).Render("▌")

// renderContent styles one line's text. Search matches win over word-diff
// segments, which win over syntax highlighting; only the plain path below
// is cacheable because the other two depend on per-keystroke state.
func (r *Renderer) renderContent(v *viewer.Viewer, idx int, line diffdoc.Line) string {
	if matches := v.Search().MatchesOnLine(idx); len(matches) > 0 {
		return r.renderWithMatches(v, line, matches)
	}
	if segs := v.WordSegments(idx); len(segs) > 0 && v.ColOffset() == 0 {
		// Word diff is dropped while horizontally scrolled: segment
		// boundaries no longer line up with the visible slice.
		return r.renderSegments(line.Kind, segs)
	}

	useChroma := r.highlighter != nil && line.Kind == diffdoc.KindContext
	key := r.cache.key(line.Text, int(line.Kind), r.width, v.ColOffset(), useChroma)
	if s, ok := r.cache.get(key); ok {
		return s
	}
	var s string
	if useChroma {
		s = r.highlighter.Highlight(r.expand(line.Text))
	} else {
		s = kindStyle(line.Kind).Render(r.expand(line.Text))
	}
	r.cache.put(key, s)
	return s
}

// renderWithMatches rebuilds the line from plain text with match spans
// highlighted, the current match brighter than the rest.
func (r *Renderer) renderWithMatches(v *viewer.Viewer, line diffdoc.Line, matches []viewer.Match) string {
	base := kindStyle(line.Kind)
	current, _ := v.Search().CurrentMatch()

	var sb strings.Builder
	pos := 0
	for _, m := range matches {
		if m.Col > len(line.Text) {
			break
		}
		if m.Col > pos {
			sb.WriteString(base.Render(r.expand(line.Text[pos:m.Col])))
		}
		end := m.Col + m.Len
		if end > len(line.Text) {
			end = len(line.Text)
		}
		style := styles.MatchHighlight
		if m == current {
			style = styles.MatchCurrent
		}
		sb.WriteString(style.Render(r.expand(line.Text[m.Col:end])))
		pos = end
	}
	if pos < len(line.Text) {
		sb.WriteString(base.Render(r.expand(line.Text[pos:])))
	}
	return sb.String()
}

// renderSegments styles an Add/Del line from its word-diff segments,
// changed spans emphasized against the line's base color.
func (r *Renderer) renderSegments(kind diffdoc.LineKind, segs []diffdoc.WordSegment) string {
	base := kindStyle(kind)
	changed := styles.WordAdd
	if kind == diffdoc.KindDel {
		changed = styles.WordRemove
	}
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Changed {
			sb.WriteString(changed.Render(r.expand(seg.Text)))
		} else {
			sb.WriteString(base.Render(r.expand(seg.Text)))
		}
	}
	return sb.String()
}

func kindStyle(kind diffdoc.LineKind) lipgloss.Style {
	switch kind {
	case diffdoc.KindHeader:
		return styles.DiffHeader
	case diffdoc.KindHunk:
		return styles.DiffHunk
	case diffdoc.KindAdd:
		return styles.DiffAdd
	case diffdoc.KindDel:
		return styles.DiffRemove
	default:
		return styles.DiffContext
	}
}
