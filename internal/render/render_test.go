package render

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/diffpane/internal/diffdoc"
	"github.com/marcus/diffpane/internal/viewer"
)

const sampleDiff = "diff --git a/f b/f\n@@ -1,2 +1,2 @@\n-old\n+new content here\n ctx"

func newViewerWith(text string, bodyHeight int) *viewer.Viewer {
	v := viewer.New(bodyHeight)
	v.SetContent(text)
	return v
}

func plain(s string) string { return ansi.Strip(s) }

func TestRender_EmptyDocument(t *testing.T) {
	r := New(80)
	v := newViewerWith("", 10)

	out := plain(r.Render(v))
	if !strings.Contains(out, "No diff content") {
		t.Errorf("output = %q, want 'No diff content' placeholder", out)
	}
}

func TestRender_BasicOutput(t *testing.T) {
	r := New(80)
	v := newViewerWith(sampleDiff, 10)

	out := plain(r.Render(v))
	if !strings.Contains(out, "@@ -1,2 +1,2 @@") {
		t.Error("expected hunk header in output")
	}
	if !strings.Contains(out, "+new content here") {
		t.Error("expected add line in output")
	}
	// Gutter shows 1-based line numbers.
	if !strings.Contains(out, "1 ") {
		t.Error("expected line numbers in output")
	}
}

func TestRender_PadsToBodyHeight(t *testing.T) {
	r := New(80)
	v := newViewerWith(sampleDiff, 10)

	rows := strings.Split(r.Render(v), "\n")
	if len(rows) != 10 {
		t.Errorf("row count = %d, want 10", len(rows))
	}
}

func TestRender_ShowsOnlyVisibleWindow(t *testing.T) {
	r := New(80)
	v := newViewerWith(sampleDiff, 2)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	out := plain(r.Render(v))
	if strings.Contains(out, "diff --git") {
		t.Error("scrolled-off line still rendered")
	}
	if !strings.Contains(out, "@@") {
		t.Error("expected hunk header at top of window")
	}
}

func TestRender_HorizontalOffset(t *testing.T) {
	r := New(80)
	v := newViewerWith("+0123456789", 5)
	for i := 0; i < 4; i++ {
		v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	}

	out := plain(r.Render(v))
	if strings.Contains(out, "+012") {
		t.Error("horizontal offset should hide the first columns")
	}
	if !strings.Contains(out, "3456789") {
		t.Error("expected content after the horizontal offset")
	}
}

func TestRender_TruncatesToWidth(t *testing.T) {
	r := New(20)
	v := newViewerWith("+"+strings.Repeat("x", 100), 3)

	for _, row := range strings.Split(r.Render(v), "\n") {
		if w := ansi.StringWidth(row); w > 20 {
			t.Errorf("row width = %d, want <= 20", w)
		}
	}
}

func TestRender_WordSegments(t *testing.T) {
	r := New(80)
	v := newViewerWith("+hello world test", 5)
	v.SetWordSegments(map[int][]diffdoc.WordSegment{
		0: {
			{Text: "+hello ", Changed: false},
			{Text: "world", Changed: true},
			{Text: " test", Changed: false},
		},
	})

	out := plain(r.Render(v))
	if !strings.Contains(out, "+hello world test") {
		t.Errorf("segment text mangled: %q", out)
	}
}

func TestRender_SelectionMarker(t *testing.T) {
	r := New(80)
	v := newViewerWith(sampleDiff, 4)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("V")})

	out := plain(r.Render(v))
	if !strings.Contains(out, "▌") {
		t.Error("expected selection marker on selected line")
	}
}

func TestRender_MatchHighlightKeepsText(t *testing.T) {
	r := New(80)
	v := newViewerWith(sampleDiff, 10)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	for _, ru := range "new" {
		v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ru}})
	}
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	out := plain(r.Render(v))
	if !strings.Contains(out, "+new content here") {
		t.Errorf("match highlighting mangled line text: %q", out)
	}
}

func TestRender_MatchOnCaseShiftingRunes(t *testing.T) {
	// Ⱥ grows by a byte when lowercased, so a match after a run of them
	// sits at a different byte offset in the lowered text than in the
	// original. Rendering must slice the original without going out of
	// range.
	r := New(80)
	v := newViewerWith("+ȺȺȺȺnew", 3)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	for _, ru := range "new" {
		v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ru}})
	}
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	out := plain(r.Render(v))
	if !strings.Contains(out, "+ȺȺȺȺnew") {
		t.Errorf("match highlighting mangled line text: %q", out)
	}
}

func TestRender_LineNumbersDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.LineNumbers = false
	r := NewWithOptions(80, opts)
	v := newViewerWith("+abc", 2)

	out := plain(r.Render(v))
	if !strings.HasPrefix(out, " +abc") {
		t.Errorf("output = %q, want content without gutter", out)
	}
}

func TestRender_ExpandsTabs(t *testing.T) {
	opts := DefaultOptions()
	opts.TabWidth = 4
	r := NewWithOptions(80, opts)
	v := newViewerWith("+\tindented", 2)

	out := plain(r.Render(v))
	if strings.Contains(out, "\t") {
		t.Error("tab survived expansion")
	}
	if !strings.Contains(out, "+    indented") {
		t.Errorf("output = %q, want 4-space tab expansion", out)
	}
}

func TestNewSyntaxHighlighter(t *testing.T) {
	if h := NewSyntaxHighlighter(""); h != nil {
		t.Error("expected nil highlighter for empty filename")
	}
	if h := NewSyntaxHighlighter("main.go"); h == nil {
		t.Error("expected highlighter for main.go")
	}
	if h := NewSyntaxHighlighter("mystery.zzz-unknown"); h != nil {
		t.Error("expected nil highlighter for unknown extension")
	}
}

func TestHighlight_PreservesText(t *testing.T) {
	h := NewSyntaxHighlighter("main.go")
	if h == nil {
		t.Fatal("no highlighter for main.go")
	}
	src := `func main() { fmt.Println("hi") }`
	if got := ansi.Strip(h.Highlight(src)); got != src {
		t.Errorf("Highlight changed text: %q -> %q", src, got)
	}
}

func TestLineCache(t *testing.T) {
	c := newLineCache(2)
	k1 := c.key("a", 0, 80, 0, false)
	k2 := c.key("a", 1, 80, 0, false)
	if k1 == k2 {
		t.Error("keys collide across kinds")
	}

	c.put(k1, "styled")
	if s, ok := c.get(k1); !ok || s != "styled" {
		t.Errorf("get = %q, %v", s, ok)
	}

	// Overflow drops the cache rather than growing without bound.
	c.put(k2, "x")
	c.put(c.key("b", 0, 80, 0, false), "y")
	if len(c.entries) > 2 {
		t.Errorf("cache grew past max: %d entries", len(c.entries))
	}
}
