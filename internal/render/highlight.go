package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/diffpane/internal/styles"
)

// SyntaxHighlighter colors line content using a chroma lexer picked from
// the diff's file path.
type SyntaxHighlighter struct {
	lexer chroma.Lexer
}

// NewSyntaxHighlighter returns a highlighter for the given filename, or nil
// when no lexer matches (callers treat nil as "no highlighting").
func NewSyntaxHighlighter(filename string) *SyntaxHighlighter {
	if filename == "" {
		return nil
	}
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	// Coalesce merges consecutive tokens of the same type
	return &SyntaxHighlighter{lexer: chroma.Coalesce(lexer)}
}

// Highlight returns the source with ANSI color applied per token. On any
// tokenization error the source is returned unstyled.
func (h *SyntaxHighlighter) Highlight(source string) string {
	if h == nil || source == "" {
		return source
	}
	iterator, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var sb strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		sb.WriteString(tokenStyle(token.Type).Render(token.Value))
	}
	return sb.String()
}

func tokenStyle(t chroma.TokenType) lipgloss.Style {
	switch {
	case t.InCategory(chroma.Keyword):
		return lipgloss.NewStyle().Foreground(styles.Primary)
	case t.InSubCategory(chroma.LiteralString):
		return lipgloss.NewStyle().Foreground(styles.Success)
	case t.InSubCategory(chroma.LiteralNumber):
		return lipgloss.NewStyle().Foreground(styles.Accent)
	case t.InCategory(chroma.Comment):
		return styles.Muted
	case t == chroma.NameFunction, t == chroma.NameClass:
		return lipgloss.NewStyle().Foreground(styles.Info)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextPrimary)
	}
}
