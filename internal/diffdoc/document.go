// Package diffdoc models a unified diff as an ordered list of classified
// lines. The document is derived wholesale from raw diff text; callers
// re-parse when the text changes rather than patching incrementally.
package diffdoc

import "strings"

// LineKind classifies a single line of unified diff text.
type LineKind int

const (
	// KindContext is the fallback for anything that is not a marker line.
	KindContext LineKind = iota
	// KindHeader covers file headers: "diff --git", "index ", "+++", "---".
	KindHeader
	// KindHunk covers "@@" hunk header lines.
	KindHunk
	// KindAdd covers "+" lines that are not "+++" headers.
	KindAdd
	// KindDel covers "-" lines that are not "---" headers.
	KindDel
)

// Line is a single classified line of the document.
type Line struct {
	Text   string
	Kind   LineKind
	Number int // 1-based position in the document
}

// WordSegment is a sub-line span marked changed or unchanged. Segments are
// produced by an external word-diff collaborator for Add/Del lines; this
// package only carries them.
type WordSegment struct {
	Text    string
	Changed bool
}

// Document is the ordered line list for one diff blob, with hunk header
// positions recorded for navigation.
type Document struct {
	Lines []Line
	Hunks []int // indices into Lines where Kind == KindHunk, ascending
}

// Classify maps a raw text line to its kind. Header detection runs before
// the single-character prefixes because "+++" and "---" also start with
// "+" and "-". The function is total: malformed or empty input is context.
func Classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, "diff --git"),
		strings.HasPrefix(line, "index "),
		strings.HasPrefix(line, "+++"),
		strings.HasPrefix(line, "---"):
		return KindHeader
	case strings.HasPrefix(line, "@@"):
		return KindHunk
	case strings.HasPrefix(line, "+"):
		return KindAdd
	case strings.HasPrefix(line, "-"):
		return KindDel
	default:
		return KindContext
	}
}

// Parse derives a Document from raw newline-delimited diff text.
func Parse(text string) Document {
	raw := SplitLines(text)
	doc := Document{Lines: make([]Line, len(raw))}
	for i, s := range raw {
		kind := Classify(s)
		doc.Lines[i] = Line{Text: s, Kind: kind, Number: i + 1}
		if kind == KindHunk {
			doc.Hunks = append(doc.Hunks, i)
		}
	}
	return doc
}

// Len returns the number of lines in the document.
func (d Document) Len() int { return len(d.Lines) }

// FilePath returns the new-side file path from the first "+++ b/..." header,
// or "" if none is present. Used to pick a syntax highlighting lexer.
func (d Document) FilePath() string {
	for _, l := range d.Lines {
		if strings.HasPrefix(l.Text, "+++ ") {
			p := strings.TrimPrefix(l.Text, "+++ ")
			p = strings.TrimPrefix(p, "b/")
			if p == "/dev/null" {
				continue
			}
			return p
		}
	}
	return ""
}

// SplitLines splits a string into lines, handling various line endings.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
