package viewer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/marcus/diffpane/internal/diffdoc"
)

// Match is one occurrence of the search query in the document.
type Match struct {
	Line int // line index into the document
	Col  int // byte offset of the match within the line text
	Len  int // match length in bytes
}

// SearchState holds the query and its matches for one document. Matches are
// ordered by (line, column), which is also generation order of the scan.
type SearchState struct {
	Query   string
	Matches []Match
	Current int // index into Matches, valid whenever Matches is non-empty
}

// SetQuery rebuilds the match list for the given query with a
// case-insensitive substring scan over every line. Every non-overlapping
// occurrence per line is recorded, scanning left to right and advancing
// past each match by its length. An empty query clears the matches.
// Current resets to 0. Rebuild cost is linear in document size; diffs are
// small enough that a full re-scan per keystroke is fine.
func (s *SearchState) SetQuery(query string, doc diffdoc.Document) {
	s.Query = query
	s.Matches = s.Matches[:0]
	s.Current = 0
	if query == "" {
		return
	}

	needle := strings.ToLower(query)
	for i, line := range doc.Lines {
		s.Matches = scanLine(s.Matches, i, line.Text, needle)
	}
}

// scanLine appends every non-overlapping occurrence of needle in text,
// left to right. The scan runs over the lowered text, but Col and Len are
// byte offsets into the original: lowercasing can change a rune's byte
// length (İ shrinks, Ⱥ grows), so lowered offsets are translated back
// through a rune-aligned offset table before they are recorded.
func scanLine(matches []Match, lineIdx int, text, needle string) []Match {
	lowered := strings.ToLower(text)

	var toOrig map[int]int
	if lowered != text {
		toOrig = make(map[int]int, utf8.RuneCountInString(text)+1)
		low := 0
		for orig, r := range text {
			toOrig[low] = orig
			low += utf8.RuneLen(unicode.ToLower(r))
		}
		toOrig[low] = len(text)
	}

	col := 0
	for {
		idx := strings.Index(lowered[col:], needle)
		if idx < 0 {
			return matches
		}
		col += idx
		start, end := col, col+len(needle)
		if toOrig != nil {
			var ok bool
			if start, ok = toOrig[col]; !ok {
				col += len(needle)
				continue
			}
			if end, ok = toOrig[col+len(needle)]; !ok {
				col += len(needle)
				continue
			}
		}
		matches = append(matches, Match{Line: lineIdx, Col: start, Len: end - start})
		col += len(needle)
	}
}

// HasMatches reports whether the current query matched anything.
func (s *SearchState) HasMatches() bool { return len(s.Matches) > 0 }

// CurrentMatch returns the match Current points at, or false when empty.
func (s *SearchState) CurrentMatch() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	return s.Matches[s.Current], true
}

// Next advances to the next match, wrapping past the last back to the
// first. No-op when there are no matches.
func (s *SearchState) Next() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current + 1) % len(s.Matches)
}

// Prev moves to the previous match, wrapping past the first back to the
// last. No-op when there are no matches.
func (s *SearchState) Prev() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
}

// MatchesOnLine returns the matches that fall on the given line index.
// The returned slice aliases the match list; callers must not mutate it.
func (s *SearchState) MatchesOnLine(line int) []Match {
	start := -1
	end := len(s.Matches)
	for i, m := range s.Matches {
		if m.Line == line && start < 0 {
			start = i
		}
		if m.Line > line {
			end = i
			break
		}
	}
	if start < 0 {
		return nil
	}
	return s.Matches[start:end]
}
