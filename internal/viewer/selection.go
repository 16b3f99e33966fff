package viewer

// Selection is a vim-style visual line selection: a fixed anchor and a
// moving extent, both line indices into the document. The selected range
// is [min(anchor, extent), max(anchor, extent)], inclusive on both ends.
type Selection struct {
	Anchor int
	Extent int
	Active bool
}

// Enter activates the selection with both ends at the given line, clamped
// to [0, totalLines-1]. Only valid from the inactive state; a second call
// while active is ignored so the anchor never moves accidentally. An empty
// document has no line to select, so Enter is a no-op there.
func (s *Selection) Enter(line, totalLines int) {
	if s.Active || totalLines <= 0 {
		return
	}
	s.Anchor = clampLine(line, totalLines)
	s.Extent = s.Anchor
	s.Active = true
}

// Exit deactivates the selection and discards both ends. A later Enter
// starts from a fresh anchor.
func (s *Selection) Exit() {
	s.Anchor = 0
	s.Extent = 0
	s.Active = false
}

// ExtendUp moves the extent up one line. The anchor never moves.
func (s *Selection) ExtendUp(totalLines int) {
	if !s.Active {
		return
	}
	s.Extent = clampLine(s.Extent-1, totalLines)
}

// ExtendDown moves the extent down one line. The anchor never moves.
func (s *Selection) ExtendDown(totalLines int) {
	if !s.Active {
		return
	}
	s.Extent = clampLine(s.Extent+1, totalLines)
}

// Range returns the ordered inclusive line range, or ok=false when the
// selection is inactive.
func (s *Selection) Range() (lo, hi int, ok bool) {
	if !s.Active {
		return 0, 0, false
	}
	lo, hi = s.Anchor, s.Extent
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// Count returns the number of selected lines, or 0 when inactive.
func (s *Selection) Count() int {
	if !s.Active {
		return 0
	}
	d := s.Extent - s.Anchor
	if d < 0 {
		d = -d
	}
	return d + 1
}

// Contains reports whether the given line index is inside the selection.
func (s *Selection) Contains(line int) bool {
	lo, hi, ok := s.Range()
	return ok && line >= lo && line <= hi
}

func clampLine(line, totalLines int) int {
	if line > totalLines-1 {
		line = totalLines - 1
	}
	if line < 0 {
		line = 0
	}
	return line
}
