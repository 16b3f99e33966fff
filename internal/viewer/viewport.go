package viewer

// Viewport owns the vertical scroll offset for one document view. Every
// operation re-clamps the offset, so it is always a valid value for the
// current document and height; clamping is idempotent.
type Viewport struct {
	Offset     int
	BodyHeight int // rows available for content, excluding header/status rows
	TotalLines int
}

// MaxOffset returns the largest valid offset for the current dimensions.
func (v *Viewport) MaxOffset() int {
	max := v.TotalLines - v.BodyHeight
	if max < 0 {
		return 0
	}
	return max
}

func (v *Viewport) clamp() {
	if v.Offset > v.MaxOffset() {
		v.Offset = v.MaxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// LineUp scrolls up one line.
func (v *Viewport) LineUp() {
	v.Offset--
	v.clamp()
}

// LineDown scrolls down one line.
func (v *Viewport) LineDown() {
	v.Offset++
	v.clamp()
}

// PageUp scrolls up half the body height.
func (v *Viewport) PageUp() {
	v.Offset -= v.BodyHeight / 2
	v.clamp()
}

// PageDown scrolls down half the body height.
func (v *Viewport) PageDown() {
	v.Offset += v.BodyHeight / 2
	v.clamp()
}

// GotoTop scrolls to the first line.
func (v *Viewport) GotoTop() { v.Offset = 0 }

// GotoBottom scrolls so the last line is visible.
func (v *Viewport) GotoBottom() { v.Offset = v.MaxOffset() }

// JumpTo scrolls so the given line index is at the top of the view,
// clamped to the valid range. Used by search and hunk navigation.
func (v *Viewport) JumpTo(line int) {
	v.Offset = line
	v.clamp()
}

// Resize updates the dimensions and re-clamps the offset. Called whenever
// the terminal is resized or the document changes.
func (v *Viewport) Resize(bodyHeight, totalLines int) {
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	v.BodyHeight = bodyHeight
	v.TotalLines = totalLines
	v.clamp()
}

// Visible returns the [start, end) line index range currently in view.
func (v *Viewport) Visible() (start, end int) {
	start = v.Offset
	end = start + v.BodyHeight
	if end > v.TotalLines {
		end = v.TotalLines
	}
	if start > end {
		start = end
	}
	return start, end
}

// EnsureVisible scrolls the minimum amount needed to bring the given line
// into view. Unlike JumpTo it leaves the offset alone when the line is
// already on screen.
func (v *Viewport) EnsureVisible(line int) {
	if line < v.Offset {
		v.Offset = line
	} else if line >= v.Offset+v.BodyHeight {
		v.Offset = line - v.BodyHeight + 1
	}
	v.clamp()
}
