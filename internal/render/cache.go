package render

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// lineCache memoizes fully styled lines keyed by a hash of the inputs that
// affect their rendering. Syntax highlighting dominates render cost, and
// scrolling revisits the same lines constantly, so this keeps repaint cost
// proportional to lines that actually changed. The cache is dropped
// wholesale when it grows past maxEntries.
type lineCache struct {
	entries    map[uint64]string
	maxEntries int
}

func newLineCache(maxEntries int) *lineCache {
	return &lineCache{
		entries:    make(map[uint64]string),
		maxEntries: maxEntries,
	}
}

// key hashes the render inputs into a cache key.
func (c *lineCache) key(text string, kind, width, colOffset int, highlighted bool) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(text)
	_, _ = h.WriteString("\x00" + strconv.Itoa(kind))
	_, _ = h.WriteString("\x00" + strconv.Itoa(width))
	_, _ = h.WriteString("\x00" + strconv.Itoa(colOffset))
	if highlighted {
		_, _ = h.WriteString("\x00h")
	}
	return h.Sum64()
}

func (c *lineCache) get(k uint64) (string, bool) {
	s, ok := c.entries[k]
	return s, ok
}

func (c *lineCache) put(k uint64, s string) {
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[uint64]string)
	}
	c.entries[k] = s
}
