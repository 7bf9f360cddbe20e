package rope

import (
	"strings"

	"github.com/clipperhouse/uax29/graphemes"

	"github.com/coreseekdev/ropetree/pkg/tree"
)

// GraphemeMetric measures user-perceived characters. Rather than
// re-segmenting the whole document on every call, this metric reads the
// chunk-cached Graphemes count from ChunkSummary for navigation and only
// re-segments the one chunk a boundary search lands in, keeping
// Rope.GraphemeSlice/GraphemeCount at O(log N + k) instead of O(document
// length).
type GraphemeMetric struct{}

func (GraphemeMetric) Zero() int { return 0 }

func (GraphemeMetric) Measure(s ChunkSummary) int { return s.Graphemes }

// FindBoundary returns the byte offset of the start of the target-th
// grapheme cluster in leaf (0-indexed), by re-segmenting just that leaf.
func (GraphemeMetric) FindBoundary(leaf Chunk, target int) int {
	if target <= 0 {
		return 0
	}
	segs := graphemes.SegmentAllString(leaf.Text())
	offset := 0
	for i := 0; i < target && i < len(segs); i++ {
		offset += len(segs[i])
	}
	return offset
}

var _ tree.Metric[Chunk, ChunkSummary] = GraphemeMetric{}

// GraphemeSlice returns the substring spanning the half-open grapheme-
// cluster range [start, end), navigating via GraphemeMetric instead of
// collecting every grapheme up front.
func (r *Rope) GraphemeSlice(start, end int) (string, error) {
	total := r.GraphemeCount()
	if start < 0 || end > total || start > end {
		return "", errOutOfBounds("Rope.GraphemeSlice", start, end, total)
	}
	if start == end {
		return "", nil
	}
	ts := r.tree.Slice(GraphemeMetric{}, start, end)
	var b strings.Builder
	it := ts.Leaves()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(c.Text())
	}
	return b.String(), nil
}

func countGraphemes(s string) int {
	if s == "" {
		return 0
	}
	return len(graphemes.SegmentAllString(s))
}
