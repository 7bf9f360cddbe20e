package rope

import "github.com/coreseekdev/ropetree/pkg/tree"

// ByteMetric is the rope's base metric: each unit step corresponds to
// exactly one byte. Its target values are already expressed in the leaf's
// own base unit, so FindBoundary is the identity.
type ByteMetric struct{}

func (ByteMetric) Zero() int { return 0 }

func (ByteMetric) Measure(s ChunkSummary) int { return s.Bytes }

func (ByteMetric) FindBoundary(leaf Chunk, target int) int { return target }

var _ tree.Metric[Chunk, ChunkSummary] = ByteMetric{}

// RawLineMetric counts LF bytes ('\n'); slicing by it addresses a
// half-open range of line starts. It is strictly additive over
// ChunkSummary.LineBreaks, satisfying the monotone-measure requirement
// tree.Metric navigation depends on for correct multi-chunk descent. A range
// ending at the rope's total line-break count stops right after the last
// '\n': an unterminated final line lies outside every RawLineMetric range
// (Rope.Lines reaches it through the rope's byte length instead).
type RawLineMetric struct{}

func (RawLineMetric) Zero() int { return 0 }

func (RawLineMetric) Measure(s ChunkSummary) int { return s.LineBreaks }

// FindBoundary returns the byte offset immediately after the target-th LF
// in leaf (1-indexed count), or 0 when target is 0.
func (RawLineMetric) FindBoundary(leaf Chunk, target int) int {
	if target <= 0 {
		return 0
	}
	text := leaf.Text()
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			count++
			if count == target {
				return i + 1
			}
		}
	}
	return len(text)
}

var _ tree.Metric[Chunk, ChunkSummary] = RawLineMetric{}
