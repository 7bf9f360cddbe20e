package rope

import (
	"unicode/utf8"

	"github.com/coreseekdev/ropetree/pkg/tree"
)

// defaultMaxBytes/testMaxBytes are the chunk leaf's steady-state byte-size
// bounds: max_bytes in production is 1024, with min_bytes at half that; a
// small max_bytes=4 pair exists for bit-exact tests. A chunk may
// transiently exceed maxBytes by up to 3 bytes during rebalancing (a UTF-8
// code point is at most 4 bytes), so backing capacity should reserve
// maxBytes+3.
const (
	defaultMaxBytes = 1024
	testMaxBytes    = 4
)

// ChunkBounds pairs the byte bounds a rope's chunks are kept within. It is
// threaded alongside tree.Config rather than folded into it, since it is a
// property of the leaf type (chunk.go), not of the generic engine.
type ChunkBounds struct {
	MaxBytes int
	MinBytes int
}

// DefaultChunkBounds is the production chunk size, 1024 bytes.
func DefaultChunkBounds() ChunkBounds {
	return ChunkBounds{MaxBytes: defaultMaxBytes, MinBytes: defaultMaxBytes / 2}
}

// TestChunkBounds is a small, bit-exact bound convenient for exercising
// chunk split/merge/balance behaviour in unit tests: max_bytes=4,
// min_bytes=2.
func TestChunkBounds() ChunkBounds {
	return ChunkBounds{MaxBytes: testMaxBytes, MinBytes: testMaxBytes / 2}
}

// Chunk is the rope's leaf type: a UTF-8 string constrained, in steady
// state, to [min_bytes, max_bytes]. It implements package tree's Leaf[L,S]
// contract.
type Chunk struct {
	text   string
	bounds ChunkBounds
}

// NewChunk wraps text as a Chunk honouring bounds. Callers (the streaming
// chunker, leaf balancing) are responsible for respecting the byte bounds;
// NewChunk itself does not enforce them — an underfilled chunk is an
// expected transient state resolved inline by the balancing procedures,
// not a contract violation.
func NewChunk(text string, bounds ChunkBounds) Chunk {
	return Chunk{text: text, bounds: bounds}
}

// Text returns the chunk's backing string.
func (c Chunk) Text() string { return c.text }

// ChunkSummary is the rope's per-leaf aggregate: bytes and line breaks,
// both non-negative. LineBreaks counts LF bytes ('\n') only;
// the engine does not need to know about '\r'. Graphemes caches the
// chunk's grapheme-cluster count so GraphemeMetric (graphemes.go) can
// navigate without re-segmenting chunks it only passes over.
type ChunkSummary struct {
	Bytes      int
	LineBreaks int
	Graphemes  int
}

// Add implements tree.Summary[ChunkSummary].
func (s ChunkSummary) Add(other ChunkSummary) ChunkSummary {
	return ChunkSummary{
		Bytes:      s.Bytes + other.Bytes,
		LineBreaks: s.LineBreaks + other.LineBreaks,
		Graphemes:  s.Graphemes + other.Graphemes,
	}
}

// Summarize implements tree.Leaf[Chunk, ChunkSummary].
func (c Chunk) Summarize() ChunkSummary {
	return ChunkSummary{Bytes: len(c.text), LineBreaks: countLF(c.text), Graphemes: countGraphemes(c.text)}
}

// Len implements tree.Leaf[Chunk, ChunkSummary]: the chunk's byte length.
func (c Chunk) Len() int { return len(c.text) }

// IsBigEnough implements tree.Leaf[Chunk, ChunkSummary]: a chunk meets the
// minimum-fill predicate once it reaches min_bytes.
func (c Chunk) IsBigEnough(s ChunkSummary) bool {
	return s.Bytes >= c.bounds.MinBytes
}

// Slice implements tree.Leaf[Chunk, ChunkSummary]: a byte sub-range. lo and
// hi must already fall on UTF-8 boundaries; callers (TreeSlice construction
// via ByteMetric/RawLineMetric's FindBoundary) guarantee this.
func (c Chunk) Slice(lo, hi int) Chunk {
	return Chunk{text: c.text[lo:hi], bounds: c.bounds}
}

func countLF(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// nextRuneBoundary returns the smallest byte index >= pos that lies on a
// UTF-8 code point boundary within s, clamped to len(s).
func nextRuneBoundary(s string, pos int) int {
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	return pos
}
