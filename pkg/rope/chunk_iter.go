package rope

// ChunkIter streams a string into a sequence of bounded Chunks for
// from_leaves construction: while at least max_bytes remain, take a
// max_bytes-sized prefix, extended forward to the next UTF-8 boundary and
// past a split CRLF pair; once fewer than max_bytes remain, the remainder
// is the final chunk.
type ChunkIter struct {
	text   string
	bounds ChunkBounds
	pos    int
}

// NewChunkIter returns a streaming chunker over text.
func NewChunkIter(text string, bounds ChunkBounds) *ChunkIter {
	return &ChunkIter{text: text, bounds: bounds}
}

// Next returns the next chunk and true, or a zero Chunk and false once the
// text is exhausted.
func (it *ChunkIter) Next() (Chunk, bool) {
	remaining := len(it.text) - it.pos
	if remaining <= 0 {
		return Chunk{}, false
	}
	if remaining < it.bounds.MaxBytes {
		c := NewChunk(it.text[it.pos:], it.bounds)
		it.pos = len(it.text)
		return c, true
	}

	cut := it.pos + it.bounds.MaxBytes
	cut = nextRuneBoundary(it.text, cut)
	if splitsCRLF(it.text, cut) {
		cut++
	}
	c := NewChunk(it.text[it.pos:cut], it.bounds)
	it.pos = cut
	return c, true
}

// Collect drains it into a slice of Chunks. Used by ChunksOf when the
// caller wants the whole sequence eagerly (e.g. to hand to
// tree.FromLeaves, which requires a materialised slice up front).
func (it *ChunkIter) Collect() []Chunk {
	var out []Chunk
	for {
		c, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// ChunksOf splits text into a bounded-size chunk sequence in one call.
func ChunksOf(text string, bounds ChunkBounds) []Chunk {
	if text == "" {
		return nil
	}
	return NewChunkIter(text, bounds).Collect()
}
