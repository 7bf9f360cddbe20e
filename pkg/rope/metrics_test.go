package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteMetric_MeasureAndFindBoundary(t *testing.T) {
	c := NewChunk("abcdef", TestChunkBounds())
	assert.Equal(t, 6, ByteMetric{}.Measure(c.Summarize()))
	assert.Equal(t, 3, ByteMetric{}.FindBoundary(c, 3))
}

func TestRawLineMetric_Measure(t *testing.T) {
	c := NewChunk("foo\nbar\nbaz", TestChunkBounds())
	assert.Equal(t, 2, RawLineMetric{}.Measure(c.Summarize()))
}

func TestRawLineMetric_FindBoundary(t *testing.T) {
	c := NewChunk("foo\nbar\nbaz", TestChunkBounds())
	assert.Equal(t, 0, RawLineMetric{}.FindBoundary(c, 0))
	assert.Equal(t, 4, RawLineMetric{}.FindBoundary(c, 1))
	assert.Equal(t, 8, RawLineMetric{}.FindBoundary(c, 2))
}

func TestGraphemeMetric_MeasureAndFindBoundary(t *testing.T) {
	c := NewChunk("abc", TestChunkBounds())
	assert.Equal(t, 3, GraphemeMetric{}.Measure(c.Summarize()))
	assert.Equal(t, 2, GraphemeMetric{}.FindBoundary(c, 2))
}

func TestGraphemeMetric_CombiningCharacterIsOneCluster(t *testing.T) {
	// "e" + U+0301 combining acute accent forms a single 3-byte grapheme
	// cluster, followed by a plain "x".
	combining := "éx"
	c := NewChunk(combining, TestChunkBounds())
	s := c.Summarize()
	assert.Equal(t, 2, s.Graphemes)
	assert.Equal(t, 3, GraphemeMetric{}.FindBoundary(c, 1))
}
