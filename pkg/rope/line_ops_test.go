package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRope_TotalLines(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	assert.Equal(t, 2, r.LineCount())
	assert.Equal(t, 3, r.TotalLines())
}

func TestRope_ByteOfLine(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	b0, err := r.ByteOfLine(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, b0)

	b1, err := r.ByteOfLine(1)
	assert.NoError(t, err)
	assert.Equal(t, 4, b1)

	b2, err := r.ByteOfLine(2)
	assert.NoError(t, err)
	assert.Equal(t, 8, b2)
}

func TestRope_LineOfByte(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	l, err := r.LineOfByte(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, l)

	l, err = r.LineOfByte(5)
	assert.NoError(t, err)
	assert.Equal(t, 1, l)

	l, err = r.LineOfByte(10)
	assert.NoError(t, err)
	assert.Equal(t, 2, l)
}

// Slicing over lines 1..3 yields "bar\nbaz", reaching through the end of
// the unterminated final line.
func TestRope_Lines_ReachesEndOfUnterminatedFinalLine(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	got, err := r.Lines(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, "bar\nbaz", got)
}

func TestRope_Lines_FirstLineOnly(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	got, err := r.Lines(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, "foo\n", got)
}

func TestRope_Lines_WholeRope(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	got, err := r.Lines(0, r.TotalLines())
	assert.NoError(t, err)
	assert.Equal(t, "foo\nbar\nbaz", got)
}

func TestRope_Lines_EmptyRange(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	got, err := r.Lines(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRope_Lines_OutOfBounds(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	_, err := r.Lines(0, r.TotalLines()+1)
	assert.Error(t, err)
	_, err = r.Lines(-1, 1)
	assert.Error(t, err)
	_, err = r.Lines(2, 1)
	assert.Error(t, err)
}

// ByteOfLine/LineOfByte round-trip law: byte_of_line(L) <= i <
// byte_of_line(L+1), substituted by byte_len() on the last line.
func TestRope_ByteOfLineLineOfByte_RoundTripLaw(t *testing.T) {
	r := newTestRope("foo\nbar\nbaz")
	for i := 0; i < r.Len(); i++ {
		l, err := r.LineOfByte(i)
		assert.NoError(t, err)

		lo, err := r.ByteOfLine(l)
		assert.NoError(t, err)

		hi := r.Len()
		if l+1 <= r.LineCount() {
			hi, err = r.ByteOfLine(l + 1)
			assert.NoError(t, err)
		}

		assert.True(t, lo <= i && i < hi, "byte %d not in [%d, %d) for line %d", i, lo, hi, l)
	}
}
