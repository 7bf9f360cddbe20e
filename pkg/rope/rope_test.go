package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/coreseekdev/ropetree/pkg/tree"
)

func newTestRope(text string) *Rope {
	return newWith(text, tree.TestConfig(), TestChunkBounds())
}

func TestRope_NewAndString(t *testing.T) {
	r := New("hello world")
	assert.Equal(t, "hello world", r.String())
	assert.Equal(t, 11, r.Len())
}

func TestRope_Empty(t *testing.T) {
	r := Empty()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "", r.String())
}

func TestRope_Bytes(t *testing.T) {
	r := New("abc")
	assert.Equal(t, []byte("abc"), r.Bytes())
}

func TestRope_LineCount(t *testing.T) {
	r := New("foo\nbar\nbaz")
	assert.Equal(t, 2, r.LineCount())
}

func TestRope_GraphemeCount(t *testing.T) {
	r := New("abc")
	assert.Equal(t, 3, r.GraphemeCount())
}

func TestRope_Slice(t *testing.T) {
	r := newTestRope("abcdefghijklmnop")
	got, err := r.Slice(2, 5)
	assert.NoError(t, err)
	assert.Equal(t, "cde", got)
}

func TestRope_Slice_EmptyRange(t *testing.T) {
	r := newTestRope("abcdef")
	got, err := r.Slice(3, 3)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

// Both endpoints falling inside the same chunk must not pull in neighbours.
func TestRope_Slice_WithinSingleChunk(t *testing.T) {
	r := newTestRope("abcdefghijklmnop") // chunked at 4 bytes: abcd|efgh|ijkl|mnop
	got, err := r.Slice(5, 7)
	assert.NoError(t, err)
	assert.Equal(t, "fg", got)
}

func TestRope_Slice_OutOfBounds(t *testing.T) {
	r := newTestRope("abcdef")
	_, err := r.Slice(-1, 3)
	assert.Error(t, err)
	_, err = r.Slice(0, 100)
	assert.Error(t, err)
	_, err = r.Slice(5, 2)
	assert.Error(t, err)
	var target *OutOfBoundsError
	_, err = r.Slice(0, 100)
	assert.ErrorAs(t, err, &target)
}

func TestRope_Insert(t *testing.T) {
	r := newTestRope("abcdef")
	r2, err := r.Insert(3, "XYZ")
	assert.NoError(t, err)
	assert.Equal(t, "abcXYZdef", r2.String())
	assert.Equal(t, "abcdef", r.String(), "original rope must be unchanged")
}

func TestRope_Delete(t *testing.T) {
	r := newTestRope("abcdefgh")
	r2, err := r.Delete(2, 5)
	assert.NoError(t, err)
	assert.Equal(t, "abfgh", r2.String())
	assert.Equal(t, "abcdefgh", r.String())
}

func TestRope_Replace(t *testing.T) {
	r := newTestRope("abcdefgh")
	r2, err := r.Replace(2, 5, "XY")
	assert.NoError(t, err)
	assert.Equal(t, "abXYfgh", r2.String())
}

func TestRope_Split(t *testing.T) {
	r := newTestRope("abcdefgh")
	left, right, err := r.Split(3)
	assert.NoError(t, err)
	assert.Equal(t, "abc", left.String())
	assert.Equal(t, "defgh", right.String())
}

func TestRope_Concat(t *testing.T) {
	a := newTestRope("abc")
	b := newTestRope("def")
	c := a.Concat(b)
	assert.Equal(t, "abcdef", c.String())
}

func TestRope_Concat_EmptyOperands(t *testing.T) {
	a := newTestRope("abc")
	empty := newTestRope("")
	assert.Equal(t, "abc", a.Concat(empty).String())
	assert.Equal(t, "abc", empty.Concat(a).String())
}

func TestRope_Clone(t *testing.T) {
	r := newTestRope("abcdef")
	clone := r.Clone()
	r2, err := r.Insert(0, "Z")
	assert.NoError(t, err)
	assert.Equal(t, "Zabcdef", r2.String())
	assert.Equal(t, "abcdef", clone.String())
}

func TestRope_AssertInvariantsAfterMutations(t *testing.T) {
	r := newTestRope("the quick brown fox jumps over the lazy dog")
	assert.NoError(t, r.AssertInvariants())

	r, err := r.Insert(10, " (fast)")
	assert.NoError(t, err)
	assert.NoError(t, r.AssertInvariants())

	r, err = r.Delete(0, 4)
	assert.NoError(t, err)
	assert.NoError(t, r.AssertInvariants())
}
