package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRope_GraphemeCount_CombiningCharacter(t *testing.T) {
	combining := "e" + "́" + "x"
	r := New(combining)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 2, r.GraphemeCount())
}

func TestRope_GraphemeSlice(t *testing.T) {
	r := newTestRope("hello")
	got, err := r.GraphemeSlice(1, 4)
	assert.NoError(t, err)
	assert.Equal(t, "ell", got)
}

func TestRope_GraphemeSlice_EmptyRange(t *testing.T) {
	r := newTestRope("hello")
	got, err := r.GraphemeSlice(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRope_GraphemeSlice_OutOfBounds(t *testing.T) {
	r := newTestRope("hello")
	_, err := r.GraphemeSlice(-1, 2)
	assert.Error(t, err)
	_, err = r.GraphemeSlice(0, 100)
	assert.Error(t, err)
	_, err = r.GraphemeSlice(3, 1)
	assert.Error(t, err)
}

func TestRope_GraphemeSlice_CombiningCharacterStaysIntact(t *testing.T) {
	combining := "e" + "́" + "x"
	r := New(combining)
	got, err := r.GraphemeSlice(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, combining[:3], got)
}
