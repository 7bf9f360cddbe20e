package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/coreseekdev/ropetree/pkg/tree"
)

func TestBuilder_AppendAndBuild(t *testing.T) {
	b := NewBuilderWith(tree.TestConfig(), TestChunkBounds())
	b.Append("foo").Append("bar").Append("baz")
	assert.Equal(t, 9, b.Len())

	r := b.Build()
	assert.Equal(t, "foobarbaz", r.String())
	assert.NoError(t, r.AssertInvariants())
}

func TestBuilder_EmptyBuild(t *testing.T) {
	b := NewBuilder()
	r := b.Build()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "", r.String())
}

func TestBuilder_DefaultUsesProductionBounds(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, DefaultChunkBounds(), b.bounds)
	assert.Equal(t, tree.DefaultConfig(), b.cfg)
}
