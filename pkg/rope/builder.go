package rope

import (
	"strings"

	"github.com/coreseekdev/ropetree/pkg/tree"
)

// Builder accumulates text for batch Rope construction, avoiding the
// from_leaves re-chunking cost of building a Rope up one small Insert at a
// time. Rope construction is already a single from_leaves pass over the
// accumulated text, so there is nothing to defer beyond the string
// concatenation itself.
type Builder struct {
	buf    strings.Builder
	cfg    tree.Config
	bounds ChunkBounds
}

// NewBuilder returns a Builder using production fanout/chunk bounds.
func NewBuilder() *Builder {
	return NewBuilderWith(tree.DefaultConfig(), DefaultChunkBounds())
}

// NewBuilderWith returns a Builder using explicit fanout/chunk-bounds
// configuration, for tests exercising bit-exact test-mode bounds
// (TestConfig/TestChunkBounds).
func NewBuilderWith(cfg tree.Config, bounds ChunkBounds) *Builder {
	return &Builder{cfg: cfg, bounds: bounds}
}

// Append adds text to the end of the builder's pending content.
func (b *Builder) Append(text string) *Builder {
	b.buf.WriteString(text)
	return b
}

// Len returns the number of bytes appended so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Build consumes the builder's accumulated content into a Rope.
func (b *Builder) Build() *Rope {
	return newWith(b.buf.String(), b.cfg, b.bounds)
}
