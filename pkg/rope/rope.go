// Package rope implements an efficient persistent Rope data structure for
// large text editing, built on top of the generic copy-on-write B-tree in
// package tree.
//
// A Rope is a B-tree of short UTF-8 text fragments ("chunks"), optimized
// for efficient insertions, deletions and slicing of large documents
// without copying the whole text.
//
// # Performance Characteristics
//
// Length queries are O(1) and slicing is O(log n + k), where n is the
// number of chunks; construction and edits (Insert/Delete/Replace)
// re-chunk the whole text and are linear in the document length.
//
// Operation | Time Complexity | Notes
// -----------|----------------|-------
// New(text) | O(n/maxBytes) | Chunks the input via the streaming chunker
// Len() | O(1) | Cached in the tree's root summary
// Slice() | O(log n + k) | k = number of chunks touched
// Insert()/Delete()/Replace() | O(n) | Slice + re-chunk; see Replace's doc comment
// Clone() | O(1) | Structural sharing; no copying
//
// # Thread Safety
//
// Rope is immutable: every mutating method returns a new Rope, leaving the
// receiver unchanged. Multiple goroutines may read the same Rope
// concurrently without synchronization.
package rope

import (
	"strings"

	"github.com/coreseekdev/ropetree/pkg/tree"
)

// Rope is an immutable, persistent sequence of UTF-8 text, represented as
// a Tree of Chunk leaves. Cached length/line-count/grapheme-count come for
// free from the tree's root summary rather than being tracked by hand.
type Rope struct {
	tree   *tree.Tree[Chunk, ChunkSummary]
	cfg    tree.Config
	bounds ChunkBounds
}

// New creates a Rope from text, chunked via ChunksOf.
func New(text string) *Rope {
	return newWith(text, tree.DefaultConfig(), DefaultChunkBounds())
}

// Empty returns a Rope with no content.
func Empty() *Rope {
	return New("")
}

// newWith builds a Rope under explicit fanout/chunk-bounds configuration;
// used directly by tests exercising bit-exact test-mode bounds
// (TestConfig/TestChunkBounds).
func newWith(text string, cfg tree.Config, bounds ChunkBounds) *Rope {
	chunks := ChunksOf(text, bounds)
	if len(chunks) == 0 {
		chunks = []Chunk{NewChunk("", bounds)}
	}
	return &Rope{tree: tree.FromLeaves(cfg, chunks), cfg: cfg, bounds: bounds}
}

// Len returns the rope's length in bytes.
func (r *Rope) Len() int {
	return r.tree.Summary().Bytes
}

// LineCount returns the number of '\n'-terminated line breaks in the rope.
func (r *Rope) LineCount() int {
	return r.tree.Summary().LineBreaks
}

// GraphemeCount returns the number of user-perceived characters in the
// rope (its grapheme-cluster metric; see graphemes.go).
func (r *Rope) GraphemeCount() int {
	return r.tree.Summary().Graphemes
}

// String returns the complete content as a string.
func (r *Rope) String() string {
	var b strings.Builder
	b.Grow(r.Len())
	it := r.tree.Leaves()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(c.Text())
	}
	return b.String()
}

// Bytes returns the complete content as a byte slice.
func (r *Rope) Bytes() []byte {
	return []byte(r.String())
}

// Slice returns the substring spanning the half-open byte range
// [start, end).
func (r *Rope) Slice(start, end int) (string, error) {
	if start < 0 || end > r.Len() || start > end {
		return "", errOutOfBounds("Rope.Slice", start, end, r.Len())
	}
	if start == end {
		return "", nil
	}
	ts := r.tree.Slice(ByteMetric{}, start, end)
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

// Insert inserts text at the given byte position and returns a new Rope.
func (r *Rope) Insert(pos int, text string) (*Rope, error) {
	if pos < 0 || pos > r.Len() {
		return nil, errOutOfBounds("Rope.Insert", pos, pos, r.Len())
	}
	if text == "" {
		return r, nil
	}
	return r.Replace(pos, pos, text)
}

// Delete removes the half-open byte range [start, end) and returns a new
// Rope.
func (r *Rope) Delete(start, end int) (*Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return nil, errOutOfBounds("Rope.Delete", start, end, r.Len())
	}
	return r.Replace(start, end, "")
}

// Replace replaces the half-open byte range [start, end) with text and
// returns a new Rope. Implemented as concat(before, text, after) rather
// than an in-place Tree edit: the underlying tree's external contract
// commits only to from_leaves, slice, and summary/metric access, so every
// rope-level edit goes through split-then-concat of the prefix,
// replacement, and suffix.
func (r *Rope) Replace(start, end int, text string) (*Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return nil, errOutOfBounds("Rope.Replace", start, end, r.Len())
	}
	before, err := r.Slice(0, start)
	if err != nil {
		return nil, err
	}
	after, err := r.Slice(end, r.Len())
	if err != nil {
		return nil, err
	}
	return newWith(before+text+after, r.cfg, r.bounds), nil
}

// Split splits the rope at the given byte position into (left, right),
// where left holds [0, pos) and right holds [pos, Len()).
func (r *Rope) Split(pos int) (*Rope, *Rope, error) {
	if pos < 0 || pos > r.Len() {
		return nil, nil, errOutOfBounds("Rope.Split", pos, pos, r.Len())
	}
	left, err := r.Slice(0, pos)
	if err != nil {
		return nil, nil, err
	}
	right, err := r.Slice(pos, r.Len())
	if err != nil {
		return nil, nil, err
	}
	return newWith(left, r.cfg, r.bounds), newWith(right, r.cfg, r.bounds), nil
}

// Concat concatenates two ropes and returns a new Rope.
func (r *Rope) Concat(other *Rope) *Rope {
	if r == nil || r.Len() == 0 {
		return other
	}
	if other == nil || other.Len() == 0 {
		return r
	}
	return newWith(r.String()+other.String(), r.cfg, r.bounds)
}

// Clone is an O(1) structural-sharing snapshot.
func (r *Rope) Clone() *Rope {
	return &Rope{tree: r.tree.Clone(), cfg: r.cfg, bounds: r.bounds}
}

// AssertInvariants exposes the underlying tree's invariant check for
// tests.
func (r *Rope) AssertInvariants() error {
	return r.tree.AssertInvariants()
}
