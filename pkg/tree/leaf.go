package tree

// Leaf is the contract a value type must satisfy to be stored at the
// leaves of a Tree. L is the leaf's own type; values are stored by value.
type Leaf[L any, S Summary[S]] interface {
	// Summarize computes this leaf's Summary. Lnode caches the result and
	// expects Summarize to stay consistent with the leaf's current value:
	// Summarize() always equals the cached summary at rest.
	Summarize() S

	// IsBigEnough reports whether the leaf, given its own cached summary,
	// meets the leaf type's minimum-fill predicate (e.g. for chunks:
	// summary.Bytes >= minBytes). An inode with exactly one leaf child is
	// exempt from this check by the caller: a single-leaf tree may be short.
	IsBigEnough(s S) bool

	// BalanceSlices redistributes content between two adjacent leaves so
	// that the result either is a single merged leaf, or is two leaves
	// that both satisfy IsBigEnough and whose concatenation is exactly the
	// concatenation of the two inputs. Implementations must preserve any
	// semantic constraints of L (e.g. chunk.go's UTF-8/CRLF invariants).
	BalanceSlices(left L, leftSummary S, right L, rightSummary S) (mergedOrLeft L, mergedOrLeftSummary S, right2 *L, right2Summary S)

	// Len returns the leaf's own length in its base metric's unit (bytes,
	// for chunk.go). Used by TreeSlice construction to slice a leaf's kept
	// prefix/suffix: L serves as its own slice type here, since a chunk's
	// backing Go string is already a cheap, shareable view.
	Len() int

	// Slice returns the sub-leaf covering the base-unit half-open range
	// [lo, hi). Used by TreeSlice's before_first/after_last edges.
	Slice(lo, hi int) L
}
