package tree

import "reflect"

// Inode is an internal node: a bounded run of same-depth children plus a
// cached aggregate over them.
//
// This engine recomputes an Inode's cached fields from its (small,
// bounded-by-fanout) children slice after every direct mutation rather than
// patching them incrementally. Since fanout is a small constant either way,
// recompute() is the same O(1) complexity class as incremental patching; it
// trades a subtractive-summary micro-optimisation for a single,
// hard-to-get-wrong bookkeeping path.
type Inode[L Leaf[L, S], S Summary[S]] struct {
	children  []Handle[Node[L, S]]
	summary   S
	depth     int
	leafCount int
}

// emptyInode returns a childless Inode at depth 1. It is only ever a
// transient construction state: every public entry point fills it via
// fromChildren/fromNodes/fromLeaves before it becomes reachable.
func emptyInode[L Leaf[L, S], S Summary[S]]() *Inode[L, S] {
	return &Inode[L, S]{depth: 1}
}

// fromChildren builds an Inode directly from a single group of same-depth
// children, which must already satisfy len in [1, cfg.MaxChildren].
func fromChildren[L Leaf[L, S], S Summary[S]](cfg Config, nodes []Handle[Node[L, S]]) *Inode[L, S] {
	if len(nodes) == 0 {
		panic(ContractViolation{Op: "fromChildren", Msg: "empty child list"})
	}
	if len(nodes) > cfg.MaxChildren {
		panic(ContractViolation{Op: "fromChildren", Msg: "more children than fanout allows"})
	}
	depth := nodes[0].Get().Depth()
	for _, n := range nodes[1:] {
		if n.Get().Depth() != depth {
			panic(ContractViolation{Op: "fromChildren", Msg: "mixed child depths"})
		}
	}
	in := &Inode[L, S]{children: append([]Handle[Node[L, S]]{}, nodes...)}
	in.recompute()
	return in
}

// fromNodes builds a (possibly multi-level) tree from two or more same-depth
// nodes and returns its single root Inode. When the nodes already fit under
// one Inode this is exactly fromChildren; otherwise a ChildSegmenter packs
// them into [min,max]-bounded Inodes and recurses one level up.
func fromNodes[L Leaf[L, S], S Summary[S]](cfg Config, nodes []Handle[Node[L, S]]) *Inode[L, S] {
	if len(nodes) < 2 {
		panic(ContractViolation{Op: "fromNodes", Msg: "fromNodes requires at least two nodes"})
	}
	if len(nodes) <= cfg.MaxChildren {
		return fromChildren(cfg, nodes)
	}
	groups := segmentChildren(cfg, nodes)
	next := make([]Handle[Node[L, S]], len(groups))
	for i, g := range groups {
		next[i] = newHandle(innerNode[L, S](fromChildren(cfg, g)))
	}
	if len(next) == 1 {
		return next[0].Get().AsInner()
	}
	return fromNodes(cfg, next)
}

// fromLeaves builds a tree from two or more leaf values and returns its
// root Inode. A single leaf never reaches here: Tree.FromLeaves handles
// that case itself, since a lone leaf's root is the leaf directly, with no
// wrapping Inode.
func fromLeaves[L Leaf[L, S], S Summary[S]](cfg Config, values []L) *Inode[L, S] {
	if len(values) < 2 {
		panic(ContractViolation{Op: "fromLeaves", Msg: "fromLeaves requires at least two leaves"})
	}
	nodes := make([]Handle[Node[L, S]], len(values))
	for i, v := range values {
		nodes[i] = newHandle(leafNode[L, S](v))
	}
	return fromNodes(cfg, nodes)
}

// recompute refreshes depth, summary and leafCount from the current
// children slice. Called after every direct edit to in.children, or after
// a child's own value changed in place (e.g. a leaf balance in-place edit).
func (in *Inode[L, S]) recompute() {
	if len(in.children) == 0 {
		in.summary = zeroOf[S]()
		in.leafCount = 0
		return
	}
	in.depth = in.children[0].Get().Depth() + 1
	sum := zeroOf[S]()
	leafCount := 0
	for _, c := range in.children {
		cn := c.Get()
		sum = sum.Add(cn.Summary())
		leafCount += cn.LeafCount()
	}
	in.summary = sum
	in.leafCount = leafCount
}

// clone deep-copies this Inode for copy-on-write mutation: the children
// slice header is copied and every child Handle is Clone()d so its
// refcount correctly reflects the new Inode also referencing it.
func (in *Inode[L, S]) clone() *Inode[L, S] {
	children := make([]Handle[Node[L, S]], len(in.children))
	for i, c := range in.children {
		children[i] = c.Clone()
	}
	return &Inode[L, S]{
		children:  children,
		summary:   in.summary,
		depth:     in.depth,
		leafCount: in.leafCount,
	}
}

func cloneNodeFn[L Leaf[L, S], S Summary[S]](n *Node[L, S]) *Node[L, S] {
	return n.clone()
}

// isUnderfilled reports whether this Inode has fewer than cfg.MinChildren
// children. The root Inode is exempt from this check by callers, never by
// the method itself.
func (in *Inode[L, S]) isUnderfilled(cfg Config) bool {
	return len(in.children) < cfg.MinChildren
}

func nodeIsUnderfilled[L Leaf[L, S], S Summary[S]](n *Node[L, S], cfg Config) bool {
	if n.IsLeaf() {
		lf := n.AsLeaf()
		return !lf.value.IsBigEnough(lf.summary)
	}
	return n.AsInner().isUnderfilled(cfg)
}

// pushChild appends child to the end of this Inode's children.
func (in *Inode[L, S]) pushChild(child Handle[Node[L, S]]) {
	in.children = append(in.children, child)
	in.recompute()
}

// insertChild inserts child at position idx.
func (in *Inode[L, S]) insertChild(idx int, child Handle[Node[L, S]]) {
	in.children = insertAt(in.children, idx, child)
	in.recompute()
}

// removeChildAt removes and returns the child at position idx.
func (in *Inode[L, S]) removeChildAt(idx int) Handle[Node[L, S]] {
	child := in.children[idx]
	in.children = removeRange(in.children, idx, idx+1)
	in.recompute()
	return child
}

// swapChild replaces the child at idx with child, returning the old one.
func (in *Inode[L, S]) swapChild(idx int, child Handle[Node[L, S]]) Handle[Node[L, S]] {
	old := in.children[idx]
	in.children[idx] = child
	in.recompute()
	return old
}

// drain removes and returns children[lo:hi], closing the gap by shifting
// the tail left. Go has no destructors, so unlike a lazy draining iterator
// this performs the removal eagerly; the net observable effect is the same.
func (in *Inode[L, S]) drain(lo, hi int) []Handle[Node[L, S]] {
	removed := append([]Handle[Node[L, S]]{}, in.children[lo:hi]...)
	in.children = append(in.children[:lo:lo], in.children[hi:]...)
	in.recompute()
	return removed
}

// insertAt inserts v at position idx in s, growing s.
func insertAt[T any](s []T, idx int, v ...T) []T {
	out := make([]T, 0, len(s)+len(v))
	out = append(out, s[:idx]...)
	out = append(out, v...)
	out = append(out, s[idx:]...)
	return out
}

// removeRange removes s[lo:hi] from s, shifting the tail left.
func removeRange[T any](s []T, lo, hi int) []T {
	return append(s[:lo:lo], s[hi:]...)
}

// assertInvariants walks this subtree checking its structural invariants:
// fanout bounds (root exempt from the lower bound), uniform child depth,
// and cache consistency for depth/summary/leafCount. It returns the first
// violation found rather than panicking, so tests can assert on it
// directly.
func (in *Inode[L, S]) assertInvariants(cfg Config, isRoot bool) error {
	n := len(in.children)
	if n == 0 {
		return InvariantViolation{Msg: "inode has no children"}
	}
	if n > cfg.MaxChildren {
		return InvariantViolation{Msg: "inode exceeds max_children"}
	}
	if !isRoot && n < cfg.MinChildren {
		return InvariantViolation{Msg: "non-root inode below min_children"}
	}
	wantDepth := in.children[0].Get().Depth()
	sum := zeroOf[S]()
	leafCount := 0
	for _, c := range in.children {
		cn := c.Get()
		if cn.Depth() != wantDepth {
			return InvariantViolation{Msg: "sibling children have differing depth"}
		}
		sum = sum.Add(cn.Summary())
		leafCount += cn.LeafCount()
		if !cn.IsLeaf() {
			if err := cn.AsInner().assertInvariants(cfg, false); err != nil {
				return err
			}
		}
	}
	if in.depth != wantDepth+1 {
		return InvariantViolation{Msg: "cached depth inconsistent with children"}
	}
	if in.leafCount != leafCount {
		return InvariantViolation{Msg: "cached leaf_count inconsistent with children"}
	}
	if !reflect.DeepEqual(sum, in.summary) {
		return InvariantViolation{Msg: "cached summary inconsistent with children"}
	}
	return nil
}
