package tree

// TreeSlice is a read-only, owning view over a contiguous metric range of a
// Tree. Rather than keeping a live borrow into the source tree's nodes —
// Go has no lifetimes to enforce a "cannot outlive the Tree" rule — this
// engine materialises the slice's leaf sequence once at construction time
// (before_first, whole middle leaves, after_last, in order). This also lets
// Slice (re-slicing) reuse the Tree/Inode machinery wholesale by building a
// small ephemeral Tree over the slice's own materialised leaves.
type TreeSlice[L Leaf[L, S], S Summary[S]] struct {
	cfg     Config
	leaves  []L
	summary S
}

func emptyTreeSlice[L Leaf[L, S], S Summary[S]](cfg Config) *TreeSlice[L, S] {
	return &TreeSlice[L, S]{cfg: cfg, summary: zeroOf[S]()}
}

// Summary returns the slice's cached summary.
func (s *TreeSlice[L, S]) Summary() S {
	return s.summary
}

// LeafCount returns the number of leaves the slice's iteration yields.
func (s *TreeSlice[L, S]) LeafCount() int {
	return len(s.leaves)
}

// Leaves returns a fresh iterator over the slice's materialised leaf
// sequence: before_first, then every whole leaf strictly between start and
// end, then after_last.
func (s *TreeSlice[L, S]) Leaves() *LeafIter[L, S] {
	if len(s.leaves) == 0 {
		return &LeafIter[L, S]{}
	}
	return newLeafIter(asSingleLevelNode(s.leaves))
}

// Slice re-slices this TreeSlice by the same algorithm restricted to its
// own (already-narrowed) leaf sequence.
func (s *TreeSlice[L, S]) Slice(m Metric[L, S], lo, hi int) *TreeSlice[L, S] {
	total := m.Measure(s.summary)
	if lo < 0 || hi < lo || hi > total {
		panic(ContractViolation{Op: "TreeSlice.Slice", Msg: "range out of bounds"})
	}
	if lo == hi {
		return emptyTreeSlice[L, S](s.cfg)
	}
	if len(s.leaves) == 0 {
		panic(ContractViolation{Op: "TreeSlice.Slice", Msg: "range out of bounds"})
	}
	if len(s.leaves) == 1 {
		startLocal := resolveBoundary(m, s.leaves[0], lo)
		endLocal := resolveBoundary(m, s.leaves[0], hi)
		v := s.leaves[0].Slice(startLocal, endLocal)
		return &TreeSlice[L, S]{cfg: s.cfg, leaves: []L{v}, summary: v.Summarize()}
	}
	sub := FromLeaves(s.cfg, s.leaves)
	return sub.Slice(m, lo, hi)
}

// asSingleLevelNode wraps a flat leaf-value slice as a Node tree whose
// shape newLeafIter can walk, without going through Handle/Inode
// bookkeeping that TreeSlice's already-final leaf list has no further use
// for.
func asSingleLevelNode[L Leaf[L, S], S Summary[S]](values []L) *Node[L, S] {
	if len(values) == 1 {
		return leafNode[L, S](values[0])
	}
	children := make([]Handle[Node[L, S]], len(values))
	for i, v := range values {
		children[i] = newHandle(leafNode[L, S](v))
	}
	in := &Inode[L, S]{children: children}
	in.recompute()
	return innerNode[L, S](in)
}

// fromRangeInNode finds the leaf containing range.start and the leaf
// containing range.end (via an LCA-finding descent), slices their kept
// edges, and collects whole leaves strictly between them.

// resolveBoundary finds the byte offset within leaf corresponding to
// metric-local target, via the metric's own FindBoundary. A target equal to
// the leaf's full measure resolves to the position right after the leaf's
// last unit of that metric, which is not necessarily the leaf's end: for a
// line-break metric, bytes after the leaf's last line break stay outside.
func resolveBoundary[L Leaf[L, S], S Summary[S]](m Metric[L, S], leaf L, target int) int {
	return m.FindBoundary(leaf, target)
}

func fromRangeInNode[L Leaf[L, S], S Summary[S]](cfg Config, root *Node[L, S], m Metric[L, S], lo, hi int) *TreeSlice[L, S] {
	lca, startLeaf, startBefore, endLeaf, endBefore := lcaAndLeaves(root, m, lo, hi)
	startLocal := resolveBoundary(m, startLeaf.Value(), lo-startBefore)
	endLocal := resolveBoundary(m, endLeaf.Value(), hi-endBefore)

	if startLeaf == endLeaf {
		v := startLeaf.Value().Slice(startLocal, endLocal)
		return &TreeSlice[L, S]{cfg: cfg, leaves: []L{v}, summary: v.Summarize()}
	}

	beforeFirst := startLeaf.Value().Slice(startLocal, startLeaf.Value().Len())
	afterLast := endLeaf.Value().Slice(0, endLocal)

	var middles []L
	started, finished := false, false
	var walk func(n *Node[L, S])
	walk = func(n *Node[L, S]) {
		if finished {
			return
		}
		if n.IsLeaf() {
			lf := n.AsLeaf()
			switch {
			case lf == startLeaf:
				started = true
			case lf == endLeaf:
				finished = true
			case started:
				middles = append(middles, lf.Value())
			}
			return
		}
		for _, c := range n.AsInner().children {
			walk(c.Get())
			if finished {
				return
			}
		}
	}
	walk(lca)

	leaves := make([]L, 0, len(middles)+2)
	leaves = append(leaves, beforeFirst)
	leaves = append(leaves, middles...)
	leaves = append(leaves, afterLast)

	summary := beforeFirst.Summarize()
	for _, v := range middles {
		summary = summary.Add(v.Summarize())
	}
	summary = summary.Add(afterLast.Summarize())

	return &TreeSlice[L, S]{cfg: cfg, leaves: leaves, summary: summary}
}

// childIndexFor returns the index of in's child containing target (a
// metric-relative offset local to in), and the metric-measure accumulated
// before that child. A target that lands exactly on an internal boundary
// resolves to the following child, except at the very last child where it
// resolves to that child's end — giving correct half-open range semantics
// for both a range's start and its end without needing to special-case
// either.
func childIndexFor[L Leaf[L, S], S Summary[S]](in *Inode[L, S], m Metric[L, S], target int) (int, int) {
	consumed := 0
	last := len(in.children) - 1
	for i, c := range in.children {
		measure := m.Measure(c.Get().Summary())
		if target < consumed+measure || (i == last && target == consumed+measure) {
			return i, consumed
		}
		consumed += measure
	}
	panic(ContractViolation{Op: "childIndexFor", Msg: "metric target out of range"})
}

func locateLeaf[L Leaf[L, S], S Summary[S]](node *Node[L, S], m Metric[L, S], target int) (*Lnode[L, S], int) {
	if node.IsLeaf() {
		return node.AsLeaf(), 0
	}
	in := node.AsInner()
	idx, consumed := childIndexFor(in, m, target)
	leaf, before := locateLeaf(in.children[idx].Get(), m, target-consumed)
	return leaf, consumed + before
}

// lcaAndLeaves descends from node, following lo and hi together while they
// select the same child; the node at which they diverge is the lowest
// common ancestor. It returns that LCA node along with the leaves (and
// metric-measure consumed before each) containing lo and hi respectively.
func lcaAndLeaves[L Leaf[L, S], S Summary[S]](node *Node[L, S], m Metric[L, S], lo, hi int) (lca *Node[L, S], startLeaf *Lnode[L, S], startBefore int, endLeaf *Lnode[L, S], endBefore int) {
	cur := node
	consumed := 0
	for {
		if cur.IsLeaf() {
			lf := cur.AsLeaf()
			return cur, lf, consumed, lf, consumed
		}
		in := cur.AsInner()
		loIdx, loConsumed := childIndexFor(in, m, lo-consumed)
		hiIdx, hiConsumed := childIndexFor(in, m, hi-consumed)
		if loIdx != hiIdx {
			sLeaf, sBefore := locateLeaf(in.children[loIdx].Get(), m, lo-consumed-loConsumed)
			eLeaf, eBefore := locateLeaf(in.children[hiIdx].Get(), m, hi-consumed-hiConsumed)
			return cur, sLeaf, consumed + loConsumed + sBefore, eLeaf, consumed + hiConsumed + eBefore
		}
		consumed += loConsumed
		cur = in.children[loIdx].Get()
	}
}
