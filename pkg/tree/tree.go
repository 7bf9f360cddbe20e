package tree

// Tree owns exactly one root Handle<Node>; the tree is never empty at the
// node level, even when it holds zero bytes of content. Generalised to an
// arbitrary leaf type, in the shape of a Cord with a single root handle.
type Tree[L Leaf[L, S], S Summary[S]] struct {
	root Handle[Node[L, S]]
	cfg  Config
}

// FromLeaves builds a Tree from a non-empty slice of leaf values. A single
// leaf becomes the root directly, with no wrapping Inode; two or more build
// a (possibly multi-level) Inode root via Inode.fromLeaves.
func FromLeaves[L Leaf[L, S], S Summary[S]](cfg Config, values []L) *Tree[L, S] {
	cfg.validate()
	if len(values) == 0 {
		panic(ContractViolation{Op: "FromLeaves", Msg: "empty leaf stream"})
	}
	if len(values) == 1 {
		return &Tree[L, S]{root: newHandle(leafNode[L, S](values[0])), cfg: cfg}
	}
	return &Tree[L, S]{root: newHandle(innerNode[L, S](fromLeaves(cfg, values))), cfg: cfg}
}

// Summary returns the tree's cached root summary.
func (t *Tree[L, S]) Summary() S {
	return t.root.Get().Summary()
}

// LeafCount returns the number of leaves in the tree.
func (t *Tree[L, S]) LeafCount() int {
	return t.root.Get().LeafCount()
}

// Leaves returns a fresh, restartable depth-first leaf iterator.
func (t *Tree[L, S]) Leaves() *LeafIter[L, S] {
	return newLeafIter(t.root.Get())
}

// Clone is an O(1) structural-sharing snapshot: it bumps the root handle's
// refcount without touching any node.
func (t *Tree[L, S]) Clone() *Tree[L, S] {
	return &Tree[L, S]{root: t.root.Clone(), cfg: t.cfg}
}

// Slice returns a read-only TreeSlice over the half-open metric range
// [lo, hi). Panics if the range is out of bounds.
func (t *Tree[L, S]) Slice(m Metric[L, S], lo, hi int) *TreeSlice[L, S] {
	total := m.Measure(t.Summary())
	if lo < 0 || hi < lo || hi > total {
		panic(ContractViolation{Op: "Tree.Slice", Msg: "range out of bounds"})
	}
	if lo == hi {
		return emptyTreeSlice[L, S](t.cfg)
	}
	return fromRangeInNode(t.cfg, t.root.Get(), m, lo, hi)
}

// Append adds value as a new rightmost leaf.
func (t *Tree[L, S]) Append(value L) {
	t.appendNode(newHandle(leafNode[L, S](value)))
}

// Prepend adds value as a new leftmost leaf, mirroring Append.
func (t *Tree[L, S]) Prepend(value L) {
	t.prependNode(newHandle(leafNode[L, S](value)))
}

func (t *Tree[L, S]) appendNode(node Handle[Node[L, S]]) {
	if t.root.Get().IsLeaf() {
		combined := fromNodes(t.cfg, []Handle[Node[L, S]]{t.root.Clone(), node})
		t.root = newHandle(innerNode[L, S](combined))
		return
	}
	rootNode := t.root.MakeMut(cloneNodeFn[L, S])
	extra := rootNode.AsInner().appendAtDepth(t.cfg, node)
	if extra != nil {
		newRoot := fromChildren(t.cfg, []Handle[Node[L, S]]{
			newHandle(rootNode),
			newHandle(innerNode[L, S](extra)),
		})
		t.root = newHandle(innerNode[L, S](newRoot))
	}
}

func (t *Tree[L, S]) prependNode(node Handle[Node[L, S]]) {
	if t.root.Get().IsLeaf() {
		combined := fromNodes(t.cfg, []Handle[Node[L, S]]{node, t.root.Clone()})
		t.root = newHandle(innerNode[L, S](combined))
		return
	}
	rootNode := t.root.MakeMut(cloneNodeFn[L, S])
	extra := rootNode.AsInner().prependAtDepth(t.cfg, node)
	if extra != nil {
		newRoot := fromChildren(t.cfg, []Handle[Node[L, S]]{
			newHandle(innerNode[L, S](extra)),
			newHandle(rootNode),
		})
		t.root = newHandle(innerNode[L, S](newRoot))
	}
}

// AssertInvariants checks the whole tree's structural invariants, returning
// the first violation found. It is not called from any mutation path; tests
// call it explicitly after every public operation. There is no release/debug
// split here, so the check is always available and always opt-in.
func (t *Tree[L, S]) AssertInvariants() error {
	root := t.root.Get()
	if root.IsLeaf() {
		return nil
	}
	return root.AsInner().assertInvariants(t.cfg, true)
}
