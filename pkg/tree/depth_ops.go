package tree

// appendAtDepth appends node, whose depth is strictly less than self's, to
// the rightmost path of self's subtree. self must already be uniquely
// owned. It returns a new sibling Inode at self's own depth if self had to
// split to make room, or nil otherwise.
func (in *Inode[L, S]) appendAtDepth(cfg Config, node Handle[Node[L, S]]) *Inode[L, S] {
	if in.depth > node.Get().Depth()+1 {
		lastIdx := len(in.children) - 1
		last := in.children[lastIdx].MakeMut(cloneNodeFn[L, S])
		if last.IsLeaf() {
			panic(ContractViolation{Op: "appendAtDepth", Msg: "depth mismatch: leaf found above expected internal child"})
		}
		extra := last.AsInner().appendAtDepth(cfg, node)
		in.recompute()
		if extra == nil {
			return nil
		}
		node = newHandle(innerNode[L, S](extra))
	}

	// in.depth == node.Get().Depth()+1 here.
	if nodeIsUnderfilled(node.Get(), cfg) {
		lastIdx := len(in.children) - 1
		last := in.children[lastIdx].MakeMut(cloneNodeFn[L, S])
		nodeMut := node.MakeMut(cloneNodeFn[L, S])
		emptied := balancePeers(cfg, last, nodeMut)
		in.recompute()
		if emptied {
			return nil
		}
	}

	if len(in.children) < cfg.MaxChildren {
		in.children = append(in.children, node)
		in.recompute()
		return nil
	}

	splitAt := cfg.MinChildren + 1
	tail := append([]Handle[Node[L, S]]{}, in.children[splitAt:]...)
	in.children = in.children[:splitAt:splitAt]
	in.recompute()
	other := fromChildren(cfg, tail)
	other.pushChild(node)
	return other
}

// prependAtDepth is the mirror of appendAtDepth, inserting node before the
// leftmost path of self's subtree.
func (in *Inode[L, S]) prependAtDepth(cfg Config, node Handle[Node[L, S]]) *Inode[L, S] {
	if in.depth > node.Get().Depth()+1 {
		first := in.children[0].MakeMut(cloneNodeFn[L, S])
		if first.IsLeaf() {
			panic(ContractViolation{Op: "prependAtDepth", Msg: "depth mismatch: leaf found above expected internal child"})
		}
		extra := first.AsInner().prependAtDepth(cfg, node)
		in.recompute()
		if extra == nil {
			return nil
		}
		node = newHandle(innerNode[L, S](extra))
	}

	if nodeIsUnderfilled(node.Get(), cfg) {
		first := in.children[0].MakeMut(cloneNodeFn[L, S])
		nodeMut := node.MakeMut(cloneNodeFn[L, S])
		emptied := balancePeers(cfg, nodeMut, first)
		if emptied {
			// node absorbed first's content and now holds the merged
			// result; it replaces child 0 directly.
			in.children[0] = node
			in.recompute()
			return nil
		}
		// first already holds its own updated remainder in place (balance
		// updated it directly); node still needs inserting ahead of it.
		in.recompute()
	}

	if len(in.children) < cfg.MaxChildren {
		in.children = insertAt(in.children, 0, node)
		in.recompute()
		return nil
	}

	headCount := len(in.children) - (cfg.MinChildren + 1)
	head := append([]Handle[Node[L, S]]{}, in.children[:headCount]...)
	in.children = append(in.children[:0:0], in.children[headCount:]...)
	in.recompute()
	other := fromChildren(cfg, insertAt(head, 0, node))
	return other
}

// insertAtDepth inserts node, more than one depth level below self, as a
// new child of self's subtree at position childOffset: it delegates to
// appendAtDepth on the child before the insertion point (or prependAtDepth
// on child 0 when childOffset == 0), then splices any resulting overflow
// into self directly at childOffset via insertChildren.
func (in *Inode[L, S]) insertAtDepth(cfg Config, childOffset int, node Handle[Node[L, S]]) []Handle[Node[L, S]] {
	var overflow *Inode[L, S]
	if childOffset == 0 {
		first := in.children[0].MakeMut(cloneNodeFn[L, S])
		overflow = first.AsInner().prependAtDepth(cfg, node)
	} else {
		idx := childOffset - 1
		child := in.children[idx].MakeMut(cloneNodeFn[L, S])
		overflow = child.AsInner().appendAtDepth(cfg, node)
	}
	in.recompute()
	if overflow == nil {
		return nil
	}
	return in.insertChildren(cfg, childOffset, []Handle[Node[L, S]]{newHandle(innerNode[L, S](overflow))})
}

// insertChildren splices input into self's children at childOffset. If
// everything fits, it is a plain slice insert. Otherwise: the
// tail from childOffset onward is drained into a buffer; self is refilled
// from input then from the tail buffer until no longer underfilled; any
// shortage below min_children is pulled back from the end of self; and
// whatever remains of input ++ tail is packed via ChildSegmenter into new
// Inodes for the caller to insert at self's own level.
func (in *Inode[L, S]) insertChildren(cfg Config, childOffset int, input []Handle[Node[L, S]]) []Handle[Node[L, S]] {
	if len(in.children)+len(input) <= cfg.MaxChildren {
		in.children = insertAt(in.children, childOffset, input...)
		in.recompute()
		return nil
	}

	tail := append([]Handle[Node[L, S]]{}, in.children[childOffset:]...)
	in.children = in.children[:childOffset:childOffset]

	inputIdx, tailIdx := 0, 0
	for in.isUnderfilled(cfg) && (inputIdx < len(input) || tailIdx < len(tail)) {
		if inputIdx < len(input) {
			in.children = append(in.children, input[inputIdx])
			inputIdx++
		} else {
			in.children = append(in.children, tail[tailIdx])
			tailIdx++
		}
	}
	in.recompute()

	remaining := append([]Handle[Node[L, S]]{}, input[inputIdx:]...)
	remaining = append(remaining, tail[tailIdx:]...)

	if len(remaining) > 0 && len(remaining) < cfg.MinChildren {
		need := cfg.MinChildren - len(remaining)
		moveBack := append([]Handle[Node[L, S]]{}, in.children[len(in.children)-need:]...)
		in.children = in.children[:len(in.children)-need]
		in.recompute()
		remaining = append(moveBack, remaining...)
	}

	if len(remaining) == 0 {
		return nil
	}
	groups := segmentChildren(cfg, remaining)
	out := make([]Handle[Node[L, S]], len(groups))
	for i, g := range groups {
		out[i] = newHandle(innerNode[L, S](fromChildren(cfg, g)))
	}
	return out
}
