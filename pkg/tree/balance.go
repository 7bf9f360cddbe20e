package tree

// balancePeers balances left against right, two same-depth nodes where
// left is positionally to the left of right. Both must already be uniquely
// owned. On a full merge the combined content is always assigned to left
// and right is left empty; the return value tells the caller whether right
// must now be dropped from its parent.
func balancePeers[L Leaf[L, S], S Summary[S]](cfg Config, left, right *Node[L, S]) bool {
	if left.IsLeaf() {
		lv, rv := left.AsLeaf(), right.AsLeaf()
		merged, _, right2, right2Sum := lv.value.BalanceSlices(lv.value, lv.summary, rv.value, rv.summary)
		lv.setValue(merged)
		if right2 == nil {
			return true
		}
		rv.setValue(*right2)
		_ = right2Sum // recomputed by setValue; kept for signature symmetry with BalanceSlices
		return false
	}
	return left.AsInner().balance(cfg, right.AsInner())
}

// balance is the peer-level rebalance of two same-depth Inodes: if neither
// is underfilled, this is a no-op. If the combined child
// count fits in one Inode, other's children all move into self and other
// is left empty. Otherwise the minimum number of children needed move from
// the non-underfilled side to the underfilled one.
func (in *Inode[L, S]) balance(cfg Config, other *Inode[L, S]) bool {
	if !in.isUnderfilled(cfg) && !other.isUnderfilled(cfg) {
		return len(other.children) == 0
	}
	total := len(in.children) + len(other.children)
	if total <= cfg.MaxChildren {
		in.children = append(in.children, other.children...)
		other.children = nil
		in.recompute()
		other.recompute()
		return true
	}
	if in.isUnderfilled(cfg) {
		need := cfg.MinChildren - len(in.children)
		moved := append([]Handle[Node[L, S]]{}, other.children[:need]...)
		in.children = append(in.children, moved...)
		other.children = removeRange(other.children, 0, need)
		in.recompute()
		other.recompute()
		return false
	}
	need := cfg.MinChildren - len(other.children)
	start := len(in.children) - need
	moved := append([]Handle[Node[L, S]]{}, in.children[start:]...)
	other.children = insertAt(other.children, 0, moved...)
	in.children = in.children[:start:start]
	in.recompute()
	other.recompute()
	return false
}

// balanceFirstChildWithSecond merges or redistributes between children[0]
// and children[1] when the first child is underfilled.
func (in *Inode[L, S]) balanceFirstChildWithSecond(cfg Config) {
	if len(in.children) < 2 {
		return
	}
	if !nodeIsUnderfilled(in.children[0].Get(), cfg) {
		return
	}
	first := in.children[0].MakeMut(cloneNodeFn[L, S])
	second := in.children[1].MakeMut(cloneNodeFn[L, S])
	emptied := balancePeers(cfg, first, second)
	if emptied {
		in.removeChildAt(1)
		return
	}
	in.recompute()
}

// balanceLastChildWithPenultimate merges or redistributes between the last
// two children when the last child is underfilled.
func (in *Inode[L, S]) balanceLastChildWithPenultimate(cfg Config) {
	n := len(in.children)
	if n < 2 {
		return
	}
	if !nodeIsUnderfilled(in.children[n-1].Get(), cfg) {
		return
	}
	penultimate := in.children[n-2].MakeMut(cloneNodeFn[L, S])
	last := in.children[n-1].MakeMut(cloneNodeFn[L, S])
	emptied := balancePeers(cfg, penultimate, last)
	if emptied {
		in.removeChildAt(n - 1)
		return
	}
	in.recompute()
}

// balanceLeftSide recursively descends the left spine, balancing the first
// two children once before recursing into the (possibly changed) first
// child, and once more afterward if it is still underfilled. The spine
// from self down must already be uniquely owned.
func (in *Inode[L, S]) balanceLeftSide(cfg Config) {
	if len(in.children) < 2 {
		return
	}
	in.balanceFirstChildWithSecond(cfg)
	if len(in.children) == 0 {
		return
	}
	first := in.children[0].Get()
	if !first.IsLeaf() {
		firstMut := in.children[0].MakeMut(cloneNodeFn[L, S])
		firstMut.AsInner().balanceLeftSide(cfg)
		in.recompute()
	}
	if len(in.children) >= 2 && nodeIsUnderfilled(in.children[0].Get(), cfg) {
		in.balanceFirstChildWithSecond(cfg)
	}
}

// balanceRightSide is the mirror of balanceLeftSide over the last two
// children and the last child's subtree.
func (in *Inode[L, S]) balanceRightSide(cfg Config) {
	if len(in.children) < 2 {
		return
	}
	in.balanceLastChildWithPenultimate(cfg)
	if len(in.children) == 0 {
		return
	}
	last := in.children[len(in.children)-1].Get()
	if !last.IsLeaf() {
		lastMut := in.children[len(in.children)-1].MakeMut(cloneNodeFn[L, S])
		lastMut.AsInner().balanceRightSide(cfg)
		in.recompute()
	}
	if len(in.children) >= 2 && nodeIsUnderfilled(in.children[len(in.children)-1].Get(), cfg) {
		in.balanceLastChildWithPenultimate(cfg)
	}
}
