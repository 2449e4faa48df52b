package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Rebuild reorganizes the subtree rooted at n, n included, so that it is
// balanced for the strict bound (1/2 by default), and hangs it back where n
// was: as the same child of n's parent, or as the root.
// The existing nodes are relinked; no node is created and no key changes, so
// references to nodes of the subtree stay valid. Sizes outside the subtree
// don't change. If the subtree already satisfies the strict bound it is left
// as it is.
// n must belong to u.
// Time: O(m) where m=n.Size(); Space: O(m)
func (u *WBTree[K]) Rebuild(n *Node[K]) {
	if n.SubtreeBalanced(u.strict) {
		return
	}
	if u.log != nil {
		u.log.Debugf("rebuild %d nodes under key %v", n.sz, n.key)
	}
	slot := &u.root
	if p := n.p; p != nil {
		if p.l == n {
			slot = &p.l
		} else {
			slot = &p.r
		}
	}
	link(n.appendInOrder(make([]*Node[K], 0, n.sz)), n.p, slot)
}

// overflowMid is equivalent to (a+b)/2 but deals with overflow.
func overflowMid(a, b int) int {
	return int(uint(a+b) >> 1)
}

// link makes nodes, sorted by key, a balanced subtree hanging from parent
// through slot. For every range [lo, hi) the node at (lo+hi)/2 becomes the
// root, the lower part its left subtree and the upper part its right one,
// so neither child holds more than half of the range. Uses an explicit
// stack of O(log m) frames instead of recursion.
func link[K constraints.Ordered](nodes []*Node[K], parent *Node[K], slot **Node[K]) {
	type frame struct {
		lo, hi int
		p      *Node[K]
		slot   **Node[K]
	}
	st := make([]frame, 0, bits.Len(uint(len(nodes)))+1)
	st = append(st, frame{0, len(nodes), parent, slot})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo == top.hi {
			*top.slot = nil
			continue
		}
		mid := overflowMid(top.lo, top.hi)
		n := nodes[mid]
		*top.slot = n
		n.p, n.l, n.r, n.sz = top.p, nil, nil, uint(top.hi-top.lo)
		st = append(st, frame{mid + 1, top.hi, n, &n.r}, frame{top.lo, mid, n, &n.l})
	}
}
