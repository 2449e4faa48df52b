package Trees

import "golang.org/x/exp/constraints"

// CheckSize reports whether every node's size equals one plus the sizes of
// its children. The tree isn't modified. Recursive, children are checked
// before their parent and the first mismatch ends the check.
// Time: O(n); Space: O(D)
func (u *WBTree[K]) CheckSize() bool {
	return sizeValid(u.root)
}

func sizeValid[K constraints.Ordered](n *Node[K]) bool {
	if n == nil {
		return true
	}
	return sizeValid(n.l) && sizeValid(n.r) && n.sz == 1+n.l.Size()+n.r.Size()
}

// CheckBalanced reports whether every node of the tree is r-balanced.
// The sizes must be correct, see CheckSize; this isn't verified.
// Recursive.
// Time: O(n); Space: O(D)
func (u *WBTree[K]) CheckBalanced(r Ratio) bool {
	return u.root.SubtreeBalanced(r)
}

// Check35Balanced is CheckBalanced(ThreeFifths).
func (u *WBTree[K]) Check35Balanced() bool {
	return u.CheckBalanced(ThreeFifths)
}

// Corrupt [Tree.Corrupt]
// The tree is corrupt if a size is wrong, a parent pointer doesn't point to
// the owner of the node, or the keys aren't strictly ascending in-order.
// Recursive.
// Time: O(n); Space: O(D)
func (u *WBTree[K]) Corrupt() bool {
	if !u.CheckSize() || !parentsValid(u.root, nil) {
		return true
	}
	var prev *Node[K]
	for cur := u.root.first(); cur != nil; cur = cur.Next() {
		if prev != nil && !(prev.key < cur.key) {
			return true
		}
		prev = cur
	}
	return false
}

func parentsValid[K constraints.Ordered](n, p *Node[K]) bool {
	if n == nil {
		return true
	}
	return n.p == p && parentsValid(n.l, n) && parentsValid(n.r, n)
}
