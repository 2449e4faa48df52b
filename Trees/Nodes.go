package Trees

import "golang.org/x/exp/constraints"

// Node is a node in the WBTree.
// A node owns its two children; p only points back to the owner and is nil
// at the root. sz is the number of nodes in the subtree rooted at this node,
// including itself.
type Node[K constraints.Ordered] struct {
	key     K
	l, r, p *Node[K]
	sz      uint
}

// Key of the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left child, nil if there's none.
func (n *Node[K]) Left() *Node[K] {
	return n.l
}

// Right child, nil if there's none.
func (n *Node[K]) Right() *Node[K] {
	return n.r
}

// Parent of the node, nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	return n.p
}

// Size of the subtree rooted at n. A nil node has size 0.
func (n *Node[K]) Size() uint {
	if n == nil {
		return 0
	}
	return n.sz
}

// Depth is the number of ancestors of n.
// Time: O(D); Space: O(1)
func (n *Node[K]) Depth() uint {
	var d uint
	for cur := n.p; cur != nil; cur = cur.p {
		d++
	}
	return d
}

// first node of the subtree in key order.
func (n *Node[K]) first() *Node[K] {
	if n == nil {
		return nil
	}
	for n.l != nil {
		n = n.l
	}
	return n
}

// last node of the subtree in key order.
func (n *Node[K]) last() *Node[K] {
	if n == nil {
		return nil
	}
	for n.r != nil {
		n = n.r
	}
	return n
}

// Next returns the node with the next larger key, or nil if n holds the
// largest key. Uses the parent pointers, so no stack is needed.
// Time: amortized O(1) when walking the whole tree.
func (n *Node[K]) Next() *Node[K] {
	if n.r != nil {
		return n.r.first()
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// Prev is the mirror of Next.
func (n *Node[K]) Prev() *Node[K] {
	if n.l != nil {
		return n.l.last()
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// IsBalanced reports whether each existing child of n holds at most
// r times the nodes of n's subtree. A leaf is balanced for every r.
// The cached sizes must be correct.
// Time: O(1); Space: O(1)
func (n *Node[K]) IsBalanced(r Ratio) bool {
	return r.admits(n.l.Size(), n.sz) && r.admits(n.r.Size(), n.sz)
}

// SubtreeBalanced reports whether every node of the subtree rooted at n is
// r-balanced. It checks top-down and stops at the first node that fails.
// Recursive.
// Time: O(m); Space: O(h)
func (n *Node[K]) SubtreeBalanced(r Ratio) bool {
	if n == nil {
		return true
	}
	return n.IsBalanced(r) && n.l.SubtreeBalanced(r) && n.r.SubtreeBalanced(r)
}

// appendInOrder appends the nodes of the subtree rooted at n to dst in
// ascending key order using an explicit stack.
func (n *Node[K]) appendInOrder(dst []*Node[K]) []*Node[K] {
	var st []*Node[K]
	for cur := n; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		dst = append(dst, cur)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return dst
}
