package Trees

// Insert the key into the tree following the binary search tree rules.
// If key is already in the tree nothing changes.
// After attaching the new leaf, every ancestor's size is increased by one
// while walking back to the root, and each one is checked against the soft
// bound. Insert returns the violating node closest to the root, or nil if
// the soft bound still holds everywhere on the path. A duplicate key also
// returns nil; use Put to tell the two apart.
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Insert(key K) *Node[K] {
	v, _ := u.Put(key)
	return v
}

// Put is Insert that also reports whether a new node was created.
func (u *WBTree[K]) Put(key K) (violator *Node[K], added bool) {
	if u.root == nil {
		u.root = &Node[K]{key: key, sz: 1}
		return nil, true
	}
	cur := u.root
	for {
		if key < cur.key {
			if cur.l == nil {
				cur.l = &Node[K]{key: key, p: cur, sz: 1}
				break
			}
			cur = cur.l
		} else if key > cur.key {
			if cur.r == nil {
				cur.r = &Node[K]{key: key, p: cur, sz: 1}
				break
			}
			cur = cur.r
		} else {
			return nil, false
		}
	}
	// the walk goes upward, so the last violator seen is the topmost one.
	for ; cur != nil; cur = cur.p {
		cur.sz++
		if !cur.IsBalanced(u.soft) {
			violator = cur
		}
	}
	return violator, true
}
