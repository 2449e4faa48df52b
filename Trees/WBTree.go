package Trees

import (
	"github.com/bitmark-inc/logger"
	"github.com/g-m-twostay/go-wbtree/Queues"
	"github.com/g-m-twostay/go-wbtree/fault"
	"golang.org/x/exp/constraints"
)

// WBTree is a binary search tree with no repeated keys whose nodes keep the
// sizes of their subtrees. Balance is defined by the sizes: a node is
// k-balanced when neither child holds more than k times its subtree.
// Insert only maintains the sizes and reports the topmost node that broke
// the soft bound (3/5 by default); Rebuild flattens a subtree and relinks
// it so that it satisfies the strict bound (1/2 by default). Add composes
// the two, so a tree filled only through Add stays soft-balanced and its
// height is O(log n).
// Every node has a parent pointer, which is what lets Insert walk back up
// and Next/Prev iterate without a stack.
// A WBTree isn't safe for concurrent use.
type WBTree[K constraints.Ordered] struct {
	root         *Node[K]
	soft, strict Ratio
	log          *logger.L
}

var _ Tree[int] = (*WBTree[int])(nil)

// Config of a WBTree.
type Config struct {
	Soft   Ratio     // bound reported by Insert, ThreeFifths by default.
	Strict Ratio     // bound restored by Rebuild, Half by default.
	Log    *logger.L // optional, nil disables logging.
}

// DefaultConfig returns the 3/5 and 1/2 bounds without logging.
func DefaultConfig() Config {
	return Config{Soft: ThreeFifths, Strict: Half}
}

// Valid checks both bounds and that the soft one isn't stricter than the
// strict one, otherwise a rebuilt subtree could still break the soft bound.
func (c Config) Valid() error {
	if err := c.Soft.Valid(); err != nil {
		return err
	}
	if err := c.Strict.Valid(); err != nil {
		return err
	}
	if c.Soft.Less(c.Strict) {
		return fault.ErrSoftStricterThanStrict
	}
	return nil
}

// MakeWBTree returns an empty tree using DefaultConfig.
func MakeWBTree[K constraints.Ordered]() *WBTree[K] {
	return &WBTree[K]{soft: ThreeFifths, strict: Half}
}

// MakeWBTreeWith returns an empty tree using cfg, or an error from
// Config.Valid.
func MakeWBTreeWith[K constraints.Ordered](cfg Config) (*WBTree[K], error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return &WBTree[K]{soft: cfg.Soft, strict: cfg.Strict, log: cfg.Log}, nil
}

// BuildWBTree builds a 1/2-balanced tree from the given sorted slice. This is
// faster than repeatedly calling Add. The word "set" is used to show that
// there shouldn't be any repeated element.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements. If safe==true, this function will check if the
// conditions are met and panic with InvalidSliceError if they are broken.
// Otherwise, it's up to the user to ensure the conditions are met.
// Time: O(n).
func BuildWBTree[K constraints.Ordered](sli []K, safe bool) *WBTree[K] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	nodes := make([]Node[K], len(sli))
	ptrs := make([]*Node[K], len(sli))
	for i := range sli {
		nodes[i].key = sli[i]
		ptrs[i] = &nodes[i]
	}
	u := MakeWBTree[K]()
	link(ptrs, nil, &u.root)
	return u
}

// Root of the tree, nil if the tree is empty.
func (u *WBTree[K]) Root() *Node[K] {
	return u.root
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *WBTree[K]) Size() uint {
	return u.root.Size()
}

// Add inserts key and, if that broke the soft bound, rebuilds the subtree of
// the topmost violator. Returns whether key was new.
// Time: amortized O(log n)
func (u *WBTree[K]) Add(key K) bool {
	v, added := u.Put(key)
	if v != nil {
		if u.log != nil {
			u.log.Debugf("key %v unbalanced node %v: left %d right %d of %d", key, v.key, v.l.Size(), v.r.Size(), v.sz)
		}
		u.Rebuild(v)
	}
	return added
}

// Search returns the node holding key, nil if there's none.
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Search(key K) *Node[K] {
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if key > cur.key {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Has(key K) bool {
	return u.Search(key) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Minimum() (K, bool) {
	if n := u.root.first(); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Maximum() (K, bool) {
	if n := u.root.last(); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Predecessor(key K) (K, bool) {
	var p *Node[K]
	for cur := u.root; cur != nil; {
		if key <= cur.key {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) Successor(key K) (K, bool) {
	var p *Node[K]
	for cur := u.root; cur != nil; {
		if key < cur.key {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}

// KLargest [Tree.KLargest]
// Returns (x,true) if 1<=k<=Size(), otherwise (0,false).
// Walks down using the cached sizes.
// Time: O(D); Space: O(1)
func (u *WBTree[K]) KLargest(k uint) (K, bool) {
	if k == 0 || k > u.Size() {
		return *new(K), false
	}
	cur := u.root
	for {
		if ls := cur.l.Size(); k <= ls {
			cur = cur.l
		} else if k == ls+1 {
			return cur.key, true
		} else {
			k -= ls + 1
			cur = cur.r
		}
	}
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *WBTree[K]) RankOf(key K) uint {
	var ra uint
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if key > cur.key {
			ra += cur.l.Size() + 1
			cur = cur.r
		} else {
			return ra + cur.l.Size() + 1
		}
	}
	return 0
}

// InOrder [Tree.InOrder]
// Follows the parent pointers, so the tree isn't touched.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *WBTree[K]) InOrder() func() (K, bool) {
	cur := u.root.first()
	return func() (k K, has bool) {
		if cur == nil {
			return
		}
		k, has = cur.key, true
		cur = cur.Next()
		return
	}
}

// Height is the number of nodes on the longest root to leaf path, 0 for an
// empty tree. Recursive.
// Time: O(n); Space: O(D)
func (u *WBTree[K]) Height() uint {
	return height(u.root)
}

func height[K constraints.Ordered](n *Node[K]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// Levels returns the keys of the tree row by row, from the root down, each
// row in ascending order.
// Time: O(n); Space: O(n)
func (u *WBTree[K]) Levels() [][]K {
	var rows [][]K
	if u.root == nil {
		return rows
	}
	q := Queues.MakeArrayQueue[*Node[K]](1)
	q.Push(u.root)
	for !q.Empty() {
		row := make([]K, 0, q.Size())
		for i := q.Size(); i > 0; i-- {
			n, _ := q.Pop()
			row = append(row, n.key)
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
