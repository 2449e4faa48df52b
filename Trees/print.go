package Trees

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print writes an ASCII picture of the tree to w, the root on the left and
// larger keys above smaller ones. Every node shows its key, its parent's key
// and its size. Returns the height of the tree. Recursive.
func (u *WBTree[K]) Print(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	h := printTree(bw, u.root, "", root)
	return h, bw.Flush()
}

func printTree[K constraints.Ordered](w *bufio.Writer, n *Node[K], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.r != nil {
		t := "       "
		if br == left {
			t = "|      "
		}
		rd = printTree(w, n.r, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if n.p != nil {
		fmt.Fprintf(w, "%v ^%v (%d)\n", n.key, n.p.key, n.sz)
	} else {
		fmt.Fprintf(w, "%v ^- (%d)\n", n.key, n.sz)
	}
	if n.l != nil {
		t := "       "
		if br == right {
			t = "|      "
		}
		ld = printTree(w, n.l, prefix+t, left)
	}
	return 1 + max(rd, ld)
}

// WriteDOT writes the tree to w as a GraphViz digraph. Nodes are labelled
// with their key and size, a missing child is drawn as an invisible node so
// left and right stay apart. Recursive.
func (u *WBTree[K]) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph BinTree {\nnode [color=lightblue2, style=filled]\n")
	if u.root != nil {
		id := 0
		dotNode(bw, u.root, &id)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func dotNode[K constraints.Ordered](w *bufio.Writer, n *Node[K], id *int) {
	me := *id
	*id++
	fmt.Fprintf(w, "\"n%d\" [label=\"%v\\n(size=%d)\"]\n", me, n.key, n.sz)
	for i, c := range [2]*Node[K]{n.l, n.r} {
		if c == nil {
			ph := fmt.Sprintf("%c%d", "LR"[i], me)
			fmt.Fprintf(w, "\"%s\" [label=\"\", color=white]\n\"n%d\" -> \"%s\"\n", ph, me, ph)
		} else {
			fmt.Fprintf(w, "\"n%d\" -> \"n%d\"\n", me, *id)
			dotNode(w, c, id)
		}
	}
}

// DrawTree writes the GraphViz picture of the tree into the file filename,
// replacing it if it exists.
func (u *WBTree[K]) DrawTree(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = u.WriteDOT(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
