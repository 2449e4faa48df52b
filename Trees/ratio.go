package Trees

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-wbtree/fault"
)

// Ratio is an exact fraction Num/Den used as a balance bound. A node is
// r-balanced when no child's subtree is bigger than r times its own subtree.
// Meaningful bounds lie in [1/2, 1].
type Ratio struct {
	Num, Den uint
}

var (
	// Half is the strict bound restored by Rebuild.
	Half = Ratio{1, 2}
	// ThreeFifths is the soft bound watched by Insert.
	ThreeFifths = Ratio{3, 5}
)

// ParseRatio reads a ratio written as "num/den", e.g. "3/5".
// The result is validated with Ratio.Valid.
func ParseRatio(s string) (Ratio, error) {
	n, d, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Ratio{}, fault.ErrRatioFormat
	}
	num, err := strconv.ParseUint(strings.TrimSpace(n), 10, 0)
	if err != nil {
		return Ratio{}, fault.ErrRatioFormat
	}
	den, err := strconv.ParseUint(strings.TrimSpace(d), 10, 0)
	if err != nil {
		return Ratio{}, fault.ErrRatioFormat
	}
	r := Ratio{uint(num), uint(den)}
	return r, r.Valid()
}

// Valid returns nil if 1/2 <= r <= 1.
func (r Ratio) Valid() error {
	if r.Den == 0 {
		return fault.ErrZeroDenominator
	}
	if r.Num > r.Den || mulLess(r.Num, 2, 1, r.Den) {
		return fault.ErrRatioOutOfRange
	}
	return nil
}

// String formats r as "num/den".
func (r Ratio) String() string {
	return strconv.FormatUint(uint64(r.Num), 10) + "/" + strconv.FormatUint(uint64(r.Den), 10)
}

// Less reports r < o.
func (r Ratio) Less(o Ratio) bool {
	return mulLess(r.Num, o.Den, o.Num, r.Den)
}

// admits reports part <= r*whole, i.e. part*Den <= Num*whole, computed on
// double-width products so big sizes can't overflow.
func (r Ratio) admits(part, whole uint) bool {
	return !mulLess(r.Num, whole, part, r.Den)
}

// mulLess reports a*b < c*d.
func mulLess(a, b, c, d uint) bool {
	h1, l1 := bits.Mul(a, b)
	h2, l2 := bits.Mul(c, d)
	return h1 < h2 || h1 == h2 && l1 < l2
}
