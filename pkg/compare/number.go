package compare

import (
	"math"

	"github.com/tabkit/tabdiff/pkg/dataset"
)

// Number compares numeric values within a tolerance. In absolute mode two
// values are equal when |a-b| < Tolerance; in relative mode when
// |a-b| / max(|a|,|b|) < Tolerance, with two zeros always equal.
type Number struct {
	Tolerance float64
	Relative  bool
}

// Equal implements Comparator.
func (n *Number) Equal(a, b dataset.Value) bool {
	if eq, done := nullsEqual(a, b); done {
		return eq
	}
	x, y := a.FloatValue(), b.FloatValue()
	if n.Relative {
		return relativelyEqual(x, y, n.Tolerance)
	}
	return math.Abs(x-y) < n.Tolerance
}

// relativelyEqual scales the difference by the larger magnitude.
func relativelyEqual(x, y, tolerance float64) bool {
	if x == 0 && y == 0 {
		return true
	}
	return math.Abs(x-y)/math.Max(math.Abs(x), math.Abs(y)) < tolerance
}
