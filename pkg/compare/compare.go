// Package compare provides per-kind value equality used by the reconciler
// to decide whether a matched row counts as updated. Numeric columns
// support tolerance-based comparison and string columns optional Unicode
// case folding; all other kinds compare exactly.
package compare

import (
	"github.com/tabkit/tabdiff/pkg/dataset"
)

// Comparator decides equality for a pair of values from one column.
type Comparator interface {
	// Equal reports whether a and b are considered equal.
	// Null values are equal to each other and unequal to any present value.
	Equal(a, b dataset.Value) bool
}

// Options controls comparator construction per column kind.
type Options struct {
	// Tolerance is the numeric comparison tolerance.
	Tolerance float64

	// Relative switches numeric comparison from absolute to relative mode.
	Relative bool

	// IgnoreCase folds string case before comparison.
	IgnoreCase bool
}

// DefaultTolerance is the numeric tolerance applied when none is set.
const DefaultTolerance = 0.001

// ForKind returns the comparator for a column of the given kind.
func ForKind(kind dataset.Kind, opts Options) Comparator {
	switch kind {
	case dataset.KindInt, dataset.KindFloat:
		tol := opts.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		return &Number{Tolerance: tol, Relative: opts.Relative}
	case dataset.KindString:
		return &String{IgnoreCase: opts.IgnoreCase}
	default:
		return Strict{}
	}
}

// nullsEqual handles the shared null contract. The second return is true
// when the null check already decided the outcome.
func nullsEqual(a, b dataset.Value) (equal, decided bool) {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull(), true
	}
	return false, false
}

// Strict compares values exactly. Used for bool and time columns.
type Strict struct{}

// Equal implements Comparator.
func (Strict) Equal(a, b dataset.Value) bool {
	if eq, done := nullsEqual(a, b); done {
		return eq
	}
	return a.Equal(b)
}
