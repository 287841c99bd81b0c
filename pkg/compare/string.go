package compare

import (
	"golang.org/x/text/cases"

	"github.com/tabkit/tabdiff/pkg/dataset"
)

// String compares string values, optionally ignoring case via Unicode
// case folding.
type String struct {
	IgnoreCase bool
}

// Equal implements Comparator.
func (s *String) Equal(a, b dataset.Value) bool {
	if eq, done := nullsEqual(a, b); done {
		return eq
	}
	if s.IgnoreCase {
		fold := cases.Fold()
		return fold.String(a.StringValue()) == fold.String(b.StringValue())
	}
	return a.StringValue() == b.StringValue()
}
