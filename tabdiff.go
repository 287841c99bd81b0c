// Package tabdiff compares two tabular datasets keyed by one or more join
// columns, classifying every row as deleted, inserted, updated or
// unchanged. The typed dataset model lives in pkg/dataset, the
// classification engine in pkg/reconcile; this package is a thin
// convenience facade over the two.
//
// Example:
//
//	result, err := tabdiff.Compare(oldDataset, newDataset, []string{"ID"},
//		reconcile.WithSubset("Name", "Age"))
//	if err != nil {
//		return err
//	}
//	deleted := result.RowsDeleted()
package tabdiff

import (
	"github.com/tabkit/tabdiff/pkg/dataset"
	"github.com/tabkit/tabdiff/pkg/reconcile"
)

// Compare classifies the rows of the two datasets keyed by the given
// columns. It is shorthand for constructing a reconcile.Comparator and
// running a single classification pass.
func Compare(existing, updated *dataset.Dataset, on []string, opts ...reconcile.Option) (*reconcile.Result, error) {
	c, err := reconcile.New(existing, updated, on, opts...)
	if err != nil {
		return nil, err
	}
	return c.Classify()
}
