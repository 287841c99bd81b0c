package reconcile

import (
	"fmt"
	"strings"

	"github.com/tabkit/tabdiff/pkg/dataset"
)

// Result holds the four disjoint row classifications produced by one
// classification pass. Each result dataset preserves the row order of
// the input it was sourced from.
type Result struct {
	deleted   *dataset.Dataset
	inserted  *dataset.Dataset
	before    *dataset.Dataset
	after     *dataset.Dataset
	unchanged *dataset.Dataset
	summary   Summary
}

// RowsDeleted returns rows whose key exists only in the old dataset,
// in old dataset order.
func (r *Result) RowsDeleted() *dataset.Dataset { return r.deleted }

// RowsInserted returns rows whose key exists only in the new dataset,
// in new dataset order.
func (r *Result) RowsInserted() *dataset.Dataset { return r.inserted }

// RowsBeforeUpdate returns the old versions of changed rows, in old
// dataset order.
func (r *Result) RowsBeforeUpdate() *dataset.Dataset { return r.before }

// RowsAfterUpdate returns the new versions of changed rows, in new
// dataset order.
func (r *Result) RowsAfterUpdate() *dataset.Dataset { return r.after }

// RowsInCommon returns rows present in both datasets with no changes
// in the compared columns, in old dataset order.
func (r *Result) RowsInCommon() *dataset.Dataset { return r.unchanged }

// Summary returns the classification counts.
func (r *Result) Summary() Summary { return r.summary }

// Summary provides count statistics for a classification.
type Summary struct {
	Old       int // Rows in the old dataset
	New       int // Rows in the new dataset
	Deleted   int
	Inserted  int
	Updated   int
	Unchanged int
}

// HasChanges returns true if any row was deleted, inserted or updated.
func (s Summary) HasChanges() bool {
	return s.Deleted > 0 || s.Inserted > 0 || s.Updated > 0
}

// IsEmpty returns true if the classification found no changes.
func (s Summary) IsEmpty() bool {
	return !s.HasChanges()
}

// String returns a human-readable summary of the classification.
func (s Summary) String() string {
	if s.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if s.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", s.Deleted))
	}
	if s.Inserted > 0 {
		parts = append(parts, fmt.Sprintf("%d inserted", s.Inserted))
	}
	if s.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", s.Updated))
	}
	if s.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}

	return fmt.Sprintf("Rows: %s", strings.Join(parts, ", "))
}
