package reconcile_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/tabkit/tabdiff/pkg/dataset"
	"github.com/tabkit/tabdiff/pkg/reconcile"
)

var defaultGopterParameters = gopter.DefaultTestParameters()

type genRow struct {
	ID   int64
	Name string
	Age  int64
}

// genRows generates small row slices over a narrow key space so that
// deletions, insertions, updates and unchanged rows all occur often.
func genRows() gopter.Gen {
	return gen.SliceOf(gen.Struct(reflect.TypeOf(genRow{}), map[string]gopter.Gen{
		"ID":   gen.Int64Range(0, 20),
		"Name": gen.OneConstOf("A", "B", "C", "D"),
		"Age":  gen.Int64Range(20, 25),
	}))
}

// buildDataset keeps the first occurrence of each key so generated
// datasets always satisfy the key uniqueness invariant.
func buildDataset(t *testing.T, rows []genRow) *dataset.Dataset {
	t.Helper()
	d := dataset.New(peopleSchema(t))
	seen := make(map[int64]bool)
	for _, r := range rows {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		require.NoError(t, d.AppendValues(dataset.Int(r.ID), dataset.String(r.Name), dataset.Int(r.Age)))
	}
	return d
}

func keySet(t *testing.T, d *dataset.Dataset) map[int64]bool {
	t.Helper()
	set := make(map[int64]bool)
	for _, id := range ids(t, d) {
		set[id] = true
	}
	return set
}

func classify(t *testing.T, existing, updated *dataset.Dataset) *reconcile.Result {
	t.Helper()
	c, err := reconcile.New(existing, updated, []string{"ID"})
	require.NoError(t, err)
	result, err := c.Classify()
	require.NoError(t, err)
	return result
}

func TestKeyPartitionProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("deleted, matched and inserted keys partition the key union",
		prop.ForAll(func(oldRows, newRows []genRow) bool {
			existing := buildDataset(t, oldRows)
			updated := buildDataset(t, newRows)
			result := classify(t, existing, updated)

			oldKeys := keySet(t, existing)
			newKeys := keySet(t, updated)
			deleted := keySet(t, result.RowsDeleted())
			inserted := keySet(t, result.RowsInserted())
			before := keySet(t, result.RowsBeforeUpdate())
			after := keySet(t, result.RowsAfterUpdate())
			common := keySet(t, result.RowsInCommon())

			// Before/after pair the same keys
			if len(before) != len(after) {
				return false
			}
			for k := range before {
				if !after[k] {
					return false
				}
			}

			// Every classified key lands in exactly one bucket
			for k := range oldKeys {
				n := 0
				if deleted[k] {
					n++
				}
				if before[k] {
					n++
				}
				if common[k] {
					n++
				}
				if n != 1 {
					return false
				}
				if deleted[k] == newKeys[k] {
					return false
				}
			}
			for k := range newKeys {
				if inserted[k] == oldKeys[k] {
					return false
				}
			}
			return len(deleted)+len(before)+len(common) == len(oldKeys) &&
				len(inserted)+len(after)+len(common) == len(newKeys)
		}, genRows(), genRows()))

	properties.TestingRun(t)
}

func TestSymmetryProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("swapping datasets swaps deleted/inserted and before/after",
		prop.ForAll(func(oldRows, newRows []genRow) bool {
			existing := buildDataset(t, oldRows)
			updated := buildDataset(t, newRows)

			forward := classify(t, existing, updated)
			backward := classify(t, updated, existing)

			// Unchanged rows are invariant as a set; their ordering follows
			// the dataset they were sourced from, which the swap flips.
			forwardCommon := keySet(t, forward.RowsInCommon())
			backwardCommon := keySet(t, backward.RowsInCommon())
			if len(forwardCommon) != len(backwardCommon) {
				return false
			}
			for k := range forwardCommon {
				if !backwardCommon[k] {
					return false
				}
			}

			return forward.RowsDeleted().Equal(backward.RowsInserted()) &&
				forward.RowsInserted().Equal(backward.RowsDeleted()) &&
				forward.RowsBeforeUpdate().Equal(backward.RowsAfterUpdate()) &&
				forward.RowsAfterUpdate().Equal(backward.RowsBeforeUpdate())
		}, genRows(), genRows()))

	properties.TestingRun(t)
}

func TestIdempotenceProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("classification of identical inputs is reproducible",
		prop.ForAll(func(oldRows, newRows []genRow) bool {
			existing := buildDataset(t, oldRows)
			updated := buildDataset(t, newRows)

			first := classify(t, existing, updated)
			second := classify(t, existing, updated)

			return first.RowsDeleted().Equal(second.RowsDeleted()) &&
				first.RowsInserted().Equal(second.RowsInserted()) &&
				first.RowsBeforeUpdate().Equal(second.RowsBeforeUpdate()) &&
				first.RowsAfterUpdate().Equal(second.RowsAfterUpdate()) &&
				first.RowsInCommon().Equal(second.RowsInCommon()) &&
				cmp.Diff(first.Summary(), second.Summary()) == ""
		}, genRows(), genRows()))

	properties.TestingRun(t)
}
