// Package reconcile classifies the rows of two tabular datasets keyed by
// one or more join columns. Every row of both inputs lands in exactly one
// of four buckets: deleted, inserted, updated (paired before/after) or
// unchanged. Classification is a pure function of its inputs; calling it
// repeatedly yields identical results.
package reconcile

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tabkit/tabdiff/pkg/compare"
	"github.com/tabkit/tabdiff/pkg/dataset"
	"github.com/tabkit/tabdiff/pkg/errors"
	"github.com/tabkit/tabdiff/pkg/logging"
)

// Comparator compares an existing (old) dataset against an updated (new)
// one. Configuration is validated eagerly at construction; Classify never
// produces partial results.
type Comparator struct {
	existing *dataset.Dataset
	updated  *dataset.Dataset
	on       []string
	subset   []string

	compareOpts compare.Options
	comparators []compare.Comparator
	keepLast    bool
	logger      *zerolog.Logger

	// Per-schema column positions resolved during validation.
	existingKey    []int
	updatedKey     []int
	existingSubset []int
	updatedSubset  []int
}

// New creates a comparator for the two datasets keyed by the given
// columns. Each key column must exist in both schemas with the same
// kind, and the combined key values must uniquely identify a row within
// one dataset (see WithKeepLast for the alternative policy).
func New(existing, updated *dataset.Dataset, on []string, opts ...Option) (*Comparator, error) {
	c := &Comparator{
		existing: existing,
		updated:  updated,
		on:       on,
		logger:   logging.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate checks the key and subset specifications against both schemas
// and resolves column positions.
func (c *Comparator) validate() error {
	oldSchema := c.existing.Schema()
	newSchema := c.updated.Schema()

	if len(c.on) == 0 {
		return errors.NewConfigurationError("on", "at least one key column is required")
	}

	keySet := make(map[string]bool, len(c.on))
	for _, name := range c.on {
		if keySet[name] {
			return errors.NewConfigurationError("on", "key column "+name+" listed twice")
		}
		keySet[name] = true

		oldCol, okOld := oldSchema.Column(name)
		newCol, okNew := newSchema.Column(name)
		if !okOld || !okNew {
			return errors.NewConfigurationError("on", "key column "+name+" absent from schema")
		}
		if oldCol.Kind != newCol.Kind {
			return errors.NewSchemaMismatchError("", []string{name},
				oldCol.Kind.String()+" vs "+newCol.Kind.String())
		}
		c.existingKey = append(c.existingKey, oldSchema.Index(name))
		c.updatedKey = append(c.updatedKey, newSchema.Index(name))
	}

	// Default subset: every shared non-key column, in old schema order.
	if c.subset == nil {
		for _, col := range oldSchema.Columns() {
			if !keySet[col.Name] && newSchema.Has(col.Name) {
				c.subset = append(c.subset, col.Name)
			}
		}
		if len(c.subset) == 0 {
			return errors.NewConfigurationError("subset",
				"no shared columns besides the key set")
		}
	} else if len(c.subset) == 0 {
		return errors.NewConfigurationError("subset", "subset must not be empty")
	}

	seen := make(map[string]bool, len(c.subset))
	for _, name := range c.subset {
		if keySet[name] {
			return errors.NewConfigurationError("subset",
				"column "+name+" is part of the key set")
		}
		if seen[name] {
			return errors.NewConfigurationError("subset", "column "+name+" listed twice")
		}
		seen[name] = true

		oldCol, okOld := oldSchema.Column(name)
		newCol, okNew := newSchema.Column(name)
		if !okOld {
			return errors.NewSchemaMismatchError("old", []string{name}, "column not defined")
		}
		if !okNew {
			return errors.NewSchemaMismatchError("new", []string{name}, "column not defined")
		}
		if oldCol.Kind != newCol.Kind {
			return errors.NewSchemaMismatchError("", []string{name},
				oldCol.Kind.String()+" vs "+newCol.Kind.String())
		}

		c.existingSubset = append(c.existingSubset, oldSchema.Index(name))
		c.updatedSubset = append(c.updatedSubset, newSchema.Index(name))
		c.comparators = append(c.comparators, compare.ForKind(oldCol.Kind, c.compareOpts))
	}

	return nil
}

// Classify partitions all rows of both datasets into the four
// classifications. It mutates nothing and may be called repeatedly.
func (c *Comparator) Classify() (*Result, error) {
	oldIndex, err := c.index(c.existing, c.existingKey, "old")
	if err != nil {
		return nil, err
	}
	newIndex, err := c.index(c.updated, c.updatedKey, "new")
	if err != nil {
		return nil, err
	}

	result := &Result{
		deleted:   dataset.New(c.existing.Schema()),
		inserted:  dataset.New(c.updated.Schema()),
		before:    dataset.New(c.existing.Schema()),
		after:     dataset.New(c.updated.Schema()),
		unchanged: dataset.New(c.existing.Schema()),
	}

	// First pass over the old dataset: deleted, updated-before, unchanged.
	changed := make(map[string]bool)
	for i, row := range c.existing.Rows() {
		key := encodeKey(row, c.existingKey)
		if oldIndex[key] != i {
			continue // superseded occurrence under keepLast
		}
		j, ok := newIndex[key]
		switch {
		case !ok:
			_ = result.deleted.Append(row)
		case c.rowsEqual(row, c.updated.Row(j)):
			_ = result.unchanged.Append(row)
		default:
			changed[key] = true
			_ = result.before.Append(row)
		}
	}

	// Second pass over the new dataset: inserted, updated-after.
	for i, row := range c.updated.Rows() {
		key := encodeKey(row, c.updatedKey)
		if newIndex[key] != i {
			continue
		}
		if _, ok := oldIndex[key]; !ok {
			_ = result.inserted.Append(row)
		} else if changed[key] {
			_ = result.after.Append(row)
		}
	}

	result.summary = Summary{
		Old:       c.existing.Len(),
		New:       c.updated.Len(),
		Deleted:   result.deleted.Len(),
		Inserted:  result.inserted.Len(),
		Updated:   result.after.Len(),
		Unchanged: result.unchanged.Len(),
	}

	c.logger.Debug().
		Int("old", result.summary.Old).
		Int("new", result.summary.New).
		Int("deleted", result.summary.Deleted).
		Int("inserted", result.summary.Inserted).
		Int("updated", result.summary.Updated).
		Int("unchanged", result.summary.Unchanged).
		Msg("Classified rows")

	return result, nil
}

// index builds the key tuple to row position lookup for one dataset.
// Duplicate keys fail unless the keep-last policy is enabled, in which
// case the last occurrence wins.
func (c *Comparator) index(d *dataset.Dataset, keyCols []int, name string) (map[string]int, error) {
	idx := make(map[string]int, d.Len())
	for i, row := range d.Rows() {
		key := encodeKey(row, keyCols)
		if _, exists := idx[key]; exists && !c.keepLast {
			return nil, errors.NewDuplicateKeyError(name, keyStrings(row, keyCols))
		}
		idx[key] = i
	}
	return idx, nil
}

// rowsEqual compares the subset columns of a matched row pair.
func (c *Comparator) rowsEqual(oldRow, newRow dataset.Row) bool {
	for i, cmp := range c.comparators {
		if !cmp.Equal(oldRow[c.existingSubset[i]], newRow[c.updatedSubset[i]]) {
			return false
		}
	}
	return true
}

// encodeKey builds a collision-free string form of a key tuple. String
// values are quoted so a separator inside a value cannot alias another
// tuple; nulls get a distinct marker.
func encodeKey(row dataset.Row, keyCols []int) string {
	var b strings.Builder
	for n, i := range keyCols {
		if n > 0 {
			b.WriteByte(0x1f)
		}
		v := row[i]
		switch {
		case v.IsNull():
			b.WriteString("\x00null")
		case v.Kind() == dataset.KindString:
			b.WriteString(strconv.Quote(v.StringValue()))
		default:
			b.WriteString(v.String())
		}
	}
	return b.String()
}

// keyStrings renders a key tuple for error reporting.
func keyStrings(row dataset.Row, keyCols []int) []string {
	out := make([]string, len(keyCols))
	for n, i := range keyCols {
		out[n] = row[i].String()
	}
	return out
}
