// Package dataset defines the typed tabular model the reconciler operates
// on: an ordered sequence of rows sharing one schema of typed columns.
// Datasets can be built programmatically or loaded from YAML and CSV.
package dataset

import (
	"fmt"

	"github.com/tabkit/tabdiff/pkg/errors"
)

// Row holds one value per schema column, positionally aligned.
type Row []Value

// Dataset is an ordered collection of uniformly schemed rows.
// Once handed to a comparator it is treated as immutable.
type Dataset struct {
	schema *Schema
	rows   []Row
}

// New creates an empty dataset over the given schema.
func New(schema *Schema) *Dataset {
	return &Dataset{schema: schema}
}

// Schema returns the dataset's schema.
func (d *Dataset) Schema() *Schema { return d.schema }

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns the row at index i.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Rows returns the rows in input order. The returned slice is shared;
// callers must not mutate it.
func (d *Dataset) Rows() []Row { return d.rows }

// Append validates a row against the schema and adds it to the dataset.
func (d *Dataset) Append(row Row) error {
	if len(row) != d.schema.Len() {
		return errors.NewConfigurationError("row",
			fmt.Sprintf("expected %d values, got %d", d.schema.Len(), len(row)))
	}
	for i, v := range row {
		col := d.schema.columns[i]
		if v.Kind() != col.Kind {
			return errors.NewKindMismatchError(col.Name, col.Kind.String(), v.Kind().String())
		}
	}
	d.rows = append(d.rows, row)
	return nil
}

// AppendValues is a convenience wrapper around Append for literal rows.
func (d *Dataset) AppendValues(values ...Value) error {
	return d.Append(Row(values))
}

// Value returns the named column's value in the row at index i.
func (d *Dataset) Value(i int, column string) (Value, error) {
	idx := d.schema.Index(column)
	if idx < 0 {
		return Value{}, errors.NewUnknownColumnError(column)
	}
	return d.rows[i][idx], nil
}

// Equal reports value-wise equality of two datasets: same schema, same
// rows in the same order.
func (d *Dataset) Equal(other *Dataset) bool {
	if !d.schema.Equal(other.schema) || d.Len() != other.Len() {
		return false
	}
	for i, row := range d.rows {
		for j, v := range row {
			if !v.Equal(other.rows[i][j]) {
				return false
			}
		}
	}
	return true
}
