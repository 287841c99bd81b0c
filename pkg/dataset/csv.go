package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tabkit/tabdiff/pkg/errors"
)

// FromCSV reads a dataset from CSV. The first record must be a header
// naming every schema column; column order in the file may differ from
// the schema. Empty cells become null values.
func FromCSV(r io.Reader, schema *Schema) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewConfigurationError("csv", "missing header record")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	// Map each schema column to its position in the file.
	positions := make([]int, schema.Len())
	for i := range positions {
		positions[i] = -1
	}
	for pos, name := range header {
		if idx := schema.Index(name); idx >= 0 {
			positions[idx] = pos
		}
	}
	for i, pos := range positions {
		if pos < 0 {
			return nil, errors.NewUnknownColumnError(schema.columns[i].Name)
		}
	}

	d := New(schema)
	for line := 0; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		row := make(Row, schema.Len())
		for i, col := range schema.columns {
			v, perr := parseValue(col.Kind, record[positions[i]])
			if perr != nil {
				return nil, errors.NewParseError(col.Name, line, record[positions[i]], perr)
			}
			row[i] = v
		}
		if err := d.Append(row); err != nil {
			return nil, err
		}
	}
	return d, nil
}
