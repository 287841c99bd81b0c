package dataset

import (
	"github.com/tabkit/tabdiff/pkg/errors"
)

// Column describes one typed column of a schema.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of uniquely named, typed columns shared by
// every row of a dataset.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema builds a schema from the given columns. Column names must be
// non-empty and unique.
func NewSchema(columns ...Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, errors.NewConfigurationError("schema", "at least one column is required")
	}
	s := &Schema{
		columns: make([]Column, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(s.columns, columns)
	for i, col := range columns {
		if col.Name == "" {
			return nil, errors.NewConfigurationError("schema", "column names must be non-empty")
		}
		if _, exists := s.index[col.Name]; exists {
			return nil, errors.NewConfigurationError("schema", "duplicate column "+col.Name)
		}
		s.index[col.Name] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. Intended for
// statically known schemas in tests and examples.
func MustSchema(columns ...Column) *Schema {
	s, err := NewSchema(columns...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Columns returns a copy of the column list in declaration order.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Names returns the column names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the column with the given name.
func (s *Schema) Column(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

// Index returns the positional index of the named column, or -1.
func (s *Schema) Index(name string) int {
	i, ok := s.index[name]
	if !ok {
		return -1
	}
	return i
}

// Has reports whether the schema defines the named column.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Equal reports whether two schemas declare the same columns in the
// same order with the same kinds.
func (s *Schema) Equal(other *Schema) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, col := range s.columns {
		if other.columns[i] != col {
			return false
		}
	}
	return true
}
