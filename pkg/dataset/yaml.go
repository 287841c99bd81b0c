package dataset

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/tabkit/tabdiff/pkg/errors"
)

// yamlColumn is the on-disk form of a schema column.
type yamlColumn struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// yamlDocument is the on-disk form of a dataset.
type yamlDocument struct {
	Columns []yamlColumn     `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
}

// FromYAML builds a dataset from a YAML document of the form:
//
//	columns:
//	  - name: ID
//	    kind: int
//	  - name: Name
//	    kind: string
//	rows:
//	  - ID: 1
//	    Name: Alice
//
// Absent or null cells become null values of the column's kind.
func FromYAML(data []byte) (*Dataset, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}

	columns := make([]Column, 0, len(doc.Columns))
	for _, yc := range doc.Columns {
		kind, err := ParseKind(yc.Kind)
		if err != nil {
			return nil, errors.NewConfigurationError("columns", err.Error())
		}
		columns = append(columns, Column{Name: yc.Name, Kind: kind})
	}

	schema, err := NewSchema(columns...)
	if err != nil {
		return nil, err
	}

	d := New(schema)
	for i, raw := range doc.Rows {
		row := make(Row, schema.Len())
		for j, col := range schema.columns {
			v, err := coerce(col.Kind, raw[col.Name])
			if err != nil {
				return nil, errors.NewParseError(col.Name, i, fmt.Sprintf("%v", raw[col.Name]), err)
			}
			row[j] = v
		}
		if err := d.Append(row); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MarshalYAML renders the dataset in the FromYAML document format.
func (d *Dataset) MarshalYAML() ([]byte, error) {
	doc := struct {
		Columns []yamlColumn    `yaml:"columns"`
		Rows    []yaml.MapSlice `yaml:"rows"`
	}{}

	for _, col := range d.schema.columns {
		doc.Columns = append(doc.Columns, yamlColumn{Name: col.Name, Kind: col.Kind.String()})
	}

	for _, row := range d.rows {
		item := make(yaml.MapSlice, 0, len(row))
		for j, v := range row {
			item = append(item, yaml.MapItem{Key: d.schema.columns[j].Name, Value: toAny(v)})
		}
		doc.Rows = append(doc.Rows, item)
	}

	return yaml.Marshal(doc)
}

// coerce converts a decoded YAML scalar into a value of the given kind.
func coerce(kind Kind, raw any) (Value, error) {
	if raw == nil {
		return Null(kind), nil
	}
	switch kind {
	case KindString:
		if s, ok := raw.(string); ok {
			return String(s), nil
		}
	case KindInt:
		switch n := raw.(type) {
		case int:
			return Int(int64(n)), nil
		case int64:
			return Int(n), nil
		case uint64:
			return Int(int64(n)), nil
		}
	case KindFloat:
		switch n := raw.(type) {
		case float64:
			return Float(n), nil
		case int:
			return Float(float64(n)), nil
		case int64:
			return Float(float64(n)), nil
		case uint64:
			return Float(float64(n)), nil
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return Bool(b), nil
		}
	case KindTime:
		switch t := raw.(type) {
		case time.Time:
			return Time(utc.New(t)), nil
		case string:
			parsed, err := utc.Parse(time.RFC3339, t)
			if err != nil {
				return Value{}, err
			}
			return Time(parsed), nil
		}
	}
	return Value{}, fmt.Errorf("cannot use %T as %s", raw, kind)
}

// toAny converts a value back to a YAML-friendly scalar.
func toAny(v Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case KindString:
		return v.StringValue()
	case KindInt:
		return v.IntValue()
	case KindFloat:
		return v.FloatValue()
	case KindBool:
		return v.BoolValue()
	case KindTime:
		return v.TimeValue().Format(time.RFC3339)
	default:
		return nil
	}
}
