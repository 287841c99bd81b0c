package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/agentstation/utc"
)

// Kind identifies the scalar type of a column.
type Kind int

// Supported column kinds.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as it appears in YAML schema documents.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string", "str":
		return KindString, nil
	case "int", "integer":
		return KindInt, nil
	case "float", "number":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBool, nil
	case "time", "timestamp":
		return KindTime, nil
	default:
		return KindString, fmt.Errorf("unknown kind %q", s)
	}
}

// Value is an immutable scalar cell. Any kind may be null; a null value
// still carries the kind of its column.
type Value struct {
	kind Kind
	null bool
	str  string
	i64  int64
	f64  float64
	b    bool
	t    utc.Time
}

// String constructs a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i64: i} }

// Float constructs a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f64: f} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time constructs a timestamp value.
func Time(t utc.Time) Value { return Value{kind: KindTime, t: t} }

// Null constructs a null value of the given kind.
func Null(kind Kind) Value { return Value{kind: kind, null: true} }

// Kind returns the scalar kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.null }

// StringValue returns the string payload. Zero for other kinds or null.
func (v Value) StringValue() string { return v.str }

// IntValue returns the integer payload. Zero for other kinds or null.
func (v Value) IntValue() int64 { return v.i64 }

// FloatValue returns the float payload. For integer values it returns the
// integer widened to float64 so numeric columns can share one code path.
func (v Value) FloatValue() float64 {
	if v.kind == KindInt {
		return float64(v.i64)
	}
	return v.f64
}

// BoolValue returns the boolean payload. False for other kinds or null.
func (v Value) BoolValue() bool { return v.b }

// TimeValue returns the timestamp payload. Zero for other kinds or null.
func (v Value) TimeValue() utc.Time { return v.t }

// String renders the value for display and key encoding.
func (v Value) String() string {
	if v.null {
		return "<null>"
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Equal reports exact equality: same kind, and either both null or the
// same payload. Tolerance and case options live in the compare package.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.null || other.null {
		return v.null && other.null
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i64 == other.i64
	case KindFloat:
		return v.f64 == other.f64
	case KindBool:
		return v.b == other.b
	case KindTime:
		return v.t.Equal(other.t)
	default:
		return false
	}
}

// parseValue coerces a raw string cell into a value of the given kind.
// Empty cells become null.
func parseValue(kind Kind, raw string) (Value, error) {
	if raw == "" {
		return Null(kind), nil
	}
	switch kind {
	case KindString:
		return String(raw), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case KindTime:
		t, err := utc.Parse(time.RFC3339, raw)
		if err != nil {
			return Value{}, err
		}
		return Time(t), nil
	default:
		return Value{}, fmt.Errorf("unknown kind %v", kind)
	}
}
