// Package errors provides custom error types for the tabdiff library.
// These errors enable programmatic error checking with errors.Is and
// carry enough context to report exactly which column or key caused
// a comparison to be rejected.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the tabdiff library
var (
	// ErrInvalidConfiguration indicates an invalid key or subset specification
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDuplicateKey indicates a non-unique key tuple within one dataset
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrSchemaMismatch indicates the two datasets disagree on a requested column
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnknownColumn indicates a column name not present in a schema
	ErrUnknownColumn = errors.New("unknown column")

	// ErrKindMismatch indicates a value of the wrong kind for a column
	ErrKindMismatch = errors.New("kind mismatch")
)

// ConfigurationError represents an invalid key or subset specification.
type ConfigurationError struct {
	Field   string // Which part of the configuration is invalid ("on", "subset")
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// Is implements errors.Is support
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

// DuplicateKeyError reports a key tuple that occurs more than once
// within a single dataset.
type DuplicateKeyError struct {
	Dataset string   // Which dataset ("old" or "new")
	Key     []string // String form of the offending key tuple
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key (%s) in %s dataset", strings.Join(e.Key, ", "), e.Dataset)
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(dataset string, key []string) *DuplicateKeyError {
	return &DuplicateKeyError{Dataset: dataset, Key: key}
}

// SchemaMismatchError reports columns that are absent from, or typed
// differently in, one of the two schemas under comparison.
type SchemaMismatchError struct {
	Dataset string   // Which dataset's schema is missing the columns, if one-sided
	Columns []string // The offending column names
	Message string
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	cols := strings.Join(e.Columns, ", ")
	if e.Dataset != "" {
		return fmt.Sprintf("schema mismatch in %s dataset for columns [%s]: %s", e.Dataset, cols, e.Message)
	}
	return fmt.Sprintf("schema mismatch for columns [%s]: %s", cols, e.Message)
}

// Is implements errors.Is support
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NewSchemaMismatchError creates a new SchemaMismatchError
func NewSchemaMismatchError(dataset string, columns []string, message string) *SchemaMismatchError {
	return &SchemaMismatchError{Dataset: dataset, Columns: columns, Message: message}
}

// UnknownColumnError reports a reference to a column a schema does not define.
type UnknownColumnError struct {
	Column string
}

// Error implements the error interface
func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// Is implements errors.Is support
func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

// NewUnknownColumnError creates a new UnknownColumnError
func NewUnknownColumnError(column string) *UnknownColumnError {
	return &UnknownColumnError{Column: column}
}

// KindMismatchError reports a value whose kind does not match its column.
type KindMismatchError struct {
	Column   string
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("column %q expects %s, got %s", e.Column, e.Expected, e.Actual)
}

// Is implements errors.Is support
func (e *KindMismatchError) Is(target error) bool {
	return target == ErrKindMismatch
}

// NewKindMismatchError creates a new KindMismatchError
func NewKindMismatchError(column, expected, actual string) *KindMismatchError {
	return &KindMismatchError{Column: column, Expected: expected, Actual: actual}
}

// ParseError reports a cell that could not be coerced to its column's kind
// while reading an external representation such as CSV or YAML.
type ParseError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(column string, row int, value string, err error) *ParseError {
	return &ParseError{Column: column, Row: row, Value: value, Err: err}
}
