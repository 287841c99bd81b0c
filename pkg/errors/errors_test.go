package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabkit/tabdiff/pkg/errors"
)

func TestConfigurationError(t *testing.T) {
	err := errors.NewConfigurationError("on", "at least one key column is required")

	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfiguration))
	assert.Equal(t, `invalid configuration for "on": at least one key column is required`, err.Error())

	bare := &errors.ConfigurationError{Message: "broken"}
	assert.Equal(t, "invalid configuration: broken", bare.Error())
}

func TestDuplicateKeyError(t *testing.T) {
	err := errors.NewDuplicateKeyError("old", []string{"2", "b"})

	assert.True(t, stderrors.Is(err, errors.ErrDuplicateKey))
	assert.Equal(t, "duplicate key (2, b) in old dataset", err.Error())
}

func TestSchemaMismatchError(t *testing.T) {
	err := errors.NewSchemaMismatchError("new", []string{"Age"}, "column not defined")

	assert.True(t, stderrors.Is(err, errors.ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "new dataset")
	assert.Contains(t, err.Error(), "Age")
}

func TestUnknownColumnError(t *testing.T) {
	err := errors.NewUnknownColumnError("Missing")

	assert.True(t, stderrors.Is(err, errors.ErrUnknownColumn))
	assert.Equal(t, `unknown column "Missing"`, err.Error())
}

func TestKindMismatchError(t *testing.T) {
	err := errors.NewKindMismatchError("ID", "int", "string")

	assert.True(t, stderrors.Is(err, errors.ErrKindMismatch))
	assert.Equal(t, `column "ID" expects int, got string`, err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad digit")
	err := errors.NewParseError("Age", 3, "4x", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `row 3, column "Age"`)
}
