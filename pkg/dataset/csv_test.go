package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabkit/tabdiff/pkg/errors"
)

func TestFromCSV(t *testing.T) {
	input := "ID,Name,Age\n1,Alice,30\n2,Bob,\n"

	d, err := FromCSV(strings.NewReader(input), testSchema(t))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	v, err := d.Value(0, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v.StringValue())

	// Empty cell becomes null
	v, err = d.Value(1, "Age")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFromCSVColumnOrder(t *testing.T) {
	// Header order differs from schema order
	input := "Age,ID,Name\n30,1,Alice\n"

	d, err := FromCSV(strings.NewReader(input), testSchema(t))
	require.NoError(t, err)

	v, err := d.Value(0, "ID")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.IntValue())
}

func TestFromCSVErrors(t *testing.T) {
	schema := testSchema(t)

	// Missing header
	_, err := FromCSV(strings.NewReader(""), schema)
	require.ErrorIs(t, err, errors.ErrInvalidConfiguration)

	// Header missing a schema column
	_, err = FromCSV(strings.NewReader("ID,Name\n1,Alice\n"), schema)
	require.ErrorIs(t, err, errors.ErrUnknownColumn)

	// Unparseable cell
	_, err = FromCSV(strings.NewReader("ID,Name,Age\nx,Alice,30\n"), schema)
	require.Error(t, err)
	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "ID", perr.Column)
}
