package spreadsheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_CSV(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("Name,Email,Status\nAlice,alice@example.com,Active\nBob,,\n")

	rows, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alice", rows[0]["Name"])
	assert.Equal(t, "alice@example.com", rows[0]["Email"])
	assert.Equal(t, "Bob", rows[1]["Name"])
	assert.Equal(t, "", rows[1]["Email"])
}

func TestParse_CSV_SkipsLeadingBlankAndEmptyRows(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(",,\nName,Date,Status\n,,\nAlice,2025-06-01,Present\n")

	rows, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0]["Name"])
}

func TestParse_Workbook(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Date", "Status"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Bob", "Sat Dec 13 2025", "Active"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0]["Name"])
	assert.Equal(t, "Sat Dec 13 2025", rows[0]["Date"])
	assert.Equal(t, "Active", rows[0]["Status"])
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	// Header only, no data rows.
	_, err := Parse(strings.NewReader("Name,Email\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	// Nothing at all.
	_, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParse_CorruptBlob(t *testing.T) {
	t.Parallel()

	// Looks like a zip container but is not a workbook.
	_, err := Parse(bytes.NewReader([]byte("PK\x03\x04not a real workbook")))

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestRowGet_CaseInsensitiveFirstPresentWins(t *testing.T) {
	t.Parallel()

	row := Row{"name": "Alice", "SALARY": "4500"}

	assert.Equal(t, "Alice", row.Get("Name", "name"))
	assert.Equal(t, "4500", row.Get("Salary", "BaseSalary"))
	assert.Equal(t, "", row.Get("Phone"))
}
