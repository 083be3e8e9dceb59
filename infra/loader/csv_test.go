package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loan_records.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVLoadValidFile(t *testing.T) {
	path := writeTestCSV(t, `loan_id,borrower_name,servicer_amount,investor_amount,status
LN-001234,Alice Johnson,1500.00,1500.00,Reconciled
LN-001235,Bob Smith,2000.00,1750.50,Pending
LN-001236,Carol White,980.25,1020.00,Pending
`)

	records, err := NewCSVSource(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "LN-001234", records[0].LoanID)
	assert.False(t, records[0].HasMismatch)

	assert.Equal(t, "Bob Smith", records[1].BorrowerName)
	assert.InDelta(t, 249.50, records[1].DifferenceAmount, 1e-9)
	assert.True(t, records[1].HasMismatch)

	assert.InDelta(t, -39.75, records[2].DifferenceAmount, 1e-9)
}

func TestCSVLoadSkipsMalformedRows(t *testing.T) {
	path := writeTestCSV(t, `loan_id,borrower_name,servicer_amount,investor_amount,status
LN-001,Alice Johnson,1500.00,1500.00,Reconciled
,Missing Id,100.00,100.00,Pending
LN-002,Bad Amount,abc,100.00,Pending
LN-003,Short Row,100.00
LN-004,Dan Green,300.00,280.00,Pending
`)

	records, err := NewCSVSource(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "LN-001", records[0].LoanID)
	assert.Equal(t, "LN-004", records[1].LoanID)
}

func TestCSVLoadNoUsableRecords(t *testing.T) {
	path := writeTestCSV(t, "loan_id,borrower_name,servicer_amount,investor_amount,status\n")

	_, err := NewCSVSource(path).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoUsableRecords))
}

func TestCSVLoadMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv")).Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoUsableRecords))
}

func TestCSVLoadTrimsWhitespace(t *testing.T) {
	path := writeTestCSV(t, `loan_id,borrower_name,servicer_amount,investor_amount,status
 LN-001 , Alice Johnson , 1500.00 , 1200.00 , Pending
`)

	records, err := NewCSVSource(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LN-001", records[0].LoanID)
	assert.Equal(t, "Alice Johnson", records[0].BorrowerName)
	assert.InDelta(t, 300.00, records[0].DifferenceAmount, 1e-9)
}
