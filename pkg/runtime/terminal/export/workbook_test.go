package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook_ContainsReportLines(t *testing.T) {
	// Given
	var buf bytes.Buffer

	// When
	err := WriteWorkbook(&buf, sampleReport())

	// Then
	require.NoError(t, err)
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	cell := func(axis string) string {
		v, err := f.GetCellValue(SheetName, axis, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Financial Report for Acme", cell("A1"))
	assert.Equal(t, "BDT", cell("B2"))
	assert.Equal(t, "Section", cell("A4"))
	assert.Equal(t, "Amount", cell("C4"))

	assert.Equal(t, "Trading", cell("A5"))
	assert.Equal(t, "Sales", cell("B5"))
	assert.Equal(t, "1000", cell("C5"))

	// 16 lines from row 5 onwards
	assert.Equal(t, "Earnings After Interest and Taxes (EAIT)", cell("B20"))
	assert.Equal(t, "240", cell("C20"))
	assert.Equal(t, "Financing and Tax", cell("A20"))

	assert.Equal(t, "Verdict", cell("A22"))
	assert.Equal(t, "GOOD", cell("B22"))
}

func TestSaveWorkbook_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, SaveWorkbook(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetName}, f.GetSheetList())
}

func TestSheetWriter_KeepsFirstError(t *testing.T) {
	t.Run("invalid coordinates", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		w := &sheetWriter{file: f, sheet: "Sheet1"}

		w.set(1, 0, "lost")
		first := w.err
		w.set(1, 1, "skipped")

		require.Error(t, first)
		assert.Equal(t, first, w.err)
		v, err := f.GetCellValue("Sheet1", "A1")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("missing sheet", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		w := &sheetWriter{file: f, sheet: "Missing"}

		w.set(1, 1, "x")

		assert.Error(t, w.err)
	})

	t.Run("no error", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		w := &sheetWriter{file: f, sheet: "Sheet1"}

		w.set(2, 3, 12.5)

		require.NoError(t, w.err)
		v, err := f.GetCellValue("Sheet1", "B3")
		require.NoError(t, err)
		assert.Equal(t, "12.5", v)
	})
}
