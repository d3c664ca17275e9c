package export

import (
	"fmt"
	"io"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Income Statement"

	headerRow = 4
)

// WriteWorkbook writes the report as a single-sheet XLSX workbook.
func WriteWorkbook(w io.Writer, report *domain.Report) error {
	f, err := newWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the report workbook to path.
func SaveWorkbook(path string, report *domain.Report) error {
	f, err := newWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func newWorkbook(report *domain.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	w := &sheetWriter{file: f, sheet: SheetName}

	w.set(1, 1, report.Title)
	w.set(1, 2, "Currency")
	w.set(2, 2, report.Currency)

	for i, h := range []string{"Section", "Line", "Amount", "Unit"} {
		w.set(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, section := range report.Sections {
		for _, d := range section.Details {
			w.set(1, row, section.Title)
			w.set(2, row, d.Name)
			w.set(3, row, d.Value.Round(2).InexactFloat64())
			w.set(4, row, d.Unit)
			row++
		}
	}
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write report lines: %w", w.err)
	}

	if row > headerRow+1 {
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("C%d", headerRow+1), fmt.Sprintf("C%d", row-1), amountStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style amounts: %w", err)
		}
	}

	row++
	w.set(1, row, "Verdict")
	w.set(2, row, report.Verdict.String())
	w.set(3, row, report.Verdict.Conclusion())
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write verdict: %w", w.err)
	}

	for col, width := range map[string]float64{"A": 20, "B": 44, "C": 18} {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	return f, nil
}

// sheetWriter keeps the first error of a run of cell writes; later writes are skipped.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.file.SetCellValue(w.sheet, cell, value)
}
