// Package export renders scorecards into downloadable files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"loanlens/internal/domain"
)

const sheetName = "Scorecard"

// ScorecardXLSX renders a reconciliation scorecard as an XLSX workbook.
// One row per tracked field, one column per document, with a summary
// block at the top.
func ScorecardXLSX(sc *domain.Scorecard) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	mismatchStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("creating mismatch style: %w", err)
	}

	// Summary block.
	setCell(f, 1, 1, "Loan ID")
	setCell(f, 2, 1, sc.LoanID)
	setCell(f, 1, 2, "Loan Version")
	setCell(f, 2, 2, sc.LoanVersion)
	setCell(f, 1, 3, "Documents")
	setCell(f, 2, 3, sc.DocumentCount)
	setCell(f, 1, 4, "Total Mismatches")
	setCell(f, 2, 4, sc.MismatchTotal)
	setCell(f, 1, 5, "Generated")
	setCell(f, 2, 5, sc.GeneratedAt.Format("2006-01-02 15:04 MST"))

	headerRow := 7
	headers := []string{"Field", "Category", "Loan Value"}
	for _, cell := range documentColumns(sc.Rows) {
		headers = append(headers, cell)
	}
	headers = append(headers, "Mismatches", "Complexity")
	for i, h := range headers {
		setCell(f, i+1, headerRow, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	if err := f.SetCellStyle(sheetName, first, last, headerStyle); err != nil {
		return nil, fmt.Errorf("styling header row: %w", err)
	}

	for i, row := range sc.Rows {
		r := headerRow + 1 + i
		setCell(f, 1, r, row.Field.Label)
		setCell(f, 2, r, string(row.Field.Category))
		if row.HasLoanValue {
			setCell(f, 3, r, fmt.Sprintf("%v", row.LoanValue))
		}
		for j, cell := range row.Cells {
			col := 4 + j
			setCell(f, col, r, cellText(cell))
			if cell.Status == domain.CellMismatch {
				name, _ := excelize.CoordinatesToCellName(col, r)
				if err := f.SetCellStyle(sheetName, name, name, mismatchStyle); err != nil {
					return nil, fmt.Errorf("styling mismatch cell: %w", err)
				}
			}
		}
		setCell(f, 4+len(row.Cells), r, row.MismatchCount)
		if row.ComplexityScore != nil {
			setCell(f, 5+len(row.Cells), r, *row.ComplexityScore)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "C", 22); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// documentColumns derives one column header per document from the first
// populated row. Every row carries cells in the same document order.
func documentColumns(rows []domain.MatrixRow) []string {
	for _, row := range rows {
		if len(row.Cells) == 0 {
			continue
		}
		headers := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			headers = append(headers, fmt.Sprintf("%s (%s)", cell.DocumentType, shortID(cell.DocumentID.String())))
		}
		return headers
	}
	return nil
}

func cellText(cell domain.MatrixCell) string {
	switch cell.Status {
	case domain.CellNA:
		return "n/a"
	case domain.CellNoLOS:
		if cell.Value != nil {
			return fmt.Sprintf("%v (no LOS value)", cell.Value)
		}
		return "no LOS value"
	default:
		return fmt.Sprintf("%v", cell.Value)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func setCell(f *excelize.File, col, row int, value any) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	// SetCellValue only fails on a bad sheet or cell name, both fixed here.
	_ = f.SetCellValue(sheetName, name, value)
}
