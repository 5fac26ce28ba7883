package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"loanlens/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var bom = []byte{0xEF, 0xBB, 0xBF}

var scorecardColumns = []string{
	"Field",
	"Category",
	"Loan Value",
	"Document Type",
	"Document ID",
	"Document Value",
	"Cell Status",
	"Row Mismatches",
	"Complexity Score",
}

// ScorecardCSV renders a reconciliation scorecard as CSV, one row per
// matrix cell.
func ScorecardCSV(sc *domain.Scorecard) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(bom)

	w := csv.NewWriter(&buf)
	if err := w.Write(scorecardColumns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, row := range sc.Rows {
		loanValue := ""
		if row.HasLoanValue {
			loanValue = fmt.Sprintf("%v", row.LoanValue)
		}
		complexity := ""
		if row.ComplexityScore != nil {
			complexity = strconv.Itoa(*row.ComplexityScore)
		}
		for _, cell := range row.Cells {
			value := ""
			if cell.Value != nil {
				value = fmt.Sprintf("%v", cell.Value)
			}
			record := []string{
				row.Field.Label,
				string(row.Field.Category),
				loanValue,
				cell.DocumentType,
				cell.DocumentID.String(),
				value,
				string(cell.Status),
				strconv.Itoa(row.MismatchCount),
				complexity,
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("writing row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}
