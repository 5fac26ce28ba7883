package engine

import (
	"math"

	"github.com/google/uuid"

	"loanlens/internal/domain"
)

// MatrixDocument is one document's contribution to the matrix: its
// identity and its flat extraction map.
type MatrixDocument struct {
	ID     uuid.UUID
	Type   string
	Fields map[string]any
}

// BuildMatrix runs the tracked-field catalog across a set of documents
// against the loan snapshot, classifying every cell and scoring rows
// that carry at least one mismatch.
func (e *Engine) BuildMatrix(tracked []domain.TrackedField, docs []MatrixDocument, loan domain.LoanRecord) []domain.MatrixRow {
	rows := make([]domain.MatrixRow, 0, len(tracked))
	for _, field := range tracked {
		rows = append(rows, buildRow(field, docs, loan))
	}
	return rows
}

func buildRow(field domain.TrackedField, docs []MatrixDocument, loan domain.LoanRecord) domain.MatrixRow {
	loanValue := ResolveLoanPath(loan, field.LoanPath)
	row := domain.MatrixRow{
		Field:        field,
		LoanValue:    loanValue,
		HasLoanValue: !IsEmpty(loanValue),
		Cells:        make([]domain.MatrixCell, 0, len(docs)),
	}
	for _, doc := range docs {
		cell := domain.MatrixCell{DocumentType: doc.Type, DocumentID: doc.ID}
		fieldName, mapped := field.DocumentFields[doc.Type]
		var value any
		if mapped {
			value = ResolveFieldValue(doc.Fields, fieldName)
		}
		cell.Value = value
		cell.Status = classifyCell(value, loanValue)
		if cell.Status == domain.CellMismatch {
			row.MismatchCount++
		}
		row.Cells = append(row.Cells, cell)
	}
	if row.MismatchCount > 0 {
		score := ComplexityScore(field.Category, row.MismatchCount)
		row.ComplexityScore = &score
	}
	return row
}

func classifyCell(docValue, loanValue any) domain.CellStatus {
	docPresent := !IsEmpty(docValue)
	loanPresent := !IsEmpty(loanValue)
	switch {
	case !docPresent:
		return domain.CellNA
	case !loanPresent:
		return domain.CellNoLOS
	case Normalize(docValue) == Normalize(loanValue):
		return domain.CellMatch
	default:
		return domain.CellMismatch
	}
}

// ComplexityScore is the triage heuristic for a mismatching row:
// clamp(round(base + min(mismatches*0.5, 2)), 1, 10). It is a UI
// prioritization aid, nothing more.
func ComplexityScore(category domain.FieldCategory, mismatches int) int {
	bump := math.Min(float64(mismatches)*0.5, 2)
	score := int(math.Round(category.BaseScore() + bump))
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
