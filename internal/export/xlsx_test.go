package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"loanlens/internal/domain"
)

func sampleScorecard() *domain.Scorecard {
	score := 7
	docA := uuid.New()
	docB := uuid.New()
	return &domain.Scorecard{
		LoanID:      "LN-1001",
		LoanVersion: 3,
		Rows: []domain.MatrixRow{
			{
				Field:        domain.TrackedField{Name: "borrowerName", Label: "Borrower Name", Category: domain.CategoryIdentity},
				LoanValue:    "Jane Doe",
				HasLoanValue: true,
				Cells: []domain.MatrixCell{
					{DocumentType: "paystub", DocumentID: docA, Value: "Jane Doe", Status: domain.CellMatch},
					{DocumentType: "w2", DocumentID: docB, Status: domain.CellNA},
				},
			},
			{
				Field:           domain.TrackedField{Name: "propertyValue", Label: "Property Value", Category: domain.CategoryProperty},
				LoanValue:       750000,
				HasLoanValue:    true,
				MismatchCount:   1,
				ComplexityScore: &score,
				Cells: []domain.MatrixCell{
					{DocumentType: "paystub", DocumentID: docA, Status: domain.CellNA},
					{DocumentType: "w2", DocumentID: docB, Value: "760000", Status: domain.CellMismatch},
				},
			},
		},
		DocumentCount: 2,
		MismatchTotal: 1,
		GeneratedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestScorecardXLSX(t *testing.T) {
	data, err := ScorecardXLSX(sampleScorecard())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Scorecard"}, f.GetSheetList())

	loanID, err := f.GetCellValue("Scorecard", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "LN-1001", loanID)

	header, err := f.GetCellValue("Scorecard", "A7")
	assert.NoError(t, err)
	assert.Equal(t, "Field", header)

	label, err := f.GetCellValue("Scorecard", "A8")
	assert.NoError(t, err)
	assert.Equal(t, "Borrower Name", label)

	naCell, err := f.GetCellValue("Scorecard", "E8")
	assert.NoError(t, err)
	assert.Equal(t, "n/a", naCell)

	mismatch, err := f.GetCellValue("Scorecard", "E9")
	assert.NoError(t, err)
	assert.Equal(t, "760000", mismatch)

	complexity, err := f.GetCellValue("Scorecard", "G9")
	assert.NoError(t, err)
	assert.Equal(t, "7", complexity)
}

func TestScorecardXLSXEmpty(t *testing.T) {
	sc := &domain.Scorecard{LoanID: "LN-2", GeneratedAt: time.Now()}
	data, err := ScorecardXLSX(sc)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
