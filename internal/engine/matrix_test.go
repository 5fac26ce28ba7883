package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"loanlens/internal/domain"
)

func trackedPropertyValue() domain.TrackedField {
	return domain.TrackedField{
		Name:     "propertyValue",
		Label:    "Property Value",
		Category: domain.CategoryProperty,
		LoanPath: "property.value",
		DocumentFields: map[string]string{
			"appraisal":    "appraisedValue",
			"title_policy": "insuredValue",
		},
	}
}

func TestBuildMatrixCellClassification(t *testing.T) {
	eng := New()
	appraisalID := uuid.New()
	titleID := uuid.New()

	docs := []MatrixDocument{
		{ID: appraisalID, Type: "appraisal", Fields: map[string]any{"appraisedValue": "750,000"}},
		{ID: titleID, Type: "title_policy", Fields: map[string]any{"insuredValue": "760000"}},
		{ID: uuid.New(), Type: "paystub", Fields: map[string]any{"grossPayCurrent": "5000"}},
	}

	rows := eng.BuildMatrix([]domain.TrackedField{trackedPropertyValue()}, docs, sampleLoan())
	assert.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.HasLoanValue)
	assert.Equal(t, float64(750000), row.LoanValue)
	assert.Len(t, row.Cells, 3)

	assert.Equal(t, domain.CellMatch, row.Cells[0].Status)
	assert.Equal(t, domain.CellMismatch, row.Cells[1].Status)
	// No mapping for paystubs, so no value to compare.
	assert.Equal(t, domain.CellNA, row.Cells[2].Status)
	assert.Equal(t, 1, row.MismatchCount)
}

func TestBuildMatrixNoLOSCell(t *testing.T) {
	eng := New()
	field := trackedPropertyValue()
	field.LoanPath = "property.purchasePrice"

	docs := []MatrixDocument{
		{ID: uuid.New(), Type: "appraisal", Fields: map[string]any{"appraisedValue": "750,000"}},
	}

	rows := eng.BuildMatrix([]domain.TrackedField{field}, docs, sampleLoan())
	assert.False(t, rows[0].HasLoanValue)
	assert.Equal(t, domain.CellNoLOS, rows[0].Cells[0].Status)
	assert.Nil(t, rows[0].ComplexityScore)
}

func TestBuildMatrixBothAbsent(t *testing.T) {
	eng := New()
	field := trackedPropertyValue()
	field.LoanPath = "property.purchasePrice"

	docs := []MatrixDocument{
		{ID: uuid.New(), Type: "appraisal", Fields: map[string]any{"appraisedValue": ""}},
	}

	rows := eng.BuildMatrix([]domain.TrackedField{field}, docs, sampleLoan())
	assert.Equal(t, domain.CellNA, rows[0].Cells[0].Status)
}

func TestBuildMatrixComplexityScoring(t *testing.T) {
	eng := New()
	docs := []MatrixDocument{
		{ID: uuid.New(), Type: "appraisal", Fields: map[string]any{"appraisedValue": "700000"}},
		{ID: uuid.New(), Type: "title_policy", Fields: map[string]any{"insuredValue": "710000"}},
	}

	rows := eng.BuildMatrix([]domain.TrackedField{trackedPropertyValue()}, docs, sampleLoan())
	row := rows[0]
	assert.Equal(t, 2, row.MismatchCount)
	// Property base 6 + min(2*0.5, 2) = 7.
	assert.NotNil(t, row.ComplexityScore)
	assert.Equal(t, 7, *row.ComplexityScore)
}

func TestComplexityScoreBounds(t *testing.T) {
	categories := []domain.FieldCategory{
		domain.CategoryIdentity,
		domain.CategoryEmployment,
		domain.CategoryIncome,
		domain.CategoryProperty,
		domain.CategoryBanking,
		domain.CategoryDeductions,
		domain.FieldCategory("SomethingNew"),
	}
	for _, category := range categories {
		for mismatches := 1; mismatches <= 20; mismatches++ {
			score := ComplexityScore(category, mismatches)
			assert.GreaterOrEqual(t, score, 1, "%s x%d", category, mismatches)
			assert.LessOrEqual(t, score, 10, "%s x%d", category, mismatches)
		}
	}

	// Income caps at 10 once the mismatch bump saturates.
	assert.Equal(t, 10, ComplexityScore(domain.CategoryIncome, 4))
	assert.Equal(t, 10, ComplexityScore(domain.CategoryIncome, 40))
}
