// Package catalog holds the static field and rule configuration the
// validation engine consumes: per-document-type field definitions and
// the tracked-field set behind the reconciliation scorecard. The data
// is configuration, not logic; the engine never reaches into it
// directly.
package catalog

import (
	"loanlens/internal/domain"
)

// Document type identifiers known to the catalog.
const (
	TypePaystub       = "paystub"
	TypeW2            = "w2"
	TypeBankStatement = "bank_statement"
	TypeTaxReturn     = "tax_return"
	TypeAppraisal     = "appraisal"
	TypeTitlePolicy   = "title_policy"
)

// Provider serves catalog lookups. It is stateless and safe for
// concurrent use.
type Provider struct {
	fields map[string][]domain.FieldDefinition
}

func NewProvider() *Provider {
	return &Provider{
		fields: map[string][]domain.FieldDefinition{
			TypePaystub:       paystubFields,
			TypeW2:            w2Fields,
			TypeBankStatement: bankStatementFields,
			TypeTaxReturn:     taxReturnFields,
			TypeAppraisal:     appraisalFields,
			TypeTitlePolicy:   titlePolicyFields,
		},
	}
}

// FieldsFor returns the ordered field definitions for a document type,
// or false when the type is not catalogued.
func (p *Provider) FieldsFor(documentType string) ([]domain.FieldDefinition, bool) {
	defs, ok := p.fields[documentType]
	return defs, ok
}

// DocumentTypes lists the catalogued type identifiers.
func (p *Provider) DocumentTypes() []string {
	return []string{TypePaystub, TypeW2, TypeBankStatement, TypeTaxReturn, TypeAppraisal, TypeTitlePolicy}
}

// TrackedFields returns the scorecard catalog.
func (p *Provider) TrackedFields() []domain.TrackedField {
	return trackedFields
}

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }
func days(n int) *int        { return &n }
