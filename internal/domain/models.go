package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FieldDefinition describes one extractable field of a document type,
// including the validation rules that run against it.
type FieldDefinition struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	DataType FieldDataType    `json:"dataType"`
	Required bool             `json:"required"`
	LoanPath string           `json:"loanPath,omitempty"`
	Rules    []RuleDefinition `json:"rules,omitempty"`
}

// RuleDefinition is one validation rule. Which parameter fields are
// meaningful depends on Condition; unused parameters stay nil.
type RuleDefinition struct {
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	RuleType     RuleType      `json:"ruleType"`
	Condition    RuleCondition `json:"condition"`
	Severity     RuleSeverity  `json:"severity"`
	ErrorMessage string        `json:"errorMessage"`

	Value         *string  `json:"value,omitempty"`
	ValidValues   []string `json:"validValues,omitempty"`
	InvalidValues []string `json:"invalidValues,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	CompareField  string   `json:"compareField,omitempty"`
	MinValue      *float64 `json:"minValue,omitempty"`
	MaxValue      *float64 `json:"maxValue,omitempty"`
	MinPercent    *float64 `json:"minPercent,omitempty"`
	MaxPercent    *float64 `json:"maxPercent,omitempty"`
	MinDays       *int     `json:"minDays,omitempty"`
	MaxDays       *int     `json:"maxDays,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
}

// LoanRecord is the ByteLOS loan application record, a free-form JSON
// object navigated by dotted paths.
type LoanRecord map[string]any

// LoanSnapshot is one ingested, versioned copy of a loan record. The
// engine only ever reads a snapshot; it never mutates one.
type LoanSnapshot struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	LoanID    string          `db:"loan_id" json:"loanId"`
	Version   int             `db:"version" json:"version"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedBy uuid.UUID       `db:"created_by" json:"createdBy"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Record unmarshals the snapshot payload into a navigable LoanRecord.
func (s *LoanSnapshot) Record() (LoanRecord, error) {
	var rec LoanRecord
	if err := json.Unmarshal(s.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Document is one uploaded mortgage document attached to a loan.
type Document struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	LoanID           string           `db:"loan_id" json:"loanId"`
	DocumentType     string           `db:"document_type" json:"documentType"`
	FileName         string           `db:"file_name" json:"fileName"`
	FileType         string           `db:"file_type" json:"fileType"`
	FileSize         int64            `db:"file_size" json:"fileSize"`
	StorageKey       string           `db:"storage_key" json:"-"`
	ExtractionStatus ExtractionStatus `db:"extraction_status" json:"extractionStatus"`
	ValidationStatus ValidationStatus `db:"validation_status" json:"validationStatus"`
	ExtractedData    json.RawMessage  `db:"extracted_data" json:"extractedData,omitempty"`
	// ValidationResult caches the last validation pass; it is rebuilt on
	// every validate and is never the source of truth.
	ValidationResult json.RawMessage `db:"validation_result" json:"validationResult,omitempty"`
	LoanVersion      *int            `db:"loan_version" json:"loanVersion,omitempty"`
	UploadedBy       uuid.UUID       `db:"uploaded_by" json:"uploadedBy"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}

// ExtractedFields unmarshals the extraction payload as a flat field map.
func (d *Document) ExtractedFields() (map[string]any, error) {
	if len(d.ExtractedData) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(d.ExtractedData, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// RuleVerdict is the outcome of evaluating a single rule against a
// field value. Outcome is "pass", "fail" or "na".
type RuleVerdict struct {
	Outcome      string        `json:"outcome"`
	Severity     RuleSeverity  `json:"severity"`
	Condition    RuleCondition `json:"condition"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}

const (
	VerdictPass = "pass"
	VerdictFail = "fail"
	VerdictNA   = "na"
)

// LoanComparison records how a field compared against the loan record.
type LoanComparison struct {
	HasLoanData bool   `json:"hasLoanData"`
	LoanValue   any    `json:"loanValue,omitempty"`
	Matches     bool   `json:"matches"`
	LoanPath    string `json:"loanPath,omitempty"`
}

// ValidationItem is the per-field unit of the validation report.
type ValidationItem struct {
	FieldName      string          `json:"fieldName"`
	Label          string          `json:"label"`
	Value          any             `json:"value"`
	Status         ItemStatus      `json:"status"`
	Message        string          `json:"message,omitempty"`
	Rule           string          `json:"rule,omitempty"`
	Category       FieldCategory   `json:"category,omitempty"`
	LoanComparison *LoanComparison `json:"loanComparison,omitempty"`
	Advisories     []string        `json:"advisories,omitempty"`
}

// ValidationSummary is the roll-up over a document's items.
type ValidationSummary struct {
	Total       int `json:"total"`
	Valid       int `json:"valid"`
	Warnings    int `json:"warnings"`
	FieldErrors int `json:"fieldErrors"`
	Critical    int `json:"critical"`
}

// ValidationReport is the full result of one validation pass, stored as
// JSONB on the document and served by the validation endpoint.
type ValidationReport struct {
	DocumentID  uuid.UUID         `json:"documentId"`
	LoanVersion int               `json:"loanVersion"`
	Items       []ValidationItem  `json:"items"`
	Summary     ValidationSummary `json:"summary"`
	ValidatedAt time.Time         `json:"validatedAt"`
}

// TrackedField is one row of the cross-document reconciliation matrix.
type TrackedField struct {
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Category FieldCategory `json:"category"`
	LoanPath string        `json:"loanPath"`
	// DocumentFields maps a document type to the extracted field name
	// that carries this tracked value in that type.
	DocumentFields map[string]string `json:"documentFields"`
}

// MatrixCell is one document's reading of a tracked field.
type MatrixCell struct {
	DocumentType string     `json:"documentType"`
	DocumentID   uuid.UUID  `json:"documentId"`
	Value        any        `json:"value,omitempty"`
	Status       CellStatus `json:"status"`
}

// MatrixRow is one tracked field across the loan's documents.
type MatrixRow struct {
	Field           TrackedField `json:"field"`
	LoanValue       any          `json:"loanValue,omitempty"`
	HasLoanValue    bool         `json:"hasLoanValue"`
	Cells           []MatrixCell `json:"cells"`
	MismatchCount   int          `json:"mismatchCount"`
	ComplexityScore *int         `json:"complexityScore,omitempty"`
}

// Scorecard is the loan-level reconciliation view.
type Scorecard struct {
	LoanID        string      `json:"loanId"`
	LoanVersion   int         `json:"loanVersion"`
	Rows          []MatrixRow `json:"rows"`
	DocumentCount int         `json:"documentCount"`
	MismatchTotal int         `json:"mismatchTotal"`
	GeneratedAt   time.Time   `json:"generatedAt"`
}

// Disposition is a work item opened against a flagged validation item.
type Disposition struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	LoanID     string            `db:"loan_id" json:"loanId"`
	DocumentID uuid.UUID         `db:"document_id" json:"documentId"`
	FieldName  string            `db:"field_name" json:"fieldName"`
	ItemStatus ItemStatus        `db:"item_status" json:"itemStatus"`
	Action     DispositionAction `db:"action" json:"action"`
	Status     DispositionStatus `db:"status" json:"status"`
	Notes      string            `db:"notes" json:"notes,omitempty"`
	CreatedBy  uuid.UUID         `db:"created_by" json:"createdBy"`
	AssignedTo *uuid.UUID        `db:"assigned_to" json:"assignedTo,omitempty"`
	ResolvedAt *time.Time        `db:"resolved_at" json:"resolvedAt,omitempty"`
	CreatedAt  time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updatedAt"`
}

// AuthContext carries the authenticated caller through the request.
type AuthContext struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}
