package domain

// FieldDataType is the closed set of data types an extractable field can carry.
type FieldDataType string

const (
	DataTypeString   FieldDataType = "string"
	DataTypeNumber   FieldDataType = "number"
	DataTypeCurrency FieldDataType = "currency"
	DataTypeDate     FieldDataType = "date"
	DataTypeBoolean  FieldDataType = "boolean"
	DataTypeSSN      FieldDataType = "ssn"
)

// RuleType categorizes a rule for grouping and UI display. Evaluation
// dispatch is by Condition, never by RuleType.
type RuleType string

const (
	RuleTypeComparison     RuleType = "comparison"
	RuleTypeRange          RuleType = "range"
	RuleTypeDateRange      RuleType = "date_range"
	RuleTypeDateComparison RuleType = "date_comparison"
	RuleTypeCalculation    RuleType = "calculation"
	RuleTypePercentage     RuleType = "percentage"
	RuleTypeEnum           RuleType = "enum"
	RuleTypeFormat         RuleType = "format"
	RuleTypeConditional    RuleType = "conditional"
	RuleTypePattern        RuleType = "pattern"
)

// RuleCondition is the evaluable predicate kind of a rule. The set is
// closed; conditions outside it evaluate to not-applicable.
type RuleCondition string

const (
	CondMatches            RuleCondition = "matches"
	CondEquals             RuleCondition = "equals"
	CondNotEquals          RuleCondition = "not_equals"
	CondContains           RuleCondition = "contains"
	CondContainsAny        RuleCondition = "contains_any"
	CondNotContains        RuleCondition = "not_contains"
	CondNotContainsAny     RuleCondition = "not_contains_any"
	CondInList             RuleCondition = "in_list"
	CondNotInList          RuleCondition = "not_in_list"
	CondNotEmpty           RuleCondition = "not_empty"
	CondGreaterThan        RuleCondition = "greater_than"
	CondGreaterThanOrEqual RuleCondition = "greater_than_or_equal"
	CondLessThan           RuleCondition = "less_than"
	CondLessThanOrEqual    RuleCondition = "less_than_or_equal"
	CondBetween            RuleCondition = "between"
	CondWithinPercentage   RuleCondition = "within_percentage"
	CondPercentageRange    RuleCondition = "percentage_range"
	CondBefore             RuleCondition = "before"
	CondAfter              RuleCondition = "after"
	CondBeforeOrEqual      RuleCondition = "before_or_equal"
	CondOnOrBefore         RuleCondition = "on_or_before"
	CondOnOrAfter          RuleCondition = "on_or_after"
	CondWithinDays         RuleCondition = "within_days"
	CondDaysBetween        RuleCondition = "days_between"
	CondMatchesPattern     RuleCondition = "matches_pattern"

	// Calculation-family conditions exist as descriptive metadata only;
	// they never produce a deterministic pass/fail.
	CondCalculateLTV      RuleCondition = "calculate_ltv"
	CondCalculatedBalance RuleCondition = "calculated_balance"
	CondMatchesW2Total    RuleCondition = "matches_w2_total"
	CondCalculateDTI      RuleCondition = "calculate_dti"
	CondCalculateIncome   RuleCondition = "calculate_income"
)

// RuleSeverity is the configured weight of a rule failure.
type RuleSeverity string

const (
	SeverityCritical RuleSeverity = "critical"
	SeverityWarning  RuleSeverity = "warning"
	SeverityInfo     RuleSeverity = "info"
)

// ItemStatus classifies a ValidationItem for display and triage.
type ItemStatus string

const (
	ItemValid      ItemStatus = "valid"
	ItemWarning    ItemStatus = "warning"
	ItemFieldError ItemStatus = "field-error"
	ItemCritical   ItemStatus = "critical"
)

// Rank returns the sort weight of a status; higher ranks sort first.
func (s ItemStatus) Rank() int {
	switch s {
	case ItemCritical:
		return 3
	case ItemFieldError:
		return 2
	case ItemWarning:
		return 1
	default:
		return 0
	}
}

// CellStatus classifies one cell of the cross-document matrix.
type CellStatus string

const (
	CellMatch    CellStatus = "match"
	CellMismatch CellStatus = "mismatch"
	CellNA       CellStatus = "na"
	CellNoLOS    CellStatus = "no-los"
)

// FieldCategory groups tracked fields on the Scorecard.
type FieldCategory string

const (
	CategoryIdentity   FieldCategory = "Identity"
	CategoryEmployment FieldCategory = "Employment"
	CategoryIncome     FieldCategory = "Income"
	CategoryProperty   FieldCategory = "Property"
	CategoryBanking    FieldCategory = "Banking"
	CategoryDeductions FieldCategory = "Deductions"
)

// BaseScore returns the category's base complexity score. Unknown
// categories fall back to 5. The score is a triage heuristic for the
// Scorecard UI, not a derived metric.
func (c FieldCategory) BaseScore() float64 {
	switch c {
	case CategoryIdentity:
		return 8
	case CategoryEmployment:
		return 7
	case CategoryIncome:
		return 9
	case CategoryProperty:
		return 6
	case CategoryBanking:
		return 7
	case CategoryDeductions:
		return 5
	default:
		return 5
	}
}

// ExtractionStatus is the lifecycle of a document's extraction payload.
type ExtractionStatus string

const (
	ExtractionPending   ExtractionStatus = "pending"
	ExtractionCompleted ExtractionStatus = "completed"
	ExtractionFailed    ExtractionStatus = "failed"
)

// ValidationStatus summarizes the last validation pass over a document.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationClean    ValidationStatus = "clean"
	ValidationWarning  ValidationStatus = "warning"
	ValidationCritical ValidationStatus = "critical"
)

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleUnderwriter UserRole = "underwriter"
	RoleProcessor   UserRole = "processor"
)

// DispositionAction is the work-item action attached to a flagged field.
type DispositionAction string

const (
	ActionRequestDocument DispositionAction = "request_document"
	ActionCreateCondition DispositionAction = "create_condition"
	ActionOverride        DispositionAction = "override"
	ActionMarkReviewed    DispositionAction = "mark_reviewed"
)

// ValidDispositionActions is the set accepted by the API.
var ValidDispositionActions = map[DispositionAction]bool{
	ActionRequestDocument: true,
	ActionCreateCondition: true,
	ActionOverride:        true,
	ActionMarkReviewed:    true,
}

// DispositionStatus is the lifecycle of a disposition work item.
type DispositionStatus string

const (
	DispositionOpen       DispositionStatus = "open"
	DispositionInProgress DispositionStatus = "in_progress"
	DispositionResolved   DispositionStatus = "resolved"
	DispositionDismissed  DispositionStatus = "dismissed"
)

// ValidDispositionStatuses is the set accepted by the API.
var ValidDispositionStatuses = map[DispositionStatus]bool{
	DispositionOpen:       true,
	DispositionInProgress: true,
	DispositionResolved:   true,
	DispositionDismissed:  true,
}

// AllowedFileTypes maps upload content types to file extensions.
var AllowedFileTypes = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/tiff":      "tif",
}
