package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"loanlens/internal/domain"
)

// formattingWords mark a rule message as extraction noise rather than
// a business problem; such failures are suppressed from issues.
var formattingWords = []string{"format", "pattern", "length", "invalid", "must match"}

// ValidateInput is everything one validation pass reads. The loan
// record is treated as a read-only snapshot; the pass never mutates any
// input, so concurrent passes over different documents are safe.
type ValidateInput struct {
	Fields          []domain.FieldDefinition
	Extracted       map[string]any
	Loan            domain.LoanRecord
	ApplicationDate time.Time

	// Upstream extraction-level signals, merged into the output
	// unchanged. Issues classify critical, Warnings classify warning.
	Issues   []string
	Warnings []string
}

// Engine runs validation passes and builds reconciliation matrices.
// It is pure and synchronous; the clock is injectable for tests.
type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// ValidateDocument evaluates every catalogued field of a document
// against the extracted data and the loan snapshot, and returns the
// classified items sorted by severity rank descending. The result is a
// pure function of the input; identical inputs yield identical output.
// Extracted keys without a field definition are ignored.
func (e *Engine) ValidateDocument(in ValidateInput) []domain.ValidationItem {
	items := make([]domain.ValidationItem, 0, len(in.Fields)+len(in.Issues)+len(in.Warnings))
	for _, field := range in.Fields {
		items = append(items, e.validateField(field, in))
	}
	for _, issue := range in.Issues {
		items = append(items, domain.ValidationItem{
			Label:   "Document",
			Status:  domain.ItemCritical,
			Message: issue,
		})
	}
	for _, warning := range in.Warnings {
		items = append(items, domain.ValidationItem{
			Label:   "Document",
			Status:  domain.ItemWarning,
			Message: warning,
		})
	}
	SortItems(items)
	return items
}

func (e *Engine) validateField(field domain.FieldDefinition, in ValidateInput) domain.ValidationItem {
	value := ResolveFieldValue(in.Extracted, field.Name)
	item := domain.ValidationItem{
		FieldName: field.Name,
		Label:     field.Label,
		Value:     value,
	}

	var comparison *domain.LoanComparison
	if field.LoanPath != "" {
		loanValue := ResolveLoanPath(in.Loan, field.LoanPath)
		comparison = &domain.LoanComparison{
			HasLoanData: loanValue != nil,
			LoanValue:   loanValue,
			LoanPath:    field.LoanPath,
		}
		if comparison.HasLoanData {
			comparison.Matches = Normalize(value) == Normalize(loanValue)
		}
		item.LoanComparison = comparison
	}

	verdicts := e.evaluateRules(field, value, in)
	item.Advisories = collectAdvisories(verdicts)

	// Classification precedence, first match wins. The order matters:
	// a loan mismatch outranks a missing value, which outranks any
	// rule failure.
	switch {
	case comparison != nil && comparison.HasLoanData && !comparison.Matches:
		item.Status = domain.ItemFieldError
		item.Message = fmt.Sprintf("Does not match loan application (expected: %s)", Stringify(comparison.LoanValue))
	case IsEmpty(value) && len(field.Rules) > 0:
		item.Status = domain.ItemFieldError
		item.Message = "Required field is missing or empty"
	default:
		if failed, rule := firstReportableFailure(field.Rules, verdicts); failed {
			item.Status = domain.ItemFieldError
			item.Message = rule.ErrorMessage
			item.Rule = rule.Name
		} else {
			item.Status = domain.ItemValid
		}
	}
	return item
}

func (e *Engine) evaluateRules(field domain.FieldDefinition, value any, in ValidateInput) []domain.RuleVerdict {
	verdicts := make([]domain.RuleVerdict, len(field.Rules))
	for i, rule := range field.Rules {
		operand := ResolveOperand(rule.CompareField, in.Extracted, in.Loan, in.ApplicationDate, e.now())
		verdicts[i] = Evaluate(rule, value, operand)
	}
	return verdicts
}

// firstReportableFailure finds the first failing rule whose message is
// not formatting-only noise.
func firstReportableFailure(rules []domain.RuleDefinition, verdicts []domain.RuleVerdict) (bool, domain.RuleDefinition) {
	for i, verdict := range verdicts {
		if verdict.Outcome != domain.VerdictFail {
			continue
		}
		if isFormattingMessage(verdict.ErrorMessage) {
			continue
		}
		return true, rules[i]
	}
	return false, domain.RuleDefinition{}
}

func isFormattingMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, word := range formattingWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func collectAdvisories(verdicts []domain.RuleVerdict) []string {
	var advisories []string
	for _, v := range verdicts {
		if v.Outcome == domain.VerdictNA && v.ErrorMessage != "" {
			advisories = append(advisories, v.ErrorMessage)
		}
	}
	return advisories
}

// SortItems orders items by severity rank descending. The sort is
// stable so items of equal rank keep their field-catalog order.
func SortItems(items []domain.ValidationItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Status.Rank() > items[j].Status.Rank()
	})
}

// Summarize counts items per status.
func Summarize(items []domain.ValidationItem) domain.ValidationSummary {
	s := domain.ValidationSummary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case domain.ItemValid:
			s.Valid++
		case domain.ItemWarning:
			s.Warnings++
		case domain.ItemFieldError:
			s.FieldErrors++
		case domain.ItemCritical:
			s.Critical++
		}
	}
	return s
}

// Item filter names accepted by FilterItems.
const (
	FilterAll         = "all"
	FilterIssues      = "issues"
	FilterPassed      = "passed"
	FilterCritical    = "critical"
	FilterWarnings    = "warnings"
	FilterFieldErrors = "field-errors"
)

// FilterItems returns the items passing the named filter and, when
// query is non-empty, a case-insensitive substring match over label,
// message, field name, value and rule. Unknown filter names behave
// like "all". The input slice is never modified.
func FilterItems(items []domain.ValidationItem, filter, query string) []domain.ValidationItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.ValidationItem, 0, len(items))
	for _, item := range items {
		if !statusAllowed(item.Status, filter) {
			continue
		}
		if query != "" && !itemMatchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func statusAllowed(status domain.ItemStatus, filter string) bool {
	switch filter {
	case FilterIssues:
		return status != domain.ItemValid
	case FilterPassed:
		return status == domain.ItemValid
	case FilterCritical:
		return status == domain.ItemCritical
	case FilterWarnings:
		return status == domain.ItemWarning
	case FilterFieldErrors:
		return status == domain.ItemFieldError
	default:
		return true
	}
}

func itemMatchesQuery(item domain.ValidationItem, query string) bool {
	for _, field := range []string{item.Label, item.Message, item.FieldName, Stringify(item.Value), item.Rule} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
