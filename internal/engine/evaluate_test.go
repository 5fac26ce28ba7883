package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"loanlens/internal/domain"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func rule(cond domain.RuleCondition, mutate ...func(*domain.RuleDefinition)) domain.RuleDefinition {
	r := domain.RuleDefinition{
		Name:         "test rule",
		Condition:    cond,
		Severity:     domain.SeverityCritical,
		ErrorMessage: "check failed",
	}
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func TestEvaluateEquals(t *testing.T) {
	r := rule(domain.CondMatches)

	assert.Equal(t, domain.VerdictPass, Evaluate(r, "123 Main St.", "123 main st").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "124 Main St", "123 Main St").Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, "", "123 Main St").Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, "123 Main St", nil).Outcome)

	// Literal value stands in when no operand resolved.
	lit := rule(domain.CondEquals, func(r *domain.RuleDefinition) { r.Value = strPtr("W-2") })
	assert.Equal(t, domain.VerdictPass, Evaluate(lit, "w2", nil).Outcome)

	neg := rule(domain.CondNotEquals)
	assert.Equal(t, domain.VerdictPass, Evaluate(neg, "Chase", "Wells Fargo").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(neg, "Chase", "chase").Outcome)
}

func TestEvaluateContains(t *testing.T) {
	r := rule(domain.CondContains)
	assert.Equal(t, domain.VerdictPass, Evaluate(r, "Jane Q. Doe and John Doe", "john doe").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "John Smith", "Jane Doe").Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, "", "Jane Doe").Outcome)

	anyOf := rule(domain.CondContainsAny, func(r *domain.RuleDefinition) {
		r.ValidValues = []string{"borrower", "co-borrower"}
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(anyOf, "Primary Borrower", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(anyOf, "Seller", nil).Outcome)

	noneOf := rule(domain.CondNotContainsAny, func(r *domain.RuleDefinition) {
		r.InvalidValues = []string{"void", "draft"}
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(noneOf, "Final Statement", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(noneOf, "VOID - do not use", nil).Outcome)
}

func TestEvaluateLists(t *testing.T) {
	inList := rule(domain.CondInList, func(r *domain.RuleDefinition) {
		r.ValidValues = []string{"Single Family", "Condominium", "Townhouse"}
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(inList, "single family", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(inList, "Houseboat", nil).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(inList, nil, nil).Outcome)

	notIn := rule(domain.CondNotInList, func(r *domain.RuleDefinition) {
		r.InvalidValues = []string{"N/A", "Unknown"}
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(notIn, "Chase Bank", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(notIn, "unknown", nil).Outcome)
}

func TestEvaluateNotEmpty(t *testing.T) {
	r := rule(domain.CondNotEmpty)
	assert.Equal(t, domain.VerdictPass, Evaluate(r, "value", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "   ", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, nil, nil).Outcome)
}

func TestEvaluateNumericCompare(t *testing.T) {
	gt := rule(domain.CondGreaterThan, func(r *domain.RuleDefinition) { r.Value = strPtr("0") })
	assert.Equal(t, domain.VerdictPass, Evaluate(gt, "$5,000.00", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(gt, "0", nil).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(gt, "five thousand", nil).Outcome)

	lte := rule(domain.CondLessThanOrEqual)
	assert.Equal(t, domain.VerdictPass, Evaluate(lte, float64(97), float64(97)).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(lte, float64(98), float64(97)).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(lte, float64(98), nil).Outcome)
}

func TestEvaluateBetween(t *testing.T) {
	r := rule(domain.CondBetween, func(r *domain.RuleDefinition) {
		r.MinValue = floatPtr(300)
		r.MaxValue = floatPtr(850)
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(r, float64(720), nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, float64(299), nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, float64(851), nil).Outcome)

	missing := rule(domain.CondBetween, func(r *domain.RuleDefinition) { r.MinValue = floatPtr(300) })
	assert.Equal(t, domain.VerdictNA, Evaluate(missing, float64(720), nil).Outcome)
}

func TestEvaluateWithinPercentage(t *testing.T) {
	r := rule(domain.CondWithinPercentage, func(r *domain.RuleDefinition) { r.Tolerance = floatPtr(10) })

	assert.Equal(t, domain.VerdictPass, Evaluate(r, float64(5500), float64(6000)).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, float64(5000), float64(6000)).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, float64(5000), float64(0)).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, float64(5000), nil).Outcome)
}

func TestEvaluatePercentageRange(t *testing.T) {
	r := rule(domain.CondPercentageRange, func(r *domain.RuleDefinition) {
		r.MinPercent = floatPtr(70)
		r.MaxPercent = floatPtr(100)
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(r, float64(80), float64(100)).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, float64(50), float64(100)).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, float64(50), float64(0)).Outcome)
}

func TestEvaluateDateCompare(t *testing.T) {
	before := rule(domain.CondBefore)
	assert.Equal(t, domain.VerdictPass, Evaluate(before, "2026-08-01", "2026-09-01").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(before, "2026-09-01", "2026-09-01").Outcome)

	onOrBefore := rule(domain.CondOnOrBefore)
	assert.Equal(t, domain.VerdictPass, Evaluate(onOrBefore, "2026-09-01", "09/01/2026").Outcome)

	after := rule(domain.CondAfter)
	assert.Equal(t, domain.VerdictNA, Evaluate(after, "sometime", "2026-09-01").Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(after, "2026-09-01", nil).Outcome)
}

func TestEvaluateWithinDays(t *testing.T) {
	r := rule(domain.CondWithinDays, func(r *domain.RuleDefinition) { r.Value = strPtr("60") })
	appDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	recent := appDate.AddDate(0, 0, -30).Format("2006-01-02")
	stale := appDate.AddDate(0, 0, -90).Format("2006-01-02")
	assert.Equal(t, domain.VerdictPass, Evaluate(r, recent, appDate).Outcome)

	verdict := Evaluate(r, stale, appDate)
	assert.Equal(t, domain.VerdictFail, verdict.Outcome)
	assert.Equal(t, domain.SeverityCritical, verdict.Severity)
}

func TestEvaluateDaysBetween(t *testing.T) {
	r := rule(domain.CondDaysBetween, func(r *domain.RuleDefinition) {
		r.MinDays = intPtr(0)
		r.MaxDays = intPtr(45)
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(r, "2026-08-01", "2026-09-01").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "2026-06-01", "2026-09-01").Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "2026-09-15", "2026-09-01").Outcome)
}

func TestEvaluatePattern(t *testing.T) {
	r := rule(domain.CondMatchesPattern, func(r *domain.RuleDefinition) {
		r.Pattern = `^\d{3}-\d{2}-\d{4}$`
	})
	assert.Equal(t, domain.VerdictPass, Evaluate(r, "123-45-6789", nil).Outcome)
	assert.Equal(t, domain.VerdictFail, Evaluate(r, "123456789", nil).Outcome)
	assert.Equal(t, domain.VerdictNA, Evaluate(r, nil, nil).Outcome)

	broken := rule(domain.CondMatchesPattern, func(r *domain.RuleDefinition) { r.Pattern = `([` })
	assert.Equal(t, domain.VerdictNA, Evaluate(broken, "anything", nil).Outcome)
}

func TestEvaluateCalculationFamilyIsAdvisory(t *testing.T) {
	for _, cond := range []domain.RuleCondition{
		domain.CondCalculateLTV,
		domain.CondCalculatedBalance,
		domain.CondMatchesW2Total,
		domain.CondCalculateDTI,
		domain.CondCalculateIncome,
	} {
		r := rule(cond, func(r *domain.RuleDefinition) { r.ErrorMessage = "verify the computed total" })
		verdict := Evaluate(r, float64(100), float64(200))
		assert.Equal(t, domain.VerdictNA, verdict.Outcome, string(cond))
		assert.Equal(t, "verify the computed total", verdict.ErrorMessage, string(cond))
	}
}

func TestEvaluateUnknownConditionIsNA(t *testing.T) {
	r := rule(domain.RuleCondition("quantum_check"))
	verdict := Evaluate(r, "anything", "anything")
	assert.Equal(t, domain.VerdictNA, verdict.Outcome)
	assert.Empty(t, verdict.ErrorMessage)
}

func TestEvaluateCopiesSeverityVerbatim(t *testing.T) {
	for _, sev := range []domain.RuleSeverity{domain.SeverityCritical, domain.SeverityWarning, domain.SeverityInfo} {
		r := rule(domain.CondNotEmpty, func(r *domain.RuleDefinition) { r.Severity = sev })
		assert.Equal(t, sev, Evaluate(r, nil, nil).Severity)
	}
}
