package engine

import (
	"math"
	"regexp"
	"strings"

	"loanlens/internal/domain"
)

// Evaluate runs one rule against a resolved subject value and a
// resolved comparison operand. The condition set is closed; unknown
// conditions return na so rule metadata added ahead of engine support
// never breaks a pass. Severity is copied from the rule, never
// computed.
func Evaluate(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	switch rule.Condition {
	case domain.CondMatches, domain.CondEquals:
		return evalEquals(rule, subject, operand, false)
	case domain.CondNotEquals:
		return evalEquals(rule, subject, operand, true)
	case domain.CondContains:
		return evalContains(rule, subject, containsOperands(rule, operand), false)
	case domain.CondContainsAny:
		return evalContains(rule, subject, listOperands(rule.ValidValues, rule, operand), false)
	case domain.CondNotContains:
		return evalContains(rule, subject, containsOperands(rule, operand), true)
	case domain.CondNotContainsAny:
		return evalContains(rule, subject, listOperands(rule.InvalidValues, rule, operand), true)
	case domain.CondInList:
		return evalInList(rule, subject, rule.ValidValues, false)
	case domain.CondNotInList:
		return evalInList(rule, subject, notInListValues(rule), true)
	case domain.CondNotEmpty:
		if IsEmpty(subject) {
			return fail(rule)
		}
		return pass(rule)
	case domain.CondGreaterThan, domain.CondGreaterThanOrEqual,
		domain.CondLessThan, domain.CondLessThanOrEqual:
		return evalNumericCompare(rule, subject, operand)
	case domain.CondBetween:
		return evalBetween(rule, subject)
	case domain.CondWithinPercentage:
		return evalWithinPercentage(rule, subject, operand)
	case domain.CondPercentageRange:
		return evalPercentageRange(rule, subject, operand)
	case domain.CondBefore, domain.CondAfter, domain.CondBeforeOrEqual,
		domain.CondOnOrBefore, domain.CondOnOrAfter:
		return evalDateCompare(rule, subject, operand)
	case domain.CondWithinDays:
		return evalWithinDays(rule, subject, operand)
	case domain.CondDaysBetween:
		return evalDaysBetween(rule, subject, operand)
	case domain.CondMatchesPattern:
		return evalPattern(rule, subject)
	case domain.CondCalculateLTV, domain.CondCalculatedBalance,
		domain.CondMatchesW2Total, domain.CondCalculateDTI,
		domain.CondCalculateIncome:
		// Calculation-family rules carry no deterministic check; their
		// message surfaces as an advisory note only.
		return advisory(rule)
	default:
		return na(rule)
	}
}

func pass(rule domain.RuleDefinition) domain.RuleVerdict {
	return domain.RuleVerdict{Outcome: domain.VerdictPass, Severity: rule.Severity, Condition: rule.Condition}
}

func fail(rule domain.RuleDefinition) domain.RuleVerdict {
	return domain.RuleVerdict{
		Outcome:      domain.VerdictFail,
		Severity:     rule.Severity,
		Condition:    rule.Condition,
		ErrorMessage: rule.ErrorMessage,
	}
}

func na(rule domain.RuleDefinition) domain.RuleVerdict {
	return domain.RuleVerdict{Outcome: domain.VerdictNA, Severity: rule.Severity, Condition: rule.Condition}
}

// advisory is an na verdict that keeps the rule's message for display.
func advisory(rule domain.RuleDefinition) domain.RuleVerdict {
	v := na(rule)
	v.ErrorMessage = rule.ErrorMessage
	return v
}

func verdictFrom(rule domain.RuleDefinition, ok bool) domain.RuleVerdict {
	if ok {
		return pass(rule)
	}
	return fail(rule)
}

// literalOperand falls back to the rule's configured value when no
// compareField operand was resolved.
func literalOperand(rule domain.RuleDefinition, operand any) any {
	if operand != nil {
		return operand
	}
	if rule.Value != nil {
		return *rule.Value
	}
	return nil
}

func evalEquals(rule domain.RuleDefinition, subject, operand any, negate bool) domain.RuleVerdict {
	subj := Normalize(subject)
	op := Normalize(literalOperand(rule, operand))
	if subj == "" || op == "" {
		return na(rule)
	}
	equal := subj == op
	if negate {
		return verdictFrom(rule, !equal)
	}
	return verdictFrom(rule, equal)
}

func containsOperands(rule domain.RuleDefinition, operand any) []string {
	if v := literalOperand(rule, operand); v != nil {
		return []string{Stringify(v)}
	}
	return nil
}

func listOperands(list []string, rule domain.RuleDefinition, operand any) []string {
	if len(list) > 0 {
		return list
	}
	return containsOperands(rule, operand)
}

func notInListValues(rule domain.RuleDefinition) []string {
	if len(rule.InvalidValues) > 0 {
		return rule.InvalidValues
	}
	return rule.ValidValues
}

func evalContains(rule domain.RuleDefinition, subject any, operands []string, negate bool) domain.RuleVerdict {
	subj := Normalize(subject)
	if subj == "" {
		return na(rule)
	}
	matched := false
	seen := false
	for _, op := range operands {
		norm := Normalize(op)
		if norm == "" {
			continue
		}
		seen = true
		if strings.Contains(subj, norm) {
			matched = true
			break
		}
	}
	if !seen {
		return na(rule)
	}
	if negate {
		return verdictFrom(rule, !matched)
	}
	return verdictFrom(rule, matched)
}

func evalInList(rule domain.RuleDefinition, subject any, list []string, negate bool) domain.RuleVerdict {
	subj := Normalize(subject)
	if subj == "" || len(list) == 0 {
		return na(rule)
	}
	member := false
	for _, allowed := range list {
		if Normalize(allowed) == subj {
			member = true
			break
		}
	}
	if negate {
		return verdictFrom(rule, !member)
	}
	return verdictFrom(rule, member)
}

func evalNumericCompare(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseNumber(subject)
	if !ok {
		return na(rule)
	}
	threshold, ok := ParseNumber(literalOperand(rule, operand))
	if !ok {
		return na(rule)
	}
	var holds bool
	switch rule.Condition {
	case domain.CondGreaterThan:
		holds = subj > threshold
	case domain.CondGreaterThanOrEqual:
		holds = subj >= threshold
	case domain.CondLessThan:
		holds = subj < threshold
	case domain.CondLessThanOrEqual:
		holds = subj <= threshold
	}
	return verdictFrom(rule, holds)
}

func evalBetween(rule domain.RuleDefinition, subject any) domain.RuleVerdict {
	subj, ok := ParseNumber(subject)
	if !ok || rule.MinValue == nil || rule.MaxValue == nil {
		return na(rule)
	}
	return verdictFrom(rule, subj >= *rule.MinValue && subj <= *rule.MaxValue)
}

func evalWithinPercentage(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseNumber(subject)
	if !ok {
		return na(rule)
	}
	op, ok := ParseNumber(operand)
	if !ok || op == 0 {
		return na(rule)
	}
	pct, ok := percentTolerance(rule)
	if !ok {
		return na(rule)
	}
	deviation := math.Abs(subj-op) / math.Abs(op) * 100
	return verdictFrom(rule, deviation <= pct)
}

func percentTolerance(rule domain.RuleDefinition) (float64, bool) {
	if rule.Tolerance != nil {
		return *rule.Tolerance, true
	}
	if rule.Value != nil {
		return ParseNumber(*rule.Value)
	}
	return 0, false
}

func evalPercentageRange(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseNumber(subject)
	if !ok {
		return na(rule)
	}
	op, ok := ParseNumber(operand)
	if !ok || op == 0 {
		return na(rule)
	}
	if rule.MinPercent == nil || rule.MaxPercent == nil {
		return na(rule)
	}
	ratio := subj / op * 100
	return verdictFrom(rule, ratio >= *rule.MinPercent && ratio <= *rule.MaxPercent)
}

func evalDateCompare(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseDate(subject)
	if !ok {
		return na(rule)
	}
	op, ok := ParseDate(literalOperand(rule, operand))
	if !ok {
		return na(rule)
	}
	var holds bool
	switch rule.Condition {
	case domain.CondBefore:
		holds = subj.Before(op)
	case domain.CondAfter:
		holds = subj.After(op)
	case domain.CondBeforeOrEqual, domain.CondOnOrBefore:
		holds = !subj.After(op)
	case domain.CondOnOrAfter:
		holds = !subj.Before(op)
	}
	return verdictFrom(rule, holds)
}

func evalWithinDays(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseDate(subject)
	if !ok {
		return na(rule)
	}
	op, ok := ParseDate(operand)
	if !ok {
		return na(rule)
	}
	limit, ok := withinDaysLimit(rule)
	if !ok {
		return na(rule)
	}
	days := daysBetween(subj, op)
	if days < 0 {
		days = -days
	}
	return verdictFrom(rule, days <= limit)
}

func withinDaysLimit(rule domain.RuleDefinition) (int, bool) {
	if rule.MaxDays != nil {
		return *rule.MaxDays, true
	}
	if rule.Value != nil {
		if n, ok := ParseNumber(*rule.Value); ok {
			return int(n), true
		}
	}
	return 0, false
}

func evalDaysBetween(rule domain.RuleDefinition, subject, operand any) domain.RuleVerdict {
	subj, ok := ParseDate(subject)
	if !ok {
		return na(rule)
	}
	op, ok := ParseDate(operand)
	if !ok {
		return na(rule)
	}
	days := daysBetween(subj, op)
	if rule.MinDays != nil && days < *rule.MinDays {
		return fail(rule)
	}
	if rule.MaxDays != nil && days > *rule.MaxDays {
		return fail(rule)
	}
	if rule.MinDays == nil && rule.MaxDays == nil {
		return na(rule)
	}
	return pass(rule)
}

func evalPattern(rule domain.RuleDefinition, subject any) domain.RuleVerdict {
	if subject == nil || rule.Pattern == "" {
		return na(rule)
	}
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return na(rule)
	}
	// Pattern matching runs against the raw value; normalization would
	// destroy the very formatting the pattern checks.
	return verdictFrom(rule, re.MatchString(Stringify(subject)))
}
