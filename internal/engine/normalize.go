package engine

import (
	"strconv"
	"strings"
	"time"
)

// Normalize canonicalizes a value for fuzzy equality and contains
// comparisons: stringify, lowercase, trim, strip every non-alphanumeric
// character. nil normalizes to "". Formatting differences (punctuation,
// spacing, casing, currency symbols) collapse, so "123 Main St." equals
// "123 main st" and "750,000" equals 750000.
//
// Numeric and date operations must not use Normalize; they go through
// ParseNumber / ParseDate and fail closed.
func Normalize(v any) string {
	s := strings.ToLower(strings.TrimSpace(Stringify(v)))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Stringify renders a value the way it reads in a document: floats
// without exponent notation, dates as yyyy-mm-dd, nil as "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return ""
	}
}

// IsEmpty reports whether a value counts as missing: nil, or a string
// that is blank after trimming.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// ParseNumber parses a value as a number for range and percentage
// rules. Currency strings shed symbols, commas and surrounding space
// first. Returns false when the value is not numeric.
func ParseNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		s = strings.NewReplacer("$", "", ",", "", "%", "").Replace(s)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05Z07:00",
	"January 2, 2006",
	"Jan 2, 2006",
	"01-02-2006",
}

// ParseDate parses a value as a calendar date, dropping any
// time-of-day component. Returns false when the value is not a date.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return dateOnly(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return dateOnly(parsed), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b minus a in whole calendar days.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
