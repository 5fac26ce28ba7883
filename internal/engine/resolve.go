package engine

import (
	"strconv"
	"strings"
	"time"

	"loanlens/internal/domain"
)

// Sentinel operand names a rule's compareField may use instead of a
// field name or loan path.
const (
	SentinelToday           = "today"
	SentinelApplicationDate = "applicationDate"
)

// ResolveLoanPath walks a dot-separated path into the loan record and
// returns the value it lands on, or nil if any step fails. A segment
// may carry a single numeric index in name[idx] form. Resolution is
// total: missing keys, non-object intermediates, non-array indexed
// segments, out-of-range indices and malformed paths all yield nil.
func ResolveLoanPath(record domain.LoanRecord, path string) any {
	if record == nil || path == "" {
		return nil
	}
	var current any = map[string]any(record)
	for _, segment := range strings.Split(path, ".") {
		key, idx, hasIdx, ok := splitSegment(segment)
		if !ok {
			return nil
		}
		obj, isObj := current.(map[string]any)
		if !isObj {
			return nil
		}
		next, exists := obj[key]
		if !exists || next == nil {
			return nil
		}
		if hasIdx {
			arr, isArr := next.([]any)
			if !isArr || idx < 0 || idx >= len(arr) {
				return nil
			}
			next = arr[idx]
			if next == nil {
				return nil
			}
		}
		current = next
	}
	return composePersonName(current)
}

// splitSegment parses "name" or "name[3]". Anything else is malformed.
func splitSegment(segment string) (key string, idx int, hasIdx bool, ok bool) {
	open := strings.IndexByte(segment, '[')
	if open < 0 {
		if segment == "" || strings.ContainsRune(segment, ']') {
			return "", 0, false, false
		}
		return segment, 0, false, true
	}
	if open == 0 || !strings.HasSuffix(segment, "]") {
		return "", 0, false, false
	}
	n, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil {
		return "", 0, false, false
	}
	return segment[:open], n, true, true
}

// composePersonName flattens a terminal {firstName, lastName} object
// into "first [middle ]last". This is a deliberate, isolated exception
// for borrower-name objects; every other object resolves as-is.
func composePersonName(v any) any {
	obj, isObj := v.(map[string]any)
	if !isObj {
		return v
	}
	first, hasFirst := obj["firstName"].(string)
	last, hasLast := obj["lastName"].(string)
	if !hasFirst || !hasLast {
		return v
	}
	parts := []string{first}
	if middle, hasMiddle := obj["middleName"].(string); hasMiddle && middle != "" {
		parts = append(parts, middle)
	}
	parts = append(parts, last)
	return strings.Join(parts, " ")
}

// ResolveFieldValue looks a field up in a document's flat extraction
// map. No path semantics apply.
func ResolveFieldValue(fields map[string]any, name string) any {
	if fields == nil {
		return nil
	}
	return fields[name]
}

// ResolveOperand resolves a rule's compareField against, in order: the
// recognized sentinels, the document's own extracted fields, and the
// loan record. Returns nil when nothing resolves.
func ResolveOperand(compareField string, fields map[string]any, record domain.LoanRecord, appDate time.Time, now time.Time) any {
	switch compareField {
	case "":
		return nil
	case SentinelToday:
		return now
	case SentinelApplicationDate:
		if appDate.IsZero() {
			return nil
		}
		return appDate
	}
	if v, ok := fields[compareField]; ok && v != nil {
		return v
	}
	return ResolveLoanPath(record, compareField)
}
