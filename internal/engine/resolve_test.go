package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"loanlens/internal/domain"
)

func sampleLoan() domain.LoanRecord {
	return domain.LoanRecord{
		"borrower": map[string]any{
			"name": map[string]any{
				"firstName":  "Jane",
				"middleName": "Q",
				"lastName":   "Doe",
			},
			"income": map[string]any{
				"monthlyGross": float64(6000),
			},
			"assets": map[string]any{
				"bankAccounts": []any{
					map[string]any{"balance": float64(15000), "accountNumber": "****1234"},
					map[string]any{"balance": float64(2500)},
				},
			},
		},
		"property": map[string]any{
			"address": map[string]any{"street": "123 Main St.", "zip": "30301"},
			"value":   float64(750000),
		},
	}
}

func TestResolveLoanPath(t *testing.T) {
	loan := sampleLoan()

	assert.Equal(t, float64(6000), ResolveLoanPath(loan, "borrower.income.monthlyGross"))
	assert.Equal(t, "123 Main St.", ResolveLoanPath(loan, "property.address.street"))
	assert.Equal(t, float64(2500), ResolveLoanPath(loan, "borrower.assets.bankAccounts[1].balance"))
}

func TestResolveLoanPathComposesPersonName(t *testing.T) {
	loan := sampleLoan()

	assert.Equal(t, "Jane Q Doe", ResolveLoanPath(loan, "borrower.name"))

	// Without a middle name only first and last compose.
	name := loan["borrower"].(map[string]any)["name"].(map[string]any)
	delete(name, "middleName")
	assert.Equal(t, "Jane Doe", ResolveLoanPath(loan, "borrower.name"))
}

func TestResolveLoanPathIsTotal(t *testing.T) {
	loan := sampleLoan()

	paths := []string{
		"",
		"missing",
		"borrower.missing",
		"borrower.missing.deeper",
		"borrower.income.monthlyGross.deeper",
		"borrower.assets.bankAccounts[9].balance",
		"borrower.assets.bankAccounts[-1].balance",
		"borrower.income[0].monthlyGross",
		"borrower..income",
		"borrower.assets.bankAccounts[x].balance",
		"borrower.assets.bankAccounts[0",
		"borrower.assets.bankAccounts]0[",
	}
	for _, path := range paths {
		assert.Nil(t, ResolveLoanPath(loan, path), "path %q", path)
	}
	assert.Nil(t, ResolveLoanPath(nil, "borrower.name"))
}

func TestResolveFieldValue(t *testing.T) {
	fields := map[string]any{"grossPayCurrent": "5000"}

	assert.Equal(t, "5000", ResolveFieldValue(fields, "grossPayCurrent"))
	assert.Nil(t, ResolveFieldValue(fields, "absent"))
	assert.Nil(t, ResolveFieldValue(nil, "grossPayCurrent"))
}

func TestResolveOperand(t *testing.T) {
	loan := sampleLoan()
	fields := map[string]any{"payPeriodEnd": "2026-08-15"}
	appDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now, ResolveOperand(SentinelToday, fields, loan, appDate, now))
	assert.Equal(t, appDate, ResolveOperand(SentinelApplicationDate, fields, loan, appDate, now))
	assert.Nil(t, ResolveOperand(SentinelApplicationDate, fields, loan, time.Time{}, now))

	// Document fields shadow loan paths.
	assert.Equal(t, "2026-08-15", ResolveOperand("payPeriodEnd", fields, loan, appDate, now))
	assert.Equal(t, float64(750000), ResolveOperand("property.value", fields, loan, appDate, now))
	assert.Nil(t, ResolveOperand("", fields, loan, appDate, now))
	assert.Nil(t, ResolveOperand("no.such.path", fields, loan, appDate, now))
}
