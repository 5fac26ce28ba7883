package catalog

import "loanlens/internal/domain"

// trackedFields is the scorecard catalog: the fields reconciled across
// every document of a loan, keyed into each document type's extraction
// map. Distinct from the per-type definitions above; a tracked field
// carries no rules, only identity and mapping.
var trackedFields = []domain.TrackedField{
	{
		Name:     "borrowerName",
		Label:    "Borrower Name",
		Category: domain.CategoryIdentity,
		LoanPath: "borrower.name",
		DocumentFields: map[string]string{
			TypePaystub:       "employeeName",
			TypeW2:            "employeeName",
			TypeBankStatement: "accountHolderName",
			TypeTaxReturn:     "filerName",
			TypeTitlePolicy:   "insuredName",
		},
	},
	{
		Name:     "ssn",
		Label:    "Social Security Number",
		Category: domain.CategoryIdentity,
		LoanPath: "borrower.ssn",
		DocumentFields: map[string]string{
			TypeW2:        "employeeSSN",
			TypeTaxReturn: "filerSSN",
		},
	},
	{
		Name:     "employerName",
		Label:    "Employer Name",
		Category: domain.CategoryEmployment,
		LoanPath: "borrower.employment.employerName",
		DocumentFields: map[string]string{
			TypePaystub: "employerName",
			TypeW2:      "employerName",
		},
	},
	{
		Name:     "grossMonthlyIncome",
		Label:    "Gross Monthly Income",
		Category: domain.CategoryIncome,
		LoanPath: "borrower.income.monthlyGross",
		DocumentFields: map[string]string{
			TypePaystub: "grossPayCurrent",
		},
	},
	{
		Name:     "annualIncome",
		Label:    "Annual Income",
		Category: domain.CategoryIncome,
		LoanPath: "borrower.income.annualIncome",
		DocumentFields: map[string]string{
			TypeW2:        "wagesBox1",
			TypeTaxReturn: "totalIncome",
		},
	},
	{
		Name:     "propertyAddress",
		Label:    "Property Address",
		Category: domain.CategoryProperty,
		LoanPath: "property.address.street",
		DocumentFields: map[string]string{
			TypeAppraisal:   "propertyAddress",
			TypeTitlePolicy: "propertyAddress",
		},
	},
	{
		Name:     "propertyValue",
		Label:    "Property Value",
		Category: domain.CategoryProperty,
		LoanPath: "property.value",
		DocumentFields: map[string]string{
			TypeAppraisal: "appraisedValue",
		},
	},
	{
		Name:     "bankName",
		Label:    "Bank Name",
		Category: domain.CategoryBanking,
		LoanPath: "borrower.assets.bankAccounts[0].bankName",
		DocumentFields: map[string]string{
			TypeBankStatement: "bankName",
		},
	},
	{
		Name:     "accountNumber",
		Label:    "Account Number",
		Category: domain.CategoryBanking,
		LoanPath: "borrower.assets.bankAccounts[0].accountNumber",
		DocumentFields: map[string]string{
			TypeBankStatement: "accountNumber",
		},
	},
	{
		Name:     "endingBalance",
		Label:    "Account Balance",
		Category: domain.CategoryBanking,
		LoanPath: "borrower.assets.bankAccounts[0].balance",
		DocumentFields: map[string]string{
			TypeBankStatement: "endingBalance",
		},
	},
	{
		Name:     "itemizedDeductions",
		Label:    "Itemized Deductions",
		Category: domain.CategoryDeductions,
		LoanPath: "borrower.deductions.itemized",
		DocumentFields: map[string]string{
			TypeTaxReturn: "itemizedDeductions",
		},
	},
}
