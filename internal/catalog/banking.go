package catalog

import "loanlens/internal/domain"

var bankStatementFields = []domain.FieldDefinition{
	{
		Name:     "accountHolderName",
		Label:    "Account Holder",
		DataType: domain.DataTypeString,
		Required: true,
		Rules: []domain.RuleDefinition{
			// Joint accounts list several holders; a substring match
			// against the borrower is the check, not strict equality.
			{
				Name:         "holder includes borrower",
				RuleType:     domain.RuleTypeConditional,
				Condition:    domain.CondContains,
				CompareField: "borrower.name",
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Account holder does not include the borrower",
			},
		},
	},
	{
		Name:     "bankName",
		Label:    "Bank Name",
		DataType: domain.DataTypeString,
		LoanPath: "borrower.assets.bankAccounts[0].bankName",
	},
	{
		Name:     "accountNumber",
		Label:    "Account Number",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.assets.bankAccounts[0].accountNumber",
		Rules: []domain.RuleDefinition{
			{
				Name:         "account number present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Account number could not be read from the statement",
			},
		},
	},
	{
		Name:     "statementDate",
		Label:    "Statement Date",
		DataType: domain.DataTypeDate,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "statement recency",
				RuleType:     domain.RuleTypeDateRange,
				Condition:    domain.CondWithinDays,
				CompareField: "applicationDate",
				Value:        str("90"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Bank statement is older than 90 days at application",
			},
		},
	},
	{
		Name:     "statementPeriodStart",
		Label:    "Statement Period Start",
		DataType: domain.DataTypeDate,
		Rules: []domain.RuleDefinition{
			{
				Name:         "full statement month",
				RuleType:     domain.RuleTypeDateRange,
				Condition:    domain.CondDaysBetween,
				CompareField: "statementPeriodEnd",
				MinDays:      days(25),
				MaxDays:      days(35),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Statement period does not cover a full month",
			},
		},
	},
	{
		Name:     "statementPeriodEnd",
		Label:    "Statement Period End",
		DataType: domain.DataTypeDate,
	},
	{
		Name:     "beginningBalance",
		Label:    "Beginning Balance",
		DataType: domain.DataTypeCurrency,
	},
	{
		Name:     "endingBalance",
		Label:    "Ending Balance",
		DataType: domain.DataTypeCurrency,
		Required: true,
		LoanPath: "borrower.assets.bankAccounts[0].balance",
		Rules: []domain.RuleDefinition{
			{
				Name:         "balance near stated assets",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondWithinPercentage,
				CompareField: "borrower.assets.bankAccounts[0].balance",
				Tolerance:    num(10),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Ending balance deviates more than 10% from the stated asset balance",
			},
			{
				Name:         "balance activity tie-out",
				RuleType:     domain.RuleTypeCalculation,
				Condition:    domain.CondCalculatedBalance,
				Severity:     domain.SeverityInfo,
				ErrorMessage: "Verify ending balance equals beginning balance plus net deposits and withdrawals",
			},
		},
	},
	{
		Name:     "nsfCount",
		Label:    "NSF Occurrences",
		DataType: domain.DataTypeNumber,
		Rules: []domain.RuleDefinition{
			{
				Name:         "no nsf activity",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondLessThanOrEqual,
				Value:        str("0"),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Statement shows NSF activity during the period",
			},
		},
	},
}
