package catalog

import "loanlens/internal/domain"

var appraisalFields = []domain.FieldDefinition{
	{
		Name:     "propertyAddress",
		Label:    "Property Address",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "property.address.street",
		Rules: []domain.RuleDefinition{
			{
				Name:         "address present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Property address could not be read from the appraisal",
			},
		},
	},
	{
		Name:     "appraisedValue",
		Label:    "Appraised Value",
		DataType: domain.DataTypeCurrency,
		Required: true,
		LoanPath: "property.value",
		Rules: []domain.RuleDefinition{
			{
				Name:         "appraised value positive",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondGreaterThan,
				Value:        str("0"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Appraised value must be a positive amount",
			},
			{
				Name:         "appraisal near purchase price",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondWithinPercentage,
				CompareField: "property.purchasePrice",
				Tolerance:    num(15),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Appraised value deviates more than 15% from the purchase price",
			},
			{
				Name:         "ltv recalculation",
				RuleType:     domain.RuleTypeCalculation,
				Condition:    domain.CondCalculateLTV,
				Severity:     domain.SeverityInfo,
				ErrorMessage: "Verify loan-to-value using the appraised value",
			},
		},
	},
	{
		Name:     "appraisalDate",
		Label:    "Appraisal Date",
		DataType: domain.DataTypeDate,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "appraisal recency",
				RuleType:     domain.RuleTypeDateRange,
				Condition:    domain.CondWithinDays,
				CompareField: "applicationDate",
				Value:        str("120"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Appraisal is older than 120 days at application",
			},
		},
	},
	{
		Name:     "appraiserLicense",
		Label:    "Appraiser License",
		DataType: domain.DataTypeString,
		Rules: []domain.RuleDefinition{
			{
				Name:         "license number format",
				RuleType:     domain.RuleTypePattern,
				Condition:    domain.CondMatchesPattern,
				Pattern:      `^[A-Z]{2}-?\d{5,8}$`,
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Appraiser license number format is invalid",
			},
		},
	},
	{
		Name:     "propertyType",
		Label:    "Property Type",
		DataType: domain.DataTypeString,
		LoanPath: "property.propertyType",
		Rules: []domain.RuleDefinition{
			{
				Name:         "known property type",
				RuleType:     domain.RuleTypeEnum,
				Condition:    domain.CondInList,
				ValidValues:  []string{"Single Family", "Condominium", "Townhouse", "Multi-Family", "Manufactured"},
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Property type is not a recognized classification",
			},
		},
	},
}

var titlePolicyFields = []domain.FieldDefinition{
	{
		Name:     "insuredName",
		Label:    "Insured Name",
		DataType: domain.DataTypeString,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "insured includes borrower",
				RuleType:     domain.RuleTypeConditional,
				Condition:    domain.CondContains,
				CompareField: "borrower.name",
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Insured party does not include the borrower",
			},
		},
	},
	{
		Name:     "propertyAddress",
		Label:    "Property Address",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "property.address.street",
	},
	{
		Name:     "policyNumber",
		Label:    "Policy Number",
		DataType: domain.DataTypeString,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "policy number present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Policy number could not be read from the policy",
			},
		},
	},
	{
		Name:     "policyAmount",
		Label:    "Policy Amount",
		DataType: domain.DataTypeCurrency,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "coverage meets loan amount",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondGreaterThanOrEqual,
				CompareField: "loan.loanAmount",
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Policy amount is below the loan amount",
			},
		},
	},
	{
		Name:     "effectiveDate",
		Label:    "Effective Date",
		DataType: domain.DataTypeDate,
		Rules: []domain.RuleDefinition{
			{
				Name:         "effective date not in future",
				RuleType:     domain.RuleTypeDateComparison,
				Condition:    domain.CondOnOrBefore,
				CompareField: "today",
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Policy effective date is in the future",
			},
		},
	},
	{
		Name:     "exceptions",
		Label:    "Schedule B Exceptions",
		DataType: domain.DataTypeString,
		Rules: []domain.RuleDefinition{
			{
				Name:          "no disqualifying exceptions",
				RuleType:      domain.RuleTypeConditional,
				Condition:     domain.CondNotContainsAny,
				InvalidValues: []string{"unpaid taxes", "judgment", "lien"},
				Severity:      domain.SeverityCritical,
				ErrorMessage:  "Title shows unresolved liens, judgments or unpaid taxes",
			},
		},
	},
}
