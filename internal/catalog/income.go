package catalog

import "loanlens/internal/domain"

var paystubFields = []domain.FieldDefinition{
	{
		Name:     "employeeName",
		Label:    "Employee Name",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.name",
		Rules: []domain.RuleDefinition{
			{
				Name:         "employee name present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Employee name could not be read from the paystub",
			},
		},
	},
	{
		Name:     "employerName",
		Label:    "Employer Name",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.employment.employerName",
		Rules: []domain.RuleDefinition{
			{
				Name:         "employer name present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Employer name could not be read from the paystub",
			},
		},
	},
	{
		Name:     "payPeriodEnd",
		Label:    "Pay Period End",
		DataType: domain.DataTypeDate,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "paystub recency",
				RuleType:     domain.RuleTypeDateRange,
				Condition:    domain.CondWithinDays,
				CompareField: "applicationDate",
				Value:        str("60"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Paystub is older than 60 days at application",
			},
			{
				Name:         "pay period not in future",
				RuleType:     domain.RuleTypeDateComparison,
				Condition:    domain.CondOnOrBefore,
				CompareField: "today",
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Pay period ends in the future",
			},
		},
	},
	{
		Name:     "grossPayCurrent",
		Label:    "Gross Pay (Current Period)",
		DataType: domain.DataTypeCurrency,
		Required: true,
		LoanPath: "borrower.income.monthlyGross",
		Rules: []domain.RuleDefinition{
			{
				Name:         "gross pay positive",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondGreaterThan,
				Value:        str("0"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Gross pay must be a positive amount",
			},
			{
				Name:         "gross pay near stated income",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondWithinPercentage,
				CompareField: "borrower.income.monthlyGross",
				Tolerance:    num(25),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Gross pay deviates more than 25% from stated monthly income",
			},
		},
	},
	{
		Name:     "grossPayYTD",
		Label:    "Gross Pay (YTD)",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "ytd covers current period",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondGreaterThanOrEqual,
				CompareField: "grossPayCurrent",
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Year-to-date gross is below the current period amount",
			},
		},
	},
	{
		Name:     "netPayCurrent",
		Label:    "Net Pay (Current Period)",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "net below gross",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondLessThan,
				CompareField: "grossPayCurrent",
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Net pay exceeds gross pay",
			},
		},
	},
	{
		Name:     "federalTaxYTD",
		Label:    "Federal Tax Withheld (YTD)",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "withholding ratio plausible",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondPercentageRange,
				CompareField: "grossPayYTD",
				MinPercent:   num(5),
				MaxPercent:   num(40),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Federal withholding is outside the plausible 5-40% range of YTD gross",
			},
		},
	},
	{
		Name:     "payFrequency",
		Label:    "Pay Frequency",
		DataType: domain.DataTypeString,
		Rules: []domain.RuleDefinition{
			{
				Name:         "known pay frequency",
				RuleType:     domain.RuleTypeEnum,
				Condition:    domain.CondInList,
				ValidValues:  []string{"Weekly", "Bi-Weekly", "Semi-Monthly", "Monthly"},
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Pay frequency is not a recognized schedule",
			},
		},
	},
}

var w2Fields = []domain.FieldDefinition{
	{
		Name:     "employeeName",
		Label:    "Employee Name",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.name",
		Rules: []domain.RuleDefinition{
			{
				Name:         "employee name present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Employee name could not be read from the W-2",
			},
		},
	},
	{
		Name:     "employeeSSN",
		Label:    "Employee SSN",
		DataType: domain.DataTypeSSN,
		Required: true,
		LoanPath: "borrower.ssn",
		Rules: []domain.RuleDefinition{
			{
				Name:         "ssn format",
				RuleType:     domain.RuleTypePattern,
				Condition:    domain.CondMatchesPattern,
				Pattern:      `^\d{3}-\d{2}-\d{4}$`,
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Invalid SSN format",
			},
		},
	},
	{
		Name:     "employerName",
		Label:    "Employer Name",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.employment.employerName",
	},
	{
		Name:     "taxYear",
		Label:    "Tax Year",
		DataType: domain.DataTypeNumber,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "tax year in window",
				RuleType:     domain.RuleTypeRange,
				Condition:    domain.CondBetween,
				MinValue:     num(2020),
				MaxValue:     num(2026),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Tax year is outside the acceptable documentation window",
			},
		},
	},
	{
		Name:     "wagesBox1",
		Label:    "Wages (Box 1)",
		DataType: domain.DataTypeCurrency,
		Required: true,
		LoanPath: "borrower.income.annualIncome",
		Rules: []domain.RuleDefinition{
			{
				Name:         "wages positive",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondGreaterThan,
				Value:        str("0"),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Box 1 wages must be a positive amount",
			},
			{
				Name:         "wages near stated income",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondWithinPercentage,
				CompareField: "borrower.income.annualIncome",
				Tolerance:    num(20),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Box 1 wages deviate more than 20% from stated annual income",
			},
		},
	},
	{
		Name:     "federalWithheldBox2",
		Label:    "Federal Tax Withheld (Box 2)",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "withholding below wages",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondLessThan,
				CompareField: "wagesBox1",
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Federal withholding exceeds Box 1 wages",
			},
		},
	},
	{
		Name:     "socialSecurityWages",
		Label:    "Social Security Wages (Box 3)",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "w2 totals tie-out",
				RuleType:     domain.RuleTypeCalculation,
				Condition:    domain.CondMatchesW2Total,
				Severity:     domain.SeverityInfo,
				ErrorMessage: "Verify Social Security wages reconcile with Box 1 plus pre-tax deductions",
			},
		},
	},
}

var taxReturnFields = []domain.FieldDefinition{
	{
		Name:     "filerName",
		Label:    "Filer Name",
		DataType: domain.DataTypeString,
		Required: true,
		LoanPath: "borrower.name",
		Rules: []domain.RuleDefinition{
			{
				Name:         "filer name present",
				RuleType:     domain.RuleTypeFormat,
				Condition:    domain.CondNotEmpty,
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Filer name could not be read from the return",
			},
		},
	},
	{
		Name:     "filerSSN",
		Label:    "Filer SSN",
		DataType: domain.DataTypeSSN,
		LoanPath: "borrower.ssn",
		Rules: []domain.RuleDefinition{
			{
				Name:         "ssn format",
				RuleType:     domain.RuleTypePattern,
				Condition:    domain.CondMatchesPattern,
				Pattern:      `^\d{3}-\d{2}-\d{4}$`,
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Invalid SSN format",
			},
		},
	},
	{
		Name:     "taxYear",
		Label:    "Tax Year",
		DataType: domain.DataTypeNumber,
		Required: true,
		Rules: []domain.RuleDefinition{
			{
				Name:         "tax year in window",
				RuleType:     domain.RuleTypeRange,
				Condition:    domain.CondBetween,
				MinValue:     num(2020),
				MaxValue:     num(2026),
				Severity:     domain.SeverityCritical,
				ErrorMessage: "Tax year is outside the acceptable documentation window",
			},
		},
	},
	{
		Name:     "filingStatus",
		Label:    "Filing Status",
		DataType: domain.DataTypeString,
		Rules: []domain.RuleDefinition{
			{
				Name:         "known filing status",
				RuleType:     domain.RuleTypeEnum,
				Condition:    domain.CondInList,
				ValidValues:  []string{"Single", "Married Filing Jointly", "Married Filing Separately", "Head of Household", "Qualifying Widow(er)"},
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Filing status is not a recognized IRS status",
			},
		},
	},
	{
		Name:     "totalIncome",
		Label:    "Total Income",
		DataType: domain.DataTypeCurrency,
		Required: true,
		LoanPath: "borrower.income.annualIncome",
		Rules: []domain.RuleDefinition{
			{
				Name:         "total income near stated income",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondWithinPercentage,
				CompareField: "borrower.income.annualIncome",
				Tolerance:    num(25),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Total income deviates more than 25% from stated annual income",
			},
			{
				Name:         "qualifying income tie-out",
				RuleType:     domain.RuleTypeCalculation,
				Condition:    domain.CondCalculateIncome,
				Severity:     domain.SeverityInfo,
				ErrorMessage: "Verify qualifying income per the applicable agency worksheet",
			},
		},
	},
	{
		Name:     "adjustedGrossIncome",
		Label:    "Adjusted Gross Income",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "agi below total income",
				RuleType:     domain.RuleTypeComparison,
				Condition:    domain.CondLessThanOrEqual,
				CompareField: "totalIncome",
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Adjusted gross income exceeds total income",
			},
		},
	},
	{
		Name:     "itemizedDeductions",
		Label:    "Itemized Deductions",
		DataType: domain.DataTypeCurrency,
		Rules: []domain.RuleDefinition{
			{
				Name:         "deduction ratio plausible",
				RuleType:     domain.RuleTypePercentage,
				Condition:    domain.CondPercentageRange,
				CompareField: "adjustedGrossIncome",
				MinPercent:   num(0),
				MaxPercent:   num(60),
				Severity:     domain.SeverityWarning,
				ErrorMessage: "Itemized deductions exceed 60% of adjusted gross income",
			},
		},
	},
}
