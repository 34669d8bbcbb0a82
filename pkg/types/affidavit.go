package types

// FormKind selects the statutory affidavit variant. Auto defers to the
// income threshold classification.
type FormKind string

const (
	FormAuto  FormKind = "auto"
	FormShort FormKind = "short"
	FormLong  FormKind = "long"
)

// IncomeThreshold is the gross-annual-employment-income cutoff between the
// short and long form. Exactly the threshold classifies long.
const IncomeThreshold = 50000.0

type IncomeBreakdownItem struct {
	TypeID   int     `json:"typeId"`
	TypeName string  `json:"typeName"`
	Amount   float64 `json:"amount"`
}

type IncomeSummary struct {
	GrossAnnualIncome                   float64               `json:"grossAnnualIncome"`
	GrossAnnualIncomeFromEmployment     float64               `json:"grossAnnualIncomeFromEmployment"`
	GrossMonthlyIncomeFromMonthlyIncome float64               `json:"grossMonthlyIncomeFromMonthlyIncome"`
	GrossAnnualIncomeFromMonthlyIncome  float64               `json:"grossAnnualIncomeFromMonthlyIncome"`
	Threshold                           float64               `json:"threshold"`
	Form                                FormKind              `json:"form"`
	MonthlyIncomeBreakdown              []IncomeBreakdownItem `json:"monthlyIncomeBreakdown"`
}
