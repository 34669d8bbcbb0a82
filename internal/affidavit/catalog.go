package affidavit

import (
	"sort"
	"strconv"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

// money renders a currency amount the way the official forms expect it:
// fixed two decimals, no symbol. The summary views use dollarAmount instead.
func money(v float64) string {
	return strconv.FormatFloat(utils.RoundFloat64(v, 2), 'f', 2, 64)
}

type textEntry struct {
	label string
	value string
}

type checkEntry struct {
	label string
	on    bool
}

// labelSet is the catalog of logical-value-to-field-label mappings for one
// form variant. Labels are matched against the template's declared field
// names through the tiered fieldIndex lookup, so they must be specific
// enough not to collide with unrelated fields on the same page.
type labelSet struct {
	caseNumber     string
	division       string
	circuit        string
	county         string
	petitionerName string
	respondentName string

	fullName   string
	employer   string
	occupation string
	payRate    string

	// pay-frequency checkboxes, by frequency type id; frequencies without a
	// box on the form check freqOther
	freqChecks map[int]string
	freqOther  string
	unemployed string

	incomeTypes  map[int]string
	incomeOther  string // description blank next to the "other income" line
	dedTypes     map[int]string
	expenseTypes map[int]string
	expenseOther string

	grossMonthly    string
	grossAnnual     string
	totalDeductions string
	netMonthly      string
	totalExpenses   string
	surplus         string
	deficit         string

	assetTotal               string
	liabilityTotal           string
	contingentAssetTotal     string
	contingentLiabilityTotal string
}

var incomeTypeLabels = map[int]string{
	1:  "Monthly gross salary or wages",
	2:  "Monthly bonuses, commissions, allowances, overtime, tips",
	3:  "Monthly business income",
	4:  "Monthly disability benefits",
	5:  "Monthly Workers Compensation",
	6:  "Monthly Unemployment Compensation",
	7:  "Monthly pension, retirement, or annuity payments",
	8:  "Monthly Social Security benefits",
	9:  "Monthly alimony actually received",
	10: "Monthly interest and dividends",
	11: "Monthly rental income",
	12: "Monthly income from royalties, trusts, or estates",
	13: "Monthly reimbursed expenses and in-kind payments",
	14: "Monthly gains derived from dealings in property",
	types.MonthlyIncomeOtherTypeID: "Any other income of a recurring nature",
}

var deductionTypeLabels = map[int]string{
	1: "Monthly federal, state, and local income tax",
	2: "Monthly FICA or self-employment taxes",
	3: "Monthly Medicare payments",
	4: "Monthly mandatory union dues",
	5: "Monthly mandatory retirement payments",
	6: "Monthly health insurance payments",
	7: "Monthly court-ordered child support actually paid",
	8: "Monthly court-ordered alimony actually paid",
}

var expenseTypeLabels = map[int]string{
	1:  "Monthly mortgage or rent payments",
	2:  "Monthly property taxes",
	3:  "Monthly insurance on residence",
	4:  "Monthly electricity",
	5:  "Monthly water, garbage, and sewer",
	6:  "Monthly telephone",
	7:  "Monthly fuel oil or natural gas",
	8:  "Monthly repairs and maintenance",
	9:  "Monthly lawn care",
	10: "Monthly pool maintenance",
	11: "Monthly pest control",
	12: "Monthly food and grocery items",
	13: "Monthly meals outside home",
	14: "Monthly automobile gasoline and oil",
	15: "Monthly automobile repairs",
	16: "Monthly automobile insurance",
	17: "Monthly clothing",
	18: "Monthly medical, dental, and prescriptions",
	19: "Monthly child care",
	types.HouseholdExpenseOtherTypeID: "Other monthly household expense",
}

var shortLabels = labelSet{
	caseNumber:     "Case No",
	division:       "Division",
	circuit:        "Judicial Circuit",
	county:         "County",
	petitionerName: "Petitioner",
	respondentName: "Respondent",

	fullName:   "Full Legal Name",
	employer:   "Employed by",
	occupation: "Occupation",
	payRate:    "Pay rate",

	freqChecks: map[int]string{
		types.PayFrequencyWeekly:      "every week",
		types.PayFrequencyBiweekly:    "every other week",
		types.PayFrequencySemimonthly: "twice a month",
		types.PayFrequencyMonthly:     "once a month",
	},
	freqOther:  "other frequency",
	unemployed: "Unemployed",

	incomeTypes:  incomeTypeLabels,
	incomeOther:  "other income specify",
	dedTypes:     deductionTypeLabels,
	expenseTypes: expenseTypeLabels,
	expenseOther: "other expense specify",

	grossMonthly:    "Total Present Monthly Gross Income",
	grossAnnual:     "Present Annual Gross Income",
	totalDeductions: "Total Monthly Deductions",
	netMonthly:      "Total Present Monthly Net Income",
	totalExpenses:   "Total Monthly Expenses",
	surplus:         "Surplus",
	deficit:         "Deficit",

	assetTotal:               "Total Assets",
	liabilityTotal:           "Total Liabilities",
	contingentAssetTotal:     "Total Contingent Assets",
	contingentLiabilityTotal: "Total Contingent Liabilities",
}

// The long form shares the short form's numbering for the line items our
// data model carries; the headline totals are captioned differently.
var longLabels = labelSet{
	caseNumber:     "Case No",
	division:       "Division",
	circuit:        "Judicial Circuit",
	county:         "County",
	petitionerName: "Petitioner",
	respondentName: "Respondent",

	fullName:   "Full Legal Name",
	employer:   "Employed by",
	occupation: "Occupation",
	payRate:    "Pay rate",

	freqChecks: map[int]string{
		types.PayFrequencyWeekly:      "every week",
		types.PayFrequencyBiweekly:    "every other week",
		types.PayFrequencySemimonthly: "twice a month",
		types.PayFrequencyMonthly:     "once a month",
	},
	freqOther:  "other frequency",
	unemployed: "Unemployed",

	incomeTypes:  incomeTypeLabels,
	incomeOther:  "other income specify",
	dedTypes:     deductionTypeLabels,
	expenseTypes: expenseTypeLabels,
	expenseOther: "other expense specify",

	grossMonthly:    "Present Monthly Gross Income",
	grossAnnual:     "Present Annual Gross Income",
	totalDeductions: "Total Deductions",
	netMonthly:      "Present Monthly Net Income",
	totalExpenses:   "Total Monthly Expenses",
	surplus:         "Surplus",
	deficit:         "Deficit",

	assetTotal:               "Total Assets",
	liabilityTotal:           "Total Liabilities",
	contingentAssetTotal:     "Total Contingent Assets",
	contingentLiabilityTotal: "Total Contingent Liabilities",
}

func labelsFor(form types.FormKind) labelSet {
	if form == types.FormLong {
		return longLabels
	}
	return shortLabels
}

// buildEntries applies the catalog to the aggregated data, producing the
// logical text and checkbox values for one fill. Resolution against the
// template's actual field names happens later; anything the template does
// not declare is skipped there.
func buildEntries(form types.FormKind, d *fillData) ([]textEntry, []checkEntry) {
	labels := labelsFor(form)

	texts := make([]textEntry, 0, 64)
	checks := make([]checkEntry, 0, 8)

	if d.caption != nil {
		texts = appendText(texts, labels.caseNumber, d.caption.caseNumber)
		texts = appendText(texts, labels.division, d.caption.division)
		texts = appendText(texts, labels.circuit, d.caption.circuitName)
		texts = appendText(texts, labels.county, d.caption.countyName)
		texts = appendText(texts, labels.petitionerName, d.caption.petitionerName)
		texts = appendText(texts, labels.respondentName, d.caption.respondentName)
	}

	if d.target != nil {
		texts = appendText(texts, labels.fullName, d.target.DisplayName())
	}

	if len(d.employment) == 0 {
		checks = append(checks, checkEntry{label: labels.unemployed, on: true})
	} else {
		// The form has one employment block; the earliest-created row is
		// treated as primary.
		primary := d.employment[0]
		texts = appendText(texts, labels.employer, primary.EmployerName)
		texts = appendText(texts, labels.occupation, utils.PtrString(primary.Occupation))
		texts = appendText(texts, labels.payRate, money(primary.PayRate))

		// Frequency checkboxes are mutually exclusive: exactly one of the
		// recognized boxes, or the catch-all, is checked.
		if label, ok := labels.freqChecks[primary.PayFrequencyTypeID]; ok {
			checks = append(checks, checkEntry{label: label, on: true})
		} else {
			checks = append(checks, checkEntry{label: labels.freqOther, on: true})
		}
	}

	incomeTotals := SumMonthlyByType(d.incomes)
	for _, typeID := range sortedKeys(incomeTotals) {
		if typeID == types.MonthlyIncomeOtherTypeID {
			continue
		}
		if label, ok := labels.incomeTypes[typeID]; ok {
			texts = appendText(texts, label, money(incomeTotals[typeID]))
		}
	}
	if otherTotal, otherDesc := OtherMonthly(d.incomes, types.MonthlyIncomeOtherTypeID); otherTotal > 0 {
		texts = appendText(texts, labels.incomeTypes[types.MonthlyIncomeOtherTypeID], money(otherTotal))
		texts = appendText(texts, labels.incomeOther, otherDesc)
	}

	dedTotals := SumMonthlyByType(d.deductions)
	for _, typeID := range sortedKeys(dedTotals) {
		if label, ok := labels.dedTypes[typeID]; ok {
			texts = appendText(texts, label, money(dedTotals[typeID]))
		}
	}

	expenseTotals := SumMonthlyByType(d.expenses)
	for _, typeID := range sortedKeys(expenseTotals) {
		if typeID == types.HouseholdExpenseOtherTypeID {
			continue
		}
		if label, ok := labels.expenseTypes[typeID]; ok {
			texts = appendText(texts, label, money(expenseTotals[typeID]))
		}
	}
	if otherTotal, otherDesc := OtherMonthly(d.expenses, types.HouseholdExpenseOtherTypeID); otherTotal > 0 {
		texts = appendText(texts, labels.expenseTypes[types.HouseholdExpenseOtherTypeID], money(otherTotal))
		texts = appendText(texts, labels.expenseOther, otherDesc)
	}

	totals := ComputeTotals(SumMonthly(d.incomes), SumMonthly(d.deductions), SumMonthly(d.expenses))
	texts = appendText(texts, labels.grossMonthly, money(totals.MonthlyIncome))
	texts = appendText(texts, labels.grossAnnual, money(d.summary.GrossAnnualIncomeFromEmployment))
	texts = appendText(texts, labels.totalDeductions, money(totals.MonthlyDeductions))
	texts = appendText(texts, labels.netMonthly, money(totals.NetMonthly))
	texts = appendText(texts, labels.totalExpenses, money(totals.MonthlyExpenses))
	if totals.Deficit > 0 {
		texts = appendText(texts, labels.deficit, money(totals.Deficit))
	} else {
		texts = appendText(texts, labels.surplus, money(totals.Surplus))
	}

	texts = appendText(texts, labels.assetTotal, money(SumAssets(d.assets)))
	texts = appendText(texts, labels.liabilityTotal, money(SumLiabilities(d.liabilities)))
	texts = appendText(texts, labels.contingentAssetTotal, money(SumContingentAssets(d.contingentAssets)))
	texts = appendText(texts, labels.contingentLiabilityTotal, money(SumContingentLiabilities(d.contingentLiabilities)))

	return texts, checks
}

func appendText(entries []textEntry, label, value string) []textEntry {
	if label == "" || value == "" {
		return entries
	}
	return append(entries, textEntry{label: label, value: value})
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
