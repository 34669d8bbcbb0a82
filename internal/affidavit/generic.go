package affidavit

import (
	"bytes"
	"fmt"

	"affidavit/internal/utils"
	"affidavit/pkg/types"

	"github.com/go-pdf/fpdf"
)

// dollarAmount is the human-readable currency format used by the generic
// view, distinct from the bare two-decimal strings written into the
// official form fields.
func dollarAmount(v float64) string {
	return fmt.Sprintf("$%.2f", utils.RoundFloat64(v, 2))
}

// renderGeneric produces the non-statutory tabular affidavit: every
// category listed row by row with its totals, headed by the case caption
// when one was determined.
func renderGeneric(form types.FormKind, d *fillData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Family Law Financial Affidavit (%s form)", form), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	if d.caption != nil {
		if d.caption.circuitName != "" || d.caption.countyName != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("In the Circuit Court of the %s Judicial Circuit, in and for %s County",
				d.caption.circuitName, d.caption.countyName), "", 1, "C", false, 0, "")
		}
		if d.caption.caseNumber != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("Case No. %s    Division %s", d.caption.caseNumber, d.caption.division), "", 1, "C", false, 0, "")
		}
		if d.caption.petitionerName != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("%s, Petitioner, v. %s, Respondent",
				d.caption.petitionerName, d.caption.respondentName), "", 1, "C", false, 0, "")
		}
		pdf.Ln(3)
	}

	if d.target != nil {
		row(pdf, "Full legal name", d.target.DisplayName())
		pdf.Ln(2)
	}

	section(pdf, "Employment")
	if len(d.employment) == 0 {
		row(pdf, "Employment", "Unemployed")
	}
	for _, job := range d.employment {
		label := job.EmployerName
		if job.Occupation != nil && *job.Occupation != "" {
			label = fmt.Sprintf("%s (%s)", job.EmployerName, *job.Occupation)
		}
		row(pdf, label, fmt.Sprintf("%s %s", dollarAmount(job.PayRate), frequencyLabel(job)))
	}
	row(pdf, "Gross annual income from employment", dollarAmount(d.summary.GrossAnnualIncomeFromEmployment))
	pdf.Ln(2)

	totals := ComputeTotals(SumMonthly(d.incomes), SumMonthly(d.deductions), SumMonthly(d.expenses))

	section(pdf, "Monthly Income")
	for _, item := range d.summary.MonthlyIncomeBreakdown {
		row(pdf, item.TypeName, dollarAmount(item.Amount))
	}
	row(pdf, "Total monthly income", dollarAmount(totals.MonthlyIncome))
	pdf.Ln(2)

	section(pdf, "Monthly Deductions")
	for _, t := range sortedTotalList(SumMonthlyByType(d.deductions)) {
		row(pdf, typeLabel(d.deductionNames, t.typeID), dollarAmount(t.amount))
	}
	row(pdf, "Total monthly deductions", dollarAmount(totals.MonthlyDeductions))
	row(pdf, "Net monthly income", dollarAmount(totals.NetMonthly))
	pdf.Ln(2)

	section(pdf, "Monthly Household Expenses")
	for _, t := range sortedTotalList(SumMonthlyByType(d.expenses)) {
		row(pdf, typeLabel(d.expenseNames, t.typeID), dollarAmount(t.amount))
	}
	row(pdf, "Total monthly expenses", dollarAmount(totals.MonthlyExpenses))
	if totals.Deficit > 0 {
		row(pdf, "Monthly deficit", dollarAmount(totals.Deficit))
	} else {
		row(pdf, "Monthly surplus", dollarAmount(totals.Surplus))
	}
	pdf.Ln(2)

	section(pdf, "Assets")
	for _, a := range d.assets {
		row(pdf, a.Description, dollarAmount(a.MarketValue))
	}
	for _, a := range d.contingentAssets {
		row(pdf, fmt.Sprintf("%s (contingent)", a.Description), dollarAmount(a.PossibleValue))
	}
	row(pdf, "Total assets", dollarAmount(SumAssets(d.assets)))
	row(pdf, "Total contingent assets", dollarAmount(SumContingentAssets(d.contingentAssets)))
	pdf.Ln(2)

	section(pdf, "Liabilities")
	for _, l := range d.liabilities {
		row(pdf, l.Description, dollarAmount(l.AmountOwed))
	}
	for _, l := range d.contingentLiabilities {
		row(pdf, fmt.Sprintf("%s (contingent)", l.Description), dollarAmount(l.PossibleAmountOwed))
	}
	row(pdf, "Total liabilities", dollarAmount(SumLiabilities(d.liabilities)))
	row(pdf, "Total contingent liabilities", dollarAmount(SumContingentLiabilities(d.contingentLiabilities)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render generic affidavit pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(130, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "R", false, 0, "")
}

func frequencyLabel(job *types.Employment) string {
	switch job.PayFrequencyTypeID {
	case types.PayFrequencyWeekly:
		return "weekly"
	case types.PayFrequencyBiweekly:
		return "every other week"
	case types.PayFrequencyMonthly:
		return "monthly"
	case types.PayFrequencySemimonthly:
		return "twice a month"
	case types.PayFrequencyAnnually:
		return "annually"
	case types.PayFrequencySemiannually:
		return "twice a year"
	case types.PayFrequencyQuarterly:
		return "quarterly"
	case types.PayFrequencyDaily:
		return "daily"
	case types.PayFrequencyHourly:
		return "hourly"
	}
	if job.PayFrequencyIfOther != nil && *job.PayFrequencyIfOther != "" {
		return *job.PayFrequencyIfOther
	}
	return "other"
}

func typeLabel(names map[int]string, typeID int) string {
	if name, ok := names[typeID]; ok {
		return name
	}
	return fmt.Sprintf("Type %d", typeID)
}

type typeTotal struct {
	typeID int
	amount float64
}

func sortedTotalList(m map[int]float64) []typeTotal {
	out := make([]typeTotal, 0, len(m))
	for _, typeID := range sortedKeys(m) {
		out = append(out, typeTotal{typeID: typeID, amount: m[typeID]})
	}
	return out
}
