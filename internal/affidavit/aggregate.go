package affidavit

import (
	"math"
	"strings"

	"affidavit/pkg/types"
)

// validAmount guards against malformed legacy rows (NaN/Inf amounts stored
// by earlier imports). Such rows are skipped silently rather than aborting
// the whole aggregation.
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SumMonthlyByType folds monthly line rows into per-type totals. The result
// is independent of row order.
func SumMonthlyByType(rows []*types.MonthlyLine) map[int]float64 {
	totals := make(map[int]float64, len(rows))
	for _, row := range rows {
		if row.TypeID < 1 || !validAmount(row.Amount) {
			continue
		}
		totals[row.TypeID] += row.Amount
	}
	return totals
}

func SumMonthly(rows []*types.MonthlyLine) float64 {
	var total float64
	for _, row := range rows {
		if row.TypeID < 1 || !validAmount(row.Amount) {
			continue
		}
		total += row.Amount
	}
	return total
}

// OtherMonthly extracts the single "other" slot for a category: the summed
// amount of every row carrying the other type id, described by the first
// row's free text. The official form has exactly one blank for this, so
// additional descriptions are not carried; preserving that collapse is
// deliberate.
func OtherMonthly(rows []*types.MonthlyLine, otherTypeID int) (float64, string) {
	var total float64
	var description string
	for _, row := range rows {
		if row.TypeID != otherTypeID || !validAmount(row.Amount) {
			continue
		}
		total += row.Amount
		if description == "" && row.IfOther != nil {
			description = strings.TrimSpace(*row.IfOther)
		}
	}
	return total, description
}

func SumAssets(rows []*types.Asset) float64 {
	var total float64
	for _, row := range rows {
		if !validAmount(row.MarketValue) {
			continue
		}
		total += row.MarketValue
	}
	return total
}

func OtherAssets(rows []*types.Asset) (float64, string) {
	var total float64
	var description string
	for _, row := range rows {
		if row.TypeID != types.AssetOtherTypeID || !validAmount(row.MarketValue) {
			continue
		}
		total += row.MarketValue
		if description == "" {
			description = strings.TrimSpace(row.Description)
		}
	}
	return total, description
}

func SumLiabilities(rows []*types.Liability) float64 {
	var total float64
	for _, row := range rows {
		if !validAmount(row.AmountOwed) {
			continue
		}
		total += row.AmountOwed
	}
	return total
}

func OtherLiabilities(rows []*types.Liability) (float64, string) {
	var total float64
	var description string
	for _, row := range rows {
		if row.TypeID != types.LiabilityOtherTypeID || !validAmount(row.AmountOwed) {
			continue
		}
		total += row.AmountOwed
		if description == "" {
			description = strings.TrimSpace(row.Description)
		}
	}
	return total, description
}

func SumContingentAssets(rows []*types.ContingentAsset) float64 {
	var total float64
	for _, row := range rows {
		if !validAmount(row.PossibleValue) {
			continue
		}
		total += row.PossibleValue
	}
	return total
}

func SumContingentLiabilities(rows []*types.ContingentLiability) float64 {
	var total float64
	for _, row := range rows {
		if !validAmount(row.PossibleAmountOwed) {
			continue
		}
		total += row.PossibleAmountOwed
	}
	return total
}

// Totals holds the computed monthly bottom line. Surplus and Deficit are
// mutually exclusive: exactly one is populated, the other stays zero.
type Totals struct {
	MonthlyIncome     float64
	MonthlyDeductions float64
	NetMonthly        float64
	MonthlyExpenses   float64
	Surplus           float64
	Deficit           float64
}

func ComputeTotals(monthlyIncome, monthlyDeductions, monthlyExpenses float64) Totals {
	t := Totals{
		MonthlyIncome:     monthlyIncome,
		MonthlyDeductions: monthlyDeductions,
		NetMonthly:        monthlyIncome - monthlyDeductions,
		MonthlyExpenses:   monthlyExpenses,
	}

	remainder := t.NetMonthly - monthlyExpenses
	if remainder >= 0 {
		t.Surplus = remainder
	} else {
		t.Deficit = -remainder
	}

	return t
}
