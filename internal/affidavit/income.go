package affidavit

import (
	"context"
	"fmt"
	"sort"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

// annualMultiplier converts a pay-frequency type id into the factor applied
// to a single pay rate for a year. Daily assumes a 5-day week, hourly a
// 40-hour week. Unrecognized or "other" frequencies return 0: an unknown
// cadence is never guessed at.
func annualMultiplier(payFrequencyTypeID int) float64 {
	switch payFrequencyTypeID {
	case types.PayFrequencyWeekly:
		return 52
	case types.PayFrequencyBiweekly:
		return 26
	case types.PayFrequencyMonthly:
		return 12
	case types.PayFrequencySemimonthly:
		return 24
	case types.PayFrequencyAnnually:
		return 1
	case types.PayFrequencySemiannually:
		return 2
	case types.PayFrequencyQuarterly:
		return 4
	case types.PayFrequencyDaily:
		return 260
	case types.PayFrequencyHourly:
		return 2080
	}
	return 0
}

// GrossAnnualFromEmployment annualizes and sums every employment row with a
// positive pay rate and a recognized frequency. A party may hold multiple
// jobs; all contribute. This figure alone drives form selection.
func GrossAnnualFromEmployment(rows []*types.Employment) float64 {
	var total float64
	for _, row := range rows {
		if row.PayRate <= 0 {
			continue
		}
		total += row.PayRate * annualMultiplier(row.PayFrequencyTypeID)
	}
	return total
}

// ClassifyForm applies the statutory threshold. Exactly the threshold is
// long form.
func ClassifyForm(grossAnnualFromEmployment float64) types.FormKind {
	if grossAnnualFromEmployment < types.IncomeThreshold {
		return types.FormShort
	}
	return types.FormLong
}

// IncomeSummary computes the classification summary for a resolved target.
// The monthly-income figures are reported for display only and never feed
// the threshold.
func (e *Engine) IncomeSummary(ctx context.Context, targetUserID string) (*types.IncomeSummary, error) {
	employment, err := e.employment.ByOwner(ctx, targetUserID)
	if err != nil {
		e.logger.WithError(err).WithField("target_user_id", targetUserID).
			Warn("employment rows unavailable, summarizing without them")
		employment = nil
	}

	incomes, err := e.lines.ByOwner(ctx, types.CategoryMonthlyIncome, targetUserID)
	if err != nil {
		e.logger.WithError(err).WithField("target_user_id", targetUserID).
			Warn("monthly income rows unavailable, summarizing without them")
		incomes = nil
	}

	return e.summarize(ctx, employment, incomes), nil
}

// summarize builds the classification summary from already-loaded rows.
func (e *Engine) summarize(ctx context.Context, employment []*types.Employment, incomes []*types.MonthlyLine) *types.IncomeSummary {
	fromEmployment := GrossAnnualFromEmployment(employment)
	monthlyIncome := SumMonthly(incomes)

	summary := &types.IncomeSummary{
		GrossAnnualIncome:                   utils.RoundFloat64(fromEmployment, 2),
		GrossAnnualIncomeFromEmployment:     utils.RoundFloat64(fromEmployment, 2),
		GrossMonthlyIncomeFromMonthlyIncome: utils.RoundFloat64(monthlyIncome, 2),
		GrossAnnualIncomeFromMonthlyIncome:  utils.RoundFloat64(monthlyIncome*12, 2),
		Threshold:                           types.IncomeThreshold,
		Form:                                ClassifyForm(fromEmployment),
		MonthlyIncomeBreakdown:              e.incomeBreakdown(ctx, incomes),
	}

	return summary
}

// incomeBreakdown joins per-type monthly income totals against the lookup
// names. A join miss degrades to a synthetic "Type {id}" label.
func (e *Engine) incomeBreakdown(ctx context.Context, incomes []*types.MonthlyLine) []types.IncomeBreakdownItem {
	totals := SumMonthlyByType(incomes)

	names, err := e.lookups.TypeNames(ctx, string(types.CategoryMonthlyIncome))
	if err != nil {
		e.logger.WithError(err).Warn("income type names unavailable, using synthetic labels")
		names = nil
	}

	typeIDs := make([]int, 0, len(totals))
	for typeID := range totals {
		typeIDs = append(typeIDs, typeID)
	}
	sort.Ints(typeIDs)

	breakdown := make([]types.IncomeBreakdownItem, 0, len(typeIDs))
	for _, typeID := range typeIDs {
		name, ok := names[typeID]
		if !ok {
			name = fmt.Sprintf("Type %d", typeID)
		}
		breakdown = append(breakdown, types.IncomeBreakdownItem{
			TypeID:   typeID,
			TypeName: name,
			Amount:   utils.RoundFloat64(totals[typeID], 2),
		})
	}

	return breakdown
}
