package affidavit

import (
	"math"
	"testing"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

func monthlyRow(typeID int, amount float64) *types.MonthlyLine {
	return &types.MonthlyLine{TypeID: typeID, Amount: amount}
}

func TestSumMonthlyByType(t *testing.T) {
	rows := []*types.MonthlyLine{
		monthlyRow(1, 500),
		monthlyRow(2, 100),
		monthlyRow(1, 250),
	}

	totals := SumMonthlyByType(rows)
	if totals[1] != 750 {
		t.Errorf("type 1 total = %v, want 750", totals[1])
	}
	if totals[2] != 100 {
		t.Errorf("type 2 total = %v, want 100", totals[2])
	}

	// Row order must not change the result.
	reversed := []*types.MonthlyLine{rows[2], rows[1], rows[0]}
	reversedTotals := SumMonthlyByType(reversed)
	for typeID, want := range totals {
		if got := reversedTotals[typeID]; got != want {
			t.Errorf("reversed type %d total = %v, want %v", typeID, got, want)
		}
	}
}

func TestSumMonthlySkipsInvalidRows(t *testing.T) {
	rows := []*types.MonthlyLine{
		monthlyRow(1, 500),
		monthlyRow(0, 999),
		monthlyRow(2, math.NaN()),
		monthlyRow(3, math.Inf(1)),
	}

	if got := SumMonthly(rows); got != 500 {
		t.Errorf("SumMonthly = %v, want 500", got)
	}

	totals := SumMonthlyByType(rows)
	if len(totals) != 1 || totals[1] != 500 {
		t.Errorf("SumMonthlyByType = %v, want map[1:500]", totals)
	}
}

func TestOtherMonthly(t *testing.T) {
	rows := []*types.MonthlyLine{
		monthlyRow(1, 500),
		{TypeID: types.MonthlyIncomeOtherTypeID, Amount: 200, IfOther: utils.StringPtr("gift")},
		{TypeID: types.MonthlyIncomeOtherTypeID, Amount: 100, IfOther: utils.StringPtr("royalty")},
	}

	total, description := OtherMonthly(rows, types.MonthlyIncomeOtherTypeID)
	if total != 300 {
		t.Errorf("other total = %v, want 300", total)
	}
	// The form has one description blank; only the first survives.
	if description != "gift" {
		t.Errorf("other description = %q, want %q", description, "gift")
	}

	// The typed total is unaffected by other-slot rows.
	if totals := SumMonthlyByType(rows); totals[1] != 500 {
		t.Errorf("type 1 total = %v, want 500", totals[1])
	}
}

func TestOtherMonthlyEmpty(t *testing.T) {
	total, description := OtherMonthly(nil, types.MonthlyIncomeOtherTypeID)
	if total != 0 || description != "" {
		t.Errorf("got (%v, %q), want (0, \"\")", total, description)
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("surplus", func(t *testing.T) {
		totals := ComputeTotals(5000, 1000, 3000)
		if totals.NetMonthly != 4000 {
			t.Errorf("NetMonthly = %v, want 4000", totals.NetMonthly)
		}
		if totals.Surplus != 1000 || totals.Deficit != 0 {
			t.Errorf("got surplus=%v deficit=%v, want surplus=1000 deficit=0", totals.Surplus, totals.Deficit)
		}
	})

	t.Run("deficit", func(t *testing.T) {
		totals := ComputeTotals(3000, 1000, 2500)
		if totals.Surplus != 0 || totals.Deficit != 500 {
			t.Errorf("got surplus=%v deficit=%v, want surplus=0 deficit=500", totals.Surplus, totals.Deficit)
		}
	})

	t.Run("break even counts as surplus", func(t *testing.T) {
		totals := ComputeTotals(3000, 1000, 2000)
		if totals.Surplus != 0 || totals.Deficit != 0 {
			t.Errorf("got surplus=%v deficit=%v, want both zero", totals.Surplus, totals.Deficit)
		}
	})
}

func TestAssetAndLiabilitySums(t *testing.T) {
	assets := []*types.Asset{
		{TypeID: 2, Description: "Checking", MarketValue: 1500},
		{TypeID: types.AssetOtherTypeID, Description: "Coin collection", MarketValue: 800},
	}
	if got := SumAssets(assets); got != 2300 {
		t.Errorf("SumAssets = %v, want 2300", got)
	}

	otherTotal, otherDesc := OtherAssets(assets)
	if otherTotal != 800 || otherDesc != "Coin collection" {
		t.Errorf("OtherAssets = (%v, %q), want (800, %q)", otherTotal, otherDesc, "Coin collection")
	}

	liabilities := []*types.Liability{
		{TypeID: 2, Description: "Visa", AmountOwed: 4200},
		{TypeID: types.LiabilityOtherTypeID, Description: "Personal loan", AmountOwed: 1000},
	}
	if got := SumLiabilities(liabilities); got != 5200 {
		t.Errorf("SumLiabilities = %v, want 5200", got)
	}

	otherTotal, otherDesc = OtherLiabilities(liabilities)
	if otherTotal != 1000 || otherDesc != "Personal loan" {
		t.Errorf("OtherLiabilities = (%v, %q), want (1000, %q)", otherTotal, otherDesc, "Personal loan")
	}
}

func TestContingentSums(t *testing.T) {
	assets := []*types.ContingentAsset{
		{Description: "Pending lawsuit", PossibleValue: 10000},
		{Description: "Inheritance", PossibleValue: 5000},
	}
	if got := SumContingentAssets(assets); got != 15000 {
		t.Errorf("SumContingentAssets = %v, want 15000", got)
	}

	liabilities := []*types.ContingentLiability{
		{Description: "Co-signed note", PossibleAmountOwed: 7500},
	}
	if got := SumContingentLiabilities(liabilities); got != 7500 {
		t.Errorf("SumContingentLiabilities = %v, want 7500", got)
	}
}
