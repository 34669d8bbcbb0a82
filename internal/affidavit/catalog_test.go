package affidavit

import (
	"testing"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1234.5, "1234.50"},
		{0.005, "0.01"},
		{52000, "52000.00"},
	}
	for _, tc := range cases {
		if got := money(tc.in); got != tc.want {
			t.Errorf("money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func findText(entries []textEntry, label string) (string, bool) {
	for _, e := range entries {
		if e.label == label {
			return e.value, true
		}
	}
	return "", false
}

func findCheck(entries []checkEntry, label string) (bool, bool) {
	for _, e := range entries {
		if e.label == label {
			return e.on, true
		}
	}
	return false, false
}

func testFillData() *fillData {
	return &fillData{
		target: &types.User{
			ID:         "pet-1",
			GivenName:  utils.StringPtr("Pat"),
			FamilyName: utils.StringPtr("Example"),
		},
		employment: []*types.Employment{
			{
				EmployerName:       "Acme",
				Occupation:         utils.StringPtr("Engineer"),
				PayRate:            1000,
				PayFrequencyTypeID: types.PayFrequencyWeekly,
			},
		},
		incomes: []*types.MonthlyLine{
			monthlyRow(1, 4000),
			{TypeID: types.MonthlyIncomeOtherTypeID, Amount: 200, IfOther: utils.StringPtr("gift")},
			{TypeID: types.MonthlyIncomeOtherTypeID, Amount: 100, IfOther: utils.StringPtr("royalty")},
		},
		deductions: []*types.MonthlyLine{monthlyRow(1, 900)},
		expenses:   []*types.MonthlyLine{monthlyRow(1, 2000)},
		summary: &types.IncomeSummary{
			GrossAnnualIncomeFromEmployment: 52000,
			Form:                            types.FormLong,
		},
	}
}

func TestBuildEntriesEmployment(t *testing.T) {
	d := testFillData()
	texts, checks := buildEntries(types.FormLong, d)

	if got, ok := findText(texts, "Employed by"); !ok || got != "Acme" {
		t.Errorf("employer entry = %q, found %v", got, ok)
	}
	if got, ok := findText(texts, "Pay rate"); !ok || got != "1000.00" {
		t.Errorf("pay rate entry = %q, found %v", got, ok)
	}

	// Exactly one frequency box is on and the unemployed box is absent.
	if on, ok := findCheck(checks, "every week"); !ok || !on {
		t.Errorf("weekly check = %v, found %v", on, ok)
	}
	if _, ok := findCheck(checks, "Unemployed"); ok {
		t.Error("unemployed box must not appear when employment exists")
	}
	if len(checks) != 1 {
		t.Errorf("got %d checks, want 1: %+v", len(checks), checks)
	}
}

func TestBuildEntriesUnemployed(t *testing.T) {
	d := testFillData()
	d.employment = nil
	_, checks := buildEntries(types.FormLong, d)

	if on, ok := findCheck(checks, "Unemployed"); !ok || !on {
		t.Errorf("unemployed check = %v, found %v", on, ok)
	}
	if len(checks) != 1 {
		t.Errorf("got %d checks, want 1: %+v", len(checks), checks)
	}
}

func TestBuildEntriesFrequencyWithoutBox(t *testing.T) {
	d := testFillData()
	d.employment[0].PayFrequencyTypeID = types.PayFrequencyQuarterly
	_, checks := buildEntries(types.FormLong, d)

	if on, ok := findCheck(checks, "other frequency"); !ok || !on {
		t.Errorf("other-frequency check = %v, found %v", on, ok)
	}
}

func TestBuildEntriesOtherIncomeCollapses(t *testing.T) {
	d := testFillData()
	texts, _ := buildEntries(types.FormLong, d)

	if got, ok := findText(texts, incomeTypeLabels[types.MonthlyIncomeOtherTypeID]); !ok || got != "300.00" {
		t.Errorf("other income total = %q, found %v, want 300.00", got, ok)
	}
	if got, ok := findText(texts, "other income specify"); !ok || got != "gift" {
		t.Errorf("other income description = %q, found %v, want gift", got, ok)
	}
}

func TestBuildEntriesTotals(t *testing.T) {
	d := testFillData()
	texts, _ := buildEntries(types.FormLong, d)

	labels := labelsFor(types.FormLong)
	if got, _ := findText(texts, labels.grossMonthly); got != "4300.00" {
		t.Errorf("gross monthly = %q, want 4300.00", got)
	}
	if got, _ := findText(texts, labels.netMonthly); got != "3400.00" {
		t.Errorf("net monthly = %q, want 3400.00", got)
	}
	if got, _ := findText(texts, labels.surplus); got != "1400.00" {
		t.Errorf("surplus = %q, want 1400.00", got)
	}
	if _, ok := findText(texts, labels.deficit); ok {
		t.Error("deficit entry must be absent when there is a surplus")
	}
}

func TestBuildEntriesDeficitExcludesSurplus(t *testing.T) {
	d := testFillData()
	d.expenses = []*types.MonthlyLine{monthlyRow(1, 5000)}
	texts, _ := buildEntries(types.FormLong, d)

	labels := labelsFor(types.FormLong)
	if got, _ := findText(texts, labels.deficit); got != "1600.00" {
		t.Errorf("deficit = %q, want 1600.00", got)
	}
	if _, ok := findText(texts, labels.surplus); ok {
		t.Error("surplus entry must be absent when there is a deficit")
	}
}

func TestRenderGenericProducesPDF(t *testing.T) {
	d := testFillData()
	d.caption = &caption{
		caseNumber:     "2026-DR-001234",
		division:       "Family",
		circuitName:    "Eleventh",
		countyName:     "Miami-Dade",
		petitionerName: "Pat Example",
		respondentName: "Riley Example",
	}

	out, err := renderGeneric(types.FormLong, d)
	if err != nil {
		t.Fatalf("renderGeneric: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if string(out[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header: %q", out[:5])
	}
}
