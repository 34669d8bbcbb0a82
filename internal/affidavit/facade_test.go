package affidavit

import (
	"context"
	"testing"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

func TestSummary(t *testing.T) {
	fx := newEngineFixture()
	fx.employment.rows["pet-1"] = []*types.Employment{
		employmentRow(1000, types.PayFrequencyWeekly),
	}
	fx.lines.rows["pet-1"] = map[types.LineCategory][]*types.MonthlyLine{
		types.CategoryMonthlyIncome: {
			monthlyRow(1, 4000),
			monthlyRow(10, 50),
		},
	}
	fx.lookups.typeNames[string(types.CategoryMonthlyIncome)] = map[int]string{
		1: "Monthly gross salary or wages",
	}
	e := fx.engine(t)

	principal := Principal{ID: "pet-1", Role: types.RolePetitioner}
	summary, err := e.Summary(context.Background(), principal, Query{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.GrossAnnualIncomeFromEmployment != 52000 {
		t.Errorf("GrossAnnualIncomeFromEmployment = %v, want 52000", summary.GrossAnnualIncomeFromEmployment)
	}
	if summary.Form != types.FormLong {
		t.Errorf("Form = %v, want long", summary.Form)
	}
	if summary.GrossMonthlyIncomeFromMonthlyIncome != 4050 {
		t.Errorf("GrossMonthlyIncomeFromMonthlyIncome = %v, want 4050", summary.GrossMonthlyIncomeFromMonthlyIncome)
	}
	if summary.GrossAnnualIncomeFromMonthlyIncome != 48600 {
		t.Errorf("GrossAnnualIncomeFromMonthlyIncome = %v, want 48600", summary.GrossAnnualIncomeFromMonthlyIncome)
	}
	if summary.Threshold != types.IncomeThreshold {
		t.Errorf("Threshold = %v, want %v", summary.Threshold, types.IncomeThreshold)
	}

	if len(summary.MonthlyIncomeBreakdown) != 2 {
		t.Fatalf("breakdown has %d items, want 2", len(summary.MonthlyIncomeBreakdown))
	}
	if summary.MonthlyIncomeBreakdown[0].TypeName != "Monthly gross salary or wages" {
		t.Errorf("breakdown[0].TypeName = %q", summary.MonthlyIncomeBreakdown[0].TypeName)
	}
	// No lookup row for type 10: synthetic label.
	if summary.MonthlyIncomeBreakdown[1].TypeName != "Type 10" {
		t.Errorf("breakdown[1].TypeName = %q, want %q", summary.MonthlyIncomeBreakdown[1].TypeName, "Type 10")
	}
}

func TestSummaryExplicitFormOverride(t *testing.T) {
	fx := newEngineFixture()
	fx.employment.rows["pet-1"] = []*types.Employment{
		employmentRow(1000, types.PayFrequencyWeekly),
	}
	e := fx.engine(t)

	principal := Principal{ID: "pet-1", Role: types.RolePetitioner}
	summary, err := e.Summary(context.Background(), principal, Query{Form: "short"})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	// The override changes the form without recomputing the income figures.
	if summary.Form != types.FormShort {
		t.Errorf("Form = %v, want short", summary.Form)
	}
	if summary.GrossAnnualIncomeFromEmployment != 52000 {
		t.Errorf("GrossAnnualIncomeFromEmployment = %v, want 52000", summary.GrossAnnualIncomeFromEmployment)
	}
}

func TestSummaryInvalidForm(t *testing.T) {
	fx := newEngineFixture()
	e := fx.engine(t)

	principal := Principal{ID: "pet-1", Role: types.RolePetitioner}
	if _, err := e.Summary(context.Background(), principal, Query{Form: "medium"}); err == nil {
		t.Error("expected error for invalid form value")
	}
}

func TestResolveCaption(t *testing.T) {
	fx := newEngineFixture()
	fx.users.users["pet-1"] = &types.User{
		ID:         "pet-1",
		GivenName:  utils.StringPtr("Pat"),
		FamilyName: utils.StringPtr("Example"),
	}
	fx.users.users["resp-1"] = &types.User{
		ID:         "resp-1",
		GivenName:  utils.StringPtr("Riley"),
		FamilyName: utils.StringPtr("Example"),
	}
	fx.cases.cases["case-1"] = &types.Case{
		ID:           "case-1",
		PetitionerID: "pet-1",
		RespondentID: utils.StringPtr("resp-1"),
		CircuitID:    utils.IntPtr(11),
		CountyID:     utils.IntPtr(1),
		CaseNumber:   utils.StringPtr("2026-DR-001234"),
		Division:     utils.StringPtr("Family"),
	}
	fx.lookups.circuits[11] = "Eleventh"
	fx.lookups.counties[1] = "Miami-Dade"
	e := fx.engine(t)

	t.Run("explicit case", func(t *testing.T) {
		c := e.resolveCaption(context.Background(), "pet-1", "case-1")
		if c == nil {
			t.Fatal("expected a caption")
		}
		if c.caseNumber != "2026-DR-001234" || c.division != "Family" {
			t.Errorf("caption heading = %q / %q", c.caseNumber, c.division)
		}
		if c.circuitName != "Eleventh" || c.countyName != "Miami-Dade" {
			t.Errorf("caption venue = %q / %q", c.circuitName, c.countyName)
		}
		if c.petitionerName != "Pat Example" || c.respondentName != "Riley Example" {
			t.Errorf("caption parties = %q / %q", c.petitionerName, c.respondentName)
		}
	})

	t.Run("explicit case excluding the target falls back", func(t *testing.T) {
		fx.cases.cases["case-2"] = &types.Case{ID: "case-2", PetitionerID: "someone-else"}
		c := e.resolveCaption(context.Background(), "pet-1", "case-2")
		if c == nil {
			t.Fatal("expected fallback caption")
		}
		if c.caseNumber != "2026-DR-001234" {
			t.Errorf("caseNumber = %q, want the target's own case", c.caseNumber)
		}
	})

	t.Run("no case at all", func(t *testing.T) {
		if c := e.resolveCaption(context.Background(), "stranger", ""); c != nil {
			t.Errorf("expected nil caption, got %+v", c)
		}
	})
}

func TestLoadAllDegradesToEmpty(t *testing.T) {
	fx := newEngineFixture()
	e := fx.engine(t)

	d, err := e.loadAll(context.Background(), "ghost", "")
	if err != nil {
		t.Fatalf("loadAll: %v", err)
	}
	if d.target != nil {
		t.Errorf("target = %+v, want nil for unknown user", d.target)
	}
	if d.summary == nil {
		t.Fatal("summary must always be populated")
	}
	if d.summary.Form != types.FormShort {
		t.Errorf("empty data classifies as %v, want short", d.summary.Form)
	}
}
