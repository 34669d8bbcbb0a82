package affidavit

import (
	"testing"

	"affidavit/pkg/types"
)

func employmentRow(payRate float64, frequencyTypeID int) *types.Employment {
	return &types.Employment{
		EmployerName:       "Acme",
		PayRate:            payRate,
		PayFrequencyTypeID: frequencyTypeID,
	}
}

func TestAnnualMultiplier(t *testing.T) {
	cases := []struct {
		name            string
		frequencyTypeID int
		want            float64
	}{
		{"weekly", types.PayFrequencyWeekly, 52},
		{"biweekly", types.PayFrequencyBiweekly, 26},
		{"monthly", types.PayFrequencyMonthly, 12},
		{"semimonthly", types.PayFrequencySemimonthly, 24},
		{"annually", types.PayFrequencyAnnually, 1},
		{"semiannually", types.PayFrequencySemiannually, 2},
		{"quarterly", types.PayFrequencyQuarterly, 4},
		{"daily", types.PayFrequencyDaily, 260},
		{"hourly", types.PayFrequencyHourly, 2080},
		{"unrecognized", 42, 0},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := annualMultiplier(tc.frequencyTypeID); got != tc.want {
				t.Errorf("annualMultiplier(%d) = %v, want %v", tc.frequencyTypeID, got, tc.want)
			}
		})
	}
}

func TestGrossAnnualFromEmployment(t *testing.T) {
	t.Run("single weekly job", func(t *testing.T) {
		rows := []*types.Employment{employmentRow(1000, types.PayFrequencyWeekly)}
		if got := GrossAnnualFromEmployment(rows); got != 52000 {
			t.Errorf("got %v, want 52000", got)
		}
	})

	t.Run("multiple jobs all contribute", func(t *testing.T) {
		rows := []*types.Employment{
			employmentRow(800, types.PayFrequencyMonthly),
			employmentRow(500, types.PayFrequencyBiweekly),
		}
		if got := GrossAnnualFromEmployment(rows); got != 800*12+500*26 {
			t.Errorf("got %v, want %v", got, float64(800*12+500*26))
		}
	})

	t.Run("non-positive pay rate is skipped", func(t *testing.T) {
		rows := []*types.Employment{
			employmentRow(0, types.PayFrequencyWeekly),
			employmentRow(-100, types.PayFrequencyWeekly),
		}
		if got := GrossAnnualFromEmployment(rows); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("unrecognized frequency contributes nothing", func(t *testing.T) {
		rows := []*types.Employment{
			employmentRow(1000, 99),
			employmentRow(100, types.PayFrequencyMonthly),
		}
		if got := GrossAnnualFromEmployment(rows); got != 1200 {
			t.Errorf("got %v, want 1200", got)
		}
	})

	t.Run("no employment", func(t *testing.T) {
		if got := GrossAnnualFromEmployment(nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})
}

func TestClassifyForm(t *testing.T) {
	cases := []struct {
		name        string
		grossAnnual float64
		want        types.FormKind
	}{
		{"well below threshold", 9600, types.FormShort},
		{"just below threshold", 49999.99, types.FormShort},
		{"exactly the threshold", 50000, types.FormLong},
		{"above threshold", 52000, types.FormLong},
		{"zero income", 0, types.FormShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyForm(tc.grossAnnual); got != tc.want {
				t.Errorf("ClassifyForm(%v) = %v, want %v", tc.grossAnnual, got, tc.want)
			}
		})
	}
}

func TestParseFormKind(t *testing.T) {
	cases := []struct {
		raw     string
		want    types.FormKind
		wantErr bool
	}{
		{"", types.FormAuto, false},
		{"auto", types.FormAuto, false},
		{"short", types.FormShort, false},
		{"long", types.FormLong, false},
		{" LONG ", types.FormLong, false},
		{"medium", "", true},
	}

	for _, tc := range cases {
		got, err := ParseFormKind(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFormKind(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormKind(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormKind(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
