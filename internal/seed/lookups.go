package seed

import (
	"context"
	"fmt"

	"affidavit/internal/store"
	"affidavit/pkg/types"
)

// SeedLookups syncs the lookup tables with the definitions below. These
// files are the source of truth for display names: re-running the seed
// after an edit updates the database rows in place.
//
// The type ids are fixed. The official forms reference line items by
// position, so renumbering an id changes which line an amount lands on.

var monthlyIncomeTypes = map[int]string{
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

var monthlyDeductionTypes = map[int]string{
	1: "Monthly federal, state, and local income tax",
	2: "Monthly FICA or self-employment taxes",
	3: "Monthly Medicare payments",
	4: "Monthly mandatory union dues",
	5: "Monthly mandatory retirement payments",
	6: "Monthly health insurance payments",
	7: "Monthly court-ordered child support actually paid",
	8: "Monthly court-ordered alimony actually paid",
}

var householdExpenseTypes = map[int]string{
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

var assetTypes = map[int]string{
	1:  "Cash on hand",
	2:  "Checking accounts",
	3:  "Savings accounts",
	4:  "Certificates of deposit and money market accounts",
	5:  "Stocks and bonds",
	6:  "Notes receivable",
	7:  "Real estate home",
	8:  "Real estate other",
	9:  "Business interests",
	10: "Automobiles",
	11: "Boats",
	12: "Other vehicles",
	13: "Retirement plans",
	14: "Furniture and furnishings in home",
	15: "Furniture and furnishings elsewhere",
	16: "Collectibles",
	17: "Jewelry",
	18: "Life insurance cash surrender value",
	types.AssetOtherTypeID: "Other assets",
}

var liabilityTypes = map[int]string{
	1: "Mortgages on real estate",
	2: "Charge and credit card accounts",
	3: "Automobile loans",
	4: "Bank and credit union loans",
	5: "Money owed on notes",
	6: "Judgments",
	7: "Past-due income taxes",
	8: "Student loans",
	types.LiabilityOtherTypeID: "Other liabilities",
}

// Florida's twenty judicial circuits.
var circuits = map[int]string{
	1: "First", 2: "Second", 3: "Third", 4: "Fourth", 5: "Fifth",
	6: "Sixth", 7: "Seventh", 8: "Eighth", 9: "Ninth", 10: "Tenth",
	11: "Eleventh", 12: "Twelfth", 13: "Thirteenth", 14: "Fourteenth",
	15: "Fifteenth", 16: "Sixteenth", 17: "Seventeenth", 18: "Eighteenth",
	19: "Nineteenth", 20: "Twentieth",
}

var counties = map[int]string{
	1: "Miami-Dade",
	2: "Broward",
	3: "Palm Beach",
	4: "Hillsborough",
	5: "Orange",
	6: "Pinellas",
	7: "Duval",
	8: "Lee",
	9: "Polk",
}

func SeedLookups(ctx context.Context, repo *store.LookupRepository) error {
	typeSets := []struct {
		category string
		names    map[int]string
	}{
		{string(types.CategoryMonthlyIncome), monthlyIncomeTypes},
		{string(types.CategoryMonthlyDeduction), monthlyDeductionTypes},
		{string(types.CategoryHouseholdExpense), householdExpenseTypes},
		{"asset", assetTypes},
		{"liability", liabilityTypes},
	}

	for _, set := range typeSets {
		for typeID, name := range set.names {
			if err := repo.UpsertType(ctx, set.category, typeID, name); err != nil {
				return fmt.Errorf("seed %s type %d: %w", set.category, typeID, err)
			}
		}
	}

	for id, name := range circuits {
		if err := repo.UpsertRegion(ctx, store.CircuitTableName, id, name); err != nil {
			return fmt.Errorf("seed circuit %d: %w", id, err)
		}
	}

	for id, name := range counties {
		if err := repo.UpsertRegion(ctx, store.CountyTableName, id, name); err != nil {
			return fmt.Errorf("seed county %d: %w", id, err)
		}
	}

	return nil
}
