package types

import "time"

// Pay frequency type ids, enumerated in the pay_frequencies lookup table.
// Anything outside 1-9 is treated as "other" and never annualized.
const (
	PayFrequencyWeekly       = 1
	PayFrequencyBiweekly     = 2
	PayFrequencyMonthly      = 3
	PayFrequencySemimonthly  = 4
	PayFrequencyAnnually     = 5
	PayFrequencySemiannually = 6
	PayFrequencyQuarterly    = 7
	PayFrequencyDaily        = 8
	PayFrequencyHourly       = 9
)

type Employment struct {
	ID                  string    `db:"id"`
	OwnerID             string    `db:"owner_id"`
	EmployerName        string    `db:"employer_name"`
	Occupation          *string   `db:"occupation"`
	PayRate             float64   `db:"pay_rate"`
	PayFrequencyTypeID  int       `db:"pay_frequency_type_id"`
	PayFrequencyIfOther *string   `db:"pay_frequency_if_other"`
	Retired             bool      `db:"retired"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// LineCategory discriminates the three monthly line-item collections that
// share one row shape.
type LineCategory string

const (
	CategoryMonthlyIncome    LineCategory = "monthly_income"
	CategoryMonthlyDeduction LineCategory = "monthly_deduction"
	CategoryHouseholdExpense LineCategory = "household_expense"
)

// Type ids designated as the single "other" slot per category on the
// official forms. Deductions carry no other-slot.
const (
	MonthlyIncomeOtherTypeID    = 16
	HouseholdExpenseOtherTypeID = 20
	AssetOtherTypeID            = 19
	LiabilityOtherTypeID        = 9
)

type MonthlyLine struct {
	ID        string       `db:"id"`
	OwnerID   string       `db:"owner_id"`
	Category  LineCategory `db:"category"`
	TypeID    int          `db:"type_id"`
	Amount    float64      `db:"amount"`
	IfOther   *string      `db:"if_other"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

type Asset struct {
	ID               string    `db:"id"`
	OwnerID          string    `db:"owner_id"`
	TypeID           int       `db:"type_id"`
	Description      string    `db:"description"`
	MarketValue      float64   `db:"market_value"`
	NonMaritalTypeID *int      `db:"non_marital_type_id"`
	JudgeAward       *bool     `db:"judge_award"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Liability struct {
	ID               string    `db:"id"`
	OwnerID          string    `db:"owner_id"`
	TypeID           int       `db:"type_id"`
	Description      string    `db:"description"`
	AmountOwed       float64   `db:"amount_owed"`
	NonMaritalTypeID *int      `db:"non_marital_type_id"`
	UserOwes         *bool     `db:"user_owes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Contingent rows carry a possible value rather than a certain one and no
// type id.
type ContingentAsset struct {
	ID            string    `db:"id"`
	OwnerID       string    `db:"owner_id"`
	Description   string    `db:"description"`
	PossibleValue float64   `db:"possible_value"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type ContingentLiability struct {
	ID                 string    `db:"id"`
	OwnerID            string    `db:"owner_id"`
	Description        string    `db:"description"`
	PossibleAmountOwed float64   `db:"possible_amount_owed"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
