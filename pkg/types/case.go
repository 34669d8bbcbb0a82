package types

import "time"

type Case struct {
	ID                   string    `db:"id"`
	CaseNumber           *string   `db:"case_number"`
	Division             *string   `db:"division"`
	PetitionerID         string    `db:"petitioner_id"`
	RespondentID         *string   `db:"respondent_id"`
	PetitionerAttorneyID *string   `db:"petitioner_attorney_id"`
	RespondentAttorneyID *string   `db:"respondent_attorney_id"`
	CircuitID            *int      `db:"circuit_id"`
	CountyID             *int      `db:"county_id"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// IncludesParty reports whether the user appears in any party slot on the case.
func (c *Case) IncludesParty(userID string) bool {
	if c.PetitionerID == userID {
		return true
	}
	for _, slot := range []*string{c.RespondentID, c.PetitionerAttorneyID, c.RespondentAttorneyID} {
		if slot != nil && *slot == userID {
			return true
		}
	}
	return false
}
