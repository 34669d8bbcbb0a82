package types

import (
	"strings"
	"time"
)

type UserRole string

const (
	RolePetitioner         UserRole = "petitioner"
	RoleRespondent         UserRole = "respondent"
	RolePetitionerAttorney UserRole = "petitioner_attorney"
	RoleRespondentAttorney UserRole = "respondent_attorney"
	RoleLegalAssistant     UserRole = "legal_assistant"
	RoleAdministrator      UserRole = "administrator"
)

type User struct {
	ID         string    `db:"id"`
	Role       *string   `db:"role"`
	Email      *string   `db:"email"`
	GivenName  *string   `db:"given_name"`
	FamilyName *string   `db:"family_name"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (u *User) UserRole() UserRole {
	if u.Role == nil {
		return ""
	}
	return UserRole(strings.TrimSpace(*u.Role))
}

// DisplayName is the caption-ready party name, family name last.
func (u *User) DisplayName() string {
	parts := make([]string, 0, 2)
	if u.GivenName != nil && strings.TrimSpace(*u.GivenName) != "" {
		parts = append(parts, strings.TrimSpace(*u.GivenName))
	}
	if u.FamilyName != nil && strings.TrimSpace(*u.FamilyName) != "" {
		parts = append(parts, strings.TrimSpace(*u.FamilyName))
	}
	return strings.Join(parts, " ")
}

// IsAffidavitSubject reports whether this user's role can carry affidavit
// data. Attorneys, assistants and administrators are viewers, never subjects.
func (u *User) IsAffidavitSubject() bool {
	role := u.UserRole()
	return role == RolePetitioner || role == RoleRespondent
}
