package seed

import (
	"context"
	"errors"
	"fmt"

	"affidavit/internal/store"
	"affidavit/internal/utils"
	"affidavit/pkg/types"

	"github.com/k0kubun/pp/v3"
)

// Fixed ids so re-running the demo seed is a no-op instead of piling up
// duplicate parties. Generated once with `go run ./cmd/affidavit nanoid`.
const (
	demoPetitionerID = "jx0JFGNvEEYfJzc0aPL27cQzWpnu40vT"
	demoRespondentID = "yQ1RBhMIdCLkoyJpVf4VZkSKqEZcwW8H"
	demoCaseID       = "T5m2bQ9kCaHhUwnXrdL0eGuY6sAoPzf3"
)

// SeedDemo creates one petitioner, one respondent and the case joining
// them, so a fresh environment has something to render an affidavit from.
func SeedDemo(ctx context.Context, users *store.UserRepository, cases *store.CaseRepository) error {
	petitioner := &types.User{
		ID:         demoPetitionerID,
		Role:       utils.StringPtr(string(types.RolePetitioner)),
		Email:      utils.StringPtr("petitioner@example.com"),
		GivenName:  utils.StringPtr("Pat"),
		FamilyName: utils.StringPtr("Example"),
	}

	respondent := &types.User{
		ID:         demoRespondentID,
		Role:       utils.StringPtr(string(types.RoleRespondent)),
		Email:      utils.StringPtr("respondent@example.com"),
		GivenName:  utils.StringPtr("Riley"),
		FamilyName: utils.StringPtr("Example"),
	}

	for _, user := range []*types.User{petitioner, respondent} {
		if _, err := users.User(ctx, user.ID); err == nil {
			continue
		} else if !errors.Is(err, types.ErrUserNotFound) {
			return fmt.Errorf("check demo user %s: %w", user.ID, err)
		}

		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create demo user %s: %w", user.ID, err)
		}
	}

	if _, err := cases.Case(ctx, demoCaseID); err == nil {
		return nil
	} else if !errors.Is(err, types.ErrCaseNotFound) {
		return fmt.Errorf("check demo case: %w", err)
	}

	kase := &types.Case{
		ID:           demoCaseID,
		PetitionerID: demoPetitionerID,
		RespondentID: utils.StringPtr(demoRespondentID),
		CircuitID:    utils.IntPtr(11),
		CountyID:     utils.IntPtr(1),
		CaseNumber:   utils.StringPtr("2026-DR-001234"),
		Division:     utils.StringPtr("Family"),
	}

	if err := cases.Create(ctx, kase); err != nil {
		return fmt.Errorf("create demo case: %w", err)
	}

	pp.Println(kase)

	return nil
}
