package affidavit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"affidavit/pkg/types"
)

// ResolveTarget decides whose affidavit data is in scope for a request. It
// is the single authorization choke point: every read path calls it before
// touching line items and threads the returned id through all later steps.
//
// Rules:
//   - An explicit target user id is an administrator-only escape hatch.
//   - Respondents and respondent attorneys must name a case they sit on;
//     the target is that case's petitioner. Respondents have no affidavit
//     of their own in this model.
//   - Everyone else resolves to themselves.
func (e *Engine) ResolveTarget(ctx context.Context, principal Principal, q Query) (string, error) {
	if target := strings.TrimSpace(q.UserID); target != "" {
		if principal.Role != types.RoleAdministrator {
			return "", fmt.Errorf("explicit target user requires administrator: %w", types.ErrForbidden)
		}

		user, err := e.users.User(ctx, target)
		if err != nil {
			if errors.Is(err, types.ErrUserNotFound) {
				return "", err
			}
			return "", fmt.Errorf("resolve explicit target: %w", err)
		}

		return user.ID, nil
	}

	if principal.Role == types.RoleRespondent || principal.Role == types.RoleRespondentAttorney {
		caseID := strings.TrimSpace(q.CaseID)
		if caseID == "" {
			return "", fmt.Errorf("case id required for respondent-side access: %w", types.ErrInvalidInput)
		}

		kase, err := e.cases.Case(ctx, caseID)
		if err != nil {
			if errors.Is(err, types.ErrCaseNotFound) {
				return "", err
			}
			return "", fmt.Errorf("resolve case %s: %w", caseID, err)
		}

		var slot *string
		if principal.Role == types.RoleRespondent {
			slot = kase.RespondentID
		} else {
			slot = kase.RespondentAttorneyID
		}

		if slot == nil || *slot != principal.ID {
			return "", fmt.Errorf("principal is not a party on case %s: %w", caseID, types.ErrForbidden)
		}

		return kase.PetitionerID, nil
	}

	return principal.ID, nil
}

// ResolveWriteOwner is the narrower counterpart used by mutating requests.
// Respondent-side roles get read-only access to the petitioner's affidavit,
// so the case-based indirection does not apply here: a principal writes its
// own rows, and only an administrator may write on behalf of an explicit
// target user.
func (e *Engine) ResolveWriteOwner(ctx context.Context, principal Principal, targetUserID string) (string, error) {
	if target := strings.TrimSpace(targetUserID); target != "" {
		if principal.Role != types.RoleAdministrator {
			return "", fmt.Errorf("explicit target user requires administrator: %w", types.ErrForbidden)
		}

		user, err := e.users.User(ctx, target)
		if err != nil {
			if errors.Is(err, types.ErrUserNotFound) {
				return "", err
			}
			return "", fmt.Errorf("resolve explicit target: %w", err)
		}

		return user.ID, nil
	}

	if principal.Role == types.RoleRespondent || principal.Role == types.RoleRespondentAttorney {
		return "", fmt.Errorf("respondent-side access is read only: %w", types.ErrForbidden)
	}

	return principal.ID, nil
}
