package affidavit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"affidavit/pkg/types"

	"golang.org/x/sync/errgroup"
)

type caption struct {
	caseNumber     string
	division       string
	circuitName    string
	countyName     string
	petitionerName string
	respondentName string
}

// fillData is everything one fill or summary render needs, loaded up front
// into a value: the document reflects data at generation time, not a live
// link, and no state is shared between concurrent requests.
type fillData struct {
	target                *types.User
	caption               *caption
	employment            []*types.Employment
	incomes               []*types.MonthlyLine
	deductions            []*types.MonthlyLine
	expenses              []*types.MonthlyLine
	assets                []*types.Asset
	liabilities           []*types.Liability
	contingentAssets      []*types.ContingentAsset
	contingentLiabilities []*types.ContingentLiability
	summary               *types.IncomeSummary

	// display labels for the generic view; misses fall back to Type {id}
	deductionNames map[int]string
	expenseNames   map[int]string
}

// Summary authorizes the request and returns the income classification
// summary. An explicit form override is honored without re-deriving the
// threshold.
func (e *Engine) Summary(ctx context.Context, principal Principal, q Query) (*types.IncomeSummary, error) {
	form, err := ParseFormKind(q.Form)
	if err != nil {
		return nil, fmt.Errorf("form parameter %q: %w", q.Form, err)
	}

	target, err := e.ResolveTarget(ctx, principal, q)
	if err != nil {
		return nil, err
	}

	summary, err := e.IncomeSummary(ctx, target)
	if err != nil {
		return nil, err
	}

	if form != types.FormAuto {
		summary.Form = form
	}

	return summary, nil
}

// OfficialPDF fills the statutory template for the resolved target and
// returns the document bytes along with the form variant used.
func (e *Engine) OfficialPDF(ctx context.Context, principal Principal, q Query) ([]byte, types.FormKind, error) {
	form, d, err := e.prepare(ctx, principal, q)
	if err != nil {
		return nil, "", err
	}

	pdf, err := e.renderOfficial(ctx, form, d)
	if err != nil {
		return nil, "", err
	}

	return pdf, form, nil
}

// GenericPDF renders the tabular (non-statutory) affidavit view.
func (e *Engine) GenericPDF(ctx context.Context, principal Principal, q Query) ([]byte, types.FormKind, error) {
	form, d, err := e.prepare(ctx, principal, q)
	if err != nil {
		return nil, "", err
	}

	pdf, err := renderGeneric(form, d)
	if err != nil {
		return nil, "", err
	}

	return pdf, form, nil
}

func (e *Engine) prepare(ctx context.Context, principal Principal, q Query) (types.FormKind, *fillData, error) {
	form, err := ParseFormKind(q.Form)
	if err != nil {
		return "", nil, fmt.Errorf("form parameter %q: %w", q.Form, err)
	}

	target, err := e.ResolveTarget(ctx, principal, q)
	if err != nil {
		return "", nil, err
	}

	d, err := e.loadAll(ctx, target, q.CaseID)
	if err != nil {
		return "", nil, err
	}

	if form == types.FormAuto {
		form = d.summary.Form
	}

	return form, d, nil
}

// loadAll fetches the six line-item categories concurrently; they are
// independent, so there is no ordering between them. A category whose list
// fails degrades to empty rather than failing the document.
func (e *Engine) loadAll(ctx context.Context, targetUserID, caseID string) (*fillData, error) {
	d := &fillData{}

	target, err := e.users.User(ctx, targetUserID)
	if err != nil && !errors.Is(err, types.ErrUserNotFound) {
		return nil, fmt.Errorf("load target user: %w", err)
	}
	d.target = target

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.employment = e.listEmployment(gctx, targetUserID)
		return nil
	})
	g.Go(func() error {
		d.incomes = e.listMonthly(gctx, types.CategoryMonthlyIncome, targetUserID)
		return nil
	})
	g.Go(func() error {
		d.deductions = e.listMonthly(gctx, types.CategoryMonthlyDeduction, targetUserID)
		return nil
	})
	g.Go(func() error {
		d.expenses = e.listMonthly(gctx, types.CategoryHouseholdExpense, targetUserID)
		return nil
	})
	g.Go(func() error {
		rows, err := e.assets.ByOwner(gctx, targetUserID)
		if err != nil {
			e.logger.WithError(err).WithField("target_user_id", targetUserID).Warn("assets unavailable, treating as empty")
			rows = nil
		}
		d.assets = rows

		contingent, err := e.assets.ContingentByOwner(gctx, targetUserID)
		if err != nil {
			e.logger.WithError(err).WithField("target_user_id", targetUserID).Warn("contingent assets unavailable, treating as empty")
			contingent = nil
		}
		d.contingentAssets = contingent
		return nil
	})
	g.Go(func() error {
		rows, err := e.liabilities.ByOwner(gctx, targetUserID)
		if err != nil {
			e.logger.WithError(err).WithField("target_user_id", targetUserID).Warn("liabilities unavailable, treating as empty")
			rows = nil
		}
		d.liabilities = rows

		contingent, err := e.liabilities.ContingentByOwner(gctx, targetUserID)
		if err != nil {
			e.logger.WithError(err).WithField("target_user_id", targetUserID).Warn("contingent liabilities unavailable, treating as empty")
			contingent = nil
		}
		d.contingentLiabilities = contingent
		return nil
	})

	_ = g.Wait()

	d.summary = e.summarize(ctx, d.employment, d.incomes)
	d.caption = e.resolveCaption(ctx, targetUserID, caseID)
	d.deductionNames = e.typeNames(ctx, string(types.CategoryMonthlyDeduction))
	d.expenseNames = e.typeNames(ctx, string(types.CategoryHouseholdExpense))

	return d, nil
}

func (e *Engine) typeNames(ctx context.Context, category string) map[int]string {
	names, err := e.lookups.TypeNames(ctx, category)
	if err != nil {
		e.logger.WithError(err).WithField("category", category).Warn("type names unavailable, using synthetic labels")
		return nil
	}
	return names
}

func (e *Engine) listEmployment(ctx context.Context, ownerID string) []*types.Employment {
	rows, err := e.employment.ByOwner(ctx, ownerID)
	if err != nil {
		e.logger.WithError(err).WithField("target_user_id", ownerID).Warn("employment unavailable, treating as empty")
		return nil
	}
	return rows
}

func (e *Engine) listMonthly(ctx context.Context, category types.LineCategory, ownerID string) []*types.MonthlyLine {
	rows, err := e.lines.ByOwner(ctx, category, ownerID)
	if err != nil {
		e.logger.WithError(err).WithFields(map[string]any{
			"target_user_id": ownerID,
			"category":       category,
		}).Warn("monthly lines unavailable, treating as empty")
		return nil
	}
	return rows
}

// resolveCaption determines the case heading fields on a best-effort basis.
// An explicitly supplied case id wins when it names a case that includes
// the target party; otherwise the target's most recently created case is
// used; with no case determined, the caption fields stay blank.
func (e *Engine) resolveCaption(ctx context.Context, targetUserID, caseID string) *caption {
	var kase *types.Case

	if id := strings.TrimSpace(caseID); id != "" {
		found, err := e.cases.Case(ctx, id)
		switch {
		case err != nil:
			e.logger.WithError(err).WithField("case_id", id).Warn("explicit case unavailable for caption")
		case !found.IncludesParty(targetUserID):
			e.logger.WithFields(map[string]any{
				"case_id":        id,
				"target_user_id": targetUserID,
			}).Warn("explicit case does not include target party, ignoring for caption")
		default:
			kase = found
		}
	}

	if kase == nil {
		found, err := e.cases.LatestCaseForParty(ctx, targetUserID)
		if err != nil {
			if !errors.Is(err, types.ErrCaseNotFound) {
				e.logger.WithError(err).WithField("target_user_id", targetUserID).Warn("latest case unavailable for caption")
			}
			return nil
		}
		kase = found
	}

	c := &caption{}
	if kase.CaseNumber != nil {
		c.caseNumber = *kase.CaseNumber
	}
	if kase.Division != nil {
		c.division = *kase.Division
	}

	if kase.CircuitID != nil {
		if name, err := e.lookups.CircuitName(ctx, *kase.CircuitID); err != nil {
			e.logger.WithError(err).Warn("circuit name unavailable for caption")
		} else if name != nil {
			c.circuitName = *name
		}
	}
	if kase.CountyID != nil {
		if name, err := e.lookups.CountyName(ctx, *kase.CountyID); err != nil {
			e.logger.WithError(err).Warn("county name unavailable for caption")
		} else if name != nil {
			c.countyName = *name
		}
	}

	ids := []string{kase.PetitionerID}
	if kase.RespondentID != nil {
		ids = append(ids, *kase.RespondentID)
	}
	parties, err := e.users.UsersByIDs(ctx, ids)
	if err != nil {
		e.logger.WithError(err).Warn("party names unavailable for caption")
		return c
	}
	for _, party := range parties {
		switch {
		case party.ID == kase.PetitionerID:
			c.petitionerName = party.DisplayName()
		case kase.RespondentID != nil && party.ID == *kase.RespondentID:
			c.respondentName = party.DisplayName()
		}
	}

	return c
}
