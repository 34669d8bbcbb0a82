// Package affidavit implements the financial-affidavit computation and
// form-assembly engine: target resolution, income classification, category
// aggregation and PDF production.
package affidavit

import (
	"context"
	"strings"

	"affidavit/pkg/types"

	"github.com/sirupsen/logrus"
)

// Store interfaces are declared here, on the consumer side, so the engine
// can be exercised against fakes. internal/store satisfies all of them.

type UserStore interface {
	User(ctx context.Context, userID string) (*types.User, error)
	UsersByIDs(ctx context.Context, userIDs []string) ([]*types.User, error)
}

type CaseStore interface {
	Case(ctx context.Context, caseID string) (*types.Case, error)
	LatestCaseForParty(ctx context.Context, userID string) (*types.Case, error)
}

type EmploymentStore interface {
	ByOwner(ctx context.Context, ownerID string) ([]*types.Employment, error)
}

type MonthlyLineStore interface {
	ByOwner(ctx context.Context, category types.LineCategory, ownerID string) ([]*types.MonthlyLine, error)
}

type AssetStore interface {
	ByOwner(ctx context.Context, ownerID string) ([]*types.Asset, error)
	ContingentByOwner(ctx context.Context, ownerID string) ([]*types.ContingentAsset, error)
}

type LiabilityStore interface {
	ByOwner(ctx context.Context, ownerID string) ([]*types.Liability, error)
	ContingentByOwner(ctx context.Context, ownerID string) ([]*types.ContingentLiability, error)
}

type LookupStore interface {
	TypeNames(ctx context.Context, category string) (map[int]string, error)
	CircuitName(ctx context.Context, circuitID int) (*string, error)
	CountyName(ctx context.Context, countyID int) (*string, error)
}

// Principal is the already-authenticated identity making the request. The
// engine never authenticates, only authorizes.
type Principal struct {
	ID   string
	Role types.UserRole
}

// Query carries the affidavit request parameters.
type Query struct {
	UserID string `form:"userId"`
	CaseID string `form:"caseId"`
	Form   string `form:"form"`
}

type Engine struct {
	logger      *logrus.Logger
	users       UserStore
	cases       CaseStore
	employment  EmploymentStore
	lines       MonthlyLineStore
	assets      AssetStore
	liabilities LiabilityStore
	lookups     LookupStore
	templates   TemplateSource
}

func NewEngine(
	logger *logrus.Logger,
	users UserStore,
	cases CaseStore,
	employment EmploymentStore,
	lines MonthlyLineStore,
	assets AssetStore,
	liabilities LiabilityStore,
	lookups LookupStore,
	templates TemplateSource,
) *Engine {
	return &Engine{
		logger:      logger,
		users:       users,
		cases:       cases,
		employment:  employment,
		lines:       lines,
		assets:      assets,
		liabilities: liabilities,
		lookups:     lookups,
		templates:   templates,
	}
}

// ParseFormKind validates the form query parameter. Empty selects auto.
func ParseFormKind(raw string) (types.FormKind, error) {
	switch types.FormKind(strings.ToLower(strings.TrimSpace(raw))) {
	case "", types.FormAuto:
		return types.FormAuto, nil
	case types.FormShort:
		return types.FormShort, nil
	case types.FormLong:
		return types.FormLong, nil
	}
	return "", types.ErrInvalidInput
}
