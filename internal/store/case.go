package store

import (
	"context"
	"fmt"
	"time"

	"affidavit/internal/utils"
	"affidavit/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const caseTableName = "affidavit.cases"

var caseColumns = utils.StructTagValues(types.Case{})

type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

func (r *CaseRepository) Case(ctx context.Context, caseID string) (*types.Case, error) {
	query, args, err := psql().
		Select(caseColumns...).
		From(caseTableName).
		Where(sq.Eq{"id": caseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate case query: %w", err)
	}

	var kase types.Case
	err = pgxscan.Get(ctx, r.pool, &kase, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}

	return &kase, nil
}

// LatestCaseForParty returns the most recently created case naming the user
// as petitioner or respondent, used for best-effort caption resolution when
// no case id is supplied.
func (r *CaseRepository) LatestCaseForParty(ctx context.Context, userID string) (*types.Case, error) {
	query, args, err := psql().
		Select(caseColumns...).
		From(caseTableName).
		Where(sq.Or{sq.Eq{"petitioner_id": userID}, sq.Eq{"respondent_id": userID}}).
		OrderBy("created_at desc").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate latest-case query: %w", err)
	}

	var kase types.Case
	err = pgxscan.Get(ctx, r.pool, &kase, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to fetch latest case for party: %w", err)
	}

	return &kase, nil
}

func (r *CaseRepository) Create(ctx context.Context, kase *types.Case) error {
	now := time.Now()
	if kase.ID == "" {
		kase.ID = utils.NanoID()
	}
	kase.CreatedAt = now
	kase.UpdatedAt = now

	query, args, err := psql().
		Insert(caseTableName).
		SetMap(utils.StructToMap(kase)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create case query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create case")
}
