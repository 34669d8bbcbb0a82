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

const monthlyLineTableName = "affidavit.monthly_lines"

var monthlyLineColumns = utils.StructTagValues(types.MonthlyLine{})

// MonthlyLineRepository backs the three monthly collections (income,
// deductions, household expenses) that share one row shape, discriminated
// by the category column.
type MonthlyLineRepository struct {
	pool *pgxpool.Pool
}

func NewMonthlyLineRepository(pool *pgxpool.Pool) *MonthlyLineRepository {
	return &MonthlyLineRepository{pool: pool}
}

func (r *MonthlyLineRepository) ByOwner(ctx context.Context, category types.LineCategory, ownerID string) ([]*types.MonthlyLine, error) {
	query, args, err := psql().
		Select(monthlyLineColumns...).
		From(monthlyLineTableName).
		Where(sq.Eq{"category": category, "owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s line query: %w", category, err)
	}

	var rows = make([]*types.MonthlyLine, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s lines: %w", category, err)
	}

	return rows, nil
}

func (r *MonthlyLineRepository) Row(ctx context.Context, category types.LineCategory, ownerID, rowID string) (*types.MonthlyLine, error) {
	query, args, err := psql().
		Select(monthlyLineColumns...).
		From(monthlyLineTableName).
		Where(sq.Eq{"id": rowID, "category": category, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s line row query: %w", category, err)
	}

	var row types.MonthlyLine
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s line row: %w", category, err)
	}

	return &row, nil
}

func (r *MonthlyLineRepository) Create(ctx context.Context, row *types.MonthlyLine) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(monthlyLineTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert %s line query: %w", row.Category, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create monthly line")
}

func (r *MonthlyLineRepository) Update(ctx context.Context, category types.LineCategory, ownerID, rowID string, row *types.MonthlyLine) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.Category = category
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(monthlyLineTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "category": category, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update %s line query for row %s: %w", category, rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update monthly line")
}

func (r *MonthlyLineRepository) Delete(ctx context.Context, category types.LineCategory, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(monthlyLineTableName).
		Where(sq.Eq{"id": rowID, "category": category, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete %s line query for row %s: %w", category, rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete monthly line")
}
