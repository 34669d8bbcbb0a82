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

const employmentTableName = "affidavit.employment"

var employmentColumns = utils.StructTagValues(types.Employment{})

type EmploymentRepository struct {
	pool *pgxpool.Pool
}

func NewEmploymentRepository(pool *pgxpool.Pool) *EmploymentRepository {
	return &EmploymentRepository{pool: pool}
}

func (r *EmploymentRepository) ByOwner(ctx context.Context, ownerID string) ([]*types.Employment, error) {
	query, args, err := psql().
		Select(employmentColumns...).
		From(employmentTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employment query: %w", err)
	}

	var rows = make([]*types.Employment, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employment rows: %w", err)
	}

	return rows, nil
}

func (r *EmploymentRepository) Row(ctx context.Context, ownerID, rowID string) (*types.Employment, error) {
	query, args, err := psql().
		Select(employmentColumns...).
		From(employmentTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employment row query: %w", err)
	}

	var row types.Employment
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch employment row: %w", err)
	}

	return &row, nil
}

func (r *EmploymentRepository) Create(ctx context.Context, row *types.Employment) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(employmentTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert employment query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create employment row")
}

func (r *EmploymentRepository) Update(ctx context.Context, ownerID, rowID string, row *types.Employment) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(employmentTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update employment query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update employment row")
}

func (r *EmploymentRepository) Delete(ctx context.Context, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(employmentTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete employment query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete employment row")
}
