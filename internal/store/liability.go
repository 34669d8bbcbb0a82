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

const (
	liabilityTableName           = "affidavit.liabilities"
	contingentLiabilityTableName = "affidavit.contingent_liabilities"
)

var (
	liabilityColumns           = utils.StructTagValues(types.Liability{})
	contingentLiabilityColumns = utils.StructTagValues(types.ContingentLiability{})
)

type LiabilityRepository struct {
	pool *pgxpool.Pool
}

func NewLiabilityRepository(pool *pgxpool.Pool) *LiabilityRepository {
	return &LiabilityRepository{pool: pool}
}

func (r *LiabilityRepository) ByOwner(ctx context.Context, ownerID string) ([]*types.Liability, error) {
	query, args, err := psql().
		Select(liabilityColumns...).
		From(liabilityTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate liability query: %w", err)
	}

	var rows = make([]*types.Liability, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liabilities: %w", err)
	}

	return rows, nil
}

func (r *LiabilityRepository) Row(ctx context.Context, ownerID, rowID string) (*types.Liability, error) {
	query, args, err := psql().
		Select(liabilityColumns...).
		From(liabilityTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate liability row query: %w", err)
	}

	var row types.Liability
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch liability row: %w", err)
	}

	return &row, nil
}

func (r *LiabilityRepository) Create(ctx context.Context, row *types.Liability) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(liabilityTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert liability query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create liability")
}

func (r *LiabilityRepository) Update(ctx context.Context, ownerID, rowID string, row *types.Liability) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(liabilityTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update liability query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update liability")
}

func (r *LiabilityRepository) Delete(ctx context.Context, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(liabilityTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete liability query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete liability")
}

func (r *LiabilityRepository) ContingentByOwner(ctx context.Context, ownerID string) ([]*types.ContingentLiability, error) {
	query, args, err := psql().
		Select(contingentLiabilityColumns...).
		From(contingentLiabilityTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contingent liability query: %w", err)
	}

	var rows = make([]*types.ContingentLiability, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contingent liabilities: %w", err)
	}

	return rows, nil
}

func (r *LiabilityRepository) CreateContingent(ctx context.Context, row *types.ContingentLiability) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(contingentLiabilityTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert contingent liability query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create contingent liability")
}

func (r *LiabilityRepository) ContingentRow(ctx context.Context, ownerID, rowID string) (*types.ContingentLiability, error) {
	query, args, err := psql().
		Select(contingentLiabilityColumns...).
		From(contingentLiabilityTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contingent liability row query: %w", err)
	}

	var row types.ContingentLiability
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch contingent liability row: %w", err)
	}

	return &row, nil
}

func (r *LiabilityRepository) UpdateContingent(ctx context.Context, ownerID, rowID string, row *types.ContingentLiability) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(contingentLiabilityTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update contingent liability query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update contingent liability")
}

func (r *LiabilityRepository) DeleteContingent(ctx context.Context, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(contingentLiabilityTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete contingent liability query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete contingent liability")
}
