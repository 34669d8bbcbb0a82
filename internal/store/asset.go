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
	assetTableName           = "affidavit.assets"
	contingentAssetTableName = "affidavit.contingent_assets"
)

var (
	assetColumns           = utils.StructTagValues(types.Asset{})
	contingentAssetColumns = utils.StructTagValues(types.ContingentAsset{})
)

type AssetRepository struct {
	pool *pgxpool.Pool
}

func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

func (r *AssetRepository) ByOwner(ctx context.Context, ownerID string) ([]*types.Asset, error) {
	query, args, err := psql().
		Select(assetColumns...).
		From(assetTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate asset query: %w", err)
	}

	var rows = make([]*types.Asset, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}

	return rows, nil
}

func (r *AssetRepository) Row(ctx context.Context, ownerID, rowID string) (*types.Asset, error) {
	query, args, err := psql().
		Select(assetColumns...).
		From(assetTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate asset row query: %w", err)
	}

	var row types.Asset
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch asset row: %w", err)
	}

	return &row, nil
}

func (r *AssetRepository) Create(ctx context.Context, row *types.Asset) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(assetTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert asset query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create asset")
}

func (r *AssetRepository) Update(ctx context.Context, ownerID, rowID string, row *types.Asset) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(assetTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update asset query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update asset")
}

func (r *AssetRepository) Delete(ctx context.Context, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(assetTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete asset query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete asset")
}

func (r *AssetRepository) ContingentByOwner(ctx context.Context, ownerID string) ([]*types.ContingentAsset, error) {
	query, args, err := psql().
		Select(contingentAssetColumns...).
		From(contingentAssetTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contingent asset query: %w", err)
	}

	var rows = make([]*types.ContingentAsset, 0)
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contingent assets: %w", err)
	}

	return rows, nil
}

func (r *AssetRepository) CreateContingent(ctx context.Context, row *types.ContingentAsset) error {
	now := time.Now()
	row.ID = utils.NanoID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query, args, err := psql().
		Insert(contingentAssetTableName).
		SetMap(utils.StructToMap(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert contingent asset query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create contingent asset")
}

func (r *AssetRepository) ContingentRow(ctx context.Context, ownerID, rowID string) (*types.ContingentAsset, error) {
	query, args, err := psql().
		Select(contingentAssetColumns...).
		From(contingentAssetTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contingent asset row query: %w", err)
	}

	var row types.ContingentAsset
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to fetch contingent asset row: %w", err)
	}

	return &row, nil
}

func (r *AssetRepository) UpdateContingent(ctx context.Context, ownerID, rowID string, row *types.ContingentAsset) error {
	row.ID = rowID
	row.OwnerID = ownerID
	row.UpdatedAt = time.Now()

	query, args, err := psql().
		Update(contingentAssetTableName).
		SetMap(utils.StructToMap(row)).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update contingent asset query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update contingent asset")
}

func (r *AssetRepository) DeleteContingent(ctx context.Context, ownerID, rowID string) error {
	query, args, err := psql().
		Delete(contingentAssetTableName).
		Where(sq.Eq{"id": rowID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete contingent asset query for row %s: %w", rowID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete contingent asset")
}
