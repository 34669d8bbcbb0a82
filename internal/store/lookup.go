package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	lookupTypeTableName = "affidavit.lookup_types"
	circuitTableName    = "affidavit.circuits"
	countyTableName     = "affidavit.counties"
)

// LookupRepository resolves numeric type ids to display names. A miss is a
// nil name, never an error; callers fall back to synthetic labels.
type LookupRepository struct {
	pool *pgxpool.Pool
}

func NewLookupRepository(pool *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{pool: pool}
}

type lookupTypeRow struct {
	TypeID int    `db:"type_id"`
	Name   string `db:"name"`
}

func (r *LookupRepository) TypeNames(ctx context.Context, category string) (map[int]string, error) {
	query, args, err := psql().
		Select("type_id", "name").
		From(lookupTypeTableName).
		Where(sq.Eq{"category": category}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate type names query: %w", err)
	}

	var rows []lookupTypeRow
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch type names: %w", err)
	}

	names := make(map[int]string, len(rows))
	for _, row := range rows {
		names[row.TypeID] = row.Name
	}

	return names, nil
}

func (r *LookupRepository) CircuitName(ctx context.Context, circuitID int) (*string, error) {
	return r.nameByID(ctx, circuitTableName, circuitID)
}

func (r *LookupRepository) CountyName(ctx context.Context, countyID int) (*string, error) {
	return r.nameByID(ctx, countyTableName, countyID)
}

func (r *LookupRepository) nameByID(ctx context.Context, table string, id int) (*string, error) {
	query, args, err := psql().
		Select("name").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate name query for %s: %w", table, err)
	}

	var name string
	err = pgxscan.Get(ctx, r.pool, &name, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch name from %s: %w", table, err)
	}

	return &name, nil
}

// UpsertType syncs one lookup row; used by the seed command.
func (r *LookupRepository) UpsertType(ctx context.Context, category string, typeID int, name string) error {
	query, args, err := psql().
		Insert(lookupTypeTableName).
		Columns("category", "type_id", "name").
		Values(category, typeID, name).
		Suffix("ON CONFLICT (category, type_id) DO UPDATE SET name = EXCLUDED.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert type query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert lookup type: %w", err)
	}

	return nil
}

func (r *LookupRepository) UpsertRegion(ctx context.Context, table string, id int, name string) error {
	query, args, err := psql().
		Insert(table).
		Columns("id", "name").
		Values(id, name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert region query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert region row: %w", err)
	}

	return nil
}

// CircuitTableName and CountyTableName are exported for the seed command.
const (
	CircuitTableName = circuitTableName
	CountyTableName  = countyTableName
)
