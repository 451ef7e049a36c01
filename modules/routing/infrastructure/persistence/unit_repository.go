package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectUnitQuery = `
		SELECT
			id,
			unit_name,
			unit_symbol,
			description,
			is_active,
			created_by,
			updated_by,
			created_at,
			updated_at
		FROM units`

	insertUnitQuery = `
		INSERT INTO units (unit_name, unit_symbol, description, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, true, $4, $4)`

	updateUnitQuery = `
		UPDATE units
		SET unit_name = $2,
			unit_symbol = $3,
			description = $4,
			updated_by = $5,
			updated_at = now()
		WHERE id = $1`

	deactivateUnitQuery = `
		UPDATE units
		SET is_active = false,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	unitExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM units
			WHERE is_active = true
				AND lower(unit_name) = lower($1)
				AND lower(unit_symbol) = lower($2)
		)`

	countUnitsQuery = `SELECT COUNT(*) FROM units WHERE is_active = true`

	searchUnitsCondition = `(unit_name ILIKE $1 OR unit_symbol ILIKE $1)`
)

type PgUnitRepository struct {
	fieldMap map[string]string
}

func NewUnitRepository() unit.Repository {
	return &PgUnitRepository{
		fieldMap: map[string]string{
			"id":          "id",
			"unitName":    "unit_name",
			"unitSymbol":  "unit_symbol",
			"description": "description",
			"createdAt":   "created_at",
			"updatedAt":   "updated_at",
		},
	}
}

func (g *PgUnitRepository) scan(rows pgx.Rows) (*unit.Unit, error) {
	var u unit.Unit
	if err := rows.Scan(
		&u.ID,
		&u.UnitName,
		&u.UnitSymbol,
		&u.Description,
		&u.IsActive,
		&u.CreatedBy,
		&u.UpdatedBy,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *PgUnitRepository) collect(rows pgx.Rows) ([]*unit.Unit, error) {
	defer rows.Close()
	units := make([]*unit.Unit, 0)
	for rows.Next() {
		u, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (g *PgUnitRepository) Create(ctx context.Context, data *unit.Unit) (*unit.Unit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_unit_create",
		Args:     []any{data.UnitName, data.UnitSymbol, data.Description, data.CreatedBy},
		Fallback: insertUnitQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

// latestByCreator re-reads the row just inserted on behalf of the given
// user. Routines do not return the new id, so the newest row wins.
func (g *PgUnitRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*unit.Unit, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectUnitQuery,
		"WHERE created_by = $1 ORDER BY id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	units, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, unit.ErrNotFound
	}
	return units[0], nil
}

func (g *PgUnitRepository) ExistsActive(ctx context.Context, name, symbol string) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, unitExistsQuery, name, symbol).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (g *PgUnitRepository) GetPaginated(ctx context.Context, params *unit.FindParams) ([]*unit.Unit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "unitName")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectUnitQuery,
			repo.JoinWhere("is_active = true", searchUnitsCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_unit_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectUnitQuery,
			"WHERE is_active = true",
			repo.OrderBy(column, asc),
			"OFFSET $1 LIMIT $2",
		),
		FallbackArgs: []any{offset, params.PerPage},
	})
	if err != nil {
		return nil, err
	}
	return g.collect(rows)
}

func (g *PgUnitRepository) Count(ctx context.Context, params *unit.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx, repo.Join(countUnitsQuery, "AND", searchUnitsCondition),
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countUnitsQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgUnitRepository) GetByID(ctx context.Context, id int64) (*unit.Unit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_unit_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectUnitQuery, "WHERE id = $1 AND is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	units, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, unit.ErrNotFound
	}
	return units[0], nil
}

func (g *PgUnitRepository) GetAnyByID(ctx context.Context, id int64) (*unit.Unit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectUnitQuery, "WHERE id = $1"), id)
	if err != nil {
		return nil, err
	}
	units, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, unit.ErrNotFound
	}
	return units[0], nil
}

func (g *PgUnitRepository) Update(ctx context.Context, data *unit.Unit) (*unit.Unit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_unit_update",
		Args:     []any{data.ID, data.UnitName, data.UnitSymbol, data.Description, data.UpdatedBy},
		Fallback: updateUnitQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgUnitRepository) Deactivate(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_unit_delete",
		Args:     []any{id, actor},
		Fallback: deactivateUnitQuery,
	})
}
