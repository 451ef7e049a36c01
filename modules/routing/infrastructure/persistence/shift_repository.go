package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectShiftQuery = `
		SELECT
			id,
			shift_name,
			start_time,
			end_time,
			duration,
			color_code,
			is_active,
			created_by,
			updated_by,
			created_at,
			updated_at
		FROM master_shifts`

	insertShiftQuery = `
		INSERT INTO master_shifts (shift_name, start_time, end_time, duration, color_code, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)`

	updateShiftQuery = `
		UPDATE master_shifts
		SET shift_name = $2,
			start_time = $3,
			end_time = $4,
			duration = $5,
			color_code = $6,
			updated_by = $7,
			updated_at = now()
		WHERE id = $1`

	deactivateShiftQuery = `
		UPDATE master_shifts
		SET is_active = false,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	shiftExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM master_shifts
			WHERE is_active = true
				AND lower(shift_name) = lower($1)
				AND start_time = $2
				AND end_time = $3
		)`

	countShiftsQuery = `SELECT COUNT(*) FROM master_shifts WHERE is_active = true`

	searchShiftsCondition = `shift_name ILIKE $1`
)

type PgShiftRepository struct {
	fieldMap map[string]string
}

func NewShiftRepository() shift.Repository {
	return &PgShiftRepository{
		fieldMap: map[string]string{
			"id":        "id",
			"name":      "shift_name",
			"startTime": "start_time",
			"endTime":   "end_time",
			"duration":  "duration",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
	}
}

func (g *PgShiftRepository) scan(rows pgx.Rows) (*shift.Shift, error) {
	var s shift.Shift
	if err := rows.Scan(
		&s.ID,
		&s.Name,
		&s.StartTime,
		&s.EndTime,
		&s.Duration,
		&s.ColorCode,
		&s.IsActive,
		&s.CreatedBy,
		&s.UpdatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *PgShiftRepository) collect(rows pgx.Rows) ([]*shift.Shift, error) {
	defer rows.Close()
	shifts := make([]*shift.Shift, 0)
	for rows.Next() {
		s, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (g *PgShiftRepository) Create(ctx context.Context, data *shift.Shift) (*shift.Shift, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_shift_create",
		Args:     []any{data.Name, data.StartTime, data.EndTime, data.Duration, data.ColorCode, data.CreatedBy},
		Fallback: insertShiftQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

func (g *PgShiftRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*shift.Shift, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectShiftQuery,
		"WHERE created_by = $1 ORDER BY id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	shifts, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, shift.ErrNotFound
	}
	return shifts[0], nil
}

func (g *PgShiftRepository) ExistsActive(ctx context.Context, name, startTime, endTime string) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, shiftExistsQuery, name, startTime, endTime).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (g *PgShiftRepository) GetPaginated(ctx context.Context, params *shift.FindParams) ([]*shift.Shift, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "name")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectShiftQuery,
			repo.JoinWhere("is_active = true", searchShiftsCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_shift_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectShiftQuery,
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

func (g *PgShiftRepository) Count(ctx context.Context, params *shift.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx, repo.Join(countShiftsQuery, "AND", searchShiftsCondition),
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countShiftsQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgShiftRepository) GetByID(ctx context.Context, id int64) (*shift.Shift, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_shift_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectShiftQuery, "WHERE id = $1 AND is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	shifts, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, shift.ErrNotFound
	}
	return shifts[0], nil
}

func (g *PgShiftRepository) GetAnyByID(ctx context.Context, id int64) (*shift.Shift, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectShiftQuery, "WHERE id = $1"), id)
	if err != nil {
		return nil, err
	}
	shifts, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, shift.ErrNotFound
	}
	return shifts[0], nil
}

func (g *PgShiftRepository) Update(ctx context.Context, data *shift.Shift) (*shift.Shift, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_shift_update",
		Args:     []any{data.ID, data.Name, data.StartTime, data.EndTime, data.Duration, data.ColorCode, data.UpdatedBy},
		Fallback: updateShiftQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgShiftRepository) Deactivate(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_shift_delete",
		Args:     []any{id, actor},
		Fallback: deactivateShiftQuery,
	})
}
