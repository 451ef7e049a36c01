package persistence

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/workstation"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectWorkstationQuery = `
		SELECT
			id,
			workstation_name,
			description,
			is_active,
			created_by,
			updated_by,
			created_at,
			updated_at
		FROM workstations`

	insertWorkstationQuery = `
		INSERT INTO workstations (workstation_name, description, is_active, created_by, updated_by)
		VALUES ($1, $2, true, $3, $3)`

	updateWorkstationQuery = `
		UPDATE workstations
		SET workstation_name = $2,
			description = $3,
			updated_by = $4,
			updated_at = now()
		WHERE id = $1`

	toggleWorkstationQuery = `
		UPDATE workstations
		SET is_active = NOT is_active,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	countWorkstationsQuery = `SELECT COUNT(*) FROM workstations WHERE is_active = true`

	searchWorkstationsCondition = `workstation_name ILIKE $1`

	selectWorkstationShiftsQuery = `
		SELECT
			ws.id,
			ws.shift_id,
			ms.shift_name,
			ws.start_date,
			ws.end_date
		FROM workstation_shifts ws
		JOIN master_shifts ms ON ms.id = ws.shift_id
		WHERE ws.workstation_id = $1
		ORDER BY ws.id`

	insertWorkstationShiftQuery = `
		INSERT INTO workstation_shifts (workstation_id, shift_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	selectShiftNameQuery = `SELECT shift_name FROM master_shifts WHERE id = $1`
)

type PgWorkstationRepository struct {
	fieldMap map[string]string
}

func NewWorkstationRepository() workstation.Repository {
	return &PgWorkstationRepository{
		fieldMap: map[string]string{
			"id":              "id",
			"workstationName": "workstation_name",
			"description":     "description",
			"createdAt":       "created_at",
			"updatedAt":       "updated_at",
		},
	}
}

func (g *PgWorkstationRepository) scan(rows pgx.Rows) (*workstation.Workstation, error) {
	var w workstation.Workstation
	if err := rows.Scan(
		&w.ID,
		&w.WorkstationName,
		&w.Description,
		&w.IsActive,
		&w.CreatedBy,
		&w.UpdatedBy,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func (g *PgWorkstationRepository) collect(rows pgx.Rows) ([]*workstation.Workstation, error) {
	defer rows.Close()
	workstations := make([]*workstation.Workstation, 0)
	for rows.Next() {
		w, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		workstations = append(workstations, w)
	}
	return workstations, rows.Err()
}

func (g *PgWorkstationRepository) loadShifts(ctx context.Context, tx repo.Tx, workstationID int64) ([]workstation.ShiftAssignment, error) {
	rows, err := tx.Query(ctx, selectWorkstationShiftsQuery, workstationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	assignments := make([]workstation.ShiftAssignment, 0)
	for rows.Next() {
		var a workstation.ShiftAssignment
		if err := rows.Scan(&a.ID, &a.ShiftID, &a.ShiftName, &a.StartDate, &a.EndDate); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (g *PgWorkstationRepository) Create(ctx context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_workstation_create",
		Args:     []any{data.WorkstationName, data.Description, data.CreatedBy},
		Fallback: insertWorkstationQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

func (g *PgWorkstationRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*workstation.Workstation, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectWorkstationQuery,
		"WHERE created_by = $1 ORDER BY id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	workstations, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(workstations) == 0 {
		return nil, workstation.ErrNotFound
	}
	return workstations[0], nil
}

func (g *PgWorkstationRepository) AssignShift(ctx context.Context, workstationID, shiftID int64, startDate, endDate *time.Time) (*workstation.ShiftAssignment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	a := workstation.ShiftAssignment{
		ShiftID:   shiftID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := tx.QueryRow(ctx, insertWorkstationShiftQuery, workstationID, shiftID, startDate, endDate).Scan(&a.ID); err != nil {
		return nil, err
	}
	if err := tx.QueryRow(ctx, selectShiftNameQuery, shiftID).Scan(&a.ShiftName); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *PgWorkstationRepository) GetPaginated(ctx context.Context, params *workstation.FindParams) ([]*workstation.Workstation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "workstationName")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectWorkstationQuery,
			repo.JoinWhere("is_active = true", searchWorkstationsCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_workstation_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectWorkstationQuery,
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

func (g *PgWorkstationRepository) Count(ctx context.Context, params *workstation.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx, repo.Join(countWorkstationsQuery, "AND", searchWorkstationsCondition),
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countWorkstationsQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgWorkstationRepository) GetByID(ctx context.Context, id int64) (*workstation.Workstation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_workstation_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectWorkstationQuery, "WHERE id = $1 AND is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	workstations, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(workstations) == 0 {
		return nil, workstation.ErrNotFound
	}
	w := workstations[0]
	if w.Shifts, err = g.loadShifts(ctx, tx, w.ID); err != nil {
		return nil, err
	}
	return w, nil
}

func (g *PgWorkstationRepository) GetAnyByID(ctx context.Context, id int64) (*workstation.Workstation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectWorkstationQuery, "WHERE id = $1"), id)
	if err != nil {
		return nil, err
	}
	workstations, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(workstations) == 0 {
		return nil, workstation.ErrNotFound
	}
	w := workstations[0]
	if w.Shifts, err = g.loadShifts(ctx, tx, w.ID); err != nil {
		return nil, err
	}
	return w, nil
}

func (g *PgWorkstationRepository) Update(ctx context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_workstation_update",
		Args:     []any{data.ID, data.WorkstationName, data.Description, data.UpdatedBy},
		Fallback: updateWorkstationQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgWorkstationRepository) ToggleActive(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_workstation_delete",
		Args:     []any{id, actor},
		Fallback: toggleWorkstationQuery,
	})
}
