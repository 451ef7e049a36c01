package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/process"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectProcessQuery = `
		SELECT
			p.id,
			p.process_name,
			p.description,
			p.workstation_id,
			w.workstation_name,
			p.process_time,
			p.setup_time,
			p.is_active,
			p.created_by,
			p.updated_by,
			p.created_at,
			p.updated_at
		FROM processes p
		JOIN workstations w ON w.id = p.workstation_id`

	insertProcessQuery = `
		INSERT INTO processes (process_name, description, workstation_id, process_time, setup_time, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)`

	updateProcessQuery = `
		UPDATE processes
		SET process_name = $2,
			description = $3,
			workstation_id = $4,
			process_time = $5,
			setup_time = $6,
			updated_by = $7,
			updated_at = now()
		WHERE id = $1`

	deactivateProcessQuery = `
		UPDATE processes
		SET is_active = false,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	countProcessesQuery = `SELECT COUNT(*) FROM processes WHERE is_active = true`

	searchProcessesCondition = `p.process_name ILIKE $1`

	selectProcessTechnicalsQuery = `
		SELECT
			pt.id,
			pt.process_id,
			pt.unit_id,
			u.unit_symbol,
			pt.name,
			pt.value
		FROM process_technicals pt
		LEFT JOIN units u ON u.id = pt.unit_id
		WHERE pt.process_id = $1
		ORDER BY pt.id`

	insertProcessTechnicalQuery = `
		INSERT INTO process_technicals (process_id, unit_id, name, value)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	deleteProcessTechnicalsQuery = `DELETE FROM process_technicals WHERE process_id = $1`
)

type PgProcessRepository struct {
	fieldMap map[string]string
}

func NewProcessRepository() process.Repository {
	return &PgProcessRepository{
		fieldMap: map[string]string{
			"id":          "p.id",
			"processName": "p.process_name",
			"processTime": "p.process_time",
			"setupTime":   "p.setup_time",
			"createdAt":   "p.created_at",
			"updatedAt":   "p.updated_at",
		},
	}
}

func (g *PgProcessRepository) scan(rows pgx.Rows) (*process.Process, error) {
	var p process.Process
	if err := rows.Scan(
		&p.ID,
		&p.ProcessName,
		&p.Description,
		&p.WorkstationID,
		&p.WorkstationName,
		&p.ProcessTime,
		&p.SetupTime,
		&p.IsActive,
		&p.CreatedBy,
		&p.UpdatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *PgProcessRepository) collect(rows pgx.Rows) ([]*process.Process, error) {
	defer rows.Close()
	processes := make([]*process.Process, 0)
	for rows.Next() {
		p, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, rows.Err()
}

func (g *PgProcessRepository) loadTechnicals(ctx context.Context, tx repo.Tx, processID int64) ([]process.Technical, error) {
	rows, err := tx.Query(ctx, selectProcessTechnicalsQuery, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	technicals := make([]process.Technical, 0)
	for rows.Next() {
		var t process.Technical
		if err := rows.Scan(&t.ID, &t.ProcessID, &t.UnitID, &t.UnitSymbol, &t.Name, &t.Value); err != nil {
			return nil, err
		}
		technicals = append(technicals, t)
	}
	return technicals, rows.Err()
}

func (g *PgProcessRepository) Create(ctx context.Context, data *process.Process) (*process.Process, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_process_create",
		Args:     []any{data.ProcessName, data.Description, data.WorkstationID, data.ProcessTime, data.SetupTime, data.CreatedBy},
		Fallback: insertProcessQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

func (g *PgProcessRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*process.Process, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectProcessQuery,
		"WHERE p.created_by = $1 ORDER BY p.id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	processes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, process.ErrNotFound
	}
	return processes[0], nil
}

func (g *PgProcessRepository) AddTechnical(ctx context.Context, t *process.Technical) (*process.Technical, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(ctx, insertProcessTechnicalQuery, t.ProcessID, t.UnitID, t.Name, t.Value).Scan(&t.ID); err != nil {
		return nil, err
	}
	return t, nil
}

func (g *PgProcessRepository) ReplaceTechnicals(ctx context.Context, processID int64, technicals []process.Technical) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, deleteProcessTechnicalsQuery, processID); err != nil {
		return err
	}
	for i := range technicals {
		t := &technicals[i]
		t.ProcessID = processID
		if err := tx.QueryRow(ctx, insertProcessTechnicalQuery, t.ProcessID, t.UnitID, t.Name, t.Value).Scan(&t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (g *PgProcessRepository) GetPaginated(ctx context.Context, params *process.FindParams) ([]*process.Process, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "processName")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectProcessQuery,
			repo.JoinWhere("p.is_active = true", searchProcessesCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_process_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectProcessQuery,
			"WHERE p.is_active = true",
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

func (g *PgProcessRepository) Count(ctx context.Context, params *process.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM processes p WHERE p.is_active = true AND `+searchProcessesCondition,
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countProcessesQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgProcessRepository) GetByID(ctx context.Context, id int64) (*process.Process, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_process_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectProcessQuery, "WHERE p.id = $1 AND p.is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	processes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, process.ErrNotFound
	}
	p := processes[0]
	if p.Technicals, err = g.loadTechnicals(ctx, tx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (g *PgProcessRepository) GetAnyByID(ctx context.Context, id int64) (*process.Process, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectProcessQuery, "WHERE p.id = $1"), id)
	if err != nil {
		return nil, err
	}
	processes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, process.ErrNotFound
	}
	p := processes[0]
	if p.Technicals, err = g.loadTechnicals(ctx, tx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (g *PgProcessRepository) Update(ctx context.Context, data *process.Process) (*process.Process, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_process_update",
		Args:     []any{data.ID, data.ProcessName, data.Description, data.WorkstationID, data.ProcessTime, data.SetupTime, data.UpdatedBy},
		Fallback: updateProcessQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgProcessRepository) Deactivate(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_process_delete",
		Args:     []any{id, actor},
		Fallback: deactivateProcessQuery,
	})
}
