package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/route"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectRouteQuery = `
		SELECT
			id,
			route_name,
			description,
			is_main_route,
			is_active,
			created_by,
			updated_by,
			created_at,
			updated_at
		FROM routes`

	insertRouteQuery = `
		INSERT INTO routes (route_name, description, is_main_route, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, true, $4, $4)`

	updateRouteQuery = `
		UPDATE routes
		SET route_name = $2,
			description = $3,
			is_main_route = $4,
			updated_by = $5,
			updated_at = now()
		WHERE id = $1`

	deactivateRouteQuery = `
		UPDATE routes
		SET is_active = false,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	countRoutesQuery = `SELECT COUNT(*) FROM routes WHERE is_active = true`

	searchRoutesCondition = `route_name ILIKE $1`

	selectRouteProcessesQuery = `
		SELECT
			rp.id,
			rp.route_id,
			rp.process_id,
			p.process_name,
			rp.process_order,
			rp.is_active
		FROM route_processes rp
		JOIN processes p ON p.id = rp.process_id
		WHERE rp.route_id = $1
		ORDER BY rp.process_order`

	insertRouteProcessQuery = `
		INSERT INTO route_processes (route_id, process_id, process_order, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id`

	deleteRouteProcessesQuery = `DELETE FROM route_processes WHERE route_id = $1`
)

type PgRouteRepository struct {
	fieldMap map[string]string
}

func NewRouteRepository() route.Repository {
	return &PgRouteRepository{
		fieldMap: map[string]string{
			"id":          "id",
			"routeName":   "route_name",
			"isMainRoute": "is_main_route",
			"createdAt":   "created_at",
			"updatedAt":   "updated_at",
		},
	}
}

func (g *PgRouteRepository) scan(rows pgx.Rows) (*route.Route, error) {
	var r route.Route
	if err := rows.Scan(
		&r.ID,
		&r.RouteName,
		&r.Description,
		&r.IsMainRoute,
		&r.IsActive,
		&r.CreatedBy,
		&r.UpdatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (g *PgRouteRepository) collect(rows pgx.Rows) ([]*route.Route, error) {
	defer rows.Close()
	routes := make([]*route.Route, 0)
	for rows.Next() {
		r, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (g *PgRouteRepository) loadProcesses(ctx context.Context, tx repo.Tx, routeID int64) ([]route.RouteProcess, error) {
	rows, err := tx.Query(ctx, selectRouteProcessesQuery, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	steps := make([]route.RouteProcess, 0)
	for rows.Next() {
		var rp route.RouteProcess
		if err := rows.Scan(&rp.ID, &rp.RouteID, &rp.ProcessID, &rp.ProcessName, &rp.ProcessOrder, &rp.IsActive); err != nil {
			return nil, err
		}
		steps = append(steps, rp)
	}
	return steps, rows.Err()
}

func (g *PgRouteRepository) Create(ctx context.Context, data *route.Route) (*route.Route, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_route_create",
		Args:     []any{data.RouteName, data.Description, data.IsMainRoute, data.CreatedBy},
		Fallback: insertRouteQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

func (g *PgRouteRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*route.Route, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectRouteQuery,
		"WHERE created_by = $1 ORDER BY id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	routes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, route.ErrNotFound
	}
	return routes[0], nil
}

func (g *PgRouteRepository) AddProcess(ctx context.Context, rp *route.RouteProcess) (*route.RouteProcess, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(ctx, insertRouteProcessQuery, rp.RouteID, rp.ProcessID, rp.ProcessOrder).Scan(&rp.ID); err != nil {
		return nil, err
	}
	rp.IsActive = true
	return rp, nil
}

func (g *PgRouteRepository) ReplaceProcesses(ctx context.Context, routeID int64, steps []route.RouteProcess) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, deleteRouteProcessesQuery, routeID); err != nil {
		return err
	}
	for i := range steps {
		rp := &steps[i]
		rp.RouteID = routeID
		if err := tx.QueryRow(ctx, insertRouteProcessQuery, rp.RouteID, rp.ProcessID, rp.ProcessOrder).Scan(&rp.ID); err != nil {
			return err
		}
		rp.IsActive = true
	}
	return nil
}

func (g *PgRouteRepository) GetPaginated(ctx context.Context, params *route.FindParams) ([]*route.Route, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "routeName")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectRouteQuery,
			repo.JoinWhere("is_active = true", searchRoutesCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_route_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectRouteQuery,
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

func (g *PgRouteRepository) Count(ctx context.Context, params *route.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx, repo.Join(countRoutesQuery, "AND", searchRoutesCondition),
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countRoutesQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgRouteRepository) GetByID(ctx context.Context, id int64) (*route.Route, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_route_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectRouteQuery, "WHERE id = $1 AND is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	routes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, route.ErrNotFound
	}
	r := routes[0]
	if r.Processes, err = g.loadProcesses(ctx, tx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *PgRouteRepository) GetAnyByID(ctx context.Context, id int64) (*route.Route, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectRouteQuery, "WHERE id = $1"), id)
	if err != nil {
		return nil, err
	}
	routes, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, route.ErrNotFound
	}
	r := routes[0]
	if r.Processes, err = g.loadProcesses(ctx, tx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *PgRouteRepository) Update(ctx context.Context, data *route.Route) (*route.Route, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_route_update",
		Args:     []any{data.ID, data.RouteName, data.Description, data.IsMainRoute, data.UpdatedBy},
		Fallback: updateRouteQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgRouteRepository) Deactivate(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_route_delete",
		Args:     []any{id, actor},
		Fallback: deactivateRouteQuery,
	})
}
