package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/product"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectProductQuery = `
		SELECT
			pr.id,
			pr.product_name,
			pr.description,
			pr.main_route_id,
			r.route_name,
			pr.is_active,
			pr.created_by,
			pr.updated_by,
			pr.created_at,
			pr.updated_at
		FROM products pr
		JOIN routes r ON r.id = pr.main_route_id`

	insertProductQuery = `
		INSERT INTO products (product_name, description, main_route_id, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, true, $4, $4)`

	updateProductQuery = `
		UPDATE products
		SET product_name = $2,
			description = $3,
			main_route_id = $4,
			updated_by = $5,
			updated_at = now()
		WHERE id = $1`

	deactivateProductQuery = `
		UPDATE products
		SET is_active = false,
			updated_by = $2,
			updated_at = now()
		WHERE id = $1`

	countProductsQuery = `SELECT COUNT(*) FROM products WHERE is_active = true`

	searchProductsCondition = `pr.product_name ILIKE $1`
)

type PgProductRepository struct {
	fieldMap map[string]string
}

func NewProductRepository() product.Repository {
	return &PgProductRepository{
		fieldMap: map[string]string{
			"id":          "pr.id",
			"productName": "pr.product_name",
			"createdAt":   "pr.created_at",
			"updatedAt":   "pr.updated_at",
		},
	}
}

func (g *PgProductRepository) scan(rows pgx.Rows) (*product.Product, error) {
	var p product.Product
	if err := rows.Scan(
		&p.ID,
		&p.ProductName,
		&p.Description,
		&p.MainRouteID,
		&p.RouteName,
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

func (g *PgProductRepository) collect(rows pgx.Rows) ([]*product.Product, error) {
	defer rows.Close()
	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (g *PgProductRepository) Create(ctx context.Context, data *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_product_create",
		Args:     []any{data.ProductName, data.Description, data.MainRouteID, data.CreatedBy},
		Fallback: insertProductQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.latestByCreator(ctx, tx, data.CreatedBy)
}

func (g *PgProductRepository) latestByCreator(ctx context.Context, tx repo.Tx, creator int64) (*product.Product, error) {
	rows, err := tx.Query(ctx, repo.Join(
		selectProductQuery,
		"WHERE pr.created_by = $1 ORDER BY pr.id DESC LIMIT 1",
	), creator)
	if err != nil {
		return nil, err
	}
	products, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return products[0], nil
}

func (g *PgProductRepository) GetPaginated(ctx context.Context, params *product.FindParams) ([]*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	column := repo.ResolveSortField(g.fieldMap, params.SortBy, "productName")
	asc := repo.ParseSortOrder(params.SortOrder)
	offset := (params.Page - 1) * params.PerPage

	if params.Search != "" {
		rows, err := tx.Query(ctx, repo.Join(
			selectProductQuery,
			repo.JoinWhere("pr.is_active = true", searchProductsCondition),
			repo.OrderBy(column, asc),
			"OFFSET $2 LIMIT $3",
		), "%"+params.Search+"%", offset, params.PerPage)
		if err != nil {
			return nil, err
		}
		return g.collect(rows)
	}

	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name: "sp_product_list",
		Args: []any{column, repo.SortDirection(asc), offset, params.PerPage},
		Fallback: repo.Join(
			selectProductQuery,
			"WHERE pr.is_active = true",
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

func (g *PgProductRepository) Count(ctx context.Context, params *product.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if params.Search != "" {
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM products pr WHERE pr.is_active = true AND `+searchProductsCondition,
			"%"+params.Search+"%").Scan(&count)
	} else {
		err = tx.QueryRow(ctx, countProductsQuery).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *PgProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_product_get_by_id",
		Args:     []any{id},
		Fallback: repo.Join(selectProductQuery, "WHERE pr.id = $1 AND pr.is_active = true"),
	})
	if err != nil {
		return nil, err
	}
	products, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return products[0], nil
}

func (g *PgProductRepository) GetAnyByID(ctx context.Context, id int64) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectProductQuery, "WHERE pr.id = $1"), id)
	if err != nil {
		return nil, err
	}
	products, err := g.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return products[0], nil
}

func (g *PgProductRepository) Update(ctx context.Context, data *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	err = repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_product_update",
		Args:     []any{data.ID, data.ProductName, data.Description, data.MainRouteID, data.UpdatedBy},
		Fallback: updateProductQuery,
	})
	if err != nil {
		return nil, err
	}
	return g.GetAnyByID(ctx, data.ID)
}

func (g *PgProductRepository) Deactivate(ctx context.Context, id, actor int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return repo.ExecProc(ctx, tx, repo.ProcCall{
		Name:     "sp_product_delete",
		Args:     []any{id, actor},
		Fallback: deactivateProductQuery,
	})
}
