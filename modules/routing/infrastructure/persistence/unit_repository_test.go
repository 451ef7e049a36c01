package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"
)

func unitRow(id int64, name, symbol string) []any {
	now := time.Now()
	return []any{id, name, symbol, nil, true, int64(9), int64(9), now, now}
}

func TestPgUnitRepository_GetPaginated_RoutinePath(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_list", rows: [][]any{unitRow(1, "Kilogram", "kg"), unitRow(2, "Meter", "m")}},
	}}
	repo := NewUnitRepository()

	units, err := repo.GetPaginated(txContext(tx), &unit.FindParams{
		Page:      2,
		PerPage:   10,
		SortBy:    "unitName",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Kilogram", units[0].UnitName)

	require.Len(t, tx.stmts, 1)
	assert.Equal(t, "SELECT * FROM sp_unit_list($1, $2, $3, $4)", tx.stmts[0].sql)
	assert.Equal(t, []any{"unit_name", "ASC", 10, 10}, tx.stmts[0].args)
}

func TestPgUnitRepository_GetPaginated_FallsBackWhenRoutineMissing(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_list", err: undefinedFunction("sp_unit_list")},
		{match: "FROM units", rows: [][]any{unitRow(1, "Kilogram", "kg")}},
	}}
	repo := NewUnitRepository()

	units, err := repo.GetPaginated(txContext(tx), &unit.FindParams{
		Page:      1,
		PerPage:   25,
		SortBy:    "unitName",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, units, 1)

	require.Len(t, tx.stmts, 2)
	assert.Contains(t, tx.stmts[1].sql, "ORDER BY unit_name DESC")
	assert.Contains(t, tx.stmts[1].sql, "OFFSET $1 LIMIT $2")
	assert.Equal(t, []any{0, 25}, tx.stmts[1].args)
}

func TestPgUnitRepository_GetPaginated_UnknownSortKeyFallsBackToDefault(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_list", rows: [][]any{}},
	}}
	repo := NewUnitRepository()

	_, err := repo.GetPaginated(txContext(tx), &unit.FindParams{
		Page:    1,
		PerPage: 10,
		SortBy:  "unit_name; DROP TABLE units",
	})
	require.NoError(t, err)

	require.Len(t, tx.stmts, 1)
	assert.Equal(t, "unit_name", tx.stmts[0].args[0])
}

func TestPgUnitRepository_GetPaginated_EmptySortKeyUsesNameColumn(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_list", rows: [][]any{}},
	}}
	repo := NewUnitRepository()

	_, err := repo.GetPaginated(txContext(tx), &unit.FindParams{
		Page:    1,
		PerPage: 10,
	})
	require.NoError(t, err)

	require.Len(t, tx.stmts, 1)
	assert.Equal(t, "unit_name", tx.stmts[0].args[0])
}

func TestPgUnitRepository_GetPaginated_SearchUsesInlineQuery(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "FROM units", rows: [][]any{unitRow(1, "Kilogram", "kg")}},
	}}
	repo := NewUnitRepository()

	units, err := repo.GetPaginated(txContext(tx), &unit.FindParams{
		Page:    1,
		PerPage: 10,
		Search:  "kilo",
	})
	require.NoError(t, err)
	require.Len(t, units, 1)

	require.Len(t, tx.stmts, 1)
	assert.NotContains(t, tx.stmts[0].sql, "sp_unit_list")
	assert.Contains(t, tx.stmts[0].sql, "ILIKE")
	assert.Equal(t, "%kilo%", tx.stmts[0].args[0])
}

func TestPgUnitRepository_GetByID_NotFound(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_get_by_id", rows: [][]any{}},
	}}
	repo := NewUnitRepository()

	_, err := repo.GetByID(txContext(tx), 42)
	require.ErrorIs(t, err, unit.ErrNotFound)
}

func TestPgUnitRepository_Create_InsertsThenReReads(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "created_by = $1", rows: [][]any{unitRow(7, "Liter", "l")}},
	}}
	repo := NewUnitRepository()

	created, err := repo.Create(txContext(tx), &unit.Unit{
		UnitName:   "Liter",
		UnitSymbol: "l",
		CreatedBy:  9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	require.Len(t, tx.stmts, 2)
	assert.Equal(t, "SELECT * FROM sp_unit_create($1, $2, $3, $4)", tx.stmts[0].sql)
	assert.Contains(t, tx.stmts[1].sql, "ORDER BY id DESC LIMIT 1")
}

func TestPgUnitRepository_Deactivate_FallsBackToInlineUpdate(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_unit_delete", err: undefinedFunction("sp_unit_delete")},
	}}
	repo := NewUnitRepository()

	require.NoError(t, repo.Deactivate(txContext(tx), 3, 9))

	require.Len(t, tx.stmts, 2)
	assert.Contains(t, tx.stmts[1].sql, "is_active = false")
	assert.Equal(t, []any{int64(3), int64(9)}, tx.stmts[1].args)
}

func TestPgUnitRepository_ExistsActive(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "SELECT EXISTS", rows: [][]any{{true}}},
	}}
	repo := NewUnitRepository()

	exists, err := repo.ExistsActive(txContext(tx), "Kilogram", "kg")
	require.NoError(t, err)
	assert.True(t, exists)
}
