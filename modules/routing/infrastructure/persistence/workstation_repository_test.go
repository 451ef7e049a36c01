package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/workstation"
)

func workstationRow(id int64, name string, active bool) []any {
	now := time.Now()
	return []any{id, name, nil, active, int64(9), int64(9), now, now}
}

func TestPgWorkstationRepository_ToggleActive_RoutinePath(t *testing.T) {
	tx := &stubTx{}
	repo := NewWorkstationRepository()

	require.NoError(t, repo.ToggleActive(txContext(tx), 5, 9))

	require.Len(t, tx.stmts, 1)
	assert.Equal(t, "SELECT * FROM sp_workstation_delete($1, $2)", tx.stmts[0].sql)
	assert.Equal(t, []any{int64(5), int64(9)}, tx.stmts[0].args)
}

func TestPgWorkstationRepository_ToggleActive_FallbackFlipsFlag(t *testing.T) {
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_workstation_delete", err: undefinedFunction("sp_workstation_delete")},
	}}
	repo := NewWorkstationRepository()

	require.NoError(t, repo.ToggleActive(txContext(tx), 5, 9))

	require.Len(t, tx.stmts, 2)
	assert.Contains(t, tx.stmts[1].sql, "is_active = NOT is_active")
}

func TestPgWorkstationRepository_GetByID_LoadsShiftAssignments(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tx := &stubTx{responses: []stubResponse{
		{match: "sp_workstation_get_by_id", rows: [][]any{workstationRow(5, "Lathe 1", true)}},
		{match: "workstation_shifts", rows: [][]any{
			{int64(11), int64(2), "Morning", &start, nil},
		}},
	}}
	repo := NewWorkstationRepository()

	w, err := repo.GetByID(txContext(tx), 5)
	require.NoError(t, err)
	assert.Equal(t, "Lathe 1", w.WorkstationName)
	require.Len(t, w.Shifts, 1)
	assert.Equal(t, int64(2), w.Shifts[0].ShiftID)
	assert.Equal(t, "Morning", w.Shifts[0].ShiftName)
	require.NotNil(t, w.Shifts[0].StartDate)
	assert.Nil(t, w.Shifts[0].EndDate)
}

func TestPgWorkstationRepository_GetByID_NotFound(t *testing.T) {
	tx := &stubTx{}
	repo := NewWorkstationRepository()

	_, err := repo.GetByID(txContext(tx), 404)
	require.ErrorIs(t, err, workstation.ErrNotFound)
}
