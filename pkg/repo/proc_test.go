package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedStmt struct {
	sql  string
	args []any
}

type scriptedTx struct {
	stmts    []recordedStmt
	queryErr map[string]error
	execErr  map[string]error
}

func (s *scriptedTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.stmts = append(s.stmts, recordedStmt{sql: sql, args: args})
	if err, ok := s.execErr[sql]; ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.CommandTag{}, nil
}

func (s *scriptedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.stmts = append(s.stmts, recordedStmt{sql: sql, args: args})
	if err, ok := s.queryErr[sql]; ok {
		return nil, err
	}
	return emptyRows{}, nil
}

func (s *scriptedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	s.stmts = append(s.stmts, recordedStmt{sql: sql, args: args})
	return nil
}

type emptyRows struct{}

func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return errors.New("no current row") }
func (emptyRows) Values() ([]any, error)                       { return nil, errors.New("no current row") }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) Close()                                       {}
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func undefinedFunction(name string) error {
	return &pgconn.PgError{Code: "42883", Message: "function " + name + " does not exist"}
}

func TestIsUndefinedFunction(t *testing.T) {
	assert.True(t, IsUndefinedFunction(undefinedFunction("sp_unit_get_by_id")))
	assert.False(t, IsUndefinedFunction(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUndefinedFunction(errors.New("function sp_x does not exist")))
	assert.False(t, IsUndefinedFunction(nil))
}

func TestQueryProc_RoutinePathOnly(t *testing.T) {
	tx := &scriptedTx{}
	call := ProcCall{
		Name:     "sp_unit_get_by_id",
		Args:     []any{int64(7)},
		Fallback: "SELECT id FROM units WHERE id = $1 AND is_active",
	}

	rows, err := QueryProc(context.Background(), tx, call)
	require.NoError(t, err)
	require.NotNil(t, rows)

	require.Len(t, tx.stmts, 1)
	assert.Equal(t, "SELECT * FROM sp_unit_get_by_id($1)", tx.stmts[0].sql)
	assert.Equal(t, []any{int64(7)}, tx.stmts[0].args)
}

func TestQueryProc_FallsBackWhenRoutineMissing(t *testing.T) {
	call := ProcCall{
		Name:     "sp_unit_get_by_id",
		Args:     []any{int64(7)},
		Fallback: "SELECT id FROM units WHERE id = $1 AND is_active",
	}
	tx := &scriptedTx{
		queryErr: map[string]error{
			"SELECT * FROM sp_unit_get_by_id($1)": undefinedFunction("sp_unit_get_by_id"),
		},
	}

	rows, err := QueryProc(context.Background(), tx, call)
	require.NoError(t, err)
	require.NotNil(t, rows)

	require.Len(t, tx.stmts, 2)
	assert.Equal(t, call.Fallback, tx.stmts[1].sql)
	assert.Equal(t, []any{int64(7)}, tx.stmts[1].args)
}

func TestQueryProc_OtherFailuresPropagate(t *testing.T) {
	constraintErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	call := ProcCall{
		Name:     "sp_process_create",
		Args:     []any{"milling", int64(3)},
		Fallback: "INSERT INTO processes (process_name, workstation_id) VALUES ($1, $2)",
	}
	tx := &scriptedTx{
		queryErr: map[string]error{
			"SELECT * FROM sp_process_create($1, $2)": constraintErr,
		},
	}

	_, err := QueryProc(context.Background(), tx, call)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23503", pgErr.Code)
	// fallback never ran
	require.Len(t, tx.stmts, 1)
}

func TestQueryProc_FallbackFailurePropagates(t *testing.T) {
	call := ProcCall{
		Name:     "sp_unit_list",
		Args:     []any{10, 0},
		Fallback: "SELECT id FROM units WHERE is_active LIMIT $1 OFFSET $2",
	}
	tx := &scriptedTx{
		queryErr: map[string]error{
			"SELECT * FROM sp_unit_list($1, $2)": undefinedFunction("sp_unit_list"),
			call.Fallback:                        &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
		},
	}

	_, err := QueryProc(context.Background(), tx, call)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "42P01", pgErr.Code)
	require.Len(t, tx.stmts, 2)
}

func TestQueryProc_FallbackArgsOverrideRoutineArgs(t *testing.T) {
	call := ProcCall{
		Name:         "sp_unit_list",
		Args:         []any{"unit_name", "ASC", 0, 10},
		Fallback:     "SELECT id FROM units WHERE is_active ORDER BY unit_name ASC OFFSET $1 LIMIT $2",
		FallbackArgs: []any{0, 10},
	}
	tx := &scriptedTx{
		queryErr: map[string]error{
			"SELECT * FROM sp_unit_list($1, $2, $3, $4)": undefinedFunction("sp_unit_list"),
		},
	}

	_, err := QueryProc(context.Background(), tx, call)
	require.NoError(t, err)

	require.Len(t, tx.stmts, 2)
	assert.Equal(t, []any{"unit_name", "ASC", 0, 10}, tx.stmts[0].args)
	assert.Equal(t, []any{0, 10}, tx.stmts[1].args)
}

func TestExecProc_FallsBackWhenRoutineMissing(t *testing.T) {
	call := ProcCall{
		Name:     "sp_unit_delete",
		Args:     []any{int64(1), int64(9)},
		Fallback: "UPDATE units SET is_active = FALSE WHERE id = $2",
	}
	tx := &scriptedTx{
		execErr: map[string]error{
			"SELECT * FROM sp_unit_delete($1, $2)": undefinedFunction("sp_unit_delete"),
		},
	}

	require.NoError(t, ExecProc(context.Background(), tx, call))
	require.Len(t, tx.stmts, 2)
	assert.Equal(t, call.Fallback, tx.stmts[1].sql)
}

func TestExecProc_ConstraintViolationDoesNotFallBack(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	call := ProcCall{
		Name:     "sp_shift_create",
		Args:     []any{"Morning"},
		Fallback: "INSERT INTO master_shifts (name) VALUES ($1)",
	}
	tx := &scriptedTx{
		execErr: map[string]error{
			"SELECT * FROM sp_shift_create($1)": uniqueErr,
		},
	}

	err := ExecProc(context.Background(), tx, call)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	require.Len(t, tx.stmts, 1)
}
