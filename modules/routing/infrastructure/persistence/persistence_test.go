package persistence

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hiqsoft/routecore/pkg/constants"
)

// stubResponse answers any statement containing match as a substring.
type stubResponse struct {
	match string
	rows  [][]any
	err   error
}

type recordedStmt struct {
	sql  string
	args []any
}

type stubTx struct {
	stmts     []recordedStmt
	responses []stubResponse
}

func (s *stubTx) find(sql string) *stubResponse {
	for i := range s.responses {
		if strings.Contains(sql, s.responses[i].match) {
			return &s.responses[i]
		}
	}
	return nil
}

func (s *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.stmts = append(s.stmts, recordedStmt{sql: sql, args: args})
	if resp := s.find(sql); resp != nil && resp.err != nil {
		return pgconn.CommandTag{}, resp.err
	}
	return pgconn.CommandTag{}, nil
}

func (s *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.stmts = append(s.stmts, recordedStmt{sql: sql, args: args})
	resp := s.find(sql)
	if resp == nil {
		return &stubRows{}, nil
	}
	if resp.err != nil {
		return nil, resp.err
	}
	return &stubRows{rows: resp.rows}, nil
}

func (s *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	rows, err := s.Query(ctx, sql, args...)
	if err != nil {
		return &errRow{err: err}
	}
	return &firstRow{rows: rows}
}

type errRow struct{ err error }

func (r *errRow) Scan(dest ...any) error { return r.err }

type firstRow struct{ rows pgx.Rows }

func (r *firstRow) Scan(dest ...any) error {
	defer r.rows.Close()
	if !r.rows.Next() {
		return pgx.ErrNoRows
	}
	return r.rows.Scan(dest...)
}

type stubRows struct {
	rows [][]any
	idx  int
}

func (r *stubRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan expected %d columns, got %d", len(row), len(dest))
	}
	for i, src := range row {
		dst := reflect.ValueOf(dest[i]).Elem()
		if src == nil {
			dst.Set(reflect.Zero(dst.Type()))
			continue
		}
		sv := reflect.ValueOf(src)
		switch {
		case sv.Type().AssignableTo(dst.Type()):
			dst.Set(sv)
		case dst.Kind() == reflect.Pointer:
			p := reflect.New(dst.Type().Elem())
			p.Elem().Set(sv.Convert(dst.Type().Elem()))
			dst.Set(p)
		default:
			dst.Set(sv.Convert(dst.Type()))
		}
	}
	return nil
}

func (r *stubRows) Values() ([]any, error)                       { return r.rows[r.idx-1], nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) Close()                                       {}
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func txContext(tx *stubTx) context.Context {
	return context.WithValue(context.Background(), constants.TxKey, tx)
}

func undefinedFunction(name string) error {
	return &pgconn.PgError{Code: "42883", Message: "function " + name + " does not exist"}
}
