package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Deployments are expected to carry the sp_* routines, but a fresh database
// without them must still serve every operation. ProcCall pairs a named
// server-side routine with an inline statement computing the same result, so
// call sites stay agnostic about which of the two actually ran.
//
// The routine and the inline statement are authored as a pair and must
// produce identical result shapes; the executor cannot verify that.
type ProcCall struct {
	// Name is the routine identifier, e.g. "sp_unit_get_by_id".
	Name string
	// Args are bound positionally to the routine's declared signature.
	Args []any
	// Fallback is the equivalent parameterized statement.
	Fallback string
	// FallbackArgs, when set, are bound to Fallback instead of Args. Used
	// where the routine takes resolved sort identifiers as data while the
	// inline statement embeds them as identifiers.
	FallbackArgs []any
}

func (c ProcCall) callSQL() string {
	if len(c.Args) == 0 {
		return fmt.Sprintf("SELECT * FROM %s()", c.Name)
	}
	placeholders := make([]string, len(c.Args))
	for i := range c.Args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("SELECT * FROM %s(%s)", c.Name, strings.Join(placeholders, ", "))
}

func (c ProcCall) fallbackArgs() []any {
	if c.FallbackArgs != nil {
		return c.FallbackArgs
	}
	return c.Args
}

// IsUndefinedFunction reports whether err means the named routine is absent
// from the catalog. The check branches on SQLSTATE 42883 only; message text
// is never inspected, so constraint violations, bad parameter types and
// permission failures can never be mistaken for a missing routine.
func IsUndefinedFunction(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "42883" // undefined_function
}

// QueryProc runs the named routine and returns its rows. Iff the routine is
// absent it runs the fallback statement instead; every other failure is
// returned unchanged. Exactly one of the two statements executes per call.
func QueryProc(ctx context.Context, tx Tx, call ProcCall) (pgx.Rows, error) {
	rows, err := tx.Query(ctx, call.callSQL(), call.Args...)
	if err == nil {
		return rows, nil
	}
	if !IsUndefinedFunction(err) {
		return nil, err
	}
	rows, err = tx.Query(ctx, call.Fallback, call.fallbackArgs()...)
	if err != nil {
		return nil, errors.Wrapf(err, "fallback for %s", call.Name)
	}
	return rows, nil
}

// ExecProc is QueryProc for statements whose result set is not read.
func ExecProc(ctx context.Context, tx Tx, call ProcCall) error {
	_, err := tx.Exec(ctx, call.callSQL(), call.Args...)
	if err == nil {
		return nil
	}
	if !IsUndefinedFunction(err) {
		return err
	}
	if _, err := tx.Exec(ctx, call.Fallback, call.fallbackArgs()...); err != nil {
		return errors.Wrapf(err, "fallback for %s", call.Name)
	}
	return nil
}
