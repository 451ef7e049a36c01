package persistence

import (
	"context"

	"github.com/hiqsoft/routecore/modules/core/domain/entities/user"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/repo"
	"github.com/jackc/pgx/v5"
)

const (
	selectUserQuery = `
		SELECT
			id,
			username,
			full_name,
			is_active,
			created_at,
			updated_at
		FROM users`

	verifyCredentialsFallback = `
		SELECT id FROM users
		WHERE username = $1
			AND password = $2
			AND is_active = true`
)

type PgUserRepository struct{}

func NewUserRepository() *PgUserRepository {
	return &PgUserRepository{}
}

func (g *PgUserRepository) scan(rows pgx.Rows) (*user.User, error) {
	var u user.User
	if err := rows.Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *PgUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, repo.Join(selectUserQuery, "WHERE id = $1"), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, user.ErrNotFound
	}
	return g.scan(rows)
}

// Verify resolves credentials to a user id. Passwords are matched by the
// routine or its inline equivalent; no match means invalid credentials, with
// no distinction between unknown user and wrong password.
func (g *PgUserRepository) Verify(ctx context.Context, username, password string) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	rows, err := repo.QueryProc(ctx, tx, repo.ProcCall{
		Name:     "sp_user_login",
		Args:     []any{username, password},
		Fallback: verifyCredentialsFallback,
	})
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, user.ErrInvalidCredentials
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
