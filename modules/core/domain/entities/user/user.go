package user

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound           = serrors.NewError("USER_NOT_FOUND", "user not found", "")
	ErrInvalidCredentials = serrors.NewError("INVALID_CREDENTIALS", "invalid username or password", "")
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  *string   `json:"fullName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

// CredentialVerifier checks a username/password pair and returns the user id
// on success. Kept separate from Repository so the storage scheme for
// credentials can change without touching the auth flow.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (int64, error)
}
