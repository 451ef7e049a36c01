package unit

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewError("UNIT_NOT_FOUND", "unit not found", "")
	ErrAlreadyExists  = serrors.NewError("UNIT_ALREADY_EXISTS", "a unit with the specified name and symbol already exists", "")
	ErrAlreadyDeleted = serrors.NewError("UNIT_ALREADY_DELETED", "unit already deleted", "")
	ErrInactive       = serrors.NewError("UNIT_INACTIVE", "cannot update inactive unit", "")
)

// Unit is a measurement unit referenced by process technical values.
type Unit struct {
	ID          int64     `json:"id"`
	UnitName    string    `json:"unitName"`
	UnitSymbol  string    `json:"unitSymbol"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   int64     `json:"CreatedBy"`
	UpdatedBy   int64     `json:"UpdatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FindParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

type Repository interface {
	Create(ctx context.Context, data *Unit) (*Unit, error)
	ExistsActive(ctx context.Context, name, symbol string) (bool, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Unit, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Unit, error)
	GetAnyByID(ctx context.Context, id int64) (*Unit, error)
	Update(ctx context.Context, data *Unit) (*Unit, error)
	Deactivate(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Unit
}

type UpdatedEvent struct {
	Result Unit
}

type DeletedEvent struct {
	Result Unit
}
