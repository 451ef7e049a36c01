package product

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewError("PRODUCT_NOT_FOUND", "product not found", "")
	ErrAlreadyDeleted = serrors.NewError("PRODUCT_ALREADY_DELETED", "product already deleted", "")
	ErrInactive       = serrors.NewError("PRODUCT_INACTIVE", "cannot update inactive product", "")
	ErrInvalidRoute   = serrors.NewError("PRODUCT_INVALID_ROUTE", "main route does not exist or is inactive", "")
)

// Product is a manufactured item tied to a main production route.
type Product struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"productName"`
	Description *string   `json:"description"`
	MainRouteID int64     `json:"mainRouteId"`
	RouteName   string    `json:"routeName,omitempty"`
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
	Create(ctx context.Context, data *Product) (*Product, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Product, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetAnyByID(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, data *Product) (*Product, error)
	Deactivate(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Product
}

type UpdatedEvent struct {
	Result Product
}

type DeletedEvent struct {
	Result Product
}
