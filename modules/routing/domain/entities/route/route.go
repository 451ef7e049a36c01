package route

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewError("ROUTE_NOT_FOUND", "route not found", "")
	ErrAlreadyDeleted = serrors.NewError("ROUTE_ALREADY_DELETED", "route already deleted", "")
	ErrInactive       = serrors.NewError("ROUTE_INACTIVE", "cannot update inactive route", "")
)

// Route is an ordered sequence of processes a product travels through.
type Route struct {
	ID          int64          `json:"id"`
	RouteName   string         `json:"routeName"`
	Description *string        `json:"description"`
	IsMainRoute bool           `json:"isMainRoute"`
	IsActive    bool           `json:"isActive"`
	CreatedBy   int64          `json:"CreatedBy"`
	UpdatedBy   int64          `json:"UpdatedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Processes   []RouteProcess `json:"processes,omitempty"`
}

// RouteProcess positions a process within a route. ProcessOrder starts at 1
// and determines execution sequence.
type RouteProcess struct {
	ID           int64  `json:"routeProcessId"`
	RouteID      int64  `json:"routeId"`
	ProcessID    int64  `json:"processId"`
	ProcessName  string `json:"processName,omitempty"`
	ProcessOrder int    `json:"processOrder"`
	IsActive     bool   `json:"isActive"`
}

type FindParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

type Repository interface {
	Create(ctx context.Context, data *Route) (*Route, error)
	AddProcess(ctx context.Context, rp *RouteProcess) (*RouteProcess, error)
	// ReplaceProcesses deletes existing route steps and inserts the given
	// set preserving their ProcessOrder.
	ReplaceProcesses(ctx context.Context, routeID int64, steps []RouteProcess) error
	GetPaginated(ctx context.Context, params *FindParams) ([]*Route, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Route, error)
	GetAnyByID(ctx context.Context, id int64) (*Route, error)
	Update(ctx context.Context, data *Route) (*Route, error)
	Deactivate(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Route
}

type UpdatedEvent struct {
	Result Route
}

type DeletedEvent struct {
	Result Route
}
