package shift

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewError("SHIFT_NOT_FOUND", "shift not found", "")
	ErrAlreadyExists  = serrors.NewError("SHIFT_ALREADY_EXISTS", "shift already exists", "")
	ErrAlreadyDeleted = serrors.NewError("SHIFT_ALREADY_DELETED", "shift already deleted", "")
	ErrInactive       = serrors.NewError("SHIFT_INACTIVE", "cannot update inactive shift", "")
)

// Shift is a working-time window assignable to workstations. StartTime and
// EndTime are wall-clock values in HH:MM format; Duration is minutes.
type Shift struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Duration  *int      `json:"duration"`
	ColorCode *string   `json:"colorCode"`
	IsActive  bool      `json:"isActive"`
	CreatedBy int64     `json:"CreatedBy"`
	UpdatedBy int64     `json:"UpdatedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FindParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

type Repository interface {
	Create(ctx context.Context, data *Shift) (*Shift, error)
	// ExistsActive is the duplicate guard for (name, startTime, endTime).
	// Check-then-insert is not atomic against concurrent creators.
	ExistsActive(ctx context.Context, name, startTime, endTime string) (bool, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Shift, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Shift, error)
	GetAnyByID(ctx context.Context, id int64) (*Shift, error)
	Update(ctx context.Context, data *Shift) (*Shift, error)
	Deactivate(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Shift
}

type UpdatedEvent struct {
	Result Shift
}

type DeletedEvent struct {
	Result Shift
}
