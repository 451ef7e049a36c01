package workstation

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound     = serrors.NewError("WORKSTATION_NOT_FOUND", "workstation not found", "")
	ErrInactive     = serrors.NewError("WORKSTATION_INACTIVE", "cannot update inactive workstation", "")
	ErrInvalidShift = serrors.NewError("WORKSTATION_INVALID_SHIFT", "shift does not exist or is inactive", "")
)

// Workstation is a physical station processes run on. Deleting a
// workstation toggles is_active rather than deactivating it one-way, so a
// second delete restores it.
type Workstation struct {
	ID              int64             `json:"id"`
	WorkstationName string            `json:"workstationName"`
	Description     *string           `json:"description"`
	IsActive        bool              `json:"isActive"`
	CreatedBy       int64             `json:"CreatedBy"`
	UpdatedBy       int64             `json:"UpdatedBy"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Shifts          []ShiftAssignment `json:"shifts,omitempty"`
}

// ShiftAssignment links a workstation to a shift for a date range.
type ShiftAssignment struct {
	ID        int64      `json:"shiftAssignmentId"`
	ShiftID   int64      `json:"shiftId"`
	ShiftName string     `json:"shiftName"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type FindParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

type Repository interface {
	Create(ctx context.Context, data *Workstation) (*Workstation, error)
	AssignShift(ctx context.Context, workstationID, shiftID int64, startDate, endDate *time.Time) (*ShiftAssignment, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Workstation, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Workstation, error)
	GetAnyByID(ctx context.Context, id int64) (*Workstation, error)
	Update(ctx context.Context, data *Workstation) (*Workstation, error)
	// ToggleActive flips is_active and returns nothing; callers re-read.
	ToggleActive(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Workstation
}

type UpdatedEvent struct {
	Result Workstation
}

type DeletedEvent struct {
	Result Workstation
}
