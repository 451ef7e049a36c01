package process

import (
	"context"
	"time"

	"github.com/hiqsoft/routecore/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewError("PROCESS_NOT_FOUND", "process not found", "")
	ErrAlreadyDeleted = serrors.NewError("PROCESS_ALREADY_DELETED", "process already deleted", "")
	ErrInactive       = serrors.NewError("PROCESS_INACTIVE", "cannot update inactive process", "")
)

// Process is a manufacturing step bound to a workstation. Times are
// expressed in minutes.
type Process struct {
	ID              int64       `json:"id"`
	ProcessName     string      `json:"processName"`
	Description     *string     `json:"description"`
	WorkstationID   int64       `json:"workstationId"`
	WorkstationName string      `json:"workstationName,omitempty"`
	ProcessTime     float64     `json:"processTime"`
	SetupTime       float64     `json:"setupTime"`
	IsActive        bool        `json:"isActive"`
	CreatedBy       int64       `json:"CreatedBy"`
	UpdatedBy       int64       `json:"UpdatedBy"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Technicals      []Technical `json:"technicals,omitempty"`
}

// Technical is a named technical parameter of a process, optionally
// measured in a unit.
type Technical struct {
	ID         int64   `json:"technicalId"`
	ProcessID  int64   `json:"processId"`
	UnitID     *int64  `json:"unitId"`
	UnitSymbol *string `json:"unitSymbol,omitempty"`
	Name       string  `json:"name"`
	Value      string  `json:"value"`
}

type FindParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

type Repository interface {
	Create(ctx context.Context, data *Process) (*Process, error)
	AddTechnical(ctx context.Context, t *Technical) (*Technical, error)
	// ReplaceTechnicals deletes the existing technical rows and inserts the
	// given set in order.
	ReplaceTechnicals(ctx context.Context, processID int64, technicals []Technical) error
	GetPaginated(ctx context.Context, params *FindParams) ([]*Process, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*Process, error)
	GetAnyByID(ctx context.Context, id int64) (*Process, error)
	Update(ctx context.Context, data *Process) (*Process, error)
	Deactivate(ctx context.Context, id, actor int64) error
}

type CreatedEvent struct {
	Result Process
}

type UpdatedEvent struct {
	Result Process
}

type DeletedEvent struct {
	Result Process
}
