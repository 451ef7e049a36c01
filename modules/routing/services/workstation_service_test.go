package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"
	"github.com/hiqsoft/routecore/modules/routing/domain/entities/workstation"
)

type workstationRepoStub struct {
	workstations map[int64]*workstation.Workstation
	nextID       int64
	assignments  []workstation.ShiftAssignment
}

func newWorkstationRepoStub() *workstationRepoStub {
	return &workstationRepoStub{workstations: map[int64]*workstation.Workstation{}, nextID: 1}
}

func (s *workstationRepoStub) Create(_ context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	w := *data
	w.ID = s.nextID
	w.IsActive = true
	w.Shifts = nil
	s.nextID++
	s.workstations[w.ID] = &w
	return &w, nil
}

func (s *workstationRepoStub) AssignShift(_ context.Context, workstationID, shiftID int64, startDate, endDate *time.Time) (*workstation.ShiftAssignment, error) {
	a := workstation.ShiftAssignment{
		ID:        int64(len(s.assignments) + 1),
		ShiftID:   shiftID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	s.assignments = append(s.assignments, a)
	return &a, nil
}

func (s *workstationRepoStub) GetPaginated(context.Context, *workstation.FindParams) ([]*workstation.Workstation, error) {
	return []*workstation.Workstation{}, nil
}

func (s *workstationRepoStub) Count(context.Context, *workstation.FindParams) (int64, error) {
	return 0, nil
}

func (s *workstationRepoStub) GetByID(_ context.Context, id int64) (*workstation.Workstation, error) {
	w, ok := s.workstations[id]
	if !ok || !w.IsActive {
		return nil, workstation.ErrNotFound
	}
	return w, nil
}

func (s *workstationRepoStub) GetAnyByID(_ context.Context, id int64) (*workstation.Workstation, error) {
	w, ok := s.workstations[id]
	if !ok {
		return nil, workstation.ErrNotFound
	}
	return w, nil
}

func (s *workstationRepoStub) Update(_ context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	current := s.workstations[data.ID]
	updated := *data
	updated.IsActive = current.IsActive
	s.workstations[data.ID] = &updated
	return &updated, nil
}

func (s *workstationRepoStub) ToggleActive(_ context.Context, id, actor int64) error {
	s.workstations[id].IsActive = !s.workstations[id].IsActive
	s.workstations[id].UpdatedBy = actor
	return nil
}

func TestWorkstationService_Create_AssignsShifts(t *testing.T) {
	repo := newWorkstationRepoStub()
	shifts := &shiftRepoStub{shifts: map[int64]*shift.Shift{
		2: {ID: 2, Name: "Morning", IsActive: true},
	}}
	service := NewWorkstationService(repo, shifts, newBus())

	created, err := service.Create(serviceContext(t), &workstation.Workstation{
		WorkstationName: "Lathe 1",
		Shifts:          []workstation.ShiftAssignment{{ShiftID: 2}},
	})
	require.NoError(t, err)
	require.Len(t, created.Shifts, 1)
	assert.Equal(t, int64(2), created.Shifts[0].ShiftID)
}

func TestWorkstationService_Create_UnknownShiftRejected(t *testing.T) {
	repo := newWorkstationRepoStub()
	shifts := &shiftRepoStub{shifts: map[int64]*shift.Shift{}}
	service := NewWorkstationService(repo, shifts, newBus())

	_, err := service.Create(serviceContext(t), &workstation.Workstation{
		WorkstationName: "Lathe 1",
		Shifts:          []workstation.ShiftAssignment{{ShiftID: 99}},
	})
	require.ErrorIs(t, err, workstation.ErrInvalidShift)
}

func TestWorkstationService_Delete_TogglesBackAndForth(t *testing.T) {
	repo := newWorkstationRepoStub()
	repo.workstations[5] = &workstation.Workstation{ID: 5, WorkstationName: "Lathe 1", IsActive: true}
	service := NewWorkstationService(repo, &shiftRepoStub{}, newBus())

	toggled, err := service.Delete(serviceContext(t), 5)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	restored, err := service.Delete(serviceContext(t), 5)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}
