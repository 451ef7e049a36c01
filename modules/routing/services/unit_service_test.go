package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/constants"
	"github.com/hiqsoft/routecore/pkg/eventbus"
)

type unitRepoStub struct {
	exists      bool
	units       map[int64]*unit.Unit
	nextID      int64
	createCalls int
	lastParams  *unit.FindParams
}

func newUnitRepoStub() *unitRepoStub {
	return &unitRepoStub{units: map[int64]*unit.Unit{}, nextID: 1}
}

func (s *unitRepoStub) Create(_ context.Context, data *unit.Unit) (*unit.Unit, error) {
	s.createCalls++
	u := *data
	u.ID = s.nextID
	u.IsActive = true
	s.nextID++
	s.units[u.ID] = &u
	return &u, nil
}

func (s *unitRepoStub) ExistsActive(context.Context, string, string) (bool, error) {
	return s.exists, nil
}

func (s *unitRepoStub) GetPaginated(_ context.Context, params *unit.FindParams) ([]*unit.Unit, error) {
	s.lastParams = params
	return []*unit.Unit{}, nil
}

func (s *unitRepoStub) Count(context.Context, *unit.FindParams) (int64, error) {
	return int64(len(s.units)), nil
}

func (s *unitRepoStub) GetByID(_ context.Context, id int64) (*unit.Unit, error) {
	u, ok := s.units[id]
	if !ok || !u.IsActive {
		return nil, unit.ErrNotFound
	}
	return u, nil
}

func (s *unitRepoStub) GetAnyByID(_ context.Context, id int64) (*unit.Unit, error) {
	u, ok := s.units[id]
	if !ok {
		return nil, unit.ErrNotFound
	}
	return u, nil
}

func (s *unitRepoStub) Update(_ context.Context, data *unit.Unit) (*unit.Unit, error) {
	current := s.units[data.ID]
	updated := *data
	updated.IsActive = current.IsActive
	s.units[data.ID] = &updated
	return &updated, nil
}

func (s *unitRepoStub) Deactivate(_ context.Context, id, actor int64) error {
	s.units[id].IsActive = false
	s.units[id].UpdatedBy = actor
	return nil
}

func serviceContext(t *testing.T) context.Context {
	t.Helper()
	ctx := context.WithValue(context.Background(), constants.TxKey, struct{}{})
	return composables.WithUserID(ctx, 9)
}

func newBus() eventbus.EventBus {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(logger)
}

func TestUnitService_Create_StampsActor(t *testing.T) {
	repo := newUnitRepoStub()
	service := NewUnitService(repo, newBus())

	created, err := service.Create(serviceContext(t), &unit.Unit{UnitName: "Kilogram", UnitSymbol: "kg"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.CreatedBy)
	assert.Equal(t, int64(9), created.UpdatedBy)
	assert.True(t, created.IsActive)
}

func TestUnitService_Create_DuplicateRejected(t *testing.T) {
	repo := newUnitRepoStub()
	repo.exists = true
	service := NewUnitService(repo, newBus())

	_, err := service.Create(serviceContext(t), &unit.Unit{UnitName: "Kilogram", UnitSymbol: "kg"})
	require.ErrorIs(t, err, unit.ErrAlreadyExists)
	assert.Zero(t, repo.createCalls)
}

func TestUnitService_Create_RequiresActingUser(t *testing.T) {
	service := NewUnitService(newUnitRepoStub(), newBus())

	ctx := context.WithValue(context.Background(), constants.TxKey, struct{}{})
	_, err := service.Create(ctx, &unit.Unit{UnitName: "Kilogram", UnitSymbol: "kg"})
	require.ErrorIs(t, err, composables.ErrNoUserID)
}

func TestUnitService_List_ClampsPagination(t *testing.T) {
	repo := newUnitRepoStub()
	service := NewUnitService(repo, newBus())

	_, _, err := service.List(serviceContext(t), &unit.FindParams{Page: 0, PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastParams.Page)
	assert.Equal(t, 100, repo.lastParams.PerPage)

	_, _, err = service.List(serviceContext(t), &unit.FindParams{Page: 3, PerPage: -5})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastParams.Page)
	assert.Equal(t, 10, repo.lastParams.PerPage)
}

func TestUnitService_Update_InactiveRejected(t *testing.T) {
	repo := newUnitRepoStub()
	repo.units[1] = &unit.Unit{ID: 1, UnitName: "Kilogram", UnitSymbol: "kg", IsActive: false}
	service := NewUnitService(repo, newBus())

	_, err := service.Update(serviceContext(t), &unit.Unit{ID: 1, UnitName: "Gram", UnitSymbol: "g"})
	require.ErrorIs(t, err, unit.ErrInactive)
}

func TestUnitService_Delete_IsOneWay(t *testing.T) {
	repo := newUnitRepoStub()
	repo.units[1] = &unit.Unit{ID: 1, UnitName: "Kilogram", UnitSymbol: "kg", IsActive: true}
	service := NewUnitService(repo, newBus())

	deleted, err := service.Delete(serviceContext(t), 1)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	_, err = service.Delete(serviceContext(t), 1)
	require.ErrorIs(t, err, unit.ErrAlreadyDeleted)
}
