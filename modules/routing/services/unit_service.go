package services

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type UnitService struct {
	repo      unit.Repository
	publisher eventbus.EventBus
}

func NewUnitService(repo unit.Repository, publisher eventbus.EventBus) *UnitService {
	return &UnitService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UnitService) Create(ctx context.Context, data *unit.Unit) (*unit.Unit, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	var created *unit.Unit
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsActive(txCtx, data.UnitName, data.UnitSymbol)
		if err != nil {
			return err
		}
		if exists {
			return unit.ErrAlreadyExists
		}
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(unit.CreatedEvent{Result: *created})
	return created, nil
}

func (s *UnitService) List(ctx context.Context, params *unit.FindParams) ([]*unit.Unit, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	units, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

func (s *UnitService) GetByID(ctx context.Context, id int64) (*unit.Unit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UnitService) Update(ctx context.Context, data *unit.Unit) (*unit.Unit, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	var updated *unit.Unit
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return unit.ErrInactive
		}
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(unit.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *UnitService) Delete(ctx context.Context, id int64) (*unit.Unit, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var deleted *unit.Unit
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return unit.ErrAlreadyDeleted
		}
		if err := s.repo.Deactivate(txCtx, id, actor); err != nil {
			return err
		}
		deleted, err = s.repo.GetAnyByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(unit.DeletedEvent{Result: *deleted})
	return deleted, nil
}
