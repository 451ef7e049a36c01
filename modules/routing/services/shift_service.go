package services

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type ShiftService struct {
	repo      shift.Repository
	publisher eventbus.EventBus
}

func NewShiftService(repo shift.Repository, publisher eventbus.EventBus) *ShiftService {
	return &ShiftService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ShiftService) Create(ctx context.Context, data *shift.Shift) (*shift.Shift, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	var created *shift.Shift
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsActive(txCtx, data.Name, data.StartTime, data.EndTime)
		if err != nil {
			return err
		}
		if exists {
			return shift.ErrAlreadyExists
		}
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(shift.CreatedEvent{Result: *created})
	return created, nil
}

func (s *ShiftService) List(ctx context.Context, params *shift.FindParams) ([]*shift.Shift, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	shifts, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return shifts, total, nil
}

func (s *ShiftService) GetByID(ctx context.Context, id int64) (*shift.Shift, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShiftService) Update(ctx context.Context, data *shift.Shift) (*shift.Shift, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	var updated *shift.Shift
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return shift.ErrInactive
		}
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(shift.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *ShiftService) Delete(ctx context.Context, id int64) (*shift.Shift, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var deleted *shift.Shift
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return shift.ErrAlreadyDeleted
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
	s.publisher.Publish(shift.DeletedEvent{Result: *deleted})
	return deleted, nil
}
