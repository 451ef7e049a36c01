package services

import (
	"context"
	"errors"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"
	"github.com/hiqsoft/routecore/modules/routing/domain/entities/workstation"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type WorkstationService struct {
	repo      workstation.Repository
	shifts    shift.Repository
	publisher eventbus.EventBus
}

func NewWorkstationService(repo workstation.Repository, shifts shift.Repository, publisher eventbus.EventBus) *WorkstationService {
	return &WorkstationService{
		repo:      repo,
		shifts:    shifts,
		publisher: publisher,
	}
}

// Create inserts the workstation and assigns the shifts carried in
// data.Shifts. Every referenced shift must be active.
func (s *WorkstationService) Create(ctx context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	requested := data.Shifts
	var created *workstation.Workstation
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, data)
		if err != nil {
			return err
		}
		for _, a := range requested {
			if _, err := s.shifts.GetByID(txCtx, a.ShiftID); err != nil {
				if errors.Is(err, shift.ErrNotFound) {
					return workstation.ErrInvalidShift
				}
				return err
			}
			assigned, err := s.repo.AssignShift(txCtx, created.ID, a.ShiftID, a.StartDate, a.EndDate)
			if err != nil {
				return err
			}
			created.Shifts = append(created.Shifts, *assigned)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(workstation.CreatedEvent{Result: *created})
	return created, nil
}

func (s *WorkstationService) List(ctx context.Context, params *workstation.FindParams) ([]*workstation.Workstation, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	workstations, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return workstations, total, nil
}

func (s *WorkstationService) GetByID(ctx context.Context, id int64) (*workstation.Workstation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkstationService) Update(ctx context.Context, data *workstation.Workstation) (*workstation.Workstation, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	var updated *workstation.Workstation
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return workstation.ErrInactive
		}
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(workstation.UpdatedEvent{Result: *updated})
	return updated, nil
}

// Delete flips the active flag. Deleting an inactive workstation restores
// it, so there is no already-deleted guard here.
func (s *WorkstationService) Delete(ctx context.Context, id int64) (*workstation.Workstation, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var toggled *workstation.Workstation
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetAnyByID(txCtx, id); err != nil {
			return err
		}
		if err := s.repo.ToggleActive(txCtx, id, actor); err != nil {
			return err
		}
		toggled, err = s.repo.GetAnyByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(workstation.DeletedEvent{Result: *toggled})
	return toggled, nil
}
