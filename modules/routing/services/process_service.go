package services

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/process"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type ProcessService struct {
	repo      process.Repository
	publisher eventbus.EventBus
}

func NewProcessService(repo process.Repository, publisher eventbus.EventBus) *ProcessService {
	return &ProcessService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create inserts the process together with the technical parameters carried
// in data.Technicals.
func (s *ProcessService) Create(ctx context.Context, data *process.Process) (*process.Process, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	requested := data.Technicals
	var created *process.Process
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, data)
		if err != nil {
			return err
		}
		if len(requested) == 0 {
			return nil
		}
		if err := s.repo.ReplaceTechnicals(txCtx, created.ID, requested); err != nil {
			return err
		}
		created, err = s.repo.GetAnyByID(txCtx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(process.CreatedEvent{Result: *created})
	return created, nil
}

func (s *ProcessService) List(ctx context.Context, params *process.FindParams) ([]*process.Process, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	processes, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return processes, total, nil
}

func (s *ProcessService) GetByID(ctx context.Context, id int64) (*process.Process, error) {
	return s.repo.GetByID(ctx, id)
}

// Update rewrites the process row and replaces its technical parameters
// with the set carried in data.Technicals.
func (s *ProcessService) Update(ctx context.Context, data *process.Process) (*process.Process, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	requested := data.Technicals
	var updated *process.Process
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return process.ErrInactive
		}
		if _, err := s.repo.Update(txCtx, data); err != nil {
			return err
		}
		if err := s.repo.ReplaceTechnicals(txCtx, data.ID, requested); err != nil {
			return err
		}
		updated, err = s.repo.GetAnyByID(txCtx, data.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(process.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *ProcessService) Delete(ctx context.Context, id int64) (*process.Process, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var deleted *process.Process
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return process.ErrAlreadyDeleted
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
	s.publisher.Publish(process.DeletedEvent{Result: *deleted})
	return deleted, nil
}
