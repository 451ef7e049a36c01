package services

import (
	"context"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/route"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type RouteService struct {
	repo      route.Repository
	publisher eventbus.EventBus
}

func NewRouteService(repo route.Repository, publisher eventbus.EventBus) *RouteService {
	return &RouteService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create inserts the route together with the ordered steps carried in
// data.Processes.
func (s *RouteService) Create(ctx context.Context, data *route.Route) (*route.Route, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	requested := data.Processes
	var created *route.Route
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, data)
		if err != nil {
			return err
		}
		if len(requested) == 0 {
			return nil
		}
		if err := s.repo.ReplaceProcesses(txCtx, created.ID, requested); err != nil {
			return err
		}
		created, err = s.repo.GetAnyByID(txCtx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(route.CreatedEvent{Result: *created})
	return created, nil
}

func (s *RouteService) List(ctx context.Context, params *route.FindParams) ([]*route.Route, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	routes, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return routes, total, nil
}

func (s *RouteService) GetByID(ctx context.Context, id int64) (*route.Route, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RouteService) Update(ctx context.Context, data *route.Route) (*route.Route, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	requested := data.Processes
	var updated *route.Route
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return route.ErrInactive
		}
		if _, err := s.repo.Update(txCtx, data); err != nil {
			return err
		}
		if err := s.repo.ReplaceProcesses(txCtx, data.ID, requested); err != nil {
			return err
		}
		updated, err = s.repo.GetAnyByID(txCtx, data.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(route.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *RouteService) Delete(ctx context.Context, id int64) (*route.Route, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var deleted *route.Route
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return route.ErrAlreadyDeleted
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
	s.publisher.Publish(route.DeletedEvent{Result: *deleted})
	return deleted, nil
}
