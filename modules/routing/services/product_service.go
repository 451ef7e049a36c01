package services

import (
	"context"
	"errors"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/product"
	"github.com/hiqsoft/routecore/modules/routing/domain/entities/route"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
	"github.com/hiqsoft/routecore/pkg/repo"
)

type ProductService struct {
	repo      product.Repository
	routes    route.Repository
	publisher eventbus.EventBus
}

func NewProductService(repo product.Repository, routes route.Repository, publisher eventbus.EventBus) *ProductService {
	return &ProductService{
		repo:      repo,
		routes:    routes,
		publisher: publisher,
	}
}

func (s *ProductService) checkMainRoute(ctx context.Context, routeID int64) error {
	if _, err := s.routes.GetByID(ctx, routeID); err != nil {
		if errors.Is(err, route.ErrNotFound) {
			return product.ErrInvalidRoute
		}
		return err
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, data *product.Product) (*product.Product, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.CreatedBy = actor
	data.UpdatedBy = actor

	var created *product.Product
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.checkMainRoute(txCtx, data.MainRouteID); err != nil {
			return err
		}
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(product.CreatedEvent{Result: *created})
	return created, nil
}

func (s *ProductService) List(ctx context.Context, params *product.FindParams) ([]*product.Product, int64, error) {
	conf := configuration.Use()
	params.Page = repo.ClampPage(params.Page)
	params.PerPage = repo.ClampPerPage(params.PerPage, conf.PageSize, conf.MaxPageSize)

	products, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, data *product.Product) (*product.Product, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	data.UpdatedBy = actor

	var updated *product.Product
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return product.ErrInactive
		}
		if err := s.checkMainRoute(txCtx, data.MainRouteID); err != nil {
			return err
		}
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(product.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (*product.Product, error) {
	actor, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}

	var deleted *product.Product
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetAnyByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return product.ErrAlreadyDeleted
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
	s.publisher.Publish(product.DeletedEvent{Result: *deleted})
	return deleted, nil
}
