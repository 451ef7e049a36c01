package dtos

import "github.com/hiqsoft/routecore/modules/routing/domain/entities/route"

type RouteProcessDTO struct {
	ProcessID    int64 `json:"processId" validate:"required"`
	ProcessOrder int   `json:"processOrder" validate:"required,gte=1"`
}

type RouteCreateDTO struct {
	RouteName   string            `json:"routeName" validate:"required"`
	Description *string           `json:"description"`
	IsMainRoute bool              `json:"isMainRoute"`
	Processes   []RouteProcessDTO `json:"processes" validate:"dive"`
}

func (d *RouteCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *RouteCreateDTO) ToEntity() *route.Route {
	r := &route.Route{
		RouteName:   d.RouteName,
		Description: d.Description,
		IsMainRoute: d.IsMainRoute,
	}
	for _, p := range d.Processes {
		r.Processes = append(r.Processes, route.RouteProcess{
			ProcessID:    p.ProcessID,
			ProcessOrder: p.ProcessOrder,
		})
	}
	return r
}

type RouteUpdateDTO struct {
	ID          int64             `json:"id" validate:"required"`
	RouteName   string            `json:"routeName" validate:"required"`
	Description *string           `json:"description"`
	IsMainRoute bool              `json:"isMainRoute"`
	Processes   []RouteProcessDTO `json:"processes" validate:"dive"`
}

func (d *RouteUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *RouteUpdateDTO) ToEntity() *route.Route {
	r := &route.Route{
		ID:          d.ID,
		RouteName:   d.RouteName,
		Description: d.Description,
		IsMainRoute: d.IsMainRoute,
	}
	for _, p := range d.Processes {
		r.Processes = append(r.Processes, route.RouteProcess{
			ProcessID:    p.ProcessID,
			ProcessOrder: p.ProcessOrder,
		})
	}
	return r
}
