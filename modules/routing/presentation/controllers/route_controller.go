package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/route"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type RouteController struct {
	service  *services.RouteService
	secret   string
	basePath string
}

func NewRouteController(service *services.RouteService, secret string) *RouteController {
	return &RouteController{
		service:  service,
		secret:   secret,
		basePath: "/route",
	}
}

func (c *RouteController) Key() string {
	return c.basePath
}

func (c *RouteController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuth(c.secret))
	router.HandleFunc("/create", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/list", c.List).Methods(http.MethodPost)
	router.HandleFunc("/get", c.Get).Methods(http.MethodPost)
	router.HandleFunc("/update", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/delete", c.Delete).Methods(http.MethodPost)
}

func (c *RouteController) Create(w http.ResponseWriter, r *http.Request) {
	dto := dtos.RouteCreateDTO{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationError(w, fields)
		return
	}
	created, err := c.service.Create(r.Context(), dto.ToEntity())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusCreated, "route created", created)
}

func (c *RouteController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ListRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	params := &route.FindParams{
		Page:      dto.Page,
		PerPage:   dto.PerPage,
		SortBy:    dto.SortBy,
		SortOrder: dto.SortOrder,
		Search:    dto.Search,
	}
	routes, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "routes fetched", map[string]any{
		"routes":     routes,
		"total":      total,
		"page":       params.Page,
		"perPage":    params.PerPage,
		"totalPages": totalPages(total, params.PerPage),
	})
}

func (c *RouteController) Get(w http.ResponseWriter, r *http.Request) {
	dto := dtos.IDRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationError(w, fields)
		return
	}
	found, err := c.service.GetByID(r.Context(), dto.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "route fetched", found)
}

func (c *RouteController) Update(w http.ResponseWriter, r *http.Request) {
	dto := dtos.RouteUpdateDTO{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationError(w, fields)
		return
	}
	updated, err := c.service.Update(r.Context(), dto.ToEntity())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "route updated", updated)
}

func (c *RouteController) Delete(w http.ResponseWriter, r *http.Request) {
	dto := dtos.IDRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationError(w, fields)
		return
	}
	deleted, err := c.service.Delete(r.Context(), dto.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "route deleted", deleted)
}
