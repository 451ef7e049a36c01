package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type UnitController struct {
	service  *services.UnitService
	secret   string
	basePath string
}

func NewUnitController(service *services.UnitService, secret string) *UnitController {
	return &UnitController{
		service:  service,
		secret:   secret,
		basePath: "/unit",
	}
}

func (c *UnitController) Key() string {
	return c.basePath
}

func (c *UnitController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuth(c.secret))
	router.HandleFunc("/create", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/list", c.List).Methods(http.MethodPost)
	router.HandleFunc("/get", c.Get).Methods(http.MethodPost)
	router.HandleFunc("/update", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/delete", c.Delete).Methods(http.MethodPost)
}

func (c *UnitController) Create(w http.ResponseWriter, r *http.Request) {
	dto := dtos.UnitCreateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusCreated, "unit created", created)
}

func (c *UnitController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ListRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	params := &unit.FindParams{
		Page:      dto.Page,
		PerPage:   dto.PerPage,
		SortBy:    dto.SortBy,
		SortOrder: dto.SortOrder,
		Search:    dto.Search,
	}
	units, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "units fetched", map[string]any{
		"units":      units,
		"total":      total,
		"page":       params.Page,
		"perPage":    params.PerPage,
		"totalPages": totalPages(total, params.PerPage),
	})
}

func (c *UnitController) Get(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "unit fetched", found)
}

func (c *UnitController) Update(w http.ResponseWriter, r *http.Request) {
	dto := dtos.UnitUpdateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusOK, "unit updated", updated)
}

func (c *UnitController) Delete(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "unit deleted", deleted)
}
