package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/process"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type ProcessController struct {
	service  *services.ProcessService
	secret   string
	basePath string
}

func NewProcessController(service *services.ProcessService, secret string) *ProcessController {
	return &ProcessController{
		service:  service,
		secret:   secret,
		basePath: "/process",
	}
}

func (c *ProcessController) Key() string {
	return c.basePath
}

func (c *ProcessController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuth(c.secret))
	router.HandleFunc("/create", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/list", c.List).Methods(http.MethodPost)
	router.HandleFunc("/get", c.Get).Methods(http.MethodPost)
	router.HandleFunc("/update", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/delete", c.Delete).Methods(http.MethodPost)
}

func (c *ProcessController) Create(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ProcessCreateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusCreated, "process created", created)
}

func (c *ProcessController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ListRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	params := &process.FindParams{
		Page:      dto.Page,
		PerPage:   dto.PerPage,
		SortBy:    dto.SortBy,
		SortOrder: dto.SortOrder,
		Search:    dto.Search,
	}
	processes, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "processes fetched", map[string]any{
		"processes":  processes,
		"total":      total,
		"page":       params.Page,
		"perPage":    params.PerPage,
		"totalPages": totalPages(total, params.PerPage),
	})
}

func (c *ProcessController) Get(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "process fetched", found)
}

func (c *ProcessController) Update(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ProcessUpdateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusOK, "process updated", updated)
}

func (c *ProcessController) Delete(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "process deleted", deleted)
}
