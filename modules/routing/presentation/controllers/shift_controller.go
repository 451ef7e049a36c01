package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type ShiftController struct {
	service  *services.ShiftService
	secret   string
	basePath string
}

func NewShiftController(service *services.ShiftService, secret string) *ShiftController {
	return &ShiftController{
		service:  service,
		secret:   secret,
		basePath: "/shift",
	}
}

func (c *ShiftController) Key() string {
	return c.basePath
}

func (c *ShiftController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuth(c.secret))
	router.HandleFunc("/create", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/list", c.List).Methods(http.MethodPost)
	router.HandleFunc("/get", c.Get).Methods(http.MethodPost)
	router.HandleFunc("/update", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/delete", c.Delete).Methods(http.MethodPost)
}

func (c *ShiftController) Create(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ShiftCreateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusCreated, "shift created", created)
}

func (c *ShiftController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ListRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	params := &shift.FindParams{
		Page:      dto.Page,
		PerPage:   dto.PerPage,
		SortBy:    dto.SortBy,
		SortOrder: dto.SortOrder,
		Search:    dto.Search,
	}
	shifts, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "shifts fetched", map[string]any{
		"shifts":     shifts,
		"total":      total,
		"page":       params.Page,
		"perPage":    params.PerPage,
		"totalPages": totalPages(total, params.PerPage),
	})
}

func (c *ShiftController) Get(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "shift fetched", found)
}

func (c *ShiftController) Update(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ShiftUpdateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusOK, "shift updated", updated)
}

func (c *ShiftController) Delete(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "shift deleted", deleted)
}
