package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/product"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type ProductController struct {
	service  *services.ProductService
	secret   string
	basePath string
}

func NewProductController(service *services.ProductService, secret string) *ProductController {
	return &ProductController{
		service:  service,
		secret:   secret,
		basePath: "/product",
	}
}

func (c *ProductController) Key() string {
	return c.basePath
}

func (c *ProductController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuth(c.secret))
	router.HandleFunc("/create", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/list", c.List).Methods(http.MethodPost)
	router.HandleFunc("/get", c.Get).Methods(http.MethodPost)
	router.HandleFunc("/update", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/delete", c.Delete).Methods(http.MethodPost)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ProductCreateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusCreated, "product created", created)
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ListRequest{}
	if !decodeJSON(w, r, &dto) {
		return
	}
	params := &product.FindParams{
		Page:      dto.Page,
		PerPage:   dto.PerPage,
		SortBy:    dto.SortBy,
		SortOrder: dto.SortOrder,
		Search:    dto.Search,
	}
	products, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "products fetched", map[string]any{
		"products":   products,
		"total":      total,
		"page":       params.Page,
		"perPage":    params.PerPage,
		"totalPages": totalPages(total, params.PerPage),
	})
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "product fetched", found)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ProductUpdateDTO{}
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
	httpapi.WriteSuccess(w, http.StatusOK, "product updated", updated)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
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
	httpapi.WriteSuccess(w, http.StatusOK, "product deleted", deleted)
}
