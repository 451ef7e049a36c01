package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/modules/core/presentation/controllers/dtos"
	"github.com/hiqsoft/routecore/modules/core/services"
	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/middleware"
	"github.com/hiqsoft/routecore/pkg/serrors"
)

type AuthController struct {
	service   *services.AuthService
	rateLimit configuration.RateLimitOptions
}

func NewAuthController(service *services.AuthService, rateLimit configuration.RateLimitOptions) *AuthController {
	return &AuthController{
		service:   service,
		rateLimit: rateLimit,
	}
}

func (c *AuthController) Key() string {
	return "/login"
}

func (c *AuthController) Register(r *mux.Router) {
	var handler http.Handler = http.HandlerFunc(c.Login)
	if c.rateLimit.Enabled {
		handler = middleware.RateLimit(c.rateLimit.LoginRPM)(handler)
	}
	r.Handle("/login", handler).Methods(http.MethodPost)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	dto := dtos.LoginDTO{}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.WriteErrorData(w, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", fields)
		return
	}
	token, account, err := c.service.Login(r.Context(), dto.Username, dto.Password)
	if err != nil {
		var base *serrors.Base
		if errors.As(err, &base) {
			httpapi.WriteError(w, http.StatusUnauthorized, base.Code, base.Message)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("login failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	httpapi.WriteSuccess(w, http.StatusOK, "login successful", map[string]any{
		"token": token,
		"user":  account,
	})
}
