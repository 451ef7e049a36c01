package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/httpapi"
	"github.com/hiqsoft/routecore/pkg/serrors"
)

// decodeJSON parses the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return false
	}
	return true
}

// writeValidationError answers 400 with per-field messages.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	httpapi.WriteErrorData(w, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", fields)
}

// writeServiceError maps coded domain errors to HTTP statuses. Anything
// without a code is logged and reported as a bare 500 so database details
// never leak to clients.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var base *serrors.Base
	if errors.As(err, &base) {
		httpapi.WriteError(w, statusForCode(base.Code), base.Code, base.Message)
		return
	}
	composables.UseLogger(r.Context()).WithError(err).Error("request failed")
	httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func statusForCode(code string) int {
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_ALREADY_EXISTS"),
		strings.HasSuffix(code, "_ALREADY_DELETED"),
		strings.HasSuffix(code, "_INACTIVE"),
		strings.HasSuffix(code, "_INVALID_SHIFT"),
		strings.HasSuffix(code, "_INVALID_ROUTE"):
		return http.StatusConflict
	case code == "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func totalPages(total int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return pages
}
