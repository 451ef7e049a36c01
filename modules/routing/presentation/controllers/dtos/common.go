package dtos

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hiqsoft/routecore/pkg/constants"
)

// ListRequest carries pagination, sorting and search parameters. Values are
// never rejected; out-of-range pages and page sizes are clamped downstream
// and unknown sort keys fall back to the default column.
type ListRequest struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"perPage"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
	Search    string `json:"search"`
}

type IDRequest struct {
	ID int64 `json:"id" validate:"required"`
}

func (d *IDRequest) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func validateStruct(v any) (map[string]string, bool) {
	errorMessages := map[string]string{}
	err := constants.Validate.Struct(v)
	if err == nil {
		return errorMessages, true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			errorMessages[fieldErr.Field()] = fieldErr.Error()
		}
	} else {
		errorMessages["request"] = err.Error()
	}
	return errorMessages, false
}
