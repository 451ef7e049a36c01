package dtos

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hiqsoft/routecore/pkg/constants"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (d *LoginDTO) Ok() (map[string]string, bool) {
	errorMessages := map[string]string{}
	err := constants.Validate.Struct(d)
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
