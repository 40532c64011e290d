package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bookstore/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so details match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct runs the validate tags of s and returns one detail per
// failing field.
func ValidateStruct(s any) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []httpx.ErrorDetail{{Message: err.Error()}}
	}

	details := make([]httpx.ErrorDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, httpx.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}

	return details
}
