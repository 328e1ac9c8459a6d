package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "numeric":
		return fmt.Sprintf("%v must be numeric", field)
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace charaters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

/*
GenerateErrorMessages extracts validation errors and returns them as an array
of ApiError. Each ApiError contains the field name and a descriptive error
message.

Example output:

	[
	  {
		"field": "Name",
		"message": "Name is required"
	  }
	]

An optional fieldName overrides the reported field for non-validation errors.
*/
func GenerateErrorMessages(err error, fieldName ...string) []ApiError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{fe.Field(), msgForTag(fe)}
		}
		return out
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []ApiError{
			{
				Field:   "Unknown",
				Message: "Record not found",
			},
		}
	}

	field := "Unknown"
	if len(fieldName) > 0 && fieldName[0] != "" {
		field = fieldName[0]
	}

	return []ApiError{
		{
			Field:   field,
			Message: err.Error(),
		},
	}
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := strings.TrimSpace(field.String())

	return len(str) != 0
}
