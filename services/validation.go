package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"civictrack/models"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("issue_status", func(fl validator.FieldLevel) bool {
		return models.IssueStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("issue_category", func(fl validator.FieldLevel) bool {
		return models.IssueCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return models.Department(fl.Field().String()).Valid()
	})
	return v
}

// validateInput runs struct validation and reports the first failing field.
func validateInput(v *validator.Validate, input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s is required", fe.Field()),
		}
	}
	return &ValidationError{
		Field:   fe.Field(),
		Message: fmt.Sprintf("Invalid %s", fe.Field()),
	}
}
