// Package validation checks request schemas with go-playground/validator and
// converts failures into the API's VALIDATION_ERROR shape.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"socialpod/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Get returns the shared validator. Field names in errors are the json names.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return models.ValidID(fl.Field().String())
		})
	})
	return validate
}

// Struct validates s and returns a *models.AppError listing every failed field.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}
	return toAppError(err)
}

// Var validates a single value against tag, reporting failures under name.
func Var(name string, value any, tag string) error {
	err := Get().Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := translate(name, fe.Tag(), fe.Param(), fe.Kind() == reflect.String)
		appErr := models.NewValidationError(msg)
		appErr.Details = []FieldError{{Field: name, Tag: fe.Tag(), Message: msg}}
		return appErr
	}
	return models.NewValidationError(err.Error())
}

func toAppError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError(err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := translate(fe.Field(), fe.Tag(), fe.Param(), fe.Kind() == reflect.String)
		fields = append(fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: msg})
		messages = append(messages, msg)
	}

	appErr := models.NewValidationError(strings.Join(messages, "; "))
	appErr.Details = fields
	return appErr
}

var messageTemplates = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"url":      "%s must be a valid URL",
	"objectid": "%s must be a valid id",
}

var paramTemplates = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translate(field, tag, param string, isString bool) string {
	if tmpl, ok := messageTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := paramTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
