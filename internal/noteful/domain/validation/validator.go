// Package validation проверяет входные данные запросов и переводит ошибки
// go-playground/validator в ошибки apperr.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"noteful/internal/noteful/domain/apperr"
	"noteful/internal/noteful/domain/entities"
)

// TagObjectID - тег валидации идентификатора сущности.
const TagObjectID = "objectid"

// Validator оборачивает validator.Validate.
type Validator struct {
	v *validator.Validate
}

// New создает валидатор с тегом objectid и именами полей из json-тегов.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation(TagObjectID, func(fl validator.FieldLevel) bool {
		return entities.IsValidID(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagObjectID, err))
	}

	return &Validator{v: v}
}

// ID проверяет идентификатор из пути или параметра запроса.
func (v *Validator) ID(field, id string) error {
	if !entities.IsValidID(id) {
		return apperr.InvalidIdentifier(field, id)
	}
	return nil
}

// Struct проверяет структуру и возвращает первую ошибку в порядке полей.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}

	return toAppError(validationErrs[0])
}

func toAppError(e validator.FieldError) error {
	field := fieldName(e.Field())
	switch e.Tag() {
	case "required":
		return apperr.MissingRequiredField(field)
	default:
		return apperr.InvalidIdentifier(field, fmt.Sprint(e.Value()))
	}
}

// fieldName убирает индекс элемента среза: tags[2] -> tags.
func fieldName(name string) string {
	base, _, _ := strings.Cut(name, "[")
	return base
}
