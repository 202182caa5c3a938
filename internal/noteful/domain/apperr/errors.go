// Package apperr определяет виды ошибок, которые ядро возвращает внешнему слою.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Виды ошибок. Сравнивайте через errors.Is.
var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrUniquenessConflict   = errors.New("uniqueness conflict")
	ErrCleanupFailed        = errors.New("reference cleanup failed")
	ErrNotFound             = errors.New("not found")
)

// Error несет подробности об ошибке конкретного вида.
type Error struct {
	kind   error
	Field  string
	Entity string
	Value  string
	Err    error
}

// InvalidIdentifier сообщает, что поле field содержит некорректный идентификатор.
func InvalidIdentifier(field, value string) *Error {
	return &Error{kind: ErrInvalidIdentifier, Field: field, Value: value}
}

// MissingRequiredField сообщает об отсутствии обязательного поля.
func MissingRequiredField(field string) *Error {
	return &Error{kind: ErrMissingRequiredField, Field: field}
}

// InvalidParameter сообщает, что параметр запроса field нельзя использовать как значение.
func InvalidParameter(field string) *Error {
	return &Error{kind: ErrInvalidParameter, Field: field}
}

// UniquenessConflict сообщает, что сущность entity с именем name уже существует.
func UniquenessConflict(entity, name string, cause error) *Error {
	return &Error{kind: ErrUniquenessConflict, Entity: entity, Value: name, Err: cause}
}

// CleanupFailed сообщает, что сущность удалена, но ссылки на нее в заметках остались.
func CleanupFailed(entity, id string, cause error) *Error {
	return &Error{kind: ErrCleanupFailed, Entity: entity, Value: id, Err: cause}
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrInvalidIdentifier, ErrInvalidParameter:
		return fmt.Sprintf("The `%s` is not valid", e.Field)
	case ErrMissingRequiredField:
		return fmt.Sprintf("Missing `%s` in request body", e.Field)
	case ErrUniquenessConflict:
		return fmt.Sprintf("%s name already exists", capitalize(e.Entity))
	case ErrCleanupFailed:
		return fmt.Sprintf("%s %s deleted but references were not cleaned up: %v", e.Entity, e.Value, e.Err)
	default:
		return e.kind.Error()
	}
}

// Is сопоставляет ошибку с ее видом.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind возвращает sentinel вида ошибки.
func (e *Error) Kind() error {
	return e.kind
}

// IsValidation сообщает, вызвана ли ошибка некорректным запросом.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier) ||
		errors.Is(err, ErrMissingRequiredField) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrUniquenessConflict)
}

// IsWarning сообщает, что операция выполнена, но с предупреждением.
func IsWarning(err error) bool {
	return errors.Is(err, ErrCleanupFailed)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
