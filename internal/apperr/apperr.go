// Package apperr определяет типизированные ошибки ядра приложения.
// Все слои (валидация, исполнитель команд, репозиторий) переводят свои
// сбои в эти типы, чтобы UI-слой никогда не видел сырых ошибок движка
// базы данных.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrNotFound возвращается, когда запрос по идентификатору нашёл ноль строк
// там, где ожидалась ровно одна.
var ErrNotFound = errors.New("not found")

// ValidationError — входные данные вызывающей стороны не прошли проверку
// до обращения к хранилищу. Всегда восстановимая ошибка, текст показывается
// пользователю как есть.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidation создаёт ValidationError с форматированным сообщением.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationFromTags формирует ValidationError на основе ошибок валидатора.
// Каждое нарушение переводится в человеко-читаемый текст, объединённый
// через запятую.
func ValidationFromTags(errs validator.ValidationErrors) *ValidationError {
	var msgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return &ValidationError{Msg: strings.Join(msgs, ", ")}
}

// ConstraintViolationError — ограничение уникальности или CHECK на уровне
// хранилища отклонило запись. Field содержит имя колонки вида
// "members.email", когда его удаётся извлечь из текста ошибки движка.
type ConstraintViolationError struct {
	Field string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Field)
}

// StoreUnavailableError — хранилище не удалось открыть или инициализировать.
// Фатальна на старте: приложение не должно продолжать работу с частично
// инициализированным хранилищем.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// CommandError — неожиданный сбой хранилища при выполнении команды записи.
// Хранит текст запроса для логирования контекста.
type CommandError struct {
	Stmt string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %v", e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// QueryError — неожиданный сбой хранилища при выполнении запроса чтения.
type QueryError struct {
	Stmt string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
