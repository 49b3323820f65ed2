package model

import "errors"

// Виды ошибок. StatusError разворачивается в один из них,
// поэтому вызывающий код проверяет вид через errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Ошибки репозиториев
var (
	ErrLinkNotFound = errors.New("link not found")
	ErrMaskExists   = errors.New("mask already exists")
)

// StatusError ошибка с видом и сообщением для клиента
type StatusError struct {
	Kind    error
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}

// NewInvalidInput создаёт ошибку валидации
func NewInvalidInput(message string) *StatusError {
	return &StatusError{Kind: ErrInvalidInput, Message: message}
}

// NewConflict создаёт ошибку занятой маски
func NewConflict(message string) *StatusError {
	return &StatusError{Kind: ErrConflict, Message: message}
}
