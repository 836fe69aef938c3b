package common

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ConflictError reports a uniqueness clash on Field of Entity.
type ConflictError struct {
	Entity string
	Field  string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Entity, e.Field)
}

func NewConflict(entity, field string) error {
	return ConflictError{Entity: entity, Field: field}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// InvalidInputError carries a message meant for the caller.
type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInput(msg string) error {
	return InvalidInputError{Message: msg}
}

func IsInvalidInput(err error) bool {
	var ie InvalidInputError
	return errors.As(err, &ie)
}
