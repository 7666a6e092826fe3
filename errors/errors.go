/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no entity exists under a key
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidIdentifier is returned when an id value cannot be parsed
	// into a positive integer key identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUnsupportedOperator is returned when a where clause uses an
	// operator the connector cannot translate
	ErrUnsupportedOperator = errors.New("unsupported filter operator")

	// ErrInvalidFilter is returned when a filter object is malformed
	ErrInvalidFilter = errors.New("invalid filter")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidIdentifierError represents an id value that does not parse
// into a positive integer
type InvalidIdentifierError struct {
	Value interface{}
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %v (%T): must be a positive integer", e.Value, e.Value)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// UnsupportedOperatorError represents a where-clause operator with no
// native translation
type UnsupportedOperatorError struct {
	Field    string
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q on field %q", e.Operator, e.Field)
}

func (e *UnsupportedOperatorError) Is(target error) bool {
	return target == ErrUnsupportedOperator
}

// InvalidFilterError represents a filter object the compiler cannot interpret
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s", e.Reason)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// NewInvalidIdentifierError creates a new InvalidIdentifierError
func NewInvalidIdentifierError(value interface{}) error {
	return &InvalidIdentifierError{Value: value}
}

// NewUnsupportedOperatorError creates a new UnsupportedOperatorError
func NewUnsupportedOperatorError(field, operator string) error {
	return &UnsupportedOperatorError{Field: field, Operator: operator}
}

// NewInvalidFilterError creates a new InvalidFilterError
func NewInvalidFilterError(reason string) error {
	return &InvalidFilterError{Reason: reason}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidIdentifier checks if an error is an invalid identifier error
func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}

// IsUnsupportedOperator checks if an error is an unsupported operator error
func IsUnsupportedOperator(err error) bool {
	return errors.Is(err, ErrUnsupportedOperator)
}

// IsInvalidFilter checks if an error is an invalid filter error
func IsInvalidFilter(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}
