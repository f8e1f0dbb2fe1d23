// Package render holds the error taxonomy and identifier helpers shared by
// the predicate compiler and the mapping registry.
package render

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrMappingNotFound           = errors.New("mapping not found")
	ErrUnknownProperty           = errors.New("unknown property")
	ErrInvalidOperator           = errors.New("invalid operator")
	ErrInvalidPredicate          = errors.New("invalid predicate")
	ErrInvalidPropertyExpression = errors.New("invalid property expression")
	ErrDuplicateParameter        = errors.New("duplicate parameter")
	ErrAlreadyRegistered         = errors.New("mapping already registered")
)

// MappingNotFoundError indicates an entity that was never registered.
type MappingNotFoundError struct {
	Entity string
}

func (e MappingNotFoundError) Error() string {
	return fmt.Sprintf("no mapping registered for entity %q", e.Entity)
}

// Is matches ErrMappingNotFound.
func (MappingNotFoundError) Is(target error) bool { return target == ErrMappingNotFound }

// UnknownPropertyError indicates a property missing from a resolved mapping.
type UnknownPropertyError struct {
	Entity   string
	Property string
}

func (e UnknownPropertyError) Error() string {
	return fmt.Sprintf("entity %q has no mapped property %q", e.Entity, e.Property)
}

// Is matches ErrUnknownProperty.
func (UnknownPropertyError) Is(target error) bool { return target == ErrUnknownProperty }

// InvalidOperatorError indicates an operator that cannot be used with its operand.
type InvalidOperatorError struct {
	Operator string
	Reason   string
}

func (e InvalidOperatorError) Error() string {
	if e.Operator == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s (got %s)", e.Reason, e.Operator)
}

// Is matches ErrInvalidOperator.
func (InvalidOperatorError) Is(target error) bool { return target == ErrInvalidOperator }

// InvalidPredicateError indicates a structurally invalid predicate tree.
type InvalidPredicateError struct {
	Reason string
}

func (e InvalidPredicateError) Error() string {
	return "invalid predicate: " + e.Reason
}

// Is matches ErrInvalidPredicate.
func (InvalidPredicateError) Is(target error) bool { return target == ErrInvalidPredicate }

// InvalidPropertyExpressionError indicates an accessor or name that does not
// denote a direct exported field of the entity type.
type InvalidPropertyExpressionError struct {
	Entity     string
	Expression string
	Reason     string
}

func (e InvalidPropertyExpressionError) Error() string {
	if e.Expression != "" {
		return fmt.Sprintf("invalid property expression %q on %s: %s", e.Expression, e.Entity, e.Reason)
	}
	return fmt.Sprintf("invalid property expression on %s: %s", e.Entity, e.Reason)
}

// Is matches ErrInvalidPropertyExpression.
func (InvalidPropertyExpressionError) Is(target error) bool {
	return target == ErrInvalidPropertyExpression
}

// NewInvalidOperatorError creates an InvalidOperatorError.
func NewInvalidOperatorError(operator, reason string) error {
	return InvalidOperatorError{Operator: operator, Reason: reason}
}

// NewInvalidPredicateError creates an InvalidPredicateError.
func NewInvalidPredicateError(format string, args ...any) error {
	return InvalidPredicateError{Reason: fmt.Sprintf(format, args...)}
}
