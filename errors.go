package predql

import "github.com/zoobzio/predql/internal/render"

// Sentinel errors, matched with errors.Is.
var (
	ErrMappingNotFound           = render.ErrMappingNotFound
	ErrUnknownProperty           = render.ErrUnknownProperty
	ErrInvalidOperator           = render.ErrInvalidOperator
	ErrInvalidPredicate          = render.ErrInvalidPredicate
	ErrInvalidPropertyExpression = render.ErrInvalidPropertyExpression
	ErrDuplicateParameter        = render.ErrDuplicateParameter
	ErrAlreadyRegistered         = render.ErrAlreadyRegistered
)

// Error types, matched with errors.As.
type (
	MappingNotFoundError           = render.MappingNotFoundError
	UnknownPropertyError           = render.UnknownPropertyError
	InvalidOperatorError           = render.InvalidOperatorError
	InvalidPredicateError          = render.InvalidPredicateError
	InvalidPropertyExpressionError = render.InvalidPropertyExpressionError
)
