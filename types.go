package predql

import "github.com/zoobzio/predql/internal/types"

// Public names for the predicate and mapping types.
type (
	Entity            = types.Entity
	Predicate         = types.Predicate
	FieldPredicate    = types.FieldPredicate
	PropertyPredicate = types.PropertyPredicate
	PredicateGroup    = types.PredicateGroup
	ExistsPredicate   = types.ExistsPredicate
	Operator          = types.Operator
	GroupOperator     = types.GroupOperator
	KeyType           = types.KeyType
	PropertyMap       = types.PropertyMap
	ClassMap          = types.ClassMap
	Params            = types.Params
	Sort              = types.Sort
	Direction         = types.Direction
	QueryResult       = types.QueryResult
)
