package predql

import (
	"fmt"

	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
)

// TryField creates a comparison of T's property with value, returning an
// error if property is not an exported field of T or op is unknown.
// A nil value compares with NULL and a slice value expands to IN (...).
func TryField[T any](property string, op Operator, value any) (FieldPredicate, error) {
	if err := validateProperty[T](property); err != nil {
		return FieldPredicate{}, err
	}
	if !op.Valid() {
		return FieldPredicate{}, render.NewInvalidOperatorError(string(op), "unknown comparison operator")
	}
	return types.FieldPredicate{
		Entity:   E[T](),
		Property: property,
		Operator: op,
		Value:    value,
	}, nil
}

// Field creates a comparison of T's property with value.
func Field[T any](property string, op Operator, value any) FieldPredicate {
	p, err := TryField[T](property, op, value)
	if err != nil {
		panic(err)
	}
	return p
}

// TryFieldOf is TryField with the property selected by an accessor.
func TryFieldOf[T any](accessor Accessor[T], op Operator, value any) (FieldPredicate, error) {
	name, err := TryPropertyName(accessor)
	if err != nil {
		return FieldPredicate{}, err
	}
	return TryField[T](name, op, value)
}

// FieldOf creates a comparison with the property selected by an accessor.
func FieldOf[T any](accessor Accessor[T], op Operator, value any) FieldPredicate {
	p, err := TryFieldOf(accessor, op, value)
	if err != nil {
		panic(err)
	}
	return p
}

// FieldNamed creates a comparison on an entity known only by name.
// The property is checked when the predicate is compiled.
func FieldNamed(entity, property string, op Operator, value any) FieldPredicate {
	return types.FieldPredicate{
		Entity:   EntityNamed(entity),
		Property: property,
		Operator: op,
		Value:    value,
	}
}

// TryProperty creates a comparison between a property of T1 and a property of T2.
func TryProperty[T1, T2 any](property string, op Operator, property2 string) (PropertyPredicate, error) {
	if err := validateProperty[T1](property); err != nil {
		return PropertyPredicate{}, err
	}
	if err := validateProperty[T2](property2); err != nil {
		return PropertyPredicate{}, err
	}
	if !op.Valid() {
		return PropertyPredicate{}, render.NewInvalidOperatorError(string(op), "unknown comparison operator")
	}
	return types.PropertyPredicate{
		Entity:    E[T1](),
		Property:  property,
		Operator:  op,
		Entity2:   E[T2](),
		Property2: property2,
	}, nil
}

// Property creates a comparison between a property of T1 and a property of T2.
func Property[T1, T2 any](property string, op Operator, property2 string) PropertyPredicate {
	p, err := TryProperty[T1, T2](property, op, property2)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPropertyOf is TryProperty with both properties selected by accessors.
func TryPropertyOf[T1, T2 any](accessor Accessor[T1], op Operator, accessor2 Accessor[T2]) (PropertyPredicate, error) {
	name, err := TryPropertyName(accessor)
	if err != nil {
		return PropertyPredicate{}, err
	}
	name2, err := TryPropertyName(accessor2)
	if err != nil {
		return PropertyPredicate{}, err
	}
	return TryProperty[T1, T2](name, op, name2)
}

// PropertyOf creates a cross-entity comparison from two accessors.
func PropertyOf[T1, T2 any](accessor Accessor[T1], op Operator, accessor2 Accessor[T2]) PropertyPredicate {
	p, err := TryPropertyOf(accessor, op, accessor2)
	if err != nil {
		panic(err)
	}
	return p
}

// TryGroup combines predicates with op, returning an error if the list is
// empty or op is neither AND nor OR.
func TryGroup(op GroupOperator, predicates ...Predicate) (PredicateGroup, error) {
	if op != types.And && op != types.Or {
		return PredicateGroup{}, render.NewInvalidOperatorError(string(op), "group operator must be AND or OR")
	}
	if len(predicates) == 0 {
		return PredicateGroup{}, render.NewInvalidPredicateError("%s requires at least one predicate", op)
	}
	for i, p := range predicates {
		if p == nil {
			return PredicateGroup{}, render.NewInvalidPredicateError("%s predicate %d is nil", op, i)
		}
	}
	children := make([]Predicate, len(predicates))
	copy(children, predicates)
	return types.PredicateGroup{Operator: op, Predicates: children}, nil
}

// Group combines predicates with op.
func Group(op GroupOperator, predicates ...Predicate) PredicateGroup {
	g, err := TryGroup(op, predicates...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryAnd creates an AND group, returning an error if no predicates are given.
func TryAnd(predicates ...Predicate) (PredicateGroup, error) {
	return TryGroup(types.And, predicates...)
}

// And creates an AND group.
func And(predicates ...Predicate) PredicateGroup {
	return Group(types.And, predicates...)
}

// TryOr creates an OR group, returning an error if no predicates are given.
func TryOr(predicates ...Predicate) (PredicateGroup, error) {
	return TryGroup(types.Or, predicates...)
}

// Or creates an OR group.
func Or(predicates ...Predicate) PredicateGroup {
	return Group(types.Or, predicates...)
}

// Exists wraps pred in EXISTS (SELECT 1 FROM <T's table> WHERE pred).
func Exists[T any](pred Predicate) ExistsPredicate {
	return types.ExistsPredicate{Entity: E[T](), Predicate: pred}
}

// NotExists wraps pred in NOT EXISTS (SELECT 1 FROM <T's table> WHERE pred).
func NotExists[T any](pred Predicate) ExistsPredicate {
	return types.ExistsPredicate{Entity: E[T](), Predicate: pred, Not: true}
}

// TryNot returns pred with its negation flag flipped.
// Groups carry no negation flag and are rejected.
func TryNot(pred Predicate) (Predicate, error) {
	switch p := pred.(type) {
	case types.FieldPredicate:
		p.Not = !p.Not
		return p, nil
	case types.PropertyPredicate:
		p.Not = !p.Not
		return p, nil
	case types.ExistsPredicate:
		p.Not = !p.Not
		return p, nil
	case types.PredicateGroup:
		return nil, render.NewInvalidPredicateError("%s group cannot be negated", p.Operator)
	}
	return nil, render.NewInvalidPredicateError("cannot negate %T", pred)
}

// Not returns pred with its negation flag flipped.
func Not(pred Predicate) Predicate {
	p, err := TryNot(pred)
	if err != nil {
		panic(err)
	}
	return p
}

// TrySortBy creates a sort descriptor on T's property.
func TrySortBy[T any](property string, ascending bool) (Sort, error) {
	if err := validateProperty[T](property); err != nil {
		return Sort{}, fmt.Errorf("invalid sort: %w", err)
	}
	return types.Sort{PropertyName: property, Ascending: ascending}, nil
}

// SortBy creates a sort descriptor on T's property.
func SortBy[T any](property string, ascending bool) Sort {
	s, err := TrySortBy[T](property, ascending)
	if err != nil {
		panic(err)
	}
	return s
}

// TrySortByOf creates a sort descriptor with the property selected by an accessor.
func TrySortByOf[T any](accessor Accessor[T], ascending bool) (Sort, error) {
	name, err := TryPropertyName(accessor)
	if err != nil {
		return Sort{}, fmt.Errorf("invalid sort: %w", err)
	}
	return types.Sort{PropertyName: name, Ascending: ascending}, nil
}

// SortByOf creates a sort descriptor with the property selected by an accessor.
func SortByOf[T any](accessor Accessor[T], ascending bool) Sort {
	s, err := TrySortByOf(accessor, ascending)
	if err != nil {
		panic(err)
	}
	return s
}
