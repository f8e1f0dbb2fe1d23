package types

// Predicate is a node of a condition tree.
// The set of implementations is closed: FieldPredicate, PropertyPredicate,
// PredicateGroup and ExistsPredicate.
type Predicate interface {
	IsPredicate()
}

// FieldPredicate compares a mapped property with a literal operand.
// Value may be nil (IS NULL), a scalar, or a slice of scalars (IN).
type FieldPredicate struct {
	Value    any
	Entity   Entity
	Property string
	Operator Operator
	Not      bool
}

// PropertyPredicate compares a property of one entity with a property of another.
type PropertyPredicate struct {
	Entity    Entity
	Property  string
	Entity2   Entity
	Property2 string
	Operator  Operator
	Not       bool
}

// PredicateGroup combines child predicates with AND or OR.
type PredicateGroup struct {
	Operator   GroupOperator
	Predicates []Predicate
}

// ExistsPredicate wraps a predicate in an EXISTS sub-query over Entity's table.
type ExistsPredicate struct {
	Predicate Predicate
	Entity    Entity
	Not       bool
}

func (FieldPredicate) IsPredicate()    {}
func (PropertyPredicate) IsPredicate() {}
func (PredicateGroup) IsPredicate()    {}
func (ExistsPredicate) IsPredicate()   {}
