package types

import "fmt"

// Operator represents a comparison operator between a column and an operand.
type Operator string

const (
	Eq   Operator = "eq"
	Gt   Operator = "gt"
	Ge   Operator = "ge"
	Lt   Operator = "lt"
	Le   Operator = "le"
	Like Operator = "like"
)

// Valid reports whether op is one of the known comparison operators.
func (op Operator) Valid() bool {
	switch op {
	case Eq, Gt, Ge, Lt, Le, Like:
		return true
	}
	return false
}

// ParseOperator converts a textual operator into an Operator.
// Both the names ("ge") and the SQL tokens (">=") are accepted.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "eq", "Eq", "EQ", "=":
		return Eq, nil
	case "gt", "Gt", "GT", ">":
		return Gt, nil
	case "ge", "Ge", "GE", ">=":
		return Ge, nil
	case "lt", "Lt", "LT", "<":
		return Lt, nil
	case "le", "Le", "LE", "<=":
		return Le, nil
	case "like", "Like", "LIKE":
		return Like, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// GroupOperator represents how the children of a group are combined.
type GroupOperator string

const (
	And GroupOperator = "AND"
	Or  GroupOperator = "OR"
)

// ParseGroupOperator converts "and"/"or" (any case) into a GroupOperator.
func ParseGroupOperator(s string) (GroupOperator, error) {
	switch s {
	case "and", "And", "AND":
		return And, nil
	case "or", "Or", "OR":
		return Or, nil
	}
	return "", fmt.Errorf("unknown group operator %q", s)
}
