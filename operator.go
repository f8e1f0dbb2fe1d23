package predql

import "github.com/zoobzio/predql/internal/types"

// Re-export operator constants for public API.
const (
	Eq   = types.Eq
	Gt   = types.Gt
	Ge   = types.Ge
	Lt   = types.Lt
	Le   = types.Le
	Like = types.Like

	AND = types.And
	OR  = types.Or
)

// Re-export key classifications for public API.
const (
	NotAKey  = types.NotAKey
	Assigned = types.Assigned
	Identity = types.Identity
	Guid     = types.Guid
)

// ParseOperator converts "eq", "gt", ... or their SQL tokens into an Operator.
func ParseOperator(s string) (Operator, error) {
	return types.ParseOperator(s)
}

// ParseKeyType converts "identity", "guid", "assigned" or "" into a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	return types.ParseKeyType(s)
}
