package types

import "fmt"

// KeyType classifies a mapped property as a key.
type KeyType int

const (
	NotAKey  KeyType = iota // Plain column
	Assigned                // Caller-supplied key
	Identity                // Database-generated sequential key
	Guid                    // Generated unique identifier
)

func (k KeyType) String() string {
	switch k {
	case NotAKey:
		return "NotAKey"
	case Assigned:
		return "Assigned"
	case Identity:
		return "Identity"
	case Guid:
		return "Guid"
	}
	return fmt.Sprintf("KeyType(%d)", int(k))
}

// ParseKeyType converts a textual key kind into a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case "", "none", "notakey", "NotAKey":
		return NotAKey, nil
	case "assigned", "Assigned":
		return Assigned, nil
	case "identity", "Identity":
		return Identity, nil
	case "guid", "Guid", "uuid":
		return Guid, nil
	}
	return NotAKey, fmt.Errorf("unknown key type %q", s)
}

// PropertyMap maps one entity property to a column.
type PropertyMap struct {
	Name       string
	ColumnName string
	KeyType    KeyType
	Ignored    bool
}

// IsKey reports whether the property participates in the entity key.
func (p PropertyMap) IsKey() bool {
	return p.KeyType != NotAKey
}
