package predql

import (
	"reflect"

	"github.com/zoobzio/predql/internal/types"
)

// E returns the entity backed by the Go type T, named after the bare type name.
// Registries key mappings by that name alone: two types with the same bare
// name, such as types from different packages, resolve to the same mapping.
func E[T any]() Entity {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return types.Entity{Name: t.Name(), Type: t}
}

// EntityNamed returns an entity known only by name, for mappings that are
// loaded from YAML or DBML rather than declared on a Go type.
func EntityNamed(name string) Entity {
	return types.Entity{Name: name}
}
