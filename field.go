package predql

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/predql/internal/render"
)

// Accessor selects a field of T by returning its address,
// e.g. func(u *User) any { return &u.Name }.
type Accessor[T any] func(*T) any

// TryPropertyName resolves an accessor to the name of the field it addresses.
// The accessor is invoked once on a zero T; the returned pointer must address
// a direct, exported, non-embedded field of T.
func TryPropertyName[T any](accessor Accessor[T]) (name string, err error) {
	entity := E[T]()
	fail := func(reason string) error {
		return render.InvalidPropertyExpressionError{Entity: entity.Name, Reason: reason}
	}

	st := reflect.TypeFor[T]()
	if st.Kind() != reflect.Struct {
		return "", fail(fmt.Sprintf("%s is not a struct type", st))
	}
	if accessor == nil {
		return "", fail("accessor is nil")
	}

	defer func() {
		if r := recover(); r != nil {
			name, err = "", fail(fmt.Sprintf("accessor panicked: %v", r))
		}
	}()

	var zero T
	base := reflect.ValueOf(&zero).Pointer()
	rv := reflect.ValueOf(accessor(&zero))
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return "", fail("accessor must return the address of a field")
	}

	addr := rv.Pointer()
	if addr < base || addr >= base+st.Size() {
		return "", fail("accessor must return the address of a field of the argument")
	}
	offset := addr - base
	elem := rv.Type().Elem()

	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Offset != offset || f.Type != elem {
			continue
		}
		if f.Anonymous {
			return "", fail(fmt.Sprintf("%s is an embedded struct, not a property", f.Name))
		}
		if !f.IsExported() {
			return "", fail(fmt.Sprintf("%s is not exported", f.Name))
		}
		return f.Name, nil
	}
	return "", fail("accessor does not address a direct field")
}

// PropertyName resolves an accessor to a field name, panicking on error.
func PropertyName[T any](accessor Accessor[T]) string {
	name, err := TryPropertyName(accessor)
	if err != nil {
		panic(err)
	}
	return name
}

// validateProperty checks that name is an exported field of T, including
// fields promoted from embedded structs.
func validateProperty[T any](name string) error {
	return checkProperty(E[T](), name)
}

// checkProperty validates name against the Go type behind entity.
// Properties of name-only entities must be plain identifiers since the name
// also forms the generated parameter name.
func checkProperty(entity Entity, name string) error {
	t := entity.Type
	if t == nil {
		if !render.IsValidSQLIdentifier(name) {
			return render.InvalidPropertyExpressionError{Entity: entity.Name, Expression: name, Reason: "property name must be a plain identifier"}
		}
		return nil
	}
	if t.Kind() != reflect.Struct {
		return render.InvalidPropertyExpressionError{Entity: entity.Name, Expression: name, Reason: "entity is not a struct type"}
	}
	f, ok := t.FieldByName(name)
	if !ok {
		return render.InvalidPropertyExpressionError{Entity: entity.Name, Expression: name, Reason: "no such field"}
	}
	if !f.IsExported() {
		return render.InvalidPropertyExpressionError{Entity: entity.Name, Expression: name, Reason: "field is not exported"}
	}
	return nil
}
