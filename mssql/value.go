package mssql

import (
	"database/sql/driver"
	"reflect"
)

type valueKind int

const (
	valueScalar valueKind = iota
	valueNull
	valueSequence
)

var valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()

// classifyValue decides how an operand renders. Untyped nil, nil pointers and
// nil slices are NULL. Slices and arrays are sequences unless their elements
// are bytes or the type implements driver.Valuer, which drivers bind as a
// single value (so uuid.UUID stays scalar). A non-nil empty slice is a
// sequence and fails to render.
func classifyValue(v any) (valueKind, reflect.Value) {
	if v == nil {
		return valueNull, reflect.Value{}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return valueNull, rv
		}
	case reflect.Slice:
		if rv.IsNil() {
			return valueNull, rv
		}
		return classifyList(rv), rv
	case reflect.Array:
		return classifyList(rv), rv
	}
	return valueScalar, rv
}

func classifyList(rv reflect.Value) valueKind {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return valueScalar
	}
	if rv.Type().Implements(valuerType) {
		return valueScalar
	}
	return valueSequence
}
