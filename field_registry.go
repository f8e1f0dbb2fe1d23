package predql

import (
	"math/big"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
)

var (
	uuidType     = reflect.TypeFor[uuid.UUID]()
	nullUUIDType = reflect.TypeFor[uuid.NullUUID]()
	bigIntType   = reflect.TypeFor[big.Int]()
)

// keyTypeOf classifies an auto-detected key by its Go type.
func keyTypeOf(t reflect.Type) KeyType {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case uuidType, nullUUIDType:
		return types.Guid
	case bigIntType:
		return types.Identity
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return types.Identity
	}
	return types.Assigned
}

// isKeyName reports whether name ends in "id", ignoring case.
func isKeyName(name string) bool {
	return len(name) >= 2 && strings.EqualFold(name[len(name)-2:], "id")
}

// autoMapProperties appends a property for every exported field of the
// entity's struct that is not already in props. Fields tagged db:"-" are
// mapped as ignored, and db:"name" sets the column.
func autoMapProperties(entity Entity, props []types.PropertyMap, logger logrus.FieldLogger) ([]types.PropertyMap, error) {
	t := entity.Type
	if t == nil || t.Kind() != reflect.Struct {
		return nil, render.InvalidPropertyExpressionError{Entity: entity.Name, Reason: "auto-mapping requires a struct type"}
	}
	log := logger.WithField("entity", entity.Name)

	keyFound := false
	for _, p := range props {
		if p.KeyType != types.NotAKey {
			keyFound = true
			break
		}
	}

	mapped := func(name string) bool {
		for _, p := range props {
			if strings.EqualFold(p.Name, name) {
				return true
			}
		}
		return false
	}

	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if mapped(f.Name) {
			continue
		}

		prop := types.PropertyMap{Name: f.Name, ColumnName: f.Name}
		switch tag := f.Tag.Get("db"); {
		case tag == "-":
			prop.Ignored = true
		case tag != "":
			if render.IsValidSQLIdentifier(tag) {
				prop.ColumnName = tag
			} else {
				log.WithField("property", f.Name).Warnf("ignoring unsafe db tag %q", tag)
			}
		}

		if !keyFound && !prop.Ignored && isKeyName(f.Name) {
			prop.KeyType = keyTypeOf(f.Type)
			keyFound = true
			log.WithFields(logrus.Fields{
				"property": f.Name,
				"key":      prop.KeyType.String(),
			}).Debug("detected key")
		}
		props = append(props, prop)
	}

	log.WithField("properties", len(props)).Debug("auto-mapped entity")
	return props, nil
}
