package types

import "reflect"

// Entity identifies a mapped entity by its logical name.
// Type is set when the entity is backed by a Go struct and enables auto-mapping.
// Registry lookup uses Name only.
type Entity struct {
	Type reflect.Type
	Name string
}

// GetName returns the entity name.
func (e Entity) GetName() string {
	return e.Name
}

// String implements fmt.Stringer.
func (e Entity) String() string {
	return e.Name
}

// ClassMap is the resolved, read-only mapping of one entity to a table.
type ClassMap struct {
	index      map[string]int
	entity     Entity
	schemaName string
	tableName  string
	properties []PropertyMap
}

// NewClassMap builds a ClassMap. The property slice is copied.
func NewClassMap(entity Entity, schemaName, tableName string, properties []PropertyMap) *ClassMap {
	m := &ClassMap{
		entity:     entity,
		schemaName: schemaName,
		tableName:  tableName,
		properties: make([]PropertyMap, len(properties)),
		index:      make(map[string]int, len(properties)),
	}
	copy(m.properties, properties)
	for i, p := range m.properties {
		m.index[p.Name] = i
	}
	return m
}

// Entity returns the entity this map describes.
func (m *ClassMap) Entity() Entity {
	return m.entity
}

// SchemaName returns the schema, or "" for the engine default.
func (m *ClassMap) SchemaName() string {
	return m.schemaName
}

// TableName returns the physical table name.
func (m *ClassMap) TableName() string {
	return m.tableName
}

// Properties returns a copy of the property maps in declaration order.
func (m *ClassMap) Properties() []PropertyMap {
	out := make([]PropertyMap, len(m.properties))
	copy(out, m.properties)
	return out
}

// Property looks up a property map by its exact name.
func (m *ClassMap) Property(name string) (PropertyMap, bool) {
	i, ok := m.index[name]
	if !ok {
		return PropertyMap{}, false
	}
	return m.properties[i], true
}

// Keys returns the properties classified as keys, in declaration order.
func (m *ClassMap) Keys() []PropertyMap {
	var keys []PropertyMap
	for _, p := range m.properties {
		if p.KeyType != NotAKey {
			keys = append(keys, p)
		}
	}
	return keys
}
