package predql

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
)

// ClassMapper provides a fluent API for describing how an entity maps to a table.
// The first error encountered is kept and returned by Build.
type ClassMapper struct {
	logger     logrus.FieldLogger
	err        error
	entity     Entity
	schemaName string
	tableName  string
	properties []*PropertyMapper
	autoMap    bool
}

// PropertyMapper configures a single property of a ClassMapper.
type PropertyMapper struct {
	owner *ClassMapper
	prop  types.PropertyMap
}

// NewClassMapper creates a mapper for the Go struct T. The table defaults to
// the bare type name.
func NewClassMapper[T any]() *ClassMapper {
	return newClassMapper(E[T]())
}

// NewNamedClassMapper creates a mapper for an entity with no backing Go type.
// Its properties must be mapped explicitly.
func NewNamedClassMapper(name string) *ClassMapper {
	m := newClassMapper(EntityNamed(name))
	if name == "" {
		m.err = fmt.Errorf("entity name cannot be empty")
	}
	return m
}

func newClassMapper(entity Entity) *ClassMapper {
	return &ClassMapper{
		entity:    entity,
		tableName: entity.Name,
		logger:    logrus.StandardLogger(),
	}
}

// Entity returns the entity being mapped.
func (m *ClassMapper) Entity() Entity {
	return m.entity
}

// Err returns the first configuration error, if any.
func (m *ClassMapper) Err() error {
	return m.err
}

// Logger sets the logger used while auto-mapping.
func (m *ClassMapper) Logger(l logrus.FieldLogger) *ClassMapper {
	if l != nil {
		m.logger = l
	}
	return m
}

// Schema sets the schema name. An empty name means the engine default.
func (m *ClassMapper) Schema(name string) *ClassMapper {
	if m.err != nil {
		return m
	}
	m.schemaName = name
	return m
}

// Table overrides the table name.
func (m *ClassMapper) Table(name string) *ClassMapper {
	if m.err != nil {
		return m
	}
	if name == "" {
		m.err = fmt.Errorf("%s: table name cannot be empty", m.entity)
		return m
	}
	m.tableName = name
	return m
}

// TryMap adds property to the mapping, or returns the existing mapper if it
// was already mapped. For typed entities the property must be an exported
// field of the struct.
func (m *ClassMapper) TryMap(property string) (*PropertyMapper, error) {
	if property == "" {
		return nil, render.InvalidPropertyExpressionError{Entity: m.entity.Name, Reason: "property name cannot be empty"}
	}
	if err := checkProperty(m.entity, property); err != nil {
		return nil, err
	}
	for _, p := range m.properties {
		if p.prop.Name == property {
			return p, nil
		}
	}
	p := &PropertyMapper{
		owner: m,
		prop:  types.PropertyMap{Name: property, ColumnName: property},
	}
	m.properties = append(m.properties, p)
	return p, nil
}

// Map adds property to the mapping. Errors are recorded on the mapper and
// returned by Build; the returned PropertyMapper is always usable.
func (m *ClassMapper) Map(property string) *PropertyMapper {
	p, err := m.TryMap(property)
	if err != nil {
		if m.err == nil {
			m.err = err
		}
		return &PropertyMapper{owner: m, prop: types.PropertyMap{Name: property}}
	}
	return p
}

// AutoMap maps every exported field of T not already mapped when the mapper
// is built, and classifies the first id-suffixed field as the key unless a
// key was configured explicitly.
func (m *ClassMapper) AutoMap() *ClassMapper {
	if m.err != nil {
		return m
	}
	if m.entity.Type == nil {
		m.err = fmt.Errorf("%s: auto-mapping requires a Go struct type", m.entity)
		return m
	}
	m.autoMap = true
	return m
}

// Build returns the immutable ClassMap or the first configuration error.
func (m *ClassMapper) Build() (*ClassMap, error) {
	return m.build(m.logger)
}

// build is Build with an explicit logger for auto-map diagnostics.
func (m *ClassMapper) build(logger logrus.FieldLogger) (*ClassMap, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.tableName == "" {
		return nil, fmt.Errorf("%s: table name cannot be empty", m.entity)
	}

	props := make([]types.PropertyMap, 0, len(m.properties))
	for _, p := range m.properties {
		if p.prop.Ignored && p.prop.KeyType != types.NotAKey {
			return nil, fmt.Errorf("%s.%s: a key cannot be ignored", m.entity, p.prop.Name)
		}
		props = append(props, p.prop)
	}

	if m.autoMap {
		var err error
		props, err = autoMapProperties(m.entity, props, logger)
		if err != nil {
			return nil, err
		}
	}

	return types.NewClassMap(m.entity, m.schemaName, m.tableName, props), nil
}

// MustBuild returns the ClassMap or panics on error.
func (m *ClassMapper) MustBuild() *ClassMap {
	cm, err := m.Build()
	if err != nil {
		panic(err)
	}
	return cm
}

// Column sets the column the property is stored in.
func (p *PropertyMapper) Column(name string) *PropertyMapper {
	if p.owner.err != nil {
		return p
	}
	if strings.TrimSpace(name) == "" {
		p.owner.err = fmt.Errorf("%s.%s: column name cannot be empty", p.owner.entity, p.prop.Name)
		return p
	}
	p.prop.ColumnName = name
	return p
}

// Key classifies the property as a key.
func (p *PropertyMapper) Key(kt KeyType) *PropertyMapper {
	if p.owner.err != nil {
		return p
	}
	p.prop.KeyType = kt
	return p
}

// Ignore excludes the property from column lists. Ignored properties can
// still be referenced by predicates.
func (p *PropertyMapper) Ignore() *PropertyMapper {
	if p.owner.err != nil {
		return p
	}
	p.prop.Ignored = true
	return p
}
