package predql

import (
	"fmt"

	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
	"gopkg.in/yaml.v3"
)

// predicateDoc is one node of a YAML predicate document. Exactly one
// of its fields must be set.
//
//	and:
//	  - field: {entity: Order, property: Total, op: gt, value: 100}
//	  - exists:
//	      entity: OrderLine
//	      where:
//	        property: {entity: OrderLine, property: OrderId, op: eq, entity2: Order, property2: Id}
type predicateDoc struct {
	Field    *fieldDoc       `yaml:"field"`
	Property *propertyDoc    `yaml:"property"`
	And      *[]predicateDoc `yaml:"and"`
	Or       *[]predicateDoc `yaml:"or"`
	Exists   *existsDoc      `yaml:"exists"`
}

type fieldDoc struct {
	Value    any    `yaml:"value"`
	Entity   string `yaml:"entity"`
	Property string `yaml:"property"`
	Op       string `yaml:"op"`
	Not      bool   `yaml:"not"`
}

type propertyDoc struct {
	Entity    string `yaml:"entity"`
	Property  string `yaml:"property"`
	Op        string `yaml:"op"`
	Entity2   string `yaml:"entity2"`
	Property2 string `yaml:"property2"`
	Not       bool   `yaml:"not"`
}

type existsDoc struct {
	Where  *predicateDoc `yaml:"where"`
	Entity string        `yaml:"entity"`
	Not    bool          `yaml:"not"`
}

// ParsePredicate decodes a YAML predicate document into a predicate tree.
// Entities are referenced by name and resolved when the tree is compiled.
func ParsePredicate(data []byte) (Predicate, error) {
	var doc predicateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse predicate: %w", err)
	}
	return doc.predicate("$")
}

func (d *predicateDoc) predicate(path string) (Predicate, error) {
	if d == nil {
		return nil, render.NewInvalidPredicateError("%s: missing predicate", path)
	}

	set := 0
	for _, ok := range []bool{d.Field != nil, d.Property != nil, d.And != nil, d.Or != nil, d.Exists != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, render.NewInvalidPredicateError("%s: expected exactly one of field, property, and, or, exists", path)
	}

	switch {
	case d.Field != nil:
		return d.Field.predicate(path + ".field")
	case d.Property != nil:
		return d.Property.predicate(path + ".property")
	case d.And != nil:
		return groupDoc(path+".and", types.And, *d.And)
	case d.Or != nil:
		return groupDoc(path+".or", types.Or, *d.Or)
	default:
		return d.Exists.predicate(path + ".exists")
	}
}

func (f *fieldDoc) predicate(path string) (Predicate, error) {
	if f.Entity == "" || f.Property == "" {
		return nil, render.NewInvalidPredicateError("%s: entity and property are required", path)
	}
	op, err := parseDocOperator(f.Op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return types.FieldPredicate{
		Entity:   EntityNamed(f.Entity),
		Property: f.Property,
		Operator: op,
		Value:    f.Value,
		Not:      f.Not,
	}, nil
}

func (p *propertyDoc) predicate(path string) (Predicate, error) {
	if p.Entity == "" || p.Property == "" || p.Entity2 == "" || p.Property2 == "" {
		return nil, render.NewInvalidPredicateError("%s: entity, property, entity2 and property2 are required", path)
	}
	op, err := parseDocOperator(p.Op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return types.PropertyPredicate{
		Entity:    EntityNamed(p.Entity),
		Property:  p.Property,
		Operator:  op,
		Entity2:   EntityNamed(p.Entity2),
		Property2: p.Property2,
		Not:       p.Not,
	}, nil
}

func (e *existsDoc) predicate(path string) (Predicate, error) {
	if e.Entity == "" {
		return nil, render.NewInvalidPredicateError("%s: entity is required", path)
	}
	inner, err := e.Where.predicate(path + ".where")
	if err != nil {
		return nil, err
	}
	return types.ExistsPredicate{
		Entity:    EntityNamed(e.Entity),
		Predicate: inner,
		Not:       e.Not,
	}, nil
}

func groupDoc(path string, op GroupOperator, docs []predicateDoc) (Predicate, error) {
	children := make([]Predicate, 0, len(docs))
	for i := range docs {
		child, err := docs[i].predicate(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	g, err := TryGroup(op, children...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// parseDocOperator defaults an omitted operator to Eq.
func parseDocOperator(s string) (Operator, error) {
	if s == "" {
		return types.Eq, nil
	}
	op, err := types.ParseOperator(s)
	if err != nil {
		return "", render.NewInvalidOperatorError(s, "unknown comparison operator")
	}
	return op, nil
}
