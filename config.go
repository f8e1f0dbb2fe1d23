package predql

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// mappingFile is the YAML layout accepted by LoadMappings:
//
//	entities:
//	  - name: Order
//	    schema: sales
//	    table: orders
//	    properties:
//	      - name: Id
//	        key: identity
//	      - name: CustomerName
//	        column: customer_name
//	      - name: Notes
//	        ignore: true
type mappingFile struct {
	Entities []entityConfig `yaml:"entities"`
}

type entityConfig struct {
	Name       string           `yaml:"name"`
	Schema     string           `yaml:"schema"`
	Table      string           `yaml:"table"`
	Properties []propertyConfig `yaml:"properties"`
}

type propertyConfig struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
	Key    string `yaml:"key"`
	Ignore bool   `yaml:"ignore"`
}

// LoadMappings reads a YAML mapping document into a new registry.
func LoadMappings(r io.Reader, opts ...Option) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mappings: %w", err)
	}
	reg := NewRegistry(opts...)
	if err := reg.LoadYAML(data); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadYAML registers every entity in a YAML mapping document.
// Unknown keys are rejected.
func (r *Registry) LoadYAML(data []byte) error {
	var file mappingFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse mappings: %w", err)
	}

	mappers := make([]*ClassMapper, 0, len(file.Entities))
	for i, ec := range file.Entities {
		m, err := ec.mapper()
		if err != nil {
			return fmt.Errorf("entities[%d]: %w", i, err)
		}
		mappers = append(mappers, m.Logger(r.logger))
	}
	return r.Register(mappers...)
}

func (ec entityConfig) mapper() (*ClassMapper, error) {
	if ec.Name == "" {
		return nil, fmt.Errorf("entity name is required")
	}
	m := NewNamedClassMapper(ec.Name).Schema(ec.Schema)
	if ec.Table != "" {
		m.Table(ec.Table)
	}
	for _, pc := range ec.Properties {
		kt, err := ParseKeyType(pc.Key)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", ec.Name, pc.Name, err)
		}
		p := m.Map(pc.Name)
		if pc.Column != "" {
			p.Column(pc.Column)
		}
		if kt != NotAKey {
			p.Key(kt)
		}
		if pc.Ignore {
			p.Ignore()
		}
	}
	return m, m.Err()
}
