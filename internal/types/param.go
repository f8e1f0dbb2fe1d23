package types

import (
	"database/sql"
	"strings"
)

// Params is the ordered parameter sink filled while compiling a predicate.
// Names are stored with their leading "@". A Params value must not be
// shared between concurrent compilations: minted names depend on Len.
type Params struct {
	values map[string]any
	names  []string
}

// NewParams creates an empty parameter sink.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Len returns the number of bound parameters.
func (p *Params) Len() int {
	return len(p.names)
}

// Has reports whether name is already bound.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Set binds value to name, replacing any previous value but keeping its position.
func (p *Params) Set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Get returns the value bound to name.
func (p *Params) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns parameter names in insertion order.
func (p *Params) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Map returns a copy of the bindings.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// NamedArgs returns the bindings as database/sql named arguments in insertion
// order, with the leading "@" removed from each name.
func (p *Params) NamedArgs() []any {
	args := make([]any, 0, len(p.names))
	for _, name := range p.names {
		args = append(args, sql.Named(strings.TrimPrefix(name, "@"), p.values[name]))
	}
	return args
}
