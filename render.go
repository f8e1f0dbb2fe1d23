package predql

import (
	"github.com/zoobzio/predql/internal/types"
	"github.com/zoobzio/predql/mssql"
)

// Compile renders pred as a WHERE-clause expression, binding operands into params.
func (r *Registry) Compile(pred Predicate, params *Params) (string, error) {
	return mssql.New(r).Render(pred, params)
}

// MustCompile is Compile that panics on error.
func (r *Registry) MustCompile(pred Predicate, params *Params) string {
	sql, err := r.Compile(pred, params)
	if err != nil {
		panic(err)
	}
	return sql
}

// Query compiles pred into a fresh parameter set.
func (r *Registry) Query(pred Predicate) (*QueryResult, error) {
	params := types.NewParams()
	sql, err := r.Compile(pred, params)
	if err != nil {
		return nil, err
	}
	return &QueryResult{SQL: sql, Params: params}, nil
}

// Select renders a SELECT over entity's columns filtered by pred (may be nil).
func (r *Registry) Select(entity Entity, pred Predicate, sorts ...Sort) (*QueryResult, error) {
	params := types.NewParams()
	sql, err := mssql.New(r).RenderSelect(entity, pred, sorts, params)
	if err != nil {
		return nil, err
	}
	return &QueryResult{SQL: sql, Params: params}, nil
}

// Count renders a row count over entity filtered by pred (may be nil).
func (r *Registry) Count(entity Entity, pred Predicate) (*QueryResult, error) {
	params := types.NewParams()
	sql, err := mssql.New(r).RenderCount(entity, pred, params)
	if err != nil {
		return nil, err
	}
	return &QueryResult{SQL: sql, Params: params}, nil
}

// OrderBy renders sorts against entity's columns, without the ORDER BY keyword.
func (r *Registry) OrderBy(entity Entity, sorts ...Sort) (string, error) {
	return mssql.New(r).RenderOrderBy(entity, sorts)
}

// Compile renders pred using the default registry.
func Compile(pred Predicate, params *Params) (string, error) {
	return Default().Compile(pred, params)
}
