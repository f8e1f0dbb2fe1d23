// Package mssql compiles predicate trees into SQL Server style SQL:
// bracket-quoted identifiers and @-prefixed named parameters.
package mssql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
)

// countStarSQL is the select list used by RenderCount.
const countStarSQL = "COUNT(*) AS [Total]"

// Resolver provides the table mapping for an entity.
type Resolver interface {
	Resolve(entity types.Entity) (*types.ClassMap, error)
}

// renderContext tracks state for a single compilation pass.
type renderContext struct {
	params *types.Params
	maps   map[string]*types.ClassMap
}

func newRenderContext(params *types.Params) *renderContext {
	return &renderContext{
		params: params,
		maps:   make(map[string]*types.ClassMap),
	}
}

// bind mints the next parameter name for property and stores value under it.
// The ordinal is the sink size before insertion, so numbering runs across
// the whole sink rather than per property.
func (ctx *renderContext) bind(property string, value any) (string, error) {
	name := fmt.Sprintf("@%s_%d", property, ctx.params.Len())
	if ctx.params.Has(name) {
		return "", fmt.Errorf("%w: %s", render.ErrDuplicateParameter, name)
	}
	ctx.params.Set(name, value)
	return name, nil
}

// Renderer compiles predicates against a mapping Resolver.
type Renderer struct {
	resolver Resolver
}

// New creates a renderer that resolves entities through resolver.
func New(resolver Resolver) *Renderer {
	return &Renderer{resolver: resolver}
}

// Render compiles pred into a parenthesized boolean expression, appending
// literal operands to params. On error no SQL is returned and params may
// hold a partial set of bindings that the caller should discard.
func (r *Renderer) Render(pred types.Predicate, params *types.Params) (string, error) {
	if params == nil {
		return "", fmt.Errorf("params cannot be nil")
	}
	ctx := newRenderContext(params)

	var sql strings.Builder
	if err := r.renderPredicate(pred, &sql, ctx); err != nil {
		return "", err
	}
	return sql.String(), nil
}

// RenderOrderBy renders sort terms for entity as "[T].[c] ASC, ...".
// An empty sort list renders as "".
func (r *Renderer) RenderOrderBy(entity types.Entity, sorts []types.Sort) (string, error) {
	if len(sorts) == 0 {
		return "", nil
	}
	ctx := newRenderContext(types.NewParams())
	return r.renderOrderBy(entity, sorts, ctx)
}

// RenderSelect renders a SELECT of every non-ignored column of entity,
// filtered by pred (which may be nil) and ordered by sorts.
func (r *Renderer) RenderSelect(entity types.Entity, pred types.Predicate, sorts []types.Sort, params *types.Params) (string, error) {
	if params == nil {
		return "", fmt.Errorf("params cannot be nil")
	}
	ctx := newRenderContext(params)

	m, err := r.resolve(ctx, entity)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")

	var columns []string
	for _, p := range m.Properties() {
		if p.Ignored {
			continue
		}
		columns = append(columns, r.renderColumn(m, p.ColumnName))
	}
	if len(columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(columns, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(r.renderTable(m))

	if pred != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderPredicate(pred, &sql, ctx); err != nil {
			return "", err
		}
	}

	if len(sorts) > 0 {
		orderBy, err := r.renderOrderBy(entity, sorts, ctx)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(orderBy)
	}

	return sql.String(), nil
}

// RenderCount renders a row count of entity filtered by pred (which may be nil).
func (r *Renderer) RenderCount(entity types.Entity, pred types.Predicate, params *types.Params) (string, error) {
	if params == nil {
		return "", fmt.Errorf("params cannot be nil")
	}
	ctx := newRenderContext(params)

	m, err := r.resolve(ctx, entity)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(countStarSQL)
	sql.WriteString(" FROM ")
	sql.WriteString(r.renderTable(m))

	if pred != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderPredicate(pred, &sql, ctx); err != nil {
			return "", err
		}
	}
	return sql.String(), nil
}

func (r *Renderer) renderOrderBy(entity types.Entity, sorts []types.Sort, ctx *renderContext) (string, error) {
	m, err := r.resolve(ctx, entity)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(sorts))
	for _, s := range sorts {
		column, err := r.columnName(m, s.PropertyName)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s %s", r.renderColumn(m, column), s.Direction()))
	}
	return strings.Join(parts, ", "), nil
}

// renderPredicate dispatches on the closed set of predicate node types.
func (r *Renderer) renderPredicate(pred types.Predicate, sql *strings.Builder, ctx *renderContext) error {
	switch p := pred.(type) {
	case types.FieldPredicate:
		return r.renderFieldPredicate(p, sql, ctx)
	case *types.FieldPredicate:
		if p == nil {
			return render.NewInvalidPredicateError("nil field predicate")
		}
		return r.renderFieldPredicate(*p, sql, ctx)
	case types.PropertyPredicate:
		return r.renderPropertyPredicate(p, sql, ctx)
	case *types.PropertyPredicate:
		if p == nil {
			return render.NewInvalidPredicateError("nil property predicate")
		}
		return r.renderPropertyPredicate(*p, sql, ctx)
	case types.PredicateGroup:
		return r.renderGroup(p, sql, ctx)
	case *types.PredicateGroup:
		if p == nil {
			return render.NewInvalidPredicateError("nil predicate group")
		}
		return r.renderGroup(*p, sql, ctx)
	case types.ExistsPredicate:
		return r.renderExists(p, sql, ctx)
	case *types.ExistsPredicate:
		if p == nil {
			return render.NewInvalidPredicateError("nil exists predicate")
		}
		return r.renderExists(*p, sql, ctx)
	case nil:
		return render.NewInvalidPredicateError("predicate is nil")
	default:
		return render.NewInvalidPredicateError("unknown predicate type %T", pred)
	}
}

func (r *Renderer) renderFieldPredicate(p types.FieldPredicate, sql *strings.Builder, ctx *renderContext) error {
	column, err := r.renderProperty(ctx, p.Entity, p.Property)
	if err != nil {
		return err
	}

	switch kind, rv := classifyValue(p.Value); kind {
	case valueNull:
		if p.Not {
			fmt.Fprintf(sql, "(%s IS NOT NULL)", column)
		} else {
			fmt.Fprintf(sql, "(%s IS NULL)", column)
		}
		return nil

	case valueSequence:
		if p.Operator != types.Eq {
			return render.NewInvalidOperatorError(string(p.Operator), "operator must be set to Eq for sequence operands")
		}
		if rv.Len() == 0 {
			return render.NewInvalidPredicateError("sequence operand for %s.%s is empty", p.Entity.Name, p.Property)
		}
		names := make([]string, rv.Len())
		for i := range names {
			name, err := ctx.bind(p.Property, rv.Index(i).Interface())
			if err != nil {
				return err
			}
			names[i] = name
		}
		in := "IN"
		if p.Not {
			in = "NOT IN"
		}
		fmt.Fprintf(sql, "(%s %s (%s))", column, in, strings.Join(names, ", "))
		return nil

	default:
		op, err := renderOperator(p.Operator, p.Not)
		if err != nil {
			return err
		}
		name, err := ctx.bind(p.Property, p.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(sql, "(%s %s %s)", column, op, name)
		return nil
	}
}

func (r *Renderer) renderPropertyPredicate(p types.PropertyPredicate, sql *strings.Builder, ctx *renderContext) error {
	left, err := r.renderProperty(ctx, p.Entity, p.Property)
	if err != nil {
		return err
	}
	right, err := r.renderProperty(ctx, p.Entity2, p.Property2)
	if err != nil {
		return err
	}
	op, err := renderOperator(p.Operator, p.Not)
	if err != nil {
		return err
	}
	fmt.Fprintf(sql, "(%s %s %s)", left, op, right)
	return nil
}

func (r *Renderer) renderGroup(g types.PredicateGroup, sql *strings.Builder, ctx *renderContext) error {
	if g.Operator != types.And && g.Operator != types.Or {
		return render.NewInvalidOperatorError(string(g.Operator), "group operator must be AND or OR")
	}
	if len(g.Predicates) == 0 {
		return render.NewInvalidPredicateError("%s group has no predicates", g.Operator)
	}

	sql.WriteString("(")
	for i, child := range g.Predicates {
		if i > 0 {
			fmt.Fprintf(sql, " %s ", g.Operator)
		}
		if err := r.renderPredicate(child, sql, ctx); err != nil {
			return err
		}
	}
	sql.WriteString(")")
	return nil
}

func (r *Renderer) renderExists(e types.ExistsPredicate, sql *strings.Builder, ctx *renderContext) error {
	if e.Predicate == nil {
		return render.NewInvalidPredicateError("exists predicate on %s has no inner predicate", e.Entity.Name)
	}
	m, err := r.resolve(ctx, e.Entity)
	if err != nil {
		return err
	}

	if e.Not {
		sql.WriteString("(NOT EXISTS (SELECT 1 FROM ")
	} else {
		sql.WriteString("(EXISTS (SELECT 1 FROM ")
	}
	sql.WriteString(r.renderTable(m))
	sql.WriteString(" WHERE ")
	if err := r.renderPredicate(e.Predicate, sql, ctx); err != nil {
		return err
	}
	sql.WriteString("))")
	return nil
}

// resolve looks an entity up once per compilation pass.
func (r *Renderer) resolve(ctx *renderContext, entity types.Entity) (*types.ClassMap, error) {
	if m, ok := ctx.maps[entity.Name]; ok {
		return m, nil
	}
	if r.resolver == nil {
		return nil, render.MappingNotFoundError{Entity: entity.Name}
	}
	m, err := r.resolver.Resolve(entity)
	if err != nil {
		return nil, err
	}
	ctx.maps[entity.Name] = m
	return m, nil
}

func (r *Renderer) columnName(m *types.ClassMap, property string) (string, error) {
	p, ok := m.Property(property)
	if !ok {
		return "", render.UnknownPropertyError{Entity: m.Entity().Name, Property: property}
	}
	return p.ColumnName, nil
}

// renderProperty resolves entity.property to "[table].[column]".
func (r *Renderer) renderProperty(ctx *renderContext, entity types.Entity, property string) (string, error) {
	m, err := r.resolve(ctx, entity)
	if err != nil {
		return "", err
	}
	column, err := r.columnName(m, property)
	if err != nil {
		return "", err
	}
	return r.renderColumn(m, column), nil
}

func (r *Renderer) renderColumn(m *types.ClassMap, column string) string {
	return render.QuoteIdentifier(m.TableName()) + "." + render.QuoteIdentifier(column)
}

func (r *Renderer) renderTable(m *types.ClassMap) string {
	if m.SchemaName() != "" {
		return render.QuoteIdentifier(m.SchemaName()) + "." + render.QuoteIdentifier(m.TableName())
	}
	return render.QuoteIdentifier(m.TableName())
}

// renderOperator maps an operator and negation flag to its SQL token.
// Negation yields the logical complement rather than a NOT prefix,
// except for LIKE.
func renderOperator(op types.Operator, not bool) (string, error) {
	switch op {
	case types.Eq:
		if not {
			return "<>", nil
		}
		return "=", nil
	case types.Gt:
		if not {
			return "<=", nil
		}
		return ">", nil
	case types.Ge:
		if not {
			return "<", nil
		}
		return ">=", nil
	case types.Lt:
		if not {
			return ">=", nil
		}
		return "<", nil
	case types.Le:
		if not {
			return ">", nil
		}
		return "<=", nil
	case types.Like:
		if not {
			return "NOT LIKE", nil
		}
		return "LIKE", nil
	}
	return "", render.NewInvalidOperatorError(string(op), "unknown comparison operator")
}
