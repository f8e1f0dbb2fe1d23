package predql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/predql/internal/types"
)

// dbmlDefaultSchema is the schema dbml assigns to tables declared without one.
const dbmlDefaultSchema = "public"

// NewFromDBML creates a registry with one named mapping per table in project.
// Columns map one-to-one onto properties. Tables outside the default schema
// are registered as "schema.table" and render with their schema.
//
// Primary key columns (column settings or a pk index) become keys: an
// increment column is Identity, otherwise the kind follows the column type.
// Columns of a composite key that are not increments are Assigned. Without
// a declared primary key the first id-suffixed column is classified from
// its type.
func NewFromDBML(project *dbml.Project, opts ...Option) (*Registry, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	tables := make([]*dbml.Table, 0, len(project.Tables))
	for _, table := range project.Tables {
		if table == nil {
			continue
		}
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool {
		return dbmlEntityName(tables[i]) < dbmlEntityName(tables[j])
	})

	r := NewRegistry(opts...)
	mappers := make([]*ClassMapper, 0, len(tables))
	for _, table := range tables {
		m := NewNamedClassMapper(dbmlEntityName(table)).Table(table.Name).Logger(r.logger)
		if table.Schema != dbmlDefaultSchema {
			m.Schema(table.Schema)
		}

		pk := primaryKeyColumns(table)
		keyFound := false
		for _, col := range table.Columns {
			if col == nil {
				continue
			}
			p := m.Map(col.Name)
			switch {
			case pk[col.Name]:
				p.Key(primaryKeyType(col, len(pk) > 1))
			case len(pk) == 0 && !keyFound && isKeyName(col.Name):
				p.Key(columnKeyType(col.Type))
				keyFound = true
			}
		}
		mappers = append(mappers, m)
	}
	if err := r.Register(mappers...); err != nil {
		return nil, err
	}
	return r, nil
}

// dbmlEntityName is the registry name of table: its bare name in the default
// schema, "schema.table" elsewhere.
func dbmlEntityName(table *dbml.Table) string {
	if table.Schema == "" || table.Schema == dbmlDefaultSchema {
		return table.Name
	}
	return table.Schema + "." + table.Name
}

// primaryKeyColumns collects the columns marked [pk] or listed in a pk index.
func primaryKeyColumns(table *dbml.Table) map[string]bool {
	pk := make(map[string]bool)
	for _, col := range table.Columns {
		if col != nil && col.Settings != nil && col.Settings.PrimaryKey {
			pk[col.Name] = true
		}
	}
	for _, idx := range table.Indexes {
		if idx == nil || !idx.PrimaryKey {
			continue
		}
		for _, ic := range idx.Columns {
			if ic.Name != nil {
				pk[*ic.Name] = true
			}
		}
	}
	return pk
}

// primaryKeyType classifies a declared primary key column.
func primaryKeyType(col *dbml.Column, composite bool) KeyType {
	if col.Settings != nil && col.Settings.Increment {
		return types.Identity
	}
	kt := columnKeyType(col.Type)
	if composite && kt == types.Identity {
		return types.Assigned
	}
	return kt
}

// columnKeyType classifies a key column by its DBML type name.
func columnKeyType(typeName string) KeyType {
	t := strings.ToLower(strings.TrimSpace(typeName))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch t {
	case "int", "integer", "bigint", "smallint", "tinyint", "int2", "int4", "int8",
		"serial", "bigserial", "smallserial":
		return types.Identity
	case "uuid", "uniqueidentifier", "guid":
		return types.Guid
	}
	return types.Assigned
}
