// Package predql compiles predicate trees into parameterized SQL fragments.
//
// A predicate is a tree of field comparisons, cross-entity property
// comparisons, AND/OR groups and EXISTS sub-queries. Compiling it against a
// mapping Registry resolves logical entity and property names into bracket
// quoted table and column references and collects literal operands into a
// Params sink under generated names of the form @Property_N.
//
// # Basic Usage
//
//	reg := predql.NewRegistry()
//
//	pred := predql.And(
//		predql.Field[User]("Id", predql.Gt, 5),
//		predql.Field[User]("Name", predql.Eq, "foo"),
//	)
//
//	params := predql.NewParams()
//	sql, err := reg.Compile(pred, params)
//	// sql: (([User].[Id] > @Id_0) AND ([User].[Name] = @Name_1))
//	// params: @Id_0 = 5, @Name_1 = "foo"
//
//	rows, err := db.QueryContext(ctx, "SELECT * FROM [User] WHERE "+sql, params.NamedArgs()...)
//
// # Mappings
//
// Entities backed by Go structs are auto-mapped on first use: every exported
// field becomes a column of the same name (or the name in its db tag) and the
// first field whose name ends in "id" becomes the key. Explicit mappings are
// declared with a ClassMapper:
//
//	m := predql.NewClassMapper[User]().Schema("dbo").Table("users")
//	m.Map("Name").Column("full_name")
//	m.AutoMap()
//	err := reg.Register(m)
//
// Mappings can also be loaded from YAML (LoadMappings) or derived from a
// DBML project (NewFromDBML).
package predql
