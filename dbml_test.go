package predql

import (
	"testing"

	"github.com/zoobzio/dbml"
)

func TestNewFromDBML(t *testing.T) {
	project := dbml.NewProject("shop")

	customers := dbml.NewTable("customers")
	customers.AddColumn(dbml.NewColumn("customer_id", "bigint"))
	customers.AddColumn(dbml.NewColumn("name", "varchar"))
	project.AddTable(customers)

	sessions := dbml.NewTable("sessions")
	sessions.AddColumn(dbml.NewColumn("token", "varchar"))
	sessions.AddColumn(dbml.NewColumn("session_id", "uniqueidentifier"))
	sessions.AddColumn(dbml.NewColumn("customer_id", "bigint"))
	project.AddTable(sessions)

	reg, err := NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML failed: %v", err)
	}

	if got := reg.Entities(); len(got) != 2 || got[0] != "customers" || got[1] != "sessions" {
		t.Errorf("Entities = %v", got)
	}

	cm, err := reg.Resolve(EntityNamed("customers"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if keys := cm.Keys(); len(keys) != 1 || keys[0].Name != "customer_id" || keys[0].KeyType != Identity {
		t.Errorf("customers keys = %+v", keys)
	}

	cm, err = reg.Resolve(EntityNamed("sessions"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if keys := cm.Keys(); len(keys) != 1 || keys[0].Name != "session_id" || keys[0].KeyType != Guid {
		t.Errorf("sessions keys = %+v", keys)
	}

	sql, err := reg.Compile(And(
		FieldNamed("sessions", "token", Eq, "abc"),
		PropertyPredicate{
			Entity: EntityNamed("sessions"), Property: "customer_id",
			Operator: Eq,
			Entity2:  EntityNamed("customers"), Property2: "customer_id",
		},
	), NewParams())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	expected := "(([sessions].[token] = @token_0) AND ([sessions].[customer_id] = [customers].[customer_id]))"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestNewFromDBML_Schemas(t *testing.T) {
	project := dbml.NewProject("shop")

	sales := dbml.NewTable("orders").WithSchema("sales")
	sales.AddColumn(dbml.NewColumn("code", "varchar").WithPrimaryKey())
	sales.AddColumn(dbml.NewColumn("customer_id", "bigint"))
	project.AddTable(sales)

	archive := dbml.NewTable("orders").WithSchema("archive")
	archive.AddColumn(dbml.NewColumn("customer_id", "bigint"))
	archive.AddColumn(dbml.NewColumn("seq", "bigint").WithPrimaryKey().WithIncrement())
	project.AddTable(archive)

	reg, err := NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML failed: %v", err)
	}
	if got := reg.Entities(); len(got) != 2 || got[0] != "archive.orders" || got[1] != "sales.orders" {
		t.Errorf("Entities = %v", got)
	}

	cm, err := reg.Resolve(EntityNamed("sales.orders"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cm.SchemaName() != "sales" || cm.TableName() != "orders" {
		t.Errorf("sales.orders maps to %q.%q", cm.SchemaName(), cm.TableName())
	}
	if keys := cm.Keys(); len(keys) != 1 || keys[0].Name != "code" || keys[0].KeyType != Assigned {
		t.Errorf("sales.orders keys = %+v", keys)
	}

	cm, err = reg.Resolve(EntityNamed("archive.orders"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if keys := cm.Keys(); len(keys) != 1 || keys[0].Name != "seq" || keys[0].KeyType != Identity {
		t.Errorf("archive.orders keys = %+v", keys)
	}

	count, err := reg.Count(EntityNamed("sales.orders"), FieldNamed("sales.orders", "code", Eq, "A1"))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	expected := "SELECT COUNT(*) AS [Total] FROM [sales].[orders] WHERE ([orders].[code] = @code_0)"
	if count.SQL != expected {
		t.Errorf("SQL = %q, want %q", count.SQL, expected)
	}
}

func TestNewFromDBML_PrimaryKeys(t *testing.T) {
	project := dbml.NewProject("shop")

	lines := dbml.NewTable("order_lines")
	lines.AddColumn(dbml.NewColumn("order_id", "bigint"))
	lines.AddColumn(dbml.NewColumn("line_no", "int"))
	lines.AddColumn(dbml.NewColumn("sku", "varchar"))
	lines.AddIndex(dbml.NewIndex("order_id", "line_no").WithPrimaryKey())
	project.AddTable(lines)

	tokens := dbml.NewTable("tokens")
	tokens.AddColumn(dbml.NewColumn("user_id", "bigint"))
	tokens.AddColumn(dbml.NewColumn("token", "uuid").WithPrimaryKey())
	project.AddTable(tokens)

	reg, err := NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML failed: %v", err)
	}

	cm, err := reg.Resolve(EntityNamed("order_lines"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	keys := cm.Keys()
	if len(keys) != 2 || keys[0].Name != "order_id" || keys[1].Name != "line_no" {
		t.Fatalf("order_lines keys = %+v", keys)
	}
	for _, k := range keys {
		if k.KeyType != Assigned {
			t.Errorf("composite key column %s = %s, want Assigned", k.Name, k.KeyType)
		}
	}

	cm, err = reg.Resolve(EntityNamed("tokens"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if keys := cm.Keys(); len(keys) != 1 || keys[0].Name != "token" || keys[0].KeyType != Guid {
		t.Errorf("tokens keys = %+v, declared key must win over user_id", keys)
	}

	if err := reg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestNewFromDBML_Nil(t *testing.T) {
	if _, err := NewFromDBML(nil); err == nil {
		t.Error("Expected error for nil project")
	}
}

func TestColumnKeyType(t *testing.T) {
	tests := []struct {
		typeName string
		want     KeyType
	}{
		{"int", Identity},
		{"BIGINT", Identity},
		{"serial", Identity},
		{"uuid", Guid},
		{"uniqueidentifier", Guid},
		{"varchar(36)", Assigned},
		{"text", Assigned},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			if got := columnKeyType(tt.typeName); got != tt.want {
				t.Errorf("columnKeyType(%q) = %s, want %s", tt.typeName, got, tt.want)
			}
		})
	}
}
