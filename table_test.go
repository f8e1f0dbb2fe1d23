package predql

import (
	"reflect"
	"testing"
)

func TestE(t *testing.T) {
	e := E[User]()
	if e.Name != "User" {
		t.Errorf("Expected name User, got %s", e.Name)
	}
	if e.Type != reflect.TypeOf(User{}) {
		t.Errorf("Expected User type, got %v", e.Type)
	}

	// Pointer types resolve to the same entity.
	if p := E[*User](); p != e {
		t.Errorf("E[*User]() = %+v, want %+v", p, e)
	}
	if p := E[**Order](); p.Name != "Order" {
		t.Errorf("Expected name Order, got %s", p.Name)
	}
}

func TestEntityNamed(t *testing.T) {
	e := EntityNamed("customers")
	if e.Name != "customers" {
		t.Errorf("Expected name customers, got %s", e.Name)
	}
	if e.Type != nil {
		t.Error("Named entity should carry no Go type")
	}
	if e == EntityNamed("Customers") {
		t.Error("Entity names are case-sensitive")
	}
}

func TestE_SameNameSharesMapping(t *testing.T) {
	first := func() Entity {
		type Widget struct {
			ID   int
			Name string
		}
		return E[Widget]()
	}()
	second := func() Entity {
		type Widget struct {
			Code string
		}
		return E[Widget]()
	}()

	if first.Name != second.Name {
		t.Fatalf("Expected equal names, got %s and %s", first.Name, second.Name)
	}
	if first.Type == second.Type {
		t.Fatal("Expected distinct Go types")
	}

	reg, _ := newTestRegistry(t)
	a, err := reg.Resolve(first)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := reg.Resolve(second)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a != b {
		t.Error("Types with the same bare name should resolve to one mapping")
	}
	if _, ok := b.Property("Code"); ok {
		t.Error("The second type should see the first type's mapping")
	}
}
