// Package benchmarks provides performance benchmarks for predql.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/zoobzio/predql"
)

type User struct {
	Username string
	Email    string
	ID       int64
	Age      int
	Active   bool
}

type Post struct {
	Title     string
	ID        int64
	UserID    int64
	Views     int
	Published bool
}

func createBenchmarkRegistry(b *testing.B) *predql.Registry {
	b.Helper()

	reg := predql.NewRegistry()
	m := predql.NewClassMapper[Post]().Schema("blog").Table("posts")
	m.Map("UserID").Column("user_id")
	m.AutoMap()
	if err := reg.Register(m); err != nil {
		b.Fatalf("Failed to register: %v", err)
	}
	// Resolve eagerly so auto-mapping is not measured.
	if _, err := reg.Resolve(predql.E[User]()); err != nil {
		b.Fatalf("Failed to resolve: %v", err)
	}
	return reg
}

// BenchmarkSingleField measures a single scalar comparison.
func BenchmarkSingleField(b *testing.B) {
	reg := createBenchmarkRegistry(b)
	pred := predql.Field[User]("Active", predql.Eq, true)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := reg.Compile(pred, predql.NewParams()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNestedGroups measures a nested AND/OR tree.
func BenchmarkNestedGroups(b *testing.B) {
	reg := createBenchmarkRegistry(b)
	pred := predql.And(
		predql.Field[User]("Active", predql.Eq, true),
		predql.Or(
			predql.Field[User]("Age", predql.Gt, 18),
			predql.Field[User]("Username", predql.Like, "adm%"),
		),
	)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := reg.Compile(pred, predql.NewParams()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSequence measures IN lists of increasing length.
func BenchmarkSequence(b *testing.B) {
	reg := createBenchmarkRegistry(b)

	for _, n := range []int{1, 10, 100} {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i)
		}
		pred := predql.Field[User]("ID", predql.Eq, ids)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := reg.Compile(pred, predql.NewParams()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExists measures a correlated EXISTS sub-query.
func BenchmarkExists(b *testing.B) {
	reg := createBenchmarkRegistry(b)
	pred := predql.Exists[Post](predql.And(
		predql.Property[Post, User]("UserID", predql.Eq, "ID"),
		predql.Field[Post]("Published", predql.Eq, true),
	))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := reg.Compile(pred, predql.NewParams()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelect measures full statement assembly with sorting.
func BenchmarkSelect(b *testing.B) {
	reg := createBenchmarkRegistry(b)
	pred := predql.Field[Post]("Views", predql.Ge, 100)
	sort := predql.SortBy[Post]("Views", false)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := reg.Select(predql.E[Post](), pred, sort); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAccessor measures resolving a property name from an accessor.
func BenchmarkAccessor(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = predql.PropertyName(func(u *User) any { return &u.Email })
	}
}

// BenchmarkParallelCompile measures compilation against a shared registry.
func BenchmarkParallelCompile(b *testing.B) {
	reg := createBenchmarkRegistry(b)
	pred := predql.And(
		predql.Field[User]("Active", predql.Eq, true),
		predql.Field[User]("ID", predql.Eq, []int64{1, 2, 3}),
	)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := reg.Compile(pred, predql.NewParams()); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
