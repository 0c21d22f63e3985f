/*
Package memrepo provides generic in-memory entity repositories for Go
applications, mimicking a database repository contract without a database.

Key Features:
  - Type-safe CRUD and property queries using Go generics
  - Identifier discovery through GetID/SetID or a `memrepo:"id"` struct tag,
    following embedded structs with the outermost declaration winning
  - Pluggable primary key generation per entity type (sequence, UUID, ULID,
    or the identifier type's own factory)
  - Strict queries: unknown properties and ambiguous unique lookups are errors
  - YAML and dotenv configuration of identifier strategies
  - Semantic error types for better error handling
  - Thread-safe repository management

Basic Usage:

	// Declare an entity
	type Product struct {
	    ID   int64  `memrepo:"id"`
	    Name string `json:"name"`
	}

	// Configure identifier generation once at start-up
	reg := registry.NewIdentifierRegistry()
	registry.Register[*Product, int64](reg, keygen.NewSequence[int64]())

	// Create repositories from the resulting mapping
	factory := memrepo.NewFactory(reg.Mapping(), memrepo.WithLogger(logger))
	products, _ := memrepo.Repository[*Product, int64](factory, "products")

	p, _ := products.Save(&Product{Name: "foo"}) // p.ID == 1
	foo, found, err := products.FindUniqueBy("name", "foo")

Repositories created by a Factory are not synchronized unless the factory is
built WithSynchronized.
*/
package memrepo
