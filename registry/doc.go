/*
Package registry manages identifier generation registrations for memrepo.

The registry system enables:
  - A per-entity-type primary key generation strategy
  - An immutable snapshot handed to every store at construction time
  - Name based lookup of entity types for configuration files

Identifier Registry:
Associates Go types with primary key generators and is frozen into an
IdentifierMapping once configuration is complete:

	r := registry.NewIdentifierRegistry()
	registry.Register[*Product, int64](r, keygen.NewSequence[int64]())
	registry.Register[*Order, strfmt.UUID](r, keygen.NewStrfmtUUID())
	mapping := r.Mapping()

Entity types without a registration fall back to keygen.Default.

Type Registry:
Maps entity names to Go types so that strategies can be configured by name:

	types := registry.NewTypes()
	registry.RegisterType[*Product, int64](types, "Product")
	types.Configure(r, "Product", "sequence")

The type registry is thread-safe. IdentifierRegistry is meant to be populated
by a single goroutine during initialization.
*/
package registry
