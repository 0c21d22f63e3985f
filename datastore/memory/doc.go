/*
Package memory provides the in-process implementation of datastore.QueryableRepository.

A Store keeps one map per instance, keyed by identifier. Entities without an
identifier get one on first save from the generator registered for their type
in a registry.IdentifierMapping, or from the default strategy of the
identifier type:

	reg := registry.NewIdentifierRegistry()
	_ = registry.Register[*Product, int64](reg, keygen.NewSequence[int64]())

	products, err := memory.New[*Product, int64](reg.Mapping(),
	    memory.WithLogger[*Product](logger))
	if err != nil {
	    return err
	}

	p, _ := products.Save(&Product{Name: "foo"}) // p.ID == 1
	foos, _ := products.FindAllBy("Name", "foo")

Property queries are strict: naming a property that an entity does not have
fails the query rather than matching nothing. Typed predicates avoid the
lookup altogether:

	cheap := products.FindAllWhere(func(p *Product) bool { return p.Price < 100 })

Lookups by identifier fail fast. DeleteByID reports a missing entity, while
Delete silently ignores entities that have no identifier or are not stored.

Store is not safe for concurrent use. NewSynchronized wraps any repository
with a read/write mutex.
*/
package memory
