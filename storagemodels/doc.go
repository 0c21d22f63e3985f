/*
Package storagemodels defines the data structures used throughout memrepo.

Key Types:

Streamable:
A lazy, restartable sequence returned by store queries. Ranging over it
re-scans the store, and an error ends the sequence:

	products, err := store.FindAllBy("Name", "foo")
	if err != nil {
	    return err
	}
	for p, err := range products {
	    if err != nil {
	        return err // e.g. an entity without a "Name" property
	    }
	    fmt.Println(p.ID)
	}

	list, err := products.ToList()

PropertyQuery:
Parameters of a property-equality query:

	q := storagemodels.PropertyQuery{Property: "sku", Value: "A-1"}

Predicate:
A typed alternative to PropertyQuery that needs no runtime property lookup:

	cheap := storagemodels.Predicate[*Product](func(p *Product) bool { return p.Price < 100 })

These types provide a consistent interface across repository implementations.
*/
package storagemodels
