/*
Package datastore defines the core interfaces of memrepo's repository layer.

The main interface is Repository[T, ID], which provides generic CRUD operations
for any entity type T identified by a comparable ID:

	type Repository[T any, ID comparable] interface {
	    Save(entity T) (T, error)
	    SaveAll(entities iter.Seq[T]) ([]T, error)
	    FindByID(id ID) (T, bool, error)
	    ExistsByID(id ID) (bool, error)
	    FindAll() storagemodels.Streamable[T]
	    FindAllByID(ids iter.Seq[ID]) ([]T, error)
	    Count() int
	    DeleteByID(id ID) error
	    Delete(entity T) error
	    DeleteAllOf(entities iter.Seq[T]) error
	    DeleteAll()
	}

PropertyQuerier[T] adds property-equality and predicate queries, and
QueryableRepository[T, ID] combines both.

Implementations:
  - memory: in-process map-backed store with pluggable identifier generation
  - mock: generator test doubles for exercising stores

The package uses Go generics to ensure type safety at compile time while
keeping the identifier type free.
*/
package datastore
