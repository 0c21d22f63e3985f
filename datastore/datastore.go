/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"iter"

	"github.com/suparena/memrepo/storagemodels"
)

// Repository is the CRUD contract of an entity store keyed by identifiers of
// type ID.
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

// PropertyQuerier runs equality and predicate queries over stored entities.
type PropertyQuerier[T any] interface {
	FindAllBy(property string, value any) (storagemodels.Streamable[T], error)

	FindUniqueBy(property string, value any) (T, bool, error)

	FindAllWhere(predicate storagemodels.Predicate[T]) storagemodels.Streamable[T]

	FindUniqueWhere(predicate storagemodels.Predicate[T]) (T, bool, error)
}

// QueryableRepository is a Repository that also supports property queries.
type QueryableRepository[T any, ID comparable] interface {
	Repository[T, ID]
	PropertyQuerier[T]
}
