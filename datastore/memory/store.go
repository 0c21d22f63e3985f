/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/suparena/memrepo/datastore"
	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/identity"
	"github.com/suparena/memrepo/registry"
	"github.com/suparena/memrepo/storagemodels"
	"go.uber.org/zap"
)

var _ datastore.QueryableRepository[any, string] = (*Store[any, string])(nil)

// Store implements datastore.QueryableRepository[T, ID] on top of a map.
//
// A Store is not safe for concurrent use; wrap it with NewSynchronized or
// guard it externally.
type Store[T any, ID comparable] struct {
	store      map[ID]T
	previousID *ID

	mapping    *registry.IdentifierMapping
	properties map[string]func(T) any
	logger     *zap.Logger

	entityType reflect.Type
	typeName   string
}

// New constructs an empty Store. mapping supplies the identifier generators
// per entity type and may be nil, in which case every type uses the default
// strategy of its identifier type.
func New[T any, ID comparable](mapping *registry.IdentifierMapping, opts ...Option[T]) (*Store[T, ID], error) {
	o := defaultOptions[T]()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	entityType := reflect.TypeFor[T]()
	s := &Store[T, ID]{
		store:      make(map[ID]T),
		mapping:    mapping,
		properties: o.properties,
		entityType: entityType,
		typeName:   entityType.String(),
	}
	s.logger = o.logger.With(zap.String("entity", s.typeName))
	return s, nil
}

// Save stores entity under its identifier. An entity without one is assigned
// the next identifier of its type's generator first. An existing entry with
// the same identifier is replaced. The saved identifier, explicit or
// generated, becomes the last issued one.
func (s *Store[T, ID]) Save(entity T) (T, error) {
	if identity.IsNil(entity) {
		return entity, errors.NewValidationError("entity", "must not be nil")
	}

	id, err := identity.ResolveIdentifier[ID](entity)
	if err != nil {
		return entity, err
	}

	if identity.IsZero(id) {
		id, err = s.assignNext(entity)
		if err != nil {
			return entity, err
		}
	}

	s.store[id] = entity
	s.previousID = &id
	s.logger.Debug("saved", zap.Any("id", id))
	return entity, nil
}

func (s *Store[T, ID]) assignNext(entity T) (ID, error) {
	var zero ID

	generator, err := registry.GeneratorFor[ID](s.mapping, reflect.TypeOf(entity), s.entityType)
	if err != nil {
		return zero, err
	}

	id, err := generator.Next(s.previousID)
	if err != nil {
		return zero, fmt.Errorf("generate identifier for %s: %w", identity.TypeName(entity), err)
	}
	if identity.IsZero(id) {
		return zero, errors.NewConfigurationError(identity.TypeName(entity),
			fmt.Sprintf("generator %T returned the zero identifier", generator), nil)
	}

	if err := identity.AssignIdentifier(entity, id); err != nil {
		return zero, err
	}

	s.logger.Debug("assigned identifier",
		zap.Any("id", id),
		zap.String("generator", fmt.Sprintf("%T", generator)))
	return id, nil
}

// SaveAll saves entities in order. It stops at the first failure and returns
// the entities saved so far; those stay in the store.
func (s *Store[T, ID]) SaveAll(entities iter.Seq[T]) ([]T, error) {
	if entities == nil {
		return nil, errors.NewValidationError("entities", "must not be nil")
	}

	saved := []T{}
	for entity := range entities {
		result, err := s.Save(entity)
		if err != nil {
			return saved, err
		}
		saved = append(saved, result)
	}
	return saved, nil
}

// FindByID returns the entity stored under id.
func (s *Store[T, ID]) FindByID(id ID) (T, bool, error) {
	if identity.IsZero(id) {
		var zero T
		return zero, false, errors.NewValidationError("id", "must not be empty")
	}
	entity, ok := s.store[id]
	return entity, ok, nil
}

// ExistsByID reports whether an entity is stored under id.
func (s *Store[T, ID]) ExistsByID(id ID) (bool, error) {
	_, ok, err := s.FindByID(id)
	return ok, err
}

// FindAll returns every stored entity. The sequence reads the store each
// time it is ranged over.
func (s *Store[T, ID]) FindAll() storagemodels.Streamable[T] {
	return storagemodels.Of[T](s.values)
}

func (s *Store[T, ID]) values(yield func(T) bool) {
	for _, entity := range s.store {
		if !yield(entity) {
			return
		}
	}
}

// FindAllByID returns the entities stored under ids, in order. The first id
// without an entity fails the whole lookup.
func (s *Store[T, ID]) FindAllByID(ids iter.Seq[ID]) ([]T, error) {
	if ids == nil {
		return nil, errors.NewValidationError("ids", "must not be nil")
	}

	found := []T{}
	for id := range ids {
		entity, ok, err := s.FindByID(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewNoResultError(s.typeName, id)
		}
		found = append(found, entity)
	}
	return found, nil
}

// Count returns the number of stored entities.
func (s *Store[T, ID]) Count() int {
	return len(s.store)
}

// DeleteByID removes the entity stored under id, which must exist.
func (s *Store[T, ID]) DeleteByID(id ID) error {
	if identity.IsZero(id) {
		return errors.NewValidationError("id", "must not be empty")
	}
	if _, ok := s.store[id]; !ok {
		return errors.NewNoResultError(s.typeName, id)
	}
	delete(s.store, id)
	s.logger.Debug("deleted", zap.Any("id", id))
	return nil
}

// Delete removes entity. An entity without an identifier, or one that is not
// stored, is ignored.
func (s *Store[T, ID]) Delete(entity T) error {
	if identity.IsNil(entity) {
		return errors.NewValidationError("entity", "must not be nil")
	}

	id, err := identity.ResolveIdentifier[ID](entity)
	if err != nil {
		return err
	}
	if identity.IsZero(id) {
		return nil
	}
	if _, ok := s.store[id]; ok {
		delete(s.store, id)
		s.logger.Debug("deleted", zap.Any("id", id))
	}
	return nil
}

// DeleteAllOf deletes each of entities with the semantics of Delete.
func (s *Store[T, ID]) DeleteAllOf(entities iter.Seq[T]) error {
	if entities == nil {
		return errors.NewValidationError("entities", "must not be nil")
	}
	for entity := range entities {
		if err := s.Delete(entity); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every entity. The last issued identifier is kept, so
// generated identifiers keep increasing.
func (s *Store[T, ID]) DeleteAll() {
	clear(s.store)
	s.logger.Debug("cleared")
}

// LastIssued returns the identifier of the most recent save.
func (s *Store[T, ID]) LastIssued() (ID, bool) {
	if s.previousID == nil {
		var zero ID
		return zero, false
	}
	return *s.previousID, true
}
