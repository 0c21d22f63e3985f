/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"iter"
	"sync"

	"github.com/suparena/memrepo/datastore"
	"github.com/suparena/memrepo/storagemodels"
)

// Synchronized guards a repository with a read/write mutex. Sequences are
// evaluated under the read lock and returned as snapshots, so they stay valid
// while other goroutines modify the repository.
//
// Caller-supplied iterators and predicates passed to SaveAll, FindAllByID,
// DeleteAllOf, FindAllWhere and FindUniqueWhere run while the lock is held.
// They must not call back into the same Synchronized value or they deadlock.
// Returned sequences are snapshots and may be ranged over freely.
type Synchronized[T any, ID comparable] struct {
	mu   sync.RWMutex
	repo datastore.QueryableRepository[T, ID]
}

var _ datastore.QueryableRepository[any, string] = (*Synchronized[any, string])(nil)

// NewSynchronized wraps repo for concurrent use.
func NewSynchronized[T any, ID comparable](repo datastore.QueryableRepository[T, ID]) *Synchronized[T, ID] {
	return &Synchronized[T, ID]{repo: repo}
}

// Save saves entity under the write lock.
func (s *Synchronized[T, ID]) Save(entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Save(entity)
}

// SaveAll saves entities under a single write lock. The entities sequence is
// consumed while the lock is held.
func (s *Synchronized[T, ID]) SaveAll(entities iter.Seq[T]) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveAll(entities)
}

// FindByID looks up id under the read lock.
func (s *Synchronized[T, ID]) FindByID(id ID) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.FindByID(id)
}

// ExistsByID reports whether id is stored.
func (s *Synchronized[T, ID]) ExistsByID(id ID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.ExistsByID(id)
}

// FindAll returns a snapshot of every stored entity.
func (s *Synchronized[T, ID]) FindAll() storagemodels.Streamable[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return storagemodels.Materialize(s.repo.FindAll())
}

// FindAllByID resolves every id under the read lock. The ids sequence is
// consumed while the lock is held.
func (s *Synchronized[T, ID]) FindAllByID(ids iter.Seq[ID]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.FindAllByID(ids)
}

// Count returns the number of stored entities.
func (s *Synchronized[T, ID]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.Count()
}

// DeleteByID removes id under the write lock.
func (s *Synchronized[T, ID]) DeleteByID(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.DeleteByID(id)
}

// Delete removes entity under the write lock.
func (s *Synchronized[T, ID]) Delete(entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(entity)
}

// DeleteAllOf removes entities under a single write lock.
func (s *Synchronized[T, ID]) DeleteAllOf(entities iter.Seq[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.DeleteAllOf(entities)
}

// DeleteAll empties the repository.
func (s *Synchronized[T, ID]) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.DeleteAll()
}

// FindAllBy returns a snapshot of the entities whose property equals value.
func (s *Synchronized[T, ID]) FindAllBy(property string, value any) (storagemodels.Streamable[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches, err := s.repo.FindAllBy(property, value)
	if err != nil {
		return nil, err
	}
	return storagemodels.Materialize(matches), nil
}

// FindUniqueBy returns the single entity whose property equals value.
func (s *Synchronized[T, ID]) FindUniqueBy(property string, value any) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.FindUniqueBy(property, value)
}

// FindAllWhere returns a snapshot of the entities matching predicate.
// predicate is evaluated under the read lock.
func (s *Synchronized[T, ID]) FindAllWhere(predicate storagemodels.Predicate[T]) storagemodels.Streamable[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return storagemodels.Materialize(s.repo.FindAllWhere(predicate))
}

// FindUniqueWhere returns the single entity matching predicate, evaluated
// under the read lock.
func (s *Synchronized[T, ID]) FindUniqueWhere(predicate storagemodels.Predicate[T]) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.FindUniqueWhere(predicate)
}
