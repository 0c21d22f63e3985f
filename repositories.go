/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memrepo

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/suparena/memrepo/datastore"
	"github.com/suparena/memrepo/datastore/memory"
	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/registry"
	"go.uber.org/zap"
)

// TypedRepositories holds named repositories for a single entity type T
type TypedRepositories[T any, ID comparable] struct {
	mu    sync.RWMutex
	repos map[string]datastore.QueryableRepository[T, ID]
}

// NewTypedRepositories creates an empty TypedRepositories for type T
func NewTypedRepositories[T any, ID comparable]() *TypedRepositories[T, ID] {
	return &TypedRepositories[T, ID]{
		repos: make(map[string]datastore.QueryableRepository[T, ID]),
	}
}

// Register adds a repository with the given key
func (tr *TypedRepositories[T, ID]) Register(key string, repo datastore.QueryableRepository[T, ID]) error {
	if repo == nil {
		return errors.NewValidationError("repo", "must not be nil")
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; exists {
		return fmt.Errorf("repository with key %q already registered", key)
	}

	tr.repos[key] = repo
	return nil
}

// Get retrieves a repository by key
func (tr *TypedRepositories[T, ID]) Get(key string) (datastore.QueryableRepository[T, ID], error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	repo, exists := tr.repos[key]
	if !exists {
		return nil, fmt.Errorf("repository with key %q not found", key)
	}

	return repo, nil
}

// Remove deletes a repository by key
func (tr *TypedRepositories[T, ID]) Remove(key string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; !exists {
		return fmt.Errorf("repository with key %q not found", key)
	}

	delete(tr.repos, key)
	return nil
}

// List returns all registered repository keys in sorted order
func (tr *TypedRepositories[T, ID]) List() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return slices.Sorted(maps.Keys(tr.repos))
}

// getOrCreate returns the repository under key, creating it with create if necessary
func (tr *TypedRepositories[T, ID]) getOrCreate(key string, create func() (datastore.QueryableRepository[T, ID], error)) (datastore.QueryableRepository[T, ID], error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if repo, exists := tr.repos[key]; exists {
		return repo, nil
	}

	repo, err := create()
	if err != nil {
		return nil, err
	}
	tr.repos[key] = repo
	return repo, nil
}

// Factory creates in-memory repositories that share one identifier mapping
// and manages them per entity type
type Factory struct {
	mu           sync.RWMutex
	repositories map[reflect.Type]any

	mapping      *registry.IdentifierMapping
	logger       *zap.Logger
	strict       bool
	synchronized bool
}

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithLogger sets the logger handed to every repository
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithStrictIdentifiers makes NewRepository fail for entity types whose
// identifiers can be neither generated by a registered generator nor by the
// default strategy
func WithStrictIdentifiers() FactoryOption {
	return func(f *Factory) {
		f.strict = true
	}
}

// WithSynchronized wraps every created repository with memory.NewSynchronized
func WithSynchronized() FactoryOption {
	return func(f *Factory) {
		f.synchronized = true
	}
}

// NewFactory creates a Factory using mapping for identifier generation.
// A nil mapping leaves every type to its default strategy.
func NewFactory(mapping *registry.IdentifierMapping, opts ...FactoryOption) *Factory {
	f := &Factory{
		repositories: make(map[reflect.Type]any),
		mapping:      mapping,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Types returns the entity types the factory manages repositories for, ordered by name
func (f *Factory) Types() []reflect.Type {
	f.mu.RLock()
	defer f.mu.RUnlock()

	types := slices.Collect(maps.Keys(f.repositories))
	slices.SortFunc(types, func(a, b reflect.Type) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return types
}

// GetTypedRepositories returns the TypedRepositories for the specified type, creating it if necessary.
// A type is bound to the identifier type it was first used with.
func GetTypedRepositories[T any, ID comparable](f *Factory) (*TypedRepositories[T, ID], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	typ := reflect.TypeFor[T]()

	if existing, exists := f.repositories[typ]; exists {
		typed, ok := existing.(*TypedRepositories[T, ID])
		if !ok {
			return nil, errors.NewConfigurationError(typ.String(),
				fmt.Sprintf("repositories already exist with another identifier type than %s", reflect.TypeFor[ID]()), nil)
		}
		return typed, nil
	}

	typed := NewTypedRepositories[T, ID]()
	f.repositories[typ] = typed
	return typed, nil
}

// NewRepository creates an unregistered repository for T using the factory's
// mapping and logger
func NewRepository[T any, ID comparable](f *Factory, opts ...memory.Option[T]) (datastore.QueryableRepository[T, ID], error) {
	entityType := reflect.TypeFor[T]()
	if f.strict {
		if err := registry.Validate[ID](f.mapping, entityType); err != nil {
			return nil, err
		}
	}

	logger := f.logger.Named("memrepo")
	opts = append([]memory.Option[T]{memory.WithLogger[T](logger)}, opts...)
	store, err := memory.New[T, ID](f.mapping, opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug("repository created",
		zap.Stringer("entity", entityType),
		zap.Stringer("id", reflect.TypeFor[ID]()),
		zap.Bool("synchronized", f.synchronized))

	if f.synchronized {
		return memory.NewSynchronized[T, ID](store), nil
	}
	return store, nil
}

// Convenience functions for keyed repositories

// Repository returns the repository for type T registered under key, creating it if necessary
func Repository[T any, ID comparable](f *Factory, key string, opts ...memory.Option[T]) (datastore.QueryableRepository[T, ID], error) {
	typed, err := GetTypedRepositories[T, ID](f)
	if err != nil {
		return nil, err
	}
	return typed.getOrCreate(key, func() (datastore.QueryableRepository[T, ID], error) {
		return NewRepository[T, ID](f, opts...)
	})
}

// RegisterRepository is a convenience function to register a repository for type T
func RegisterRepository[T any, ID comparable](f *Factory, key string, repo datastore.QueryableRepository[T, ID]) error {
	typed, err := GetTypedRepositories[T, ID](f)
	if err != nil {
		return err
	}
	return typed.Register(key, repo)
}

// GetRepository is a convenience function to get a registered repository for type T
func GetRepository[T any, ID comparable](f *Factory, key string) (datastore.QueryableRepository[T, ID], error) {
	typed, err := GetTypedRepositories[T, ID](f)
	if err != nil {
		return nil, err
	}
	return typed.Get(key)
}

// RemoveRepository is a convenience function to remove a repository for type T
func RemoveRepository[T any, ID comparable](f *Factory, key string) error {
	typed, err := GetTypedRepositories[T, ID](f)
	if err != nil {
		return err
	}
	return typed.Remove(key)
}

// ListRepositories is a convenience function to list all repository keys for type T
func ListRepositories[T any, ID comparable](f *Factory) ([]string, error) {
	typed, err := GetTypedRepositories[T, ID](f)
	if err != nil {
		return nil, err
	}
	return typed.List(), nil
}
