/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/keygen"
)

// TypeEntry describes an entity type registered under a name, so that
// configuration files can refer to it.
type TypeEntry struct {
	Name   string
	Type   reflect.Type
	IDType reflect.Type

	generator func(strategy string) (any, error)
}

// Generator builds the named strategy for the entry's identifier type.
func (e TypeEntry) Generator(strategy string) (any, error) {
	return e.generator(strategy)
}

// Types maps entity names to their Go types.
type Types struct {
	mu      sync.RWMutex
	entries map[string]TypeEntry
}

// NewTypes creates an empty type registry.
func NewTypes() *Types {
	return &Types{entries: make(map[string]TypeEntry)}
}

// RegisterType registers entity type T, identified by ID, under name.
// Registering a name twice is a configuration error.
func RegisterType[T any, ID comparable](types *Types, name string) error {
	if name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}

	types.mu.Lock()
	defer types.mu.Unlock()

	if existing, exists := types.entries[name]; exists {
		return errors.NewConfigurationError(name,
			fmt.Sprintf("type already registered as %s", existing.Type), nil)
	}

	types.entries[name] = TypeEntry{
		Name:   name,
		Type:   reflect.TypeFor[T](),
		IDType: reflect.TypeFor[ID](),
		generator: func(strategy string) (any, error) {
			return keygen.ByName[ID](strategy)
		},
	}
	return nil
}

// Lookup returns the entry registered under name.
func (t *Types) Lookup(name string) (TypeEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[name]
	if !ok {
		return TypeEntry{}, errors.NewConfigurationError(name, "no entity type registered under this name", nil)
	}
	return entry, nil
}

// Names returns all registered names in sorted order.
func (t *Types) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.entries))
}

// Configure registers the strategy called strategy for the entity type named
// name into r.
func (t *Types) Configure(r *IdentifierRegistry, name, strategy string) error {
	entry, err := t.Lookup(name)
	if err != nil {
		return err
	}
	generator, err := entry.Generator(strategy)
	if err != nil {
		return fmt.Errorf("entity %s: %w", name, err)
	}
	return r.Add(entry.Type, generator)
}
