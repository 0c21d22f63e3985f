/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/keygen"
)

// IdentifierRegistry collects entity type → primary key generator
// registrations while an application is being configured. It is not safe for
// concurrent use; hand the result of Mapping to stores instead.
type IdentifierRegistry struct {
	registrations map[reflect.Type]any
}

// NewIdentifierRegistry creates an empty registry.
func NewIdentifierRegistry() *IdentifierRegistry {
	return &IdentifierRegistry{
		registrations: make(map[reflect.Type]any),
	}
}

// Add registers generator for entityType, replacing an earlier registration.
// generator must implement keygen.PrimaryKeyGenerator for the entity's ID type;
// a mismatch surfaces when a store asks for it.
func (r *IdentifierRegistry) Add(entityType reflect.Type, generator any) error {
	if entityType == nil {
		return errors.NewValidationError("entityType", "must not be nil")
	}
	if generator == nil {
		return errors.NewValidationError("generator", "must not be nil")
	}
	r.registrations[entityType] = generator
	return nil
}

// Register associates entity type T with a generator of identifiers of type ID.
func Register[T any, ID comparable](r *IdentifierRegistry, generator keygen.PrimaryKeyGenerator[ID]) error {
	if generator == nil {
		return errors.NewValidationError("generator", "must not be nil")
	}
	return r.Add(reflect.TypeFor[T](), generator)
}

// Mapping returns an immutable snapshot of all registrations. Later calls to
// Add do not affect snapshots taken earlier.
func (r *IdentifierRegistry) Mapping() *IdentifierMapping {
	return &IdentifierMapping{generators: maps.Clone(r.registrations)}
}

// IdentifierMapping is a read-only view of entity type → generator
// registrations. A nil *IdentifierMapping behaves as an empty one.
type IdentifierMapping struct {
	generators map[reflect.Type]any
}

// Lookup returns the generator registered for t.
func (m *IdentifierMapping) Lookup(t reflect.Type) (any, bool) {
	if m == nil {
		return nil, false
	}
	g, ok := m.generators[t]
	return g, ok
}

// Len returns the number of registrations.
func (m *IdentifierMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.generators)
}

// Types returns the registered entity types ordered by name.
func (m *IdentifierMapping) Types() []reflect.Type {
	if m == nil {
		return nil
	}
	types := slices.Collect(maps.Keys(m.generators))
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

// GeneratorFor returns the generator for the first of types that has a
// registration, typically the entity's runtime type followed by the
// repository's declared entity type. Without any registration the
// keygen.Default strategy is returned.
func GeneratorFor[ID comparable](m *IdentifierMapping, types ...reflect.Type) (keygen.PrimaryKeyGenerator[ID], error) {
	for _, t := range types {
		if t == nil {
			continue
		}
		registered, ok := m.Lookup(t)
		if !ok {
			continue
		}
		generator, ok := registered.(keygen.PrimaryKeyGenerator[ID])
		if !ok {
			return nil, errors.NewConfigurationError(t.String(),
				fmt.Sprintf("registered generator %T does not produce %s identifiers", registered, reflect.TypeFor[ID]()), nil)
		}
		return generator, nil
	}
	return keygen.Default[ID](), nil
}

// Validate reports at configuration time whether identifiers of type ID can
// be generated for entityType, either by its registered generator or by the
// default strategy.
func Validate[ID comparable](m *IdentifierMapping, entityType reflect.Type) error {
	if _, ok := m.Lookup(entityType); ok {
		_, err := GeneratorFor[ID](m, entityType)
		return err
	}
	if err := keygen.CheckDefault[ID](); err != nil {
		return fmt.Errorf("no generator registered for %s: %w", entityType, err)
	}
	return nil
}
