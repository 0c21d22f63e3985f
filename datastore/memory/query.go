/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"reflect"

	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/identity"
	"github.com/suparena/memrepo/storagemodels"
)

const predicateProperty = "<predicate>"

// FindAllBy returns the entities whose property equals value. The property is
// matched by Go field name or json name unless an accessor was registered with
// WithProperty.
//
// An entity without the property fails the query with a PropertyLookupError
// instead of being skipped. For a concrete entity type this is detected before
// any entity is scanned.
func (s *Store[T, ID]) FindAllBy(property string, value any) (storagemodels.Streamable[T], error) {
	query := storagemodels.PropertyQuery{Property: property, Value: value}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accessor, registered := s.properties[property]
	if !registered && s.entityType.Kind() != reflect.Interface && !identity.HasProperty(s.entityType, property) {
		return nil, errors.NewPropertyLookupError(property, s.typeName,
			errors.NewPropertyNotFoundError(s.typeName, property))
	}

	return func(yield func(T, error) bool) {
		for _, entity := range s.store {
			var actual any
			if registered {
				actual = accessor(entity)
			} else {
				v, err := identity.ResolveNamedProperty(entity, property)
				if err != nil {
					var zero T
					yield(zero, errors.NewPropertyLookupError(property, identity.TypeName(entity), err))
					return
				}
				actual = v
			}

			if propertyEquals(actual, query.Value) && !yield(entity, nil) {
				return
			}
		}
	}, nil
}

// FindUniqueBy returns the only entity whose property equals value. More than
// one match is a NonUniqueResultError.
func (s *Store[T, ID]) FindUniqueBy(property string, value any) (T, bool, error) {
	matches, err := s.FindAllBy(property, value)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return unique(matches, property)
}

// FindAllWhere returns the entities accepted by predicate.
func (s *Store[T, ID]) FindAllWhere(predicate storagemodels.Predicate[T]) storagemodels.Streamable[T] {
	if err := predicate.Validate(); err != nil {
		return storagemodels.Failed[T](err)
	}
	return s.FindAll().Filter(predicate)
}

// FindUniqueWhere returns the only entity accepted by predicate.
func (s *Store[T, ID]) FindUniqueWhere(predicate storagemodels.Predicate[T]) (T, bool, error) {
	if err := predicate.Validate(); err != nil {
		var zero T
		return zero, false, err
	}
	return unique(s.FindAll().Filter(predicate), predicateProperty)
}

func unique[T any](matches storagemodels.Streamable[T], property string) (T, bool, error) {
	var (
		found T
		count int
	)
	for entity, err := range matches {
		if err != nil {
			var zero T
			return zero, false, err
		}
		if count == 0 {
			found = entity
		}
		count++
	}

	switch count {
	case 0:
		return found, false, nil
	case 1:
		return found, true, nil
	}
	var zero T
	return zero, false, errors.NewNonUniqueResultError(property, identity.TypeName(found), count)
}

// propertyEquals compares a property value with the queried one. Values of
// different dynamic types never match, so an int query does not match an
// int64 field. A nil query matches nil pointers, slices and maps.
func propertyEquals(actual, expected any) bool {
	if expected == nil {
		return identity.IsNil(actual)
	}
	if actual == nil {
		return false
	}

	av := reflect.ValueOf(actual)
	if av.Type() != reflect.TypeOf(expected) {
		return false
	}
	if av.Kind() != reflect.Pointer && av.Comparable() {
		return actual == expected
	}
	return reflect.DeepEqual(actual, expected)
}
