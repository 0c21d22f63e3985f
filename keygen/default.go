/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import (
	"reflect"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/suparena/memrepo/errors"
)

// Factory is implemented by identifier types that know how to construct a
// fresh value of themselves. It plays the role of a zero-argument constructor
// for the default strategy.
type Factory[ID comparable] interface {
	NewIdentifier() ID
}

type defaultGenerator[ID comparable] struct{}

// Default returns the fallback strategy used for entity types without a
// registered generator. It builds each identifier through the ID type's
// zero-argument factory and fails with a configuration error when ID has none,
// instead of handing out a degenerate identifier.
func Default[ID comparable]() PrimaryKeyGenerator[ID] {
	return defaultGenerator[ID]{}
}

func (defaultGenerator[ID]) Next(_ *ID) (ID, error) {
	create, err := zeroArgFactory[ID]()
	if err != nil {
		var zero ID
		return zero, err
	}
	return create()
}

// CheckDefault reports, ahead of first use, whether Default can produce
// identifiers of type ID.
func CheckDefault[ID comparable]() error {
	_, err := zeroArgFactory[ID]()
	return err
}

func zeroArgFactory[ID comparable]() (func() (ID, error), error) {
	var zero ID

	if f, ok := any(zero).(Factory[ID]); ok {
		return func() (ID, error) { return f.NewIdentifier(), nil }, nil
	}
	if f, ok := any(&zero).(Factory[ID]); ok {
		return func() (ID, error) { return f.NewIdentifier(), nil }, nil
	}

	switch any(zero).(type) {
	case uuid.UUID:
		return func() (ID, error) {
			id, err := uuid.NewRandom()
			return any(id).(ID), err
		}, nil
	case strfmt.UUID:
		return func() (ID, error) {
			id, err := NewStrfmtUUID().Next(nil)
			return any(id).(ID), err
		}, nil
	case strfmt.ULID:
		return func() (ID, error) {
			id, err := strfmt.NewULID()
			return any(id).(ID), err
		}, nil
	}

	return nil, errors.NewConfigurationError(reflect.TypeFor[ID]().String(),
		"identifier type has no zero-argument factory; register a generator for the entity type", nil)
}
